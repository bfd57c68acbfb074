package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nociriysname/hostdiag/internal/probe"
	"github.com/nociriysname/hostdiag/pkg/types"
)

const fullReport = `All Installed software:
 - bash
 - sshd

Internet Speed:
Download Speed: 93.41 Mbps
Upload Speed: 11.00 Mbps

Screen Resolution:
Width: 1920 pixels
Height: 1080 pixels

CPU Model:
Model: Intel(R) Core(TM) i7-9700K CPU @ 3.60GHz

No of core and threads of CPU :
Number of Cores: 8
Number of Threads: 8

GPU Model: GeForce GTX 1080

RAM Size: 31.27 GB

Screen Size: 77.5 inches

Wifi/Ethernet mac address:
Wifi mac address: N/A
Ethernet MAC Address: 00:1a:2b:3c:4d:5e

Public IP Address: 203.0.113.9

OS Version: 22.04
`

func TestRenderFullReport(t *testing.T) {
	r := &types.Report{
		InstalledProcesses: probe.Available([]string{"bash", "sshd"}),
		Bandwidth:          probe.Available(types.BandwidthSample{DownloadMbps: 93.4126, UploadMbps: 11}),
		Resolution:         probe.Available(types.Resolution{Width: 1920, Height: 1080}),
		Processor: probe.Available(types.ProcessorIdentity{
			Model: "Intel(R) Core(TM) i7-9700K CPU @ 3.60GHz", Cores: 8, Threads: 8,
		}),
		GPU:         "GeForce GTX 1080",
		MemoryGB:    probe.Available(31.2712),
		ScreenSize:  "77.5 inches",
		WiFiMAC:     probe.Sentinel,
		EthernetMAC: "00:1a:2b:3c:4d:5e",
		PublicIP:    "203.0.113.9",
		OSVersion:   probe.Available("22.04"),
	}

	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, r))
	assert.Equal(t, buf.String(), fullReport)
}

func TestRenderAllUnavailable(t *testing.T) {
	down := errors.New("offline")
	r := &types.Report{
		InstalledProcesses: probe.Unavailable[[]string](down),
		Bandwidth:          probe.Unavailable[types.BandwidthSample](down),
		Resolution:         probe.Unavailable[types.Resolution](down),
		Processor:          probe.Unavailable[types.ProcessorIdentity](down),
		MemoryGB:           probe.Unavailable[float64](down),
		OSVersion:          probe.Unavailable[string](down),
	}

	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, r))
	out := buf.String()

	for _, want := range []string{
		"Unable to measure internet speed.",
		"Unable to determine screen resolution.",
		"Model: N/A",
		"Number of Cores: N/A",
		"GPU Model: N/A",
		"RAM Size: N/A",
		"Screen Size: N/A",
		"Wifi mac address: N/A",
		"Ethernet MAC Address: N/A",
		"Public IP Address: N/A",
		"OS Version: N/A",
	} {
		assert.Assert(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
	assert.Assert(t, !strings.Contains(out, "offline"))
}

func TestRenderSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, &types.Report{}))
	out := buf.String()

	order := []string{
		"All Installed software:", "Internet Speed:", "Screen Resolution:", "CPU Model:",
		"No of core and threads of CPU :", "GPU Model:", "RAM Size:", "Screen Size:",
		"Wifi/Ethernet mac address:", "Public IP Address:", "OS Version:",
	}
	last := -1
	for _, heading := range order {
		i := strings.Index(out, heading)
		assert.Assert(t, i > last, "%q out of order", heading)
		last = i
	}
}

func TestRenderUnknownCoreCount(t *testing.T) {
	r := &types.Report{
		Processor: probe.Available(types.ProcessorIdentity{Model: "Apple M2", Threads: 8}),
	}

	var buf bytes.Buffer
	assert.NilError(t, Render(&buf, r))
	out := buf.String()

	assert.Assert(t, strings.Contains(out, "Model: Apple M2\n"))
	assert.Assert(t, strings.Contains(out, "Number of Cores: N/A\n"))
	assert.Assert(t, strings.Contains(out, "Number of Threads: 8\n"))
}
