package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/nociriysname/hostdiag/internal/probe"
	"github.com/nociriysname/hostdiag/pkg/types"
)

// Render writes r as the fixed-order text report.
func Render(w io.Writer, r *types.Report) error {
	b := bufio.NewWriter(w)

	fmt.Fprintln(b, "All Installed software:")
	if procs, ok := r.InstalledProcesses.Get(); ok {
		for _, name := range procs {
			fmt.Fprintf(b, " - %s\n", name)
		}
	}

	fmt.Fprintln(b, "\nInternet Speed:")
	if bw, ok := r.Bandwidth.Get(); ok {
		fmt.Fprintf(b, "Download Speed: %.2f Mbps\n", bw.DownloadMbps)
		fmt.Fprintf(b, "Upload Speed: %.2f Mbps\n", bw.UploadMbps)
	} else {
		fmt.Fprintln(b, "Unable to measure internet speed.")
	}

	fmt.Fprintln(b, "\nScreen Resolution:")
	if res, ok := r.Resolution.Get(); ok {
		fmt.Fprintf(b, "Width: %d pixels\n", res.Width)
		fmt.Fprintf(b, "Height: %d pixels\n", res.Height)
	} else {
		fmt.Fprintln(b, "Unable to determine screen resolution.")
	}

	cpu, cpuOK := r.Processor.Get()
	model, cores, threads := probe.Sentinel, probe.Sentinel, probe.Sentinel
	if cpuOK {
		model = orSentinel(cpu.Model)
		cores = count(cpu.Cores)
		threads = count(cpu.Threads)
	}
	fmt.Fprintln(b, "\nCPU Model:")
	fmt.Fprintf(b, "Model: %s\n", model)
	fmt.Fprintln(b, "\nNo of core and threads of CPU :")
	fmt.Fprintf(b, "Number of Cores: %s\n", cores)
	fmt.Fprintf(b, "Number of Threads: %s\n", threads)

	fmt.Fprintf(b, "\nGPU Model: %s\n", orSentinel(r.GPU))

	if gb, ok := r.MemoryGB.Get(); ok {
		fmt.Fprintf(b, "\nRAM Size: %.2f GB\n", gb)
	} else {
		fmt.Fprintf(b, "\nRAM Size: %s\n", probe.Sentinel)
	}

	fmt.Fprintf(b, "\nScreen Size: %s\n", orSentinel(r.ScreenSize))

	fmt.Fprintln(b, "\nWifi/Ethernet mac address:")
	fmt.Fprintf(b, "Wifi mac address: %s\n", orSentinel(r.WiFiMAC))
	fmt.Fprintf(b, "Ethernet MAC Address: %s\n", orSentinel(r.EthernetMAC))

	fmt.Fprintf(b, "\nPublic IP Address: %s\n", orSentinel(r.PublicIP))

	fmt.Fprintf(b, "\nOS Version: %s\n", orSentinel(r.OSVersion.OrElse("")))

	return b.Flush()
}

func orSentinel(s string) string {
	if s == "" {
		return probe.Sentinel
	}
	return s
}

// count hides zero, which gopsutil reports when a count is unknown.
func count(n int) string {
	if n <= 0 {
		return probe.Sentinel
	}
	return strconv.Itoa(n)
}
