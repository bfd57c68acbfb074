// Package collector runs the diagnostics probes in a fixed order. Every
// probe makes one attempt and turns any failure into a sentinel.
package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/nociriysname/hostdiag/internal/probe"
	"github.com/nociriysname/hostdiag/pkg/types"
)

const bytesPerGB = 1024 * 1024 * 1024

// Sources bundles the capabilities the collector reads from. A nil source
// makes its probe report unavailable.
type Sources struct {
	Processes  probe.ProcessLister
	Bandwidth  probe.BandwidthMeter
	Windows    probe.WindowGeometry
	Processor  probe.ProcessorInfo
	Graphics   probe.GraphicsInfo
	Memory     probe.MemoryInfo
	Interfaces probe.InterfaceTable
	PublicIP   probe.PublicIPResolver
	OS         probe.OSInfo
}

type Options struct {
	WiFiIface     string
	EthernetIface string
	Logger        *log.Logger
}

type Collector struct {
	src    Sources
	opts   Options
	logger *log.Logger
}

func New(src Sources, opts Options) *Collector {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Collector{src: src, opts: opts, logger: logger}
}

// Collect runs every probe sequentially in report order.
func (c *Collector) Collect(ctx context.Context) *types.Report {
	r := &types.Report{RunID: uuid.NewString()}
	c.logger.Printf("run %s: collecting diagnostics", r.RunID)

	r.InstalledProcesses = note(c.logger, r.RunID, "processes", c.ListInstalledProcesses(ctx))
	r.Bandwidth = note(c.logger, r.RunID, "bandwidth", c.MeasureBandwidth(ctx))
	r.Resolution = note(c.logger, r.RunID, "resolution", c.GetActiveWindowResolution(ctx))
	r.Processor = note(c.logger, r.RunID, "processor", c.GetProcessorIdentity(ctx))
	r.GPU = c.GetGraphicsAdapterName(ctx)
	r.MemoryGB = note(c.logger, r.RunID, "memory", c.GetMemoryCapacityGB(ctx))
	r.ScreenSize = c.EstimateDisplayDiagonal(ctx)
	r.WiFiMAC = c.GetHardwareAddress(ctx, c.opts.WiFiIface)
	r.EthernetMAC = c.GetHardwareAddress(ctx, c.opts.EthernetIface)
	r.PublicIP = c.GetPublicIPAddress(ctx)
	r.OSVersion = note(c.logger, r.RunID, "os version", c.GetOSVersionString(ctx))

	c.logger.Printf("run %s: done", r.RunID)
	return r
}

func (c *Collector) ListInstalledProcesses(ctx context.Context) probe.Result[[]string] {
	if c.src.Processes == nil {
		return probe.Unavailable[[]string](errNoSource("processes"))
	}
	names, err := attempt(ctx, c.src.Processes.Query)
	if err != nil {
		return probe.Unavailable[[]string](err)
	}
	return probe.Available(distinctNames(names))
}

func (c *Collector) MeasureBandwidth(ctx context.Context) probe.Result[types.BandwidthSample] {
	if c.src.Bandwidth == nil {
		return probe.Unavailable[types.BandwidthSample](errNoSource("bandwidth"))
	}
	tp, err := attempt(ctx, c.src.Bandwidth.Query)
	if err != nil {
		return probe.Unavailable[types.BandwidthSample](err)
	}
	if tp.DownloadBytesPerSec < 0 || tp.UploadBytesPerSec < 0 {
		return probe.Unavailable[types.BandwidthSample](fmt.Errorf("negative throughput %+v", tp))
	}
	return probe.Available(types.BandwidthSample{
		DownloadMbps: BytesPerSecToMbps(tp.DownloadBytesPerSec),
		UploadMbps:   BytesPerSecToMbps(tp.UploadBytesPerSec),
	})
}

func (c *Collector) GetActiveWindowResolution(ctx context.Context) probe.Result[types.Resolution] {
	if c.src.Windows == nil {
		return probe.Unavailable[types.Resolution](errNoSource("window geometry"))
	}
	size, err := attempt(ctx, c.src.Windows.Query)
	if err != nil {
		return probe.Unavailable[types.Resolution](err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return probe.Unavailable[types.Resolution](fmt.Errorf("degenerate window %dx%d", size.Width, size.Height))
	}
	return probe.Available(types.Resolution{Width: size.Width, Height: size.Height})
}

func (c *Collector) GetProcessorIdentity(ctx context.Context) probe.Result[types.ProcessorIdentity] {
	if c.src.Processor == nil {
		return probe.Unavailable[types.ProcessorIdentity](errNoSource("processor"))
	}
	id, err := attempt(ctx, c.src.Processor.Query)
	if err != nil {
		return probe.Unavailable[types.ProcessorIdentity](err)
	}
	return probe.Available(types.ProcessorIdentity{Model: id.Model, Cores: id.Cores, Threads: id.Threads})
}

// GetGraphicsAdapterName returns the first detected adapter, or probe.Sentinel.
func (c *Collector) GetGraphicsAdapterName(ctx context.Context) string {
	if c.src.Graphics == nil {
		return probe.Sentinel
	}
	names, err := attempt(ctx, c.src.Graphics.Query)
	if err != nil {
		c.logger.Printf("gpu unavailable: %v", err)
		return probe.Sentinel
	}
	if len(names) == 0 || names[0] == "" {
		c.logger.Printf("gpu unavailable: empty adapter list")
		return probe.Sentinel
	}
	return names[0]
}

func (c *Collector) GetMemoryCapacityGB(ctx context.Context) probe.Result[float64] {
	if c.src.Memory == nil {
		return probe.Unavailable[float64](errNoSource("memory"))
	}
	total, err := attempt(ctx, c.src.Memory.Query)
	if err != nil {
		return probe.Unavailable[float64](err)
	}
	return probe.Available(float64(total) / bytesPerGB)
}

// EstimateDisplayDiagonal sizes the first enumerated window with
// EstimateDiagonal. It returns probe.Sentinel when no window can be read.
func (c *Collector) EstimateDisplayDiagonal(ctx context.Context) string {
	if c.src.Windows == nil {
		return probe.Sentinel
	}
	size, err := attempt(ctx, c.src.Windows.First)
	if err != nil {
		c.logger.Printf("screen size unavailable: %v", err)
		return probe.Sentinel
	}
	return EstimateDiagonal(size.Width, size.Height)
}

// GetHardwareAddress returns the MAC of the interface named exactly
// interfaceName, or probe.Sentinel.
func (c *Collector) GetHardwareAddress(ctx context.Context, interfaceName string) string {
	if c.src.Interfaces == nil || interfaceName == "" {
		return probe.Sentinel
	}
	ifaces, err := attempt(ctx, c.src.Interfaces.Query)
	if err != nil {
		c.logger.Printf("interfaces unavailable: %v", err)
		return probe.Sentinel
	}
	for _, i := range ifaces {
		if i.Name != interfaceName {
			continue
		}
		mac, err := FormatMAC(i.HardwareAddr)
		if err != nil {
			c.logger.Printf("interface %q: %v", interfaceName, err)
			return probe.Sentinel
		}
		return mac
	}
	c.logger.Printf("interface %q not found", interfaceName)
	return probe.Sentinel
}

func (c *Collector) GetPublicIPAddress(ctx context.Context) string {
	if c.src.PublicIP == nil {
		return probe.Sentinel
	}
	ip, err := attempt(ctx, c.src.PublicIP.Query)
	if err != nil || ip == "" {
		c.logger.Printf("public ip unavailable: %v", err)
		return probe.Sentinel
	}
	return ip
}

func (c *Collector) GetOSVersionString(ctx context.Context) probe.Result[string] {
	if c.src.OS == nil {
		return probe.Unavailable[string](errNoSource("os"))
	}
	v, err := attempt(ctx, c.src.OS.Query)
	if err != nil {
		return probe.Unavailable[string](err)
	}
	switch {
	case v.Platform != "":
		return probe.Available(v.Platform)
	case v.Kernel != "":
		return probe.Available(v.Kernel)
	}
	return probe.Unavailable[string](errors.New("empty os version"))
}

func note[T any](logger *log.Logger, runID, name string, r probe.Result[T]) probe.Result[T] {
	if !r.OK() {
		logger.Printf("run %s: %s unavailable: %v", runID, name, r.Err())
	}
	return r
}

// attempt calls query once and converts a panic into an error.
func attempt[T any](ctx context.Context, query func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v, err = zero, fmt.Errorf("probe panicked: %v", p)
		}
	}()
	return query(ctx)
}

func errNoSource(name string) error {
	return fmt.Errorf("%s: %w", name, probe.ErrUnavailable)
}
