package probe

import "context"

// Process enumeration. Names may repeat and may be empty.
type ProcessLister interface {
	Query(ctx context.Context) ([]string, error)
}

// Throughput reported by a BandwidthMeter, in bytes per second.
type Throughput struct {
	DownloadBytesPerSec float64
	UploadBytesPerSec   float64
}

type BandwidthMeter interface {
	Query(ctx context.Context) (Throughput, error)
}

type WindowSize struct {
	Width  int
	Height int
}

// WindowGeometry reads pixel sizes from the display or window manager.
type WindowGeometry interface {
	// Query returns the size of the foreground window.
	Query(ctx context.Context) (WindowSize, error)
	// First returns the size of the first window the window manager enumerates.
	First(ctx context.Context) (WindowSize, error)
}

type CPUIdentity struct {
	Model   string
	Cores   int
	Threads int
}

type ProcessorInfo interface {
	Query(ctx context.Context) (CPUIdentity, error)
}

// GraphicsInfo returns adapter names in detection order.
type GraphicsInfo interface {
	Query(ctx context.Context) ([]string, error)
}

// MemoryInfo returns total physical memory in bytes.
type MemoryInfo interface {
	Query(ctx context.Context) (uint64, error)
}

type Interface struct {
	Name         string
	HardwareAddr string
}

type InterfaceTable interface {
	Query(ctx context.Context) ([]Interface, error)
}

type PublicIPResolver interface {
	Query(ctx context.Context) (string, error)
}

type OSVersion struct {
	Platform string
	Kernel   string
}

type OSInfo interface {
	Query(ctx context.Context) (OSVersion, error)
}
