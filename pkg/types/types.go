package types

import "github.com/nociriysname/hostdiag/internal/probe"

type BandwidthSample struct {
	DownloadMbps float64
	UploadMbps   float64
}

type Resolution struct {
	Width  int
	Height int
}

type ProcessorIdentity struct {
	Model   string
	Cores   int
	Threads int
}

// Report holds every probe result for one run. Each field is independent.
type Report struct {
	RunID string

	InstalledProcesses probe.Result[[]string]
	Bandwidth          probe.Result[BandwidthSample]
	Resolution         probe.Result[Resolution]
	Processor          probe.Result[ProcessorIdentity]
	GPU                string
	MemoryGB           probe.Result[float64]
	ScreenSize         string
	WiFiMAC            string
	EthernetMAC        string
	PublicIP           string
	OSVersion          probe.Result[string]
}
