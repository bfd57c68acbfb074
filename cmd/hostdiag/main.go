package main

import (
	"context"
	"io"
	"log"
	"os"

	config "github.com/nociriysname/hostdiag/internal/cfg"
	"github.com/nociriysname/hostdiag/internal/client"
	"github.com/nociriysname/hostdiag/internal/collector"
	"github.com/nociriysname/hostdiag/internal/platform"
	"github.com/nociriysname/hostdiag/internal/report"
)

func main() {
	cfg := config.LoadConfig()

	logOut := io.Discard
	if cfg.Debug {
		logOut = os.Stderr
	}
	logger := log.New(logOut, "HOSTDIAG | ", log.LstdFlags)

	src := collector.Sources{
		Processes:  platform.Processes{},
		Windows:    platform.NewDisplay(),
		Processor:  platform.Processor{},
		Graphics:   platform.NewGPU(logger),
		Memory:     platform.Memory{},
		Interfaces: platform.Interfaces{},
		PublicIP:   client.NewIPEchoClient(cfg.IPEchoURL, cfg.HTTPTimeout, logger),
		OS:         platform.OS{},
	}
	if cfg.SpeedTest {
		src.Bandwidth = client.NewSpeedMeter()
	} else {
		logger.Println("speed test disabled by HOSTDIAG_SPEEDTEST")
	}

	c := collector.New(src, collector.Options{
		WiFiIface:     cfg.WiFiIface,
		EthernetIface: cfg.EthernetIface,
		Logger:        logger,
	})

	r := c.Collect(context.Background())
	if err := report.Render(os.Stdout, r); err != nil {
		logger.Printf("failed to write report: %v", err)
	}
}
