package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/showwin/speedtest-go/speedtest"

	"github.com/nociriysname/hostdiag/internal/probe"
)

// SpeedMeter runs one download and one upload test against the closest
// speedtest.net server.
type SpeedMeter struct {
	st *speedtest.Speedtest
}

func NewSpeedMeter() *SpeedMeter {
	return &SpeedMeter{st: speedtest.New()}
}

func (m *SpeedMeter) Query(ctx context.Context) (probe.Throughput, error) {
	servers, err := m.st.FetchServerListContext(ctx)
	if err != nil {
		return probe.Throughput{}, fmt.Errorf("failed to fetch speedtest servers: %w", err)
	}
	targets, err := servers.FindServer(nil)
	if err != nil {
		return probe.Throughput{}, fmt.Errorf("failed to pick speedtest server: %w", err)
	}
	if len(targets) == 0 {
		return probe.Throughput{}, errors.New("no speedtest server available")
	}

	s := targets[0]
	defer s.Context.Reset()

	if err := s.PingTestContext(ctx, nil); err != nil {
		return probe.Throughput{}, fmt.Errorf("ping to %s failed: %w", s.Host, err)
	}
	if err := s.DownloadTestContext(ctx); err != nil {
		return probe.Throughput{}, fmt.Errorf("download test against %s failed: %w", s.Host, err)
	}
	if err := s.UploadTestContext(ctx); err != nil {
		return probe.Throughput{}, fmt.Errorf("upload test against %s failed: %w", s.Host, err)
	}

	return probe.Throughput{
		DownloadBytesPerSec: float64(s.DLSpeed),
		UploadBytesPerSec:   float64(s.ULSpeed),
	}, nil
}
