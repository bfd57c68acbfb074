package platform

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/jaypipes/ghw"

	"github.com/nociriysname/hostdiag/internal/utils"
)

var errNoGPU = errors.New("no graphics adapter detected")

// GPU asks ghw for the PCI graphics cards and falls back to nvidia-smi when
// ghw finds nothing with a product name.
type GPU struct {
	detect func() (*ghw.GPUInfo, error)
	run    utils.CommandFunc
}

// NewGPU sends ghw's warnings to logger instead of stderr. A nil logger
// discards them.
func NewGPU(logger *log.Logger) *GPU {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &GPU{
		detect: func() (*ghw.GPUInfo, error) { return ghw.GPU(ghw.WithAlerter(logger)) },
		run:    utils.RunCommandGetOutput,
	}
}

func (g *GPU) Query(ctx context.Context) ([]string, error) {
	if names := g.fromPCI(); len(names) > 0 {
		return names, nil
	}

	out, err := g.run(ctx, "nvidia-smi", "--query-gpu=gpu_name", "--format=csv,noheader")
	if err != nil {
		return nil, errors.Join(errNoGPU, err)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errNoGPU
	}
	return names, nil
}

func (g *GPU) fromPCI() []string {
	info, err := g.detect()
	if err != nil || info == nil {
		return nil
	}

	var names []string
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil || card.DeviceInfo.Product == nil {
			continue
		}
		if name := strings.TrimSpace(card.DeviceInfo.Product.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
