//go:build linux

package platform

import (
	"context"
	"fmt"

	"github.com/nociriysname/hostdiag/internal/probe"
	"github.com/nociriysname/hostdiag/internal/utils"
)

// Display reads X11 window geometry through xdotool.
type Display struct {
	run utils.CommandFunc
}

func NewDisplay() *Display {
	return &Display{run: utils.RunCommandGetOutput}
}

func (d *Display) Query(ctx context.Context) (probe.WindowSize, error) {
	out, err := d.run(ctx, "xdotool", "getactivewindow", "getwindowgeometry", "--shell")
	if err != nil {
		return probe.WindowSize{}, fmt.Errorf("failed to read active window: %w", err)
	}
	return parseShellGeometry(out)
}

func (d *Display) First(ctx context.Context) (probe.WindowSize, error) {
	out, err := d.run(ctx, "xdotool", "search", "--onlyvisible", "--name", "")
	if err != nil {
		return probe.WindowSize{}, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	id, err := firstWindowID(out)
	if err != nil {
		return probe.WindowSize{}, err
	}

	out, err = d.run(ctx, "xdotool", "getwindowgeometry", "--shell", id)
	if err != nil {
		return probe.WindowSize{}, fmt.Errorf("failed to read window %s: %w", id, err)
	}
	return parseShellGeometry(out)
}
