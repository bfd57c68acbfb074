//go:build !linux && !windows

package platform

import (
	"context"
	"errors"
	"runtime"

	"github.com/nociriysname/hostdiag/internal/probe"
)

type Display struct{}

func NewDisplay() *Display {
	return &Display{}
}

var errNoWindowManager = errors.New("window geometry not supported on " + runtime.GOOS)

func (*Display) Query(context.Context) (probe.WindowSize, error) {
	return probe.WindowSize{}, errNoWindowManager
}

func (*Display) First(context.Context) (probe.WindowSize, error) {
	return probe.WindowSize{}, errNoWindowManager
}
