// Package platform backs the probe capability interfaces with gopsutil,
// ghw and native window-manager calls.
package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/nociriysname/hostdiag/internal/probe"
)

type Processes struct{}

// Query lists the name of every running process. Processes that exit while
// being listed are skipped.
func (Processes) Query(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

var (
	cpuInfo   = cpu.InfoWithContext
	cpuCounts = cpu.CountsWithContext
)

type Processor struct{}

// Query needs the model name. A count that cannot be read is left at zero.
func (Processor) Query(ctx context.Context) (probe.CPUIdentity, error) {
	infos, err := cpuInfo(ctx)
	if err != nil {
		return probe.CPUIdentity{}, fmt.Errorf("failed to read cpu info: %w", err)
	}
	if len(infos) == 0 {
		return probe.CPUIdentity{}, errors.New("no cpu reported")
	}

	id := probe.CPUIdentity{Model: infos[0].ModelName}
	if cores, err := cpuCounts(ctx, false); err == nil {
		id.Cores = cores
	}
	if threads, err := cpuCounts(ctx, true); err == nil {
		id.Threads = threads
	}
	return id, nil
}

type Memory struct{}

func (Memory) Query(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return vm.Total, nil
}

type Interfaces struct{}

func (Interfaces) Query(ctx context.Context) ([]probe.Interface, error) {
	list, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	ifaces := make([]probe.Interface, 0, len(list))
	for _, i := range list {
		ifaces = append(ifaces, probe.Interface{Name: i.Name, HardwareAddr: i.HardwareAddr})
	}
	return ifaces, nil
}

type OS struct{}

func (OS) Query(ctx context.Context) (probe.OSVersion, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return probe.OSVersion{}, fmt.Errorf("failed to get host info: %w", err)
	}
	return probe.OSVersion{Platform: info.PlatformVersion, Kernel: info.KernelVersion}, nil
}
