package platform

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/nociriysname/hostdiag/internal/probe"
)

// parseShellGeometry reads the WIDTH=/HEIGHT= lines printed by
// `xdotool getwindowgeometry --shell`.
func parseShellGeometry(out string) (probe.WindowSize, error) {
	var size probe.WindowSize
	var haveW, haveH bool

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, val, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			continue
		}
		switch key {
		case "WIDTH":
			size.Width, haveW = n, true
		case "HEIGHT":
			size.Height, haveH = n, true
		}
	}

	if !haveW || !haveH {
		return probe.WindowSize{}, fmt.Errorf("no geometry in output %q", out)
	}
	return size, nil
}

// firstWindowID returns the first id from `xdotool search` output.
func firstWindowID(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if id := strings.TrimSpace(line); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("no windows found")
}
