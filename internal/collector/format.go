package collector

import (
	"errors"
	"fmt"
	"math"
	"net"
	"sort"
	"strings"
)

// BytesPerSecToMbps converts a byte rate to megabits per second.
func BytesPerSecToMbps(bps float64) float64 {
	return bps * 8 / 1_000_000
}

// EstimateDiagonal returns sqrt(2w + 2h) formatted as inches.
// Note this is perimeter-based, not a physical diagonal.
func EstimateDiagonal(width, height int) string {
	return fmt.Sprintf("%.1f inches", math.Sqrt(float64(width*2+height*2)))
}

// FormatMAC normalizes a hardware address to lowercase colon-separated hex.
func FormatMAC(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errors.New("no hardware address")
	}
	hw, err := net.ParseMAC(addr)
	if err != nil {
		return "", fmt.Errorf("bad hardware address %q: %w", addr, err)
	}
	return hw.String(), nil
}

// distinctNames drops empty and repeated names and sorts the rest.
func distinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
