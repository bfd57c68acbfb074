//go:build windows

package platform

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestFirstVisibleWindowSkipsHidden(t *testing.T) {
	hwnd := firstVisibleWindow()
	if hwnd == 0 {
		t.Skip("no interactive desktop")
	}
	assert.Assert(t, isWindowVisible(hwnd))
}
