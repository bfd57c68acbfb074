//go:build windows

package platform

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/nociriysname/hostdiag/internal/probe"
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procGetForegroundWindow = moduser32.NewProc("GetForegroundWindow")
	procEnumWindows         = moduser32.NewProc("EnumWindows")
	procGetWindowRect       = moduser32.NewProc("GetWindowRect")
	procIsWindowVisible     = moduser32.NewProc("IsWindowVisible")
)

// stopAtFirstVisible stores the first visible HWND into *lparam and ends
// enumeration. Hidden windows (IME, tooltips) are skipped.
var stopAtFirstVisible = windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
	if !isWindowVisible(hwnd) {
		return 1
	}
	*(*uintptr)(unsafe.Pointer(lparam)) = hwnd
	return 0
})

func isWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// firstVisibleWindow returns 0 when no top-level window is visible.
func firstVisibleWindow() uintptr {
	var hwnd uintptr
	// EnumWindows reports failure when the callback stops early, so only hwnd is checked.
	_, _, _ = procEnumWindows.Call(stopAtFirstVisible, uintptr(unsafe.Pointer(&hwnd)))
	return hwnd
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type Display struct{}

func NewDisplay() *Display {
	return &Display{}
}

func (*Display) Query(context.Context) (probe.WindowSize, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return probe.WindowSize{}, errors.New("no foreground window")
	}
	return windowRect(hwnd)
}

func (*Display) First(context.Context) (probe.WindowSize, error) {
	hwnd := firstVisibleWindow()
	if hwnd == 0 {
		return probe.WindowSize{}, errors.New("no visible top-level windows")
	}
	return windowRect(hwnd)
}

func windowRect(hwnd uintptr) (probe.WindowSize, error) {
	var r rect
	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return probe.WindowSize{}, fmt.Errorf("GetWindowRect failed: %w", err)
	}
	return probe.WindowSize{Width: int(r.Right - r.Left), Height: int(r.Bottom - r.Top)}, nil
}
