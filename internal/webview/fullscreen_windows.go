package webview

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtr   = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtr   = user32.NewProc("SetWindowLongPtrW")
	procGetWindowPlacement = user32.NewProc("GetWindowPlacement")
	procSetWindowPlacement = user32.NewProc("SetWindowPlacement")
	procMonitorFromWindow  = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfo     = user32.NewProc("GetMonitorInfoW")
	procSetWindowPos       = user32.NewProc("SetWindowPos")
)

const (
	wsOverlappedWindow      = 0x00CF0000
	monitorDefaultToPrimary = 0x00000001

	swpNoSize        = 0x0001
	swpNoMove        = 0x0002
	swpNoZOrder      = 0x0004
	swpFrameChanged  = 0x0020
	swpNoOwnerZOrder = 0x0200
)

var gwlStyle int32 = -16

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type windowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    point
	MaxPosition    point
	NormalPosition rect
}

type monitorInfo struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
}

// fullScreenState keeps the placement to restore when leaving fullscreen.
type fullScreenState struct {
	on        bool
	placement windowPlacement
}

func setFullScreen(window unsafe.Pointer, st *fullScreenState, on bool) error {
	if st.on == on {
		return nil
	}
	hwnd := uintptr(window)
	style, _, _ := procGetWindowLongPtr.Call(hwnd, uintptr(gwlStyle))

	if !on {
		procSetWindowLongPtr.Call(hwnd, uintptr(gwlStyle), style|wsOverlappedWindow)
		procSetWindowPlacement.Call(hwnd, uintptr(unsafe.Pointer(&st.placement)))
		procSetWindowPos.Call(hwnd, 0, 0, 0, 0, 0,
			swpNoMove|swpNoSize|swpNoZOrder|swpNoOwnerZOrder|swpFrameChanged)
		st.on = false
		return nil
	}

	st.placement = windowPlacement{Length: uint32(unsafe.Sizeof(windowPlacement{}))}
	if r, _, err := procGetWindowPlacement.Call(hwnd, uintptr(unsafe.Pointer(&st.placement))); r == 0 {
		return err
	}
	mon, _, _ := procMonitorFromWindow.Call(hwnd, monitorDefaultToPrimary)
	mi := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
	if r, _, _ := procGetMonitorInfo.Call(mon, uintptr(unsafe.Pointer(&mi))); r == 0 {
		return errors.New("GetMonitorInfo failed")
	}
	procSetWindowLongPtr.Call(hwnd, uintptr(gwlStyle), style&^wsOverlappedWindow)
	procSetWindowPos.Call(hwnd, 0,
		uintptr(mi.Monitor.Left), uintptr(mi.Monitor.Top),
		uintptr(mi.Monitor.Right-mi.Monitor.Left), uintptr(mi.Monitor.Bottom-mi.Monitor.Top),
		swpNoOwnerZOrder|swpFrameChanged)
	st.on = true
	return nil
}

func isFullScreen(_ unsafe.Pointer, st *fullScreenState) bool {
	return st.on
}
