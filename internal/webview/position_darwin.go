package webview

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

type nsPoint struct {
	X, Y float64
}

type nsSize struct {
	Width, Height float64
}

type nsRect struct {
	Origin nsPoint
	Size   nsSize
}

// setPosition converts from top-left screen coordinates to Cocoa's
// bottom-left origin using the frame of the screen holding the window.
func setPosition(window unsafe.Pointer, x, y int) error {
	win := objc.ID(uintptr(window))
	screen := win.Send(objc.RegisterName("screen"))
	if screen == 0 {
		screen = objc.ID(objc.GetClass("NSScreen")).Send(objc.RegisterName("mainScreen"))
	}
	if screen == 0 {
		return errors.New("no NSScreen")
	}
	frame := objc.Send[nsRect](screen, objc.RegisterName("frame"))
	top := nsPoint{
		X: frame.Origin.X + float64(x),
		Y: frame.Origin.Y + frame.Size.Height - float64(y),
	}
	win.Send(objc.RegisterName("setFrameTopLeftPoint:"), top)
	return nil
}
