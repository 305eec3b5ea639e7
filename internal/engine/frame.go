package engine

import (
	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/shell"
	"github.com/orangetv/viewer/internal/webview"
)

// Frame implements shell.Frame on the native webview window.
type Frame struct {
	e *Engine
}

var _ shell.Frame = (*Frame)(nil)

// SetTitle sets the native window title.
func (f *Frame) SetTitle(title string) { f.e.wv.SetTitle(title) }

// SetGeometry sizes the window and moves its top-left corner to x, y. Window
// managers that refuse client placement (Wayland, GTK 4) keep their own
// position; that is logged and otherwise ignored.
func (f *Frame) SetGeometry(x, y, width, height int) {
	f.e.wv.SetSize(width, height, webview.HintNone)
	if err := f.e.wv.SetPosition(x, y); err != nil {
		f.e.log.Warn("Window position not applied", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
	}
}

// ShowFullScreen switches the window to fullscreen presentation.
func (f *Frame) ShowFullScreen() { f.setFullScreen(true) }

// ShowNormal returns the window to normal presentation.
func (f *Frame) ShowNormal() { f.setFullScreen(false) }

func (f *Frame) setFullScreen(on bool) {
	if err := f.e.wv.SetFullScreen(on); err != nil {
		f.e.log.Warn("Fullscreen change failed", zap.Bool("on", on), zap.Error(err))
	}
}

// IsFullScreen reports the last requested presentation mode.
func (f *Frame) IsFullScreen() bool { return f.e.wv.FullScreen() }

// Show is a no-op: native webview windows are visible once created.
func (f *Frame) Show() {}

// Close stops the UI loop; main destroys the window afterwards.
func (f *Frame) Close() { f.e.wv.Terminate() }
