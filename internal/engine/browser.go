package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/config"
	"github.com/orangetv/viewer/internal/shell"
	"github.com/orangetv/viewer/internal/webview"
)

// Supported zoom range; factors outside it are ignored.
const (
	MinZoom = 0.25
	MaxZoom = 5.0
)

// Browser implements shell.Browser on top of the page script.
type Browser struct {
	e *Engine

	onTitle      func(string)
	onFullScreen func(shell.FullScreenRequest)
}

var _ shell.Browser = (*Browser)(nil)

// Back goes one history entry back. It is a no-op at the start of history.
func (b *Browser) Back() { b.e.wv.Eval("history.back();") }

// Forward goes one history entry forward. It is a no-op at the end of history.
func (b *Browser) Forward() { b.e.wv.Eval("history.forward();") }

// Reload reloads the current page.
func (b *Browser) Reload() { b.e.wv.Eval("location.reload();") }

// Stop stops loading the current page.
func (b *Browser) Stop() { b.e.wv.Eval("window.stop();") }

// SetURL navigates to url.
func (b *Browser) SetURL(url string) {
	b.e.log.Debug("Navigate", zap.String("url", url))
	b.e.wv.Navigate(url)
}

// ZoomFactor returns the current page zoom, 1.0 by default.
func (b *Browser) ZoomFactor() float64 { return b.e.zoom }

// SetZoomFactor applies factor to the page. Factors outside
// [MinZoom, MaxZoom] are ignored.
func (b *Browser) SetZoomFactor(factor float64) {
	if factor < MinZoom || factor > MaxZoom {
		b.e.log.Debug("Zoom factor out of range", zap.Float64("factor", factor))
		return
	}
	b.e.zoom = factor
	b.e.push()
}

// ExitFullScreen asks the page to leave element fullscreen, if it is in it.
func (b *Browser) ExitFullScreen() {
	b.e.wv.Eval("window.__orangetv && window.__orangetv.exitFullScreen();")
}

// ApplySettings pushes the engine attributes into the native view. Platforms
// without a settings surface keep their defaults, which already allow
// script, storage, autoplay and the fullscreen API.
func (b *Browser) ApplySettings(s config.Engine) error {
	err := webview.ApplySettings(b.e.wv, webview.Settings{
		JavaScript:               s.JavaScript,
		JavaScriptCanOpenWindows: s.JavaScriptCanOpenWindows,
		LocalStorage:             s.LocalStorage,
		Plugins:                  s.Plugins,
		InsecureContent:          s.InsecureContent,
		AutoplayWithoutGesture:   s.AutoplayWithoutGesture,
		FullScreen:               s.FullScreenAPI,
	})
	if errors.Is(err, webview.ErrSettingsUnsupported) || errors.Is(err, webview.ErrNoNativeHandle) {
		b.e.log.Info("Using engine default settings", zap.Error(err))
		return nil
	}
	return err
}

// OnTitleChanged registers the handler for page title changes.
func (b *Browser) OnTitleChanged(fn func(string)) { b.onTitle = fn }

// OnFullScreenRequested registers the handler for page fullscreen changes.
func (b *Browser) OnFullScreenRequested(fn func(shell.FullScreenRequest)) { b.onFullScreen = fn }

// fullScreenRequest reports a fullscreenchange seen by the page. The page
// has already switched; rejecting asks it to switch back.
type fullScreenRequest struct {
	on      bool
	browser *Browser
}

func (r *fullScreenRequest) ToggleOn() bool { return r.on }

func (r *fullScreenRequest) Accept() {}

func (r *fullScreenRequest) Reject() {
	if r.on {
		r.browser.ExitFullScreen()
	}
}
