package webview

import (
	"errors"
	"fmt"
)

// ErrSettingsUnsupported is returned when the platform engine exposes no
// runtime settings surface through the native library. Engine defaults apply.
var ErrSettingsUnsupported = errors.New("webview: engine settings not supported on this platform")

// Settings are engine-level attributes of the browser view.
type Settings struct {
	JavaScript               bool
	JavaScriptCanOpenWindows bool
	LocalStorage             bool
	Plugins                  bool
	InsecureContent          bool
	AutoplayWithoutGesture   bool
	FullScreen               bool
}

// ApplySettings pushes s into the native browser controller of w.
func ApplySettings(w WebView, s Settings) error {
	browser, err := w.NativeHandle(NativeHandleBrowser)
	if err != nil {
		return err
	}
	if err := applySettings(browser, s); err != nil {
		return fmt.Errorf("webview: apply settings: %w", err)
	}
	return nil
}
