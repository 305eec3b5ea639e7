package webview

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

func applySettings(browser unsafe.Pointer, s Settings) error {
	view := objc.ID(uintptr(browser))
	config := view.Send(objc.RegisterName("configuration"))
	prefs := config.Send(objc.RegisterName("preferences"))
	if prefs == 0 {
		return errors.New("WKWebView has no preferences")
	}
	if s.InsecureContent {
		return errors.New("insecure content cannot be enabled on WKWebView")
	}

	// Local storage and plugins have no WKPreferences switch. Autoplay policy is
	// fixed when the WKWebViewConfiguration is created.
	setters := []struct {
		sel   string
		value bool
	}{
		{"setJavaScriptEnabled:", s.JavaScript},
		{"setJavaScriptCanOpenWindowsAutomatically:", s.JavaScriptCanOpenWindows},
		// macOS 12.3+
		{"setElementFullscreenEnabled:", s.FullScreen},
	}
	respondsTo := objc.RegisterName("respondsToSelector:")
	for _, set := range setters {
		sel := objc.RegisterName(set.sel)
		if !objc.Send[bool](prefs, respondsTo, sel) {
			continue
		}
		prefs.Send(sel, set.value)
	}
	return nil
}
