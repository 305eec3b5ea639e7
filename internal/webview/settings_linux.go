package webview

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var webkit struct {
	once   sync.Once
	err    error
	handle uintptr
}

func loadWebKit() (uintptr, error) {
	webkit.once.Do(func() {
		// libwebview links one of these; dlopen returns the already mapped copy.
		for _, name := range []string{
			"libwebkit2gtk-4.1.so.0",
			"libwebkit2gtk-4.0.so.37",
			"libwebkitgtk-6.0.so.4",
		} {
			h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
			if err == nil && h != 0 {
				webkit.handle = h
				return
			}
		}
		webkit.err = errors.New("WebKitGTK library not found")
	})
	return webkit.handle, webkit.err
}

func applySettings(browser unsafe.Pointer, s Settings) error {
	lib, err := loadWebKit()
	if err != nil {
		return err
	}
	getSettings, err := loadSymbol(lib, "webkit_web_view_get_settings")
	if err != nil {
		return err
	}
	settings, _, _ := purego.SyscallN(getSettings, uintptr(browser))
	if settings == 0 {
		return errors.New("webkit_web_view_get_settings returned nil")
	}
	if s.InsecureContent {
		// WebKitGTK always blocks active mixed content and has no switch for it.
		return errors.New("insecure content cannot be enabled on WebKitGTK")
	}

	setters := []struct {
		name  string
		value bool
	}{
		{"webkit_settings_set_enable_javascript", s.JavaScript},
		{"webkit_settings_set_javascript_can_open_windows_automatically", s.JavaScriptCanOpenWindows},
		{"webkit_settings_set_enable_html5_local_storage", s.LocalStorage},
		{"webkit_settings_set_media_playback_requires_user_gesture", !s.AutoplayWithoutGesture},
		{"webkit_settings_set_enable_fullscreen", s.FullScreen},
		// Removed in WebKitGTK 6.0.
		{"webkit_settings_set_enable_plugins", s.Plugins},
	}
	for _, set := range setters {
		fn, err := loadSymbol(lib, set.name)
		if err != nil {
			continue
		}
		purego.SyscallN(fn, settings, boolToInt(set.value))
	}
	return nil
}
