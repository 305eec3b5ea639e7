package webview

import "unsafe"

// WebView2 settings live behind COM interfaces the native library does not
// expose. Its defaults already allow script, web storage, autoplay and the
// fullscreen API.
func applySettings(_ unsafe.Pointer, _ Settings) error {
	return ErrSettingsUnsupported
}
