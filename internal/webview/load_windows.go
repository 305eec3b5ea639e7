package webview

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func libraryPath() string {
	const name = "webview.dll"
	if dir := os.Getenv("WEBVIEW_PATH"); dir != "" {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return filepath.Join(dir, name)
		}
	}
	return name
}

func loadLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	return uintptr(handle), err
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	ptr, err := windows.GetProcAddress(windows.Handle(lib), name)
	if err != nil {
		return 0, fmt.Errorf("webview: failed to load symbol %s: %w", name, err)
	}
	return ptr, nil
}
