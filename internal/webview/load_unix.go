//go:build darwin || linux

package webview

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryPath looks for the native library in $WEBVIEW_PATH, next to the
// executable, and (macOS) in the bundle Frameworks directory. The bare name
// is returned as a fallback so the dynamic loader can search its own paths.
func libraryPath() string {
	var name string
	var dirs []string

	execPath, _ := os.Executable()
	dir := filepath.Dir(execPath)

	switch runtime.GOOS {
	case "linux":
		name = "libwebview.so"
		dirs = []string{os.Getenv("WEBVIEW_PATH"), dir}
	case "darwin":
		name = "libwebview.dylib"
		dirs = []string{os.Getenv("WEBVIEW_PATH"), dir, filepath.Join(dir, "..", "Frameworks")}
	}

	for _, d := range dirs {
		if d == "" {
			continue
		}
		candidate := filepath.Join(d, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}

func loadLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	ptr, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, fmt.Errorf("webview: failed to load symbol %s: %w", name, err)
	}
	return ptr, nil
}
