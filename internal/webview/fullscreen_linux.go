package webview

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// fullScreenState tracks the last requested mode; GTK applies it
// asynchronously through the window manager.
type fullScreenState struct {
	on bool
}

var gtk struct {
	once         sync.Once
	err          error
	fullscreen   uintptr
	unfullscreen uintptr
	move         uintptr
}

func loadGTK() error {
	gtk.once.Do(func() {
		for _, name := range []string{"libgtk-3.so.0", "libgtk-4.so.1"} {
			h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
			if err != nil || h == 0 {
				continue
			}
			if gtk.fullscreen, err = loadSymbol(h, "gtk_window_fullscreen"); err != nil {
				gtk.err = err
				return
			}
			if gtk.unfullscreen, err = loadSymbol(h, "gtk_window_unfullscreen"); err != nil {
				gtk.err = err
				return
			}
			// GTK 4 dropped it; placement belongs to the compositor there.
			if ptr, err := loadSymbol(h, "gtk_window_move"); err == nil {
				gtk.move = ptr
			}
			return
		}
		gtk.err = errors.New("GTK library not found")
	})
	return gtk.err
}

func setFullScreen(window unsafe.Pointer, st *fullScreenState, on bool) error {
	if err := loadGTK(); err != nil {
		return err
	}
	fn := gtk.unfullscreen
	if on {
		fn = gtk.fullscreen
	}
	purego.SyscallN(fn, uintptr(window))
	st.on = on
	return nil
}

func isFullScreen(_ unsafe.Pointer, st *fullScreenState) bool {
	return st.on
}
