package webview

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego"
)

func setPosition(window unsafe.Pointer, x, y int) error {
	if err := loadGTK(); err != nil {
		return err
	}
	if gtk.move == 0 {
		return errors.New("gtk_window_move not available")
	}
	purego.SyscallN(gtk.move, uintptr(window), uintptr(x), uintptr(y))
	return nil
}
