package webview

import "unsafe"

func setPosition(window unsafe.Pointer, x, y int) error {
	r, _, err := procSetWindowPos.Call(uintptr(window), 0, uintptr(x), uintptr(y), 0, 0,
		swpNoSize|swpNoZOrder|swpNoOwnerZOrder)
	if r == 0 {
		return err
	}
	return nil
}
