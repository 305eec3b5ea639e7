package webview

import (
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

const nsWindowCollectionBehaviorFullScreenPrimary = 1 << 7

// fullScreenState holds the last requested mode. toggleFullScreen: animates
// and the style mask only changes once the transition has finished, so a
// second request during the animation must not read it.
type fullScreenState struct {
	on bool
}

func setFullScreen(window unsafe.Pointer, st *fullScreenState, on bool) error {
	if st.on == on {
		return nil
	}
	win := objc.ID(uintptr(window))
	behavior := objc.Send[uint](win, objc.RegisterName("collectionBehavior"))
	win.Send(objc.RegisterName("setCollectionBehavior:"), behavior|nsWindowCollectionBehaviorFullScreenPrimary)
	win.Send(objc.RegisterName("toggleFullScreen:"), objc.ID(0))
	st.on = on
	return nil
}

func isFullScreen(_ unsafe.Pointer, st *fullScreenState) bool {
	return st.on
}
