//go:build integration

package webview

import (
	"runtime"
	"testing"
	"time"
)

func TestWebviewBindAndFullScreen(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	loaded := make(chan string, 1)

	w, err := Open(Options{Title: "Hello", Width: 800, Height: 600, Debug: true})
	if err != nil {
		t.Fatal(err)
	}

	err = w.Bind("loaded", func(title string) {
		w.Dispatch(func() {
			if err := w.SetFullScreen(true); err != nil {
				t.Errorf("SetFullScreen(true): %v", err)
			}
			if err := w.SetFullScreen(false); err != nil {
				t.Errorf("SetFullScreen(false): %v", err)
			}
			loaded <- title
			w.Terminate()
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	w.Init(`window.addEventListener("load", () => loaded(document.title));`)
	w.Navigate("data:text/html,%3Ctitle%3EReady%3C%2Ftitle%3E")
	w.Run()
	w.Destroy()

	select {
	case title := <-loaded:
		if title != "Ready" {
			t.Fatalf("title = %q, want Ready", title)
		}
	case <-time.After(time.Minute):
		t.Fatal("timeout")
	}
}
