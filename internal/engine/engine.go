// Package engine adapts the native webview to the shell's collaborators.
//
// The webview library has no menus, toolbars, navigation history API or
// page signals of its own. The engine fills the gap with a script injected
// into every page: it draws the menu bar and toolbar, forwards key presses,
// reports title and fullscreen changes, and applies the zoom factor. The
// script talks to Go through functions bound under the "shell" prefix.
//
// Bound functions run on background goroutines. Every call is re-posted to
// the UI loop with Dispatch, so all state below is owned by that loop.
package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/shell"
	"github.com/orangetv/viewer/internal/webview"
)

// bridgePrefix names the JS functions bound into every page: shell_invoke,
// shell_key, shell_title, shell_full_screen and shell_state.
const bridgePrefix = "shell"

// stateTimeout bounds how long a page waits for the UI loop to answer
// shell_state.
const stateTimeout = 2 * time.Second

// Engine owns one webview window and the state mirrored into its pages.
type Engine struct {
	wv  webview.WebView
	log *zap.Logger

	browser *Browser
	frame   *Frame
	chrome  *Chrome

	menuBar bool
	toolBar bool
	zoom    float64
	labels  map[string]label
}

type label struct {
	Text string `json:"text"`
	Menu string `json:"menu"`
}

// pageState is what the injected script renders.
type pageState struct {
	MenuBar bool             `json:"menuBar"`
	ToolBar bool             `json:"toolBar"`
	Zoom    float64          `json:"zoom"`
	Labels  map[string]label `json:"labels"`
}

// New wires an engine to wv and binds the page bridge. It must run before
// the first navigation.
func New(wv webview.WebView, log *zap.Logger) (*Engine, error) {
	e := &Engine{
		wv:      wv,
		log:     log.Named("engine"),
		menuBar: true,
		toolBar: true,
		zoom:    1.0,
		labels:  make(map[string]label),
	}
	e.browser = &Browser{e: e}
	e.frame = &Frame{e: e}
	e.chrome = &Chrome{e: e}

	names, err := webview.BindMethods(wv, bridgePrefix, &bridge{e: e})
	if err != nil {
		return nil, fmt.Errorf("engine: bind bridge: %w", err)
	}
	e.log.Debug("Bridge bound", zap.Strings("functions", names))
	return e, nil
}

// Browser returns the browser view adapter.
func (e *Engine) Browser() *Browser { return e.browser }

// Frame returns the native window adapter.
func (e *Engine) Frame() *Frame { return e.frame }

// Chrome returns the menu bar and toolbar adapter.
func (e *Engine) Chrome() *Chrome { return e.chrome }

func (e *Engine) snapshot() pageState {
	labels := make(map[string]label, len(e.labels))
	for id, l := range e.labels {
		labels[id] = l
	}
	return pageState{MenuBar: e.menuBar, ToolBar: e.toolBar, Zoom: e.zoom, Labels: labels}
}

// push mirrors the current state into the loaded page.
func (e *Engine) push() {
	data, err := json.Marshal(e.snapshot())
	if err != nil {
		e.log.Error("Encode page state", zap.Error(err))
		return
	}
	e.wv.Eval("window.__orangetv && window.__orangetv.apply(" + string(data) + ");")
}

// bridge is bound into pages. Only its exported methods become JS functions.
type bridge struct {
	e *Engine
}

func (b *bridge) Invoke(id string) {
	b.e.wv.Dispatch(func() {
		if fn := b.e.chrome.onCommand; fn != nil {
			fn(shell.CommandID(id))
		}
	})
}

func (b *bridge) Key(combo string) {
	key := shell.ParseShortcut(combo)
	if key == "" {
		return
	}
	b.e.wv.Dispatch(func() {
		if fn := b.e.chrome.onKey; fn != nil {
			fn(key)
		}
	})
}

func (b *bridge) Title(title string) {
	b.e.wv.Dispatch(func() {
		if fn := b.e.browser.onTitle; fn != nil {
			fn(title)
		}
	})
}

func (b *bridge) FullScreen(on bool) {
	b.e.wv.Dispatch(func() {
		if fn := b.e.browser.onFullScreen; fn != nil {
			fn(&fullScreenRequest{on: on, browser: b.e.browser})
		}
	})
}

func (b *bridge) State() (pageState, error) {
	ch := make(chan pageState, 1)
	b.e.wv.Dispatch(func() { ch <- b.e.snapshot() })
	select {
	case s := <-ch:
		return s, nil
	case <-time.After(stateTimeout):
		return pageState{}, fmt.Errorf("engine: UI loop did not answer within %s", stateTimeout)
	}
}
