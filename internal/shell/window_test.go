package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/config"
)

func TestNewWindowInitializes(t *testing.T) {
	h := newHarness(t, "linux")

	assert.Equal(t, config.InitialTitle, h.frame.title)
	assert.Equal(t, [4]int{100, 100, 1400, 900}, h.frame.geometry)
	assert.Equal(t, config.HomeURL, h.browser.url)
	require.NotNil(t, h.browser.settings)
	assert.Equal(t, config.Default().Engine, *h.browser.settings)
	assert.True(t, h.frame.shown)
	assert.NotNil(t, h.browser.onTitle)
	assert.NotNil(t, h.browser.onFullScreen)
	assert.NotNil(t, h.chrome.onCommand)
	assert.NotNil(t, h.chrome.onKey)
	assert.True(t, h.chrome.menuBar)
	assert.True(t, h.chrome.toolBarVisible())
}

func TestNewWindowRejectsInvalidEngineSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.InsecureContent = true
	app := &App{Name: config.AppName, GOOS: "linux", Logger: zap.NewNop()}

	_, err := NewWindow(app, cfg, &fakeFrame{}, newFakeBrowser(), newFakeChrome())
	assert.ErrorIs(t, err, config.ErrInsecureContent)
}

func TestNewWindowToleratesSettingsFailure(t *testing.T) {
	app := &App{Name: config.AppName, GOOS: "linux", Logger: zap.NewNop()}
	browser := newFakeBrowser()
	browser.settingsErr = errors.New("no native handle")

	_, err := NewWindow(app, config.Default(), &fakeFrame{}, browser, newFakeChrome())
	assert.NoError(t, err)
}

func TestNewWindowChromeBuildError(t *testing.T) {
	app := &App{Name: config.AppName, GOOS: "linux", Logger: zap.NewNop()}
	chrome := newFakeChrome()
	chrome.buildErr = errors.New("template")

	_, err := NewWindow(app, config.Default(), &fakeFrame{}, newFakeBrowser(), chrome)
	assert.Error(t, err)
}

func TestLayoutSharesCommands(t *testing.T) {
	h := newHarness(t, "linux")
	l := h.chrome.layout

	require.Len(t, l.ToolBar, 7)
	assert.True(t, l.ToolBar[5].Separator())
	require.Len(t, l.Menus, 3)
	assert.Equal(t, []string{"&File", "&View", "&Navigation"}, []string{l.Menus[0].Title, l.Menus[1].Title, l.Menus[2].Title})

	// The toolbar back button and the Navigation menu entry are one command.
	assert.Same(t, l.ToolBar[0].Command, l.Menus[2].Items[0].Command)
	// So are the toolbar and View menu fullscreen entries.
	assert.Same(t, l.ToolBar[6].Command, l.Menus[1].Items[0].Command)
	assert.Contains(t, l.Bindings, Shortcut("Ctrl+H"))
	assert.Contains(t, l.Bindings, Shortcut("F11"))
}

func TestNavigationWithoutHistory(t *testing.T) {
	h := newHarness(t, "linux")

	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			h.win.Back()
			h.win.Forward()
			h.win.Reload()
			h.win.Stop()
		}
	})
	assert.Len(t, h.browser.calls, 12)
	assert.Equal(t, []string{"back", "forward", "reload", "stop"}, h.browser.calls[:4])
}

func TestHomeAlwaysLoadsHomeURL(t *testing.T) {
	h := newHarness(t, "linux")

	h.browser.SetURL("https://tv.orange.fr/replay")
	h.win.Home()
	assert.Equal(t, config.HomeURL, h.browser.url)

	h.win.Home()
	assert.Equal(t, config.HomeURL, h.browser.url)
}

func TestUpdateTitle(t *testing.T) {
	h := newHarness(t, "linux")

	h.browser.onTitle("Live: Channel 1")
	assert.Equal(t, "Live: Channel 1 - Orange TV Viewer", h.frame.title)

	n := len(h.frame.titles)
	h.browser.onTitle("Live: Channel 1")
	assert.Equal(t, "Live: Channel 1 - Orange TV Viewer", h.frame.title)
	assert.Len(t, h.frame.titles, n, "same title is not reapplied")

	h.browser.onTitle("Replay")
	assert.Equal(t, "Replay - Orange TV Viewer", h.frame.title)
}

func TestToggleFullScreenTwice(t *testing.T) {
	h := newHarness(t, "linux")
	cmd := h.win.Commands().Lookup(CmdFullScreen)

	h.win.ToggleFullScreen()
	assert.True(t, h.frame.fullScreen)
	assert.Equal(t, LabelExitFullScreen, cmd.Text)
	assert.Equal(t, LabelExitFullScreen, h.chrome.texts[CmdFullScreen])
	assert.True(t, h.chrome.menuBar, "user fullscreen keeps the menu bar")
	assert.True(t, h.chrome.toolBarVisible(), "user fullscreen keeps the toolbar")

	h.win.ToggleFullScreen()
	assert.False(t, h.frame.fullScreen)
	assert.Equal(t, LabelFullScreen, cmd.Text)
	assert.Equal(t, LabelFullScreen, h.chrome.texts[CmdFullScreen])
}

func TestUserToggleLeavesPageFullScreen(t *testing.T) {
	h := newHarness(t, "linux")

	h.browser.onFullScreen(&fakeRequest{on: true})
	require.True(t, h.frame.fullScreen)
	require.False(t, h.chrome.menuBar)

	h.chrome.onKey("F11")
	assert.False(t, h.frame.fullScreen)
	assert.True(t, h.chrome.menuBar)
	assert.True(t, h.chrome.toolBarVisible())
	assert.Equal(t, 1, h.browser.exitCalls)
	assert.Equal(t, LabelFullScreen, h.chrome.texts[CmdFullScreen])

	h.chrome.onKey("Escape")
	assert.Equal(t, []string{"stop"}, h.browser.calls)
	assert.True(t, h.chrome.menuBar)
}

func TestPageFullScreenRequest(t *testing.T) {
	h := newHarness(t, "linux")

	enter := &fakeRequest{on: true}
	h.browser.onFullScreen(enter)
	assert.True(t, enter.accepted)
	assert.True(t, h.frame.fullScreen)
	assert.False(t, h.chrome.menuBar)
	assert.False(t, h.chrome.toolBarVisible())

	exit := &fakeRequest{on: false}
	h.browser.onFullScreen(exit)
	assert.True(t, exit.accepted)
	assert.False(t, exit.rejected)
	assert.False(t, h.frame.fullScreen)
	assert.True(t, h.chrome.menuBar)
	assert.True(t, h.chrome.toolBarVisible())
}

func TestPageExitAfterUserFullScreenForcesNormal(t *testing.T) {
	h := newHarness(t, "linux")

	h.win.ToggleFullScreen()
	h.browser.onFullScreen(&fakeRequest{on: true})
	h.browser.onFullScreen(&fakeRequest{on: false})

	assert.False(t, h.frame.fullScreen)
	assert.Equal(t, LabelFullScreen, h.chrome.texts[CmdFullScreen])
}

func TestPageFullScreenWithoutToolBar(t *testing.T) {
	chrome := newFakeChrome()
	chrome.noToolBar = true
	h := newHarnessWith(t, "linux", chrome)

	assert.NotPanics(t, func() {
		h.browser.onFullScreen(&fakeRequest{on: true})
		h.win.HandleEscape()
	})
	assert.False(t, h.frame.fullScreen)
	assert.True(t, h.chrome.menuBar)
}

func TestHandleFullScreenRequestNil(t *testing.T) {
	h := newHarness(t, "linux")
	assert.NotPanics(t, func() { h.win.HandleFullScreenRequest(nil) })
	assert.False(t, h.frame.fullScreen)
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		enter func(h *harness)
	}{
		{"user initiated", func(h *harness) { h.win.ToggleFullScreen() }},
		{"page initiated", func(h *harness) { h.browser.onFullScreen(&fakeRequest{on: true}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "linux")
			tt.enter(h)
			require.True(t, h.frame.fullScreen)

			h.chrome.onKey(keyEscape)

			assert.False(t, h.frame.fullScreen)
			assert.True(t, h.chrome.menuBar)
			assert.True(t, h.chrome.toolBarVisible())
			assert.Equal(t, 1, h.browser.exitCalls)
			assert.NotContains(t, h.browser.calls, "stop")
			assert.Equal(t, LabelFullScreen, h.chrome.texts[CmdFullScreen])
		})
	}
}

func TestEscapeOutsideFullScreenStops(t *testing.T) {
	h := newHarness(t, "linux")

	h.win.HandleEscape()
	assert.Equal(t, []string{"stop"}, h.browser.calls)
	assert.Zero(t, h.browser.exitCalls)
}

func TestZoom(t *testing.T) {
	h := newHarness(t, "linux")

	h.win.ZoomIn()
	assert.InDelta(t, 1.1, h.browser.zoom, 1e-9)
	h.win.ZoomIn()
	assert.InDelta(t, 1.2, h.browser.zoom, 1e-9)
	h.win.ZoomOut()
	assert.InDelta(t, 1.1, h.browser.zoom, 1e-9)

	h.win.ResetZoom()
	assert.Equal(t, 1.0, h.browser.zoom)
}

func TestQuitClosesFrame(t *testing.T) {
	h := newHarness(t, "linux")
	h.chrome.onCommand(CmdQuit)
	assert.True(t, h.frame.closed)
}

func TestChromeCommandsReachBrowser(t *testing.T) {
	h := newHarness(t, "linux")

	h.chrome.onCommand(CmdBack)
	h.chrome.onCommand(CmdReload)
	h.chrome.onCommand("does-not-exist")
	assert.Equal(t, []string{"back", "reload"}, h.browser.calls)
}

func TestKeyBindings(t *testing.T) {
	h := newHarness(t, "linux")

	h.browser.SetURL("https://example.org")
	h.chrome.onKey("Ctrl+H")
	assert.Equal(t, config.HomeURL, h.browser.url)

	h.chrome.onKey("F11")
	assert.True(t, h.frame.fullScreen)
	h.chrome.onKey("F11")
	assert.False(t, h.frame.fullScreen)

	h.chrome.onKey("Ctrl++")
	assert.InDelta(t, 1.1, h.browser.zoom, 1e-9)
	h.chrome.onKey("Ctrl+0")
	assert.Equal(t, 1.0, h.browser.zoom)

	h.chrome.onKey("Alt+Left")
	h.chrome.onKey("F5")
	h.chrome.onKey("Ctrl+J")
	assert.Equal(t, []string{"back", "reload"}, h.browser.calls)
}

func TestKeyBindingsDarwin(t *testing.T) {
	h := newHarness(t, "darwin")

	h.chrome.onKey("Meta+[")
	h.chrome.onKey("Meta+R")
	assert.Equal(t, []string{"back", "reload"}, h.browser.calls)

	h.chrome.onKey("Ctrl+Meta+F")
	assert.True(t, h.frame.fullScreen)

	h.chrome.onKey("Meta+Q")
	assert.True(t, h.frame.closed)
}
