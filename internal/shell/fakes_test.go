package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/config"
)

type fakeBrowser struct {
	calls       []string
	url         string
	zoom        float64
	settings    *config.Engine
	settingsErr error
	exitCalls   int

	onTitle      func(string)
	onFullScreen func(FullScreenRequest)
}

func newFakeBrowser() *fakeBrowser { return &fakeBrowser{zoom: 1.0} }

func (b *fakeBrowser) Back()             { b.calls = append(b.calls, "back") }
func (b *fakeBrowser) Forward()          { b.calls = append(b.calls, "forward") }
func (b *fakeBrowser) Reload()           { b.calls = append(b.calls, "reload") }
func (b *fakeBrowser) Stop()             { b.calls = append(b.calls, "stop") }
func (b *fakeBrowser) SetURL(url string) { b.url = url }
func (b *fakeBrowser) ZoomFactor() float64 {
	return b.zoom
}
func (b *fakeBrowser) SetZoomFactor(f float64) { b.zoom = f }
func (b *fakeBrowser) ExitFullScreen()         { b.exitCalls++ }

func (b *fakeBrowser) ApplySettings(s config.Engine) error {
	b.settings = &s
	return b.settingsErr
}

func (b *fakeBrowser) OnTitleChanged(fn func(string))                   { b.onTitle = fn }
func (b *fakeBrowser) OnFullScreenRequested(fn func(FullScreenRequest)) { b.onFullScreen = fn }

type fakeFrame struct {
	title      string
	titles     []string
	geometry   [4]int
	fullScreen bool
	shown      bool
	closed     bool
}

func (f *fakeFrame) SetTitle(t string) {
	f.title = t
	f.titles = append(f.titles, t)
}
func (f *fakeFrame) SetGeometry(x, y, w, h int) { f.geometry = [4]int{x, y, w, h} }
func (f *fakeFrame) ShowFullScreen()            { f.fullScreen = true }
func (f *fakeFrame) ShowNormal()                { f.fullScreen = false }
func (f *fakeFrame) IsFullScreen() bool         { return f.fullScreen }
func (f *fakeFrame) Show()                      { f.shown = true }
func (f *fakeFrame) Close()                     { f.closed = true }

type fakeToolBar struct{ visible bool }

func (t *fakeToolBar) SetVisible(v bool) { t.visible = v }

type fakeChrome struct {
	layout    Layout
	buildErr  error
	menuBar   bool
	toolBar   *fakeToolBar
	texts     map[CommandID]string
	onCommand func(CommandID)
	onKey     func(Shortcut)
	noToolBar bool
}

func newFakeChrome() *fakeChrome {
	return &fakeChrome{texts: make(map[CommandID]string)}
}

func (c *fakeChrome) Build(l Layout) error {
	if c.buildErr != nil {
		return c.buildErr
	}
	c.layout = l
	c.menuBar = true
	if !c.noToolBar {
		c.toolBar = &fakeToolBar{visible: true}
	}
	for _, cmd := range collect(l) {
		c.texts[cmd.ID] = cmd.Text
	}
	return nil
}

func (c *fakeChrome) SetMenuBarVisible(v bool) { c.menuBar = v }

func (c *fakeChrome) ToolBar() ToolBar {
	if c.toolBar == nil {
		return nil
	}
	return c.toolBar
}

func (c *fakeChrome) SetCommandText(cmd *Command)  { c.texts[cmd.ID] = cmd.Text }
func (c *fakeChrome) OnCommand(fn func(CommandID)) { c.onCommand = fn }
func (c *fakeChrome) OnKey(fn func(Shortcut))      { c.onKey = fn }

func (c *fakeChrome) toolBarVisible() bool { return c.toolBar != nil && c.toolBar.visible }

func collect(l Layout) []*Command {
	var out []*Command
	for _, it := range l.ToolBar {
		if !it.Separator() {
			out = append(out, it.Command)
		}
	}
	for _, m := range l.Menus {
		for _, it := range m.Items {
			if !it.Separator() {
				out = append(out, it.Command)
			}
		}
	}
	return out
}

type fakeRequest struct {
	on       bool
	accepted bool
	rejected bool
}

func (r *fakeRequest) ToggleOn() bool { return r.on }
func (r *fakeRequest) Accept()        { r.accepted = true }
func (r *fakeRequest) Reject()        { r.rejected = true }

type harness struct {
	win     *Window
	browser *fakeBrowser
	frame   *fakeFrame
	chrome  *fakeChrome
}

func newHarness(t *testing.T, goos string) *harness {
	t.Helper()
	return newHarnessWith(t, goos, newFakeChrome())
}

func newHarnessWith(t *testing.T, goos string, chrome *fakeChrome) *harness {
	t.Helper()
	app := &App{Name: config.AppName, Session: "test", GOOS: goos, Logger: zap.NewNop()}
	h := &harness{browser: newFakeBrowser(), frame: &fakeFrame{}, chrome: chrome}
	win, err := NewWindow(app, config.Default(), h.frame, h.browser, h.chrome)
	require.NoError(t, err)
	h.win = win
	return h
}
