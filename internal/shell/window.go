package shell

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/config"
)

// Fullscreen command labels.
const (
	LabelFullScreen     = "⛶ Fullscreen"
	LabelExitFullScreen = "⛶ Exit Fullscreen"
)

// ZoomStep is the zoom factor change per zoom in/out activation.
const ZoomStep = 0.1

// Window is the single viewer window. All methods must be called on the UI
// event loop.
type Window struct {
	app     *App
	home    string
	frame   Frame
	browser Browser
	chrome  Chrome

	commands *Commands
	keys     map[Shortcut]CommandID
	events   *dispatcher
	log      *zap.Logger

	title string
}

// NewWindow builds and shows the viewer window: title and geometry, engine
// settings, toolbar and menus, the home page and the browser signal handlers.
func NewWindow(app *App, cfg *config.Config, frame Frame, browser Browser, chrome Chrome) (*Window, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("shell: engine settings: %w", err)
	}

	log := app.Logger.Named("shell")
	w := &Window{
		app:     app,
		home:    cfg.HomeURL,
		frame:   frame,
		browser: browser,
		chrome:  chrome,
		events:  newDispatcher(log),
		log:     log,
	}

	frame.SetTitle(cfg.Title)
	g := cfg.Geometry
	frame.SetGeometry(g.X, g.Y, g.Width, g.Height)

	if err := browser.ApplySettings(cfg.Engine); err != nil {
		log.Warn("Engine settings not applied", zap.Error(err))
	}

	w.commands = w.buildCommands()
	w.keys = keymap(w.commands)
	if err := chrome.Build(w.layout()); err != nil {
		return nil, fmt.Errorf("shell: build chrome: %w", err)
	}

	w.events.handle(EventCommand, func(ev Event) { w.Trigger(ev.Command) })
	w.events.handle(EventKey, func(ev Event) { w.HandleKey(ev.Key) })
	w.events.handle(EventTitleChanged, func(ev Event) { w.UpdateTitle(ev.Title) })
	w.events.handle(EventFullScreenRequested, func(ev Event) { w.HandleFullScreenRequest(ev.Request) })

	browser.SetURL(w.home)

	browser.OnTitleChanged(func(title string) {
		w.Post(Event{Kind: EventTitleChanged, Title: title})
	})
	browser.OnFullScreenRequested(func(req FullScreenRequest) {
		w.Post(Event{Kind: EventFullScreenRequested, Request: req})
	})
	chrome.OnCommand(func(id CommandID) {
		w.Post(Event{Kind: EventCommand, Command: id})
	})
	chrome.OnKey(func(key Shortcut) {
		w.Post(Event{Kind: EventKey, Key: key})
	})

	frame.Show()
	log.Info("Window shown", zap.String("url", w.home), zap.String("os", app.GOOS))
	return w, nil
}

func (w *Window) buildCommands() *Commands {
	keys := standardShortcuts(w.app.GOOS)
	cmd := func(id CommandID, text, menuText, tip string, run func()) *Command {
		return &Command{ID: id, Text: text, MenuText: menuText, StatusTip: tip, Shortcuts: keys[id], run: run}
	}
	return newCommands(
		cmd(CmdBack, "← Back", "&Back", "Go back", w.Back),
		cmd(CmdForward, "→ Forward", "&Forward", "Go forward", w.Forward),
		cmd(CmdReload, "⟳ Reload", "&Reload", "Reload page", w.Reload),
		cmd(CmdHome, "⌂ Home", "&Home", "Go to home page", w.Home),
		cmd(CmdStop, "✕ Stop", "", "Stop loading", w.Stop),
		cmd(CmdFullScreen, LabelFullScreen, "", "Toggle fullscreen", w.ToggleFullScreen),
		cmd(CmdQuit, "Quit", "&Quit", "Quit the application", w.Quit),
		cmd(CmdZoomIn, "Zoom In", "Zoom &In", "Enlarge the page", w.ZoomIn),
		cmd(CmdZoomOut, "Zoom Out", "Zoom &Out", "Shrink the page", w.ZoomOut),
		cmd(CmdResetZoom, "Reset Zoom", "&Reset Zoom", "Restore the default page size", w.ResetZoom),
	)
}

func (w *Window) layout() Layout {
	item := func(id CommandID) Item { return Item{Command: w.commands.Lookup(id)} }

	bindings := make([]Shortcut, 0, len(w.keys))
	for _, c := range w.commands.All() {
		bindings = append(bindings, c.Shortcuts...)
	}

	return Layout{
		ToolBar: []Item{
			item(CmdBack), item(CmdForward), item(CmdReload), item(CmdHome), item(CmdStop),
			separator,
			item(CmdFullScreen),
		},
		Menus: []Menu{
			{Title: "&File", Items: []Item{item(CmdQuit)}},
			{Title: "&View", Items: []Item{item(CmdFullScreen), item(CmdZoomIn), item(CmdZoomOut), item(CmdResetZoom)}},
			{Title: "&Navigation", Items: []Item{item(CmdBack), item(CmdForward), item(CmdReload), separator, item(CmdHome)}},
		},
		Bindings: bindings,
	}
}

// Commands returns the command table.
func (w *Window) Commands() *Commands { return w.commands }

// Post delivers an event to its handler.
func (w *Window) Post(ev Event) {
	w.events.dispatch(ev)
}

// Trigger runs the command with the given id. Unknown ids are ignored.
func (w *Window) Trigger(id CommandID) {
	c := w.commands.Lookup(id)
	if c == nil {
		w.log.Warn("Unknown command", zap.String("command", string(id)))
		return
	}
	w.log.Debug("Command", zap.String("command", string(id)))
	c.Trigger()
}

// HandleKey runs the command bound to key. Escape always goes through
// HandleEscape so it can leave fullscreen before it stops loading.
func (w *Window) HandleKey(key Shortcut) {
	if key == keyEscape {
		w.HandleEscape()
		return
	}
	if id, ok := w.keys[key]; ok {
		w.Trigger(id)
	}
}

// Back goes one step back in the browser history.
func (w *Window) Back() { w.browser.Back() }

// Forward goes one step forward in the browser history.
func (w *Window) Forward() { w.browser.Forward() }

// Reload reloads the current page.
func (w *Window) Reload() { w.browser.Reload() }

// Stop stops loading the current page.
func (w *Window) Stop() { w.browser.Stop() }

// Home loads the home address regardless of where the view is.
func (w *Window) Home() {
	w.browser.SetURL(w.home)
}

// Quit ends the event loop.
func (w *Window) Quit() {
	w.log.Info("Quit requested")
	w.frame.Close()
}

// UpdateTitle shows the page title followed by the application name.
func (w *Window) UpdateTitle(title string) {
	full := title + " - " + w.app.Name
	if full == w.title {
		return
	}
	w.title = full
	w.frame.SetTitle(full)
}

// ToggleFullScreen switches between normal and fullscreen presentation on
// user request. The menu bar and toolbar stay visible. Leaving also drops a
// page fullscreen element, so the chrome it hid comes back.
func (w *Window) ToggleFullScreen() {
	if w.frame.IsFullScreen() {
		w.browser.ExitFullScreen()
		w.setChromeVisible(true)
		w.showNormal()
		return
	}
	w.frame.ShowFullScreen()
	w.setCommandText(CmdFullScreen, LabelExitFullScreen)
}

// HandleFullScreenRequest follows a fullscreen request from page content.
// Requests are always accepted. Entering hides the menu bar and toolbar;
// leaving restores them and always returns to normal presentation, even if
// the user had entered fullscreen before the video did.
func (w *Window) HandleFullScreenRequest(req FullScreenRequest) {
	if req == nil {
		return
	}
	req.Accept()
	on := req.ToggleOn()
	w.log.Debug("Page fullscreen request", zap.Bool("on", on))
	if on {
		w.setChromeVisible(false)
		w.frame.ShowFullScreen()
		return
	}
	w.setChromeVisible(true)
	w.showNormal()
}

// HandleEscape leaves fullscreen, whoever started it, and makes the menu bar
// and toolbar visible again. The page is told to drop its fullscreen element
// too, in case it swallows Escape itself. Outside fullscreen Escape stops
// loading.
func (w *Window) HandleEscape() {
	if !w.frame.IsFullScreen() {
		w.Stop()
		return
	}
	w.browser.ExitFullScreen()
	w.setChromeVisible(true)
	w.showNormal()
}

// ZoomIn enlarges the page by ZoomStep.
func (w *Window) ZoomIn() {
	w.browser.SetZoomFactor(w.browser.ZoomFactor() + ZoomStep)
}

// ZoomOut shrinks the page by ZoomStep.
func (w *Window) ZoomOut() {
	w.browser.SetZoomFactor(w.browser.ZoomFactor() - ZoomStep)
}

// ResetZoom restores a zoom factor of exactly 1.
func (w *Window) ResetZoom() {
	w.browser.SetZoomFactor(1.0)
}

// showNormal leaves fullscreen and puts the fullscreen command label back,
// whichever path entered fullscreen.
func (w *Window) showNormal() {
	w.frame.ShowNormal()
	w.setCommandText(CmdFullScreen, LabelFullScreen)
}

func (w *Window) setCommandText(id CommandID, text string) {
	c := w.commands.Lookup(id)
	c.Text = text
	w.chrome.SetCommandText(c)
}

func (w *Window) setChromeVisible(visible bool) {
	w.chrome.SetMenuBarVisible(visible)
	tb := w.chrome.ToolBar()
	if tb == nil {
		w.log.Debug("No toolbar to update", zap.Bool("visible", visible))
		return
	}
	tb.SetVisible(visible)
}
