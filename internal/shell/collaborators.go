package shell

import "github.com/orangetv/viewer/internal/config"

// Browser is the embedded browser view. Navigation calls are fire-and-forget;
// with no history entry they do nothing.
type Browser interface {
	Back()
	Forward()
	Reload()
	Stop()
	SetURL(url string)

	ZoomFactor() float64
	// SetZoomFactor ignores factors the engine does not support.
	SetZoomFactor(factor float64)

	// ExitFullScreen asks the page to leave any in-page fullscreen element.
	ExitFullScreen()

	// ApplySettings pushes engine attributes into the view.
	ApplySettings(settings config.Engine) error

	OnTitleChanged(fn func(title string))
	OnFullScreenRequested(fn func(req FullScreenRequest))
}

// FullScreenRequest is raised by page content asking the host window to
// enter or leave fullscreen presentation.
type FullScreenRequest interface {
	ToggleOn() bool
	Accept()
	Reject()
}

// Frame is the native top-level window.
type Frame interface {
	SetTitle(title string)
	SetGeometry(x, y, width, height int)
	ShowFullScreen()
	ShowNormal()
	IsFullScreen() bool
	Show()
	Close()
}

// Chrome renders the menu bar and toolbar around the browser view.
type Chrome interface {
	Build(layout Layout) error
	SetMenuBarVisible(visible bool)
	// ToolBar returns nil when no toolbar was built.
	ToolBar() ToolBar
	// SetCommandText refreshes every surface showing cmd after its text changed.
	SetCommandText(cmd *Command)

	OnCommand(fn func(id CommandID))
	OnKey(fn func(key Shortcut))
}

// ToolBar is the row of command buttons above the browser view.
type ToolBar interface {
	SetVisible(visible bool)
}
