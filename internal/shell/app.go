// Package shell implements the viewer window: a fixed set of navigation
// commands forwarded to an embedded browser view, the menu bar and toolbar
// exposing them, and the fullscreen handling for in-page video.
//
// Everything here runs on the UI event loop. Collaborators deliver their
// signals on that loop, so the window holds no locks.
package shell

import (
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App is the process-wide application context, built once in main and
// handed to the window.
type App struct {
	// Name is appended to page titles.
	Name string

	// Session identifies this run in log output.
	Session string

	// GOOS selects the platform key bindings.
	GOOS string

	Logger *zap.Logger
}

// NewApp creates the application context for the current platform.
func NewApp(name string, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.NewString()
	return &App{
		Name:    name,
		Session: session,
		GOOS:    runtime.GOOS,
		Logger:  logger.With(zap.String("session", session)),
	}
}
