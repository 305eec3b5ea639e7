// Package config holds the viewer's fixed configuration.
//
// The home address, window title, geometry and engine settings are
// constants. Only diagnostic knobs (logging, developer tools) are read from
// the environment, under the ORANGETV_ prefix; none of them change what the
// shell does.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	// AppName is appended to every page title.
	AppName = "Orange TV Viewer"

	// HomeURL is the page loaded at startup and by the Home action.
	HomeURL = "https://tv.orange.fr/en-direct/programmes-en-cours"

	// InitialTitle is shown until the first page reports its title.
	InitialTitle = "Orange TV - Programmes en Direct"

	envPrefix = "orangetv"
)

// Settings validation errors.
var (
	ErrScriptingDisabled    = errors.New("config: scripting must be enabled")
	ErrLocalStorageDisabled = errors.New("config: local storage must be enabled")
	ErrInsecureContent      = errors.New("config: insecure content must be disabled")
	ErrFullScreenDisabled   = errors.New("config: fullscreen API must be enabled")
)

// Config holds all application configuration.
type Config struct {
	AppName     string
	HomeURL     string
	Title       string
	Geometry    Geometry
	Engine      Engine
	Diagnostics Diagnostics
}

// Geometry is the initial window placement.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Engine holds the web engine attributes needed for live video playback.
type Engine struct {
	JavaScript               bool
	JavaScriptCanOpenWindows bool
	LocalStorage             bool
	Plugins                  bool
	InsecureContent          bool
	AutoplayWithoutGesture   bool
	FullScreenAPI            bool
}

// Validate reports every engine attribute that is set against its required value.
func (e Engine) Validate() error {
	var errs []error
	if !e.JavaScript {
		errs = append(errs, ErrScriptingDisabled)
	}
	if !e.LocalStorage {
		errs = append(errs, ErrLocalStorageDisabled)
	}
	if e.InsecureContent {
		errs = append(errs, ErrInsecureContent)
	}
	if !e.FullScreenAPI {
		errs = append(errs, ErrFullScreenDisabled)
	}
	return errors.Join(errs...)
}

// Diagnostics holds environment-driven diagnostic settings.
type Diagnostics struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
	DevTools bool   `envconfig:"DEVTOOLS" default:"false"`
}

// Default returns the fixed configuration with default diagnostics.
func Default() *Config {
	return &Config{
		AppName: AppName,
		HomeURL: HomeURL,
		Title:   InitialTitle,
		Geometry: Geometry{
			X:      100,
			Y:      100,
			Width:  1400,
			Height: 900,
		},
		Engine: Engine{
			JavaScript:               true,
			JavaScriptCanOpenWindows: true,
			LocalStorage:             true,
			Plugins:                  true,
			InsecureContent:          false,
			AutoplayWithoutGesture:   true,
			FullScreenAPI:            true,
		},
		Diagnostics: Diagnostics{
			LogLevel: "info",
		},
	}
}

// Load returns the fixed configuration with diagnostics read from the environment.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process(envPrefix, &cfg.Diagnostics); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
