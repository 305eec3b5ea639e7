// Command orangetv-viewer opens the Orange TV live programme guide in a
// native window with a browser-style toolbar and menus.
//
// Diagnostics are read from the environment:
//
//	ORANGETV_LOG_LEVEL  zap level (debug, info, warn, error); default info
//	ORANGETV_LOG_DEV    colored console output instead of JSON
//	ORANGETV_DEVTOOLS   enable the browser developer tools
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/orangetv/viewer/internal/config"
	"github.com/orangetv/viewer/internal/engine"
	"github.com/orangetv/viewer/internal/logging"
	"github.com/orangetv/viewer/internal/shell"
	"github.com/orangetv/viewer/internal/webview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, using defaults\n", err)
		cfg = config.Default()
	}

	logger, err := logging.New(cfg.Diagnostics.LogLevel, cfg.Diagnostics.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, using info level\n", err)
		logger = logging.NewDefault()
	}
	defer func() { _ = logger.Sync() }()

	app := shell.NewApp(cfg.AppName, logger)
	log := app.Logger

	wv, err := webview.Open(webview.Options{
		Title:  cfg.Title,
		Width:  cfg.Geometry.Width,
		Height: cfg.Geometry.Height,
		Debug:  cfg.Diagnostics.DevTools,
	})
	if err != nil {
		log.Error("Failed to open window", zap.Error(err))
		return err
	}
	defer wv.Destroy()

	eng, err := engine.New(wv, log)
	if err != nil {
		log.Error("Failed to start engine", zap.Error(err))
		return err
	}

	if _, err := shell.NewWindow(app, cfg, eng.Frame(), eng.Browser(), eng.Chrome()); err != nil {
		log.Error("Failed to build window", zap.Error(err))
		return err
	}

	wv.Run()
	log.Info("Event loop finished")
	return nil
}
