package main

import (
	"embed"
	"flag"
	"fmt"
	"os"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// AppName is the window title and tray tooltip.
const AppName = "Pomotray"

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	var logLevel string
	var hidden bool
	var showHelp bool

	flag.StringVar(&logLevel, "log-level", "", "log level: error, info, debug")
	flag.BoolVar(&hidden, "hidden", false, "start with the window hidden, tray icon only")
	flag.BoolVar(&showHelp, "help", false, "show this help")
	flag.Parse()

	if showHelp {
		fmt.Println("Pomotray - pomodoro tray app")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  %s [options]\n", os.Args[0])
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(logLevel, hidden); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logLevel string, hidden bool) error {
	cfg := LoadConfig()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if hidden {
		cfg.StartHidden = true
	}

	logFile, err := InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, logging to stderr: %v\n", err)
	} else {
		defer logFile.Close()
	}

	release := ensureSingleInstance()
	defer release()

	app := NewDesktopApp(cfg, buildTrayMenu())
	router := NewRouter(app, os.Exit, Log)
	app.router = router

	err = wails.Run(&options.App{
		Title:       AppName,
		Width:       cfg.WindowWidth,
		Height:      cfg.WindowHeight,
		StartHidden: cfg.StartHidden,
		Menu:        windowMenu(buildWindowMenu(), goruntime.GOOS, router.PostMenuItem, app.copySelection),
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.startup,
		OnDomReady: app.onDomReady,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}
	return nil
}
