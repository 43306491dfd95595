package main

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/ra1phdd/systray-on-wails"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed build/appicon.png
var appIconPNG []byte

// DesktopApp is the Wails application binding struct.
// Exported methods are exposed to the frontend via window.go.main.DesktopApp.
type DesktopApp struct {
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc

	cfg    *AppConfig
	tray   TrayIconConfig
	router *Router
}

// NewDesktopApp creates a new DesktopApp instance. The router is attached
// afterwards because it needs the app as its window host.
func NewDesktopApp(cfg *AppConfig, tray TrayIconConfig) *DesktopApp {
	return &DesktopApp{cfg: cfg, tray: tray}
}

// startup is called when the Wails app starts. From here on the main window
// is addressable by name.
func (a *DesktopApp) startup(ctx context.Context) {
	Log.Debug("Wails OnStartup")
	initNotifications()

	routerCtx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.ctx = ctx
	a.cancel = cancel
	a.mu.Unlock()

	go a.router.Run(routerCtx)
	mountTray(a.tray, a.router)
}

// onDomReady is called when the frontend DOM is fully loaded.
func (a *DesktopApp) onDomReady(ctx context.Context) {
	Log.Debug("Wails OnDomReady")
}

// shutdown is called when the Wails app is closing. Quit from a menu exits
// the process directly and never reaches this hook.
func (a *DesktopApp) shutdown(ctx context.Context) {
	w, h := wailsRuntime.WindowGetSize(ctx)
	if w > 0 && h > 0 {
		a.cfg.WindowWidth = w
		a.cfg.WindowHeight = h
	}
	Log.Info("shutdown: saving config", "windowWidth", a.cfg.WindowWidth, "windowHeight", a.cfg.WindowHeight)
	if err := SaveConfig(a.cfg); err != nil {
		Log.Error("save config failed", "error", err)
	}

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.ctx = nil
	a.mu.Unlock()

	systray.Quit()
}

func (a *DesktopApp) context() context.Context {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ctx
}

// Greet returns a greeting for name.
func (a *DesktopApp) Greet(name string) string {
	return greet(name)
}

// SetLogLevel changes the log level at runtime. The choice is saved with the
// rest of the config on shutdown.
func (a *DesktopApp) SetLogLevel(level string) {
	SetLogLevel(level)
	a.cfg.LogLevel = GetLogLevel()
}

// GetLogLevel returns the current log level.
func (a *DesktopApp) GetLogLevel() string {
	return GetLogLevel()
}

// HideWindow hides the window registered under name. Only MainWindowName
// exists, and only while the Wails runtime is up.
func (a *DesktopApp) HideWindow(name string) error {
	ctx := a.context()
	if name != MainWindowName || ctx == nil {
		return fmt.Errorf("%w: %q", ErrWindowNotFound, name)
	}
	wailsRuntime.WindowHide(ctx)
	a.emitWindowHidden()
	a.notifyHidden()
	return nil
}

// copySelection runs the webview's copy command on the current selection.
func (a *DesktopApp) copySelection() {
	if ctx := a.context(); ctx != nil {
		wailsRuntime.WindowExecJS(ctx, `document.execCommand("copy")`)
	}
}
