package main

import wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

// Event name constants for Wails runtime events
const (
	EventWindowHidden = "window-hidden"
)

// emitWindowHidden tells the frontend its window went to the tray.
func (a *DesktopApp) emitWindowHidden() {
	if ctx := a.context(); ctx != nil {
		wailsRuntime.EventsEmit(ctx, EventWindowHidden)
	}
}
