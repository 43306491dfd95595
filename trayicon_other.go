//go:build !windows

package main

// trayIcon returns the PNG icon bytes for non-Windows systray.
func trayIcon() []byte {
	return appIconPNG
}

// subclassSystray is a no-op: outside Windows the icon click opens the menu
// and no separate click event is delivered.
func subclassSystray(post func(TrayEvent)) {}
