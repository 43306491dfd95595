package main

import "github.com/gen2brain/beeep"

// initNotifications sets the app name desktop notifications are attributed to.
func initNotifications() {
	beeep.AppName = AppName
}

// notifyHidden tells the user the app keeps running in the tray.
// Runs in a goroutine so a slow notification daemon never blocks the router.
func (a *DesktopApp) notifyHidden() {
	if !a.cfg.IsNotifyOnHide() {
		return
	}
	go func() {
		if err := beeep.Notify(AppName, "Still running in the system tray", ""); err != nil {
			Log.Debug("hide notification failed", "error", err)
		}
	}()
}
