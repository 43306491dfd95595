package main

import (
	"github.com/ra1phdd/systray-on-wails"
)

// TrayMenu abstracts the systray menu calls for testing.
type TrayMenu interface {
	AddMenuItem(title, tooltip string) TrayMenuItem
	AddSeparator()
}

// TrayMenuItem is a tray entry that reports clicks.
type TrayMenuItem interface {
	Clicked() <-chan struct{}
}

// RealTray implements TrayMenu using the systray library.
type RealTray struct{}

func (RealTray) AddMenuItem(title, tooltip string) TrayMenuItem {
	return realTrayItem{MenuItem: systray.AddMenuItem(title, tooltip)}
}

func (RealTray) AddSeparator() {
	systray.AddSeparator()
}

type realTrayItem struct {
	*systray.MenuItem
}

func (i realTrayItem) Clicked() <-chan struct{} {
	return i.ClickedCh
}

// mountTray registers the tray icon and builds its menu from cfg.
// Every item click and, where the platform reports them, every icon click
// is posted to the router.
func mountTray(cfg TrayIconConfig, r *Router) {
	systray.Register(func() {
		systray.SetIcon(trayIcon())
		systray.SetTooltip(cfg.Tooltip)

		addTrayNodes(RealTray{}, cfg.Menu, r)

		subclassSystray(r.Post)
	}, nil)
}

// addTrayNodes adds items and separators to t in tree order.
func addTrayNodes(t TrayMenu, tree MenuTree, r *Router) {
	for _, n := range tree {
		switch n.Kind {
		case NodeSeparator:
			t.AddSeparator()
		case NodeItem:
			mi := t.AddMenuItem(n.Item.Label, n.Item.Label)
			go func(id string, clicked <-chan struct{}) {
				for range clicked {
					r.PostMenuItem(id)
				}
			}(n.Item.ID, mi.Clicked())
		}
	}
}
