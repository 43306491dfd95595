package main

import (
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// Menu item ids shared by the window menu, the tray menu and the router.
const (
	IDQuit  = "quit"
	IDHide  = "hide"
	IDClose = "close"
	IDStart = "start"
	IDStop  = "stop"
)

// NodeKind tags a MenuNode.
type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeSeparator
	NodeSubmenu
	NodeNative
)

// NativeRole names a platform-provided menu action.
type NativeRole int

const (
	RoleCopy NativeRole = iota + 1
)

// MenuItem is a clickable entry. ID must be unique within its tree.
type MenuItem struct {
	ID    string
	Label string
}

// MenuNode is one entry of a MenuTree. Which fields are meaningful depends on Kind:
// NodeItem uses Item, NodeSubmenu uses Label and Children, NodeNative uses Role.
type MenuNode struct {
	Kind     NodeKind
	Item     MenuItem
	Label    string
	Role     NativeRole
	Children MenuTree
}

// MenuTree is an ordered, read-only menu description.
type MenuTree []MenuNode

// TrayIconConfig is the menu and tooltip attached to the tray icon.
type TrayIconConfig struct {
	Tooltip string
	Menu    MenuTree
}

func item(id, label string) MenuNode {
	return MenuNode{Kind: NodeItem, Item: MenuItem{ID: id, Label: label}}
}

func separator() MenuNode {
	return MenuNode{Kind: NodeSeparator}
}

func submenu(label string, children ...MenuNode) MenuNode {
	return MenuNode{Kind: NodeSubmenu, Label: label, Children: children}
}

func native(role NativeRole) MenuNode {
	return MenuNode{Kind: NodeNative, Role: role}
}

// IDs returns every item id in the tree, depth first.
func (t MenuTree) IDs() []string {
	var ids []string
	for _, n := range t {
		switch n.Kind {
		case NodeItem:
			ids = append(ids, n.Item.ID)
		case NodeSubmenu:
			ids = append(ids, n.Children.IDs()...)
		}
	}
	return ids
}

// buildWindowMenu returns the application window menu:
// native copy, Hide, and a File submenu with Quit and Close.
func buildWindowMenu() MenuTree {
	return MenuTree{
		native(RoleCopy),
		item(IDHide, "Hide"),
		submenu("File",
			item(IDQuit, "Quit"),
			item(IDClose, "Close"),
		),
	}
}

// buildTrayMenu returns the system tray configuration.
// Start/Stop Pomodoro are placeholders and route to nothing.
func buildTrayMenu() TrayIconConfig {
	return TrayIconConfig{
		Tooltip: AppName,
		Menu: MenuTree{
			item(IDStart, "Start Pomodoro"),
			item(IDStop, "Stop Pomodoro"),
			separator(),
			item(IDQuit, "Quit"),
			separator(),
			item(IDHide, "Hide"),
		},
	}
}

// windowMenu renders tree as a Wails application menu for goos.
// onItem receives the id of every clicked item; copy is executed by onCopy.
func windowMenu(tree MenuTree, goos string, onItem func(id string), onCopy func()) *menu.Menu {
	m := menu.NewMenu()
	if goos == "darwin" {
		m.Append(menu.AppMenu())
	}
	appendNodes(m, layoutForOS(tree, goos), onItem, onCopy)
	return m
}

// layoutForOS moves top-level entries that are not submenus into a leading
// "Edit" submenu on macOS, whose menu bar only holds submenus.
func layoutForOS(tree MenuTree, goos string) MenuTree {
	if goos != "darwin" {
		return tree
	}
	var loose, subs MenuTree
	for _, n := range tree {
		if n.Kind == NodeSubmenu {
			subs = append(subs, n)
		} else {
			loose = append(loose, n)
		}
	}
	if len(loose) == 0 {
		return tree
	}
	return append(MenuTree{submenu("Edit", loose...)}, subs...)
}

func appendNodes(m *menu.Menu, tree MenuTree, onItem func(id string), onCopy func()) {
	for _, n := range tree {
		switch n.Kind {
		case NodeItem:
			id := n.Item.ID
			m.AddText(n.Item.Label, nil, func(_ *menu.CallbackData) {
				onItem(id)
			})
		case NodeSeparator:
			m.AddSeparator()
		case NodeSubmenu:
			appendNodes(m.AddSubmenu(n.Label), n.Children, onItem, onCopy)
		case NodeNative:
			if n.Role == RoleCopy {
				m.AddText("Copy", keys.CmdOrCtrl("c"), func(_ *menu.CallbackData) {
					onCopy()
				})
			}
		}
	}
}
