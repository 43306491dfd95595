package main

import (
	"context"
	"errors"
	"log/slog"
)

// MainWindowName is the name the application window is registered under.
const MainWindowName = "main"

// ErrWindowNotFound is returned by a WindowHost when no window has the requested name.
var ErrWindowNotFound = errors.New("window not found")

// WindowHost is the native window capability the router needs.
type WindowHost interface {
	HideWindow(name string) error
}

// EventKind tags a TrayEvent.
type EventKind int

const (
	LeftClick EventKind = iota + 1
	RightClick
	DoubleClick
	MenuItemClick
)

func (k EventKind) String() string {
	switch k {
	case LeftClick:
		return "left"
	case RightClick:
		return "right"
	case DoubleClick:
		return "double"
	case MenuItemClick:
		return "menu item"
	default:
		return "unknown"
	}
}

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Size is an icon size in pixels.
type Size struct {
	Width, Height int
}

// TrayEvent is one interaction delivered by the tray or a menu.
// ID is only set for MenuItemClick. Position and Size are informational.
type TrayEvent struct {
	Kind     EventKind
	ID       string
	Position Point
	Size     Size
}

// Action is what a menu item id resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionHide
	ActionClose
	ActionStartPomodoro
	ActionStopPomodoro
)

// ActionFor maps a menu item id to its action. Unknown ids map to ActionNone.
func ActionFor(id string) Action {
	switch id {
	case IDQuit:
		return ActionQuit
	case IDHide:
		return ActionHide
	case IDClose:
		return ActionClose
	case IDStart:
		return ActionStartPomodoro
	case IDStop:
		return ActionStopPomodoro
	default:
		return ActionNone
	}
}

const routerQueueSize = 16

// Router dispatches tray and menu events to window and process operations.
// Events posted from any goroutine are handled one at a time by Run.
type Router struct {
	host   WindowHost
	exit   func(code int)
	log    *slog.Logger
	events chan TrayEvent
}

// NewRouter creates a router. exit is called for quit and must not return
// in production (os.Exit).
func NewRouter(host WindowHost, exit func(code int), log *slog.Logger) *Router {
	return &Router{
		host:   host,
		exit:   exit,
		log:    log,
		events: make(chan TrayEvent, routerQueueSize),
	}
}

// Post queues ev for Run. A full queue drops the event.
func (r *Router) Post(ev TrayEvent) {
	select {
	case r.events <- ev:
	default:
		r.log.Warn("tray event dropped, queue full", "kind", ev.Kind.String(), "id", ev.ID)
	}
}

// PostMenuItem queues a click on the menu item id.
func (r *Router) PostMenuItem(id string) {
	r.Post(TrayEvent{Kind: MenuItemClick, ID: id})
}

// Run handles queued events until ctx is done.
func (r *Router) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			r.Handle(ev)
		}
	}
}

// Handle dispatches a single event synchronously.
func (r *Router) Handle(ev TrayEvent) {
	switch ev.Kind {
	case LeftClick, RightClick, DoubleClick:
		r.log.Info("system tray received a " + ev.Kind.String() + " click")
	case MenuItemClick:
		r.handleAction(ev.ID, ActionFor(ev.ID))
	}
}

func (r *Router) handleAction(id string, a Action) {
	switch a {
	case ActionQuit:
		r.log.Info("quit requested", "id", id)
		r.exit(0)
	case ActionHide:
		if err := r.host.HideWindow(MainWindowName); err != nil {
			r.log.Warn("hide window failed", "window", MainWindowName, "error", err)
		}
	case ActionClose, ActionStartPomodoro, ActionStopPomodoro:
		r.log.Debug("menu item has no action yet", "id", id)
	case ActionNone:
	}
}
