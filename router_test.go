package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	hidden []string
	err    error
	done   chan struct{}
}

func (h *fakeHost) HideWindow(name string) error {
	h.hidden = append(h.hidden, name)
	if h.done != nil {
		close(h.done)
	}
	return h.err
}

type exitRecorder struct {
	codes []int
}

func (e *exitRecorder) exit(code int) {
	e.codes = append(e.codes, code)
}

func newTestRouter(host WindowHost) (*Router, *exitRecorder) {
	rec := &exitRecorder{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(host, rec.exit, log), rec
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		id   string
		want Action
	}{
		{"quit", ActionQuit},
		{"hide", ActionHide},
		{"close", ActionClose},
		{"start", ActionStartPomodoro},
		{"stop", ActionStopPomodoro},
		{"", ActionNone},
		{"Quit", ActionNone},
		{"hide ", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFor(tt.id))
		})
	}
}

func TestHandleQuitExitsWithZero(t *testing.T) {
	host := &fakeHost{}
	r, rec := newTestRouter(host)

	// Prior history must not matter.
	r.Handle(TrayEvent{Kind: DoubleClick})
	r.Handle(TrayEvent{Kind: MenuItemClick, ID: "start"})
	r.Handle(TrayEvent{Kind: MenuItemClick, ID: "quit"})

	assert.Equal(t, []int{0}, rec.codes)
	assert.Empty(t, host.hidden)
}

func TestHandleHideHidesMainOnce(t *testing.T) {
	host := &fakeHost{}
	r, rec := newTestRouter(host)

	r.Handle(TrayEvent{Kind: MenuItemClick, ID: "hide"})

	assert.Equal(t, []string{MainWindowName}, host.hidden)
	assert.Empty(t, rec.codes)
}

func TestHandleHideMissingWindowIsAbsorbed(t *testing.T) {
	host := &fakeHost{err: ErrWindowNotFound}
	r, rec := newTestRouter(host)

	require.NotPanics(t, func() {
		r.Handle(TrayEvent{Kind: MenuItemClick, ID: "hide"})
	})
	assert.Equal(t, []string{MainWindowName}, host.hidden)
	assert.Empty(t, rec.codes)
}

func TestHandleUnroutedIDsDoNothing(t *testing.T) {
	for _, id := range []string{"start", "stop", "close", "", "unknown", "{}", "QUIT"} {
		t.Run(id, func(t *testing.T) {
			host := &fakeHost{}
			r, rec := newTestRouter(host)

			r.Handle(TrayEvent{Kind: MenuItemClick, ID: id})

			assert.Empty(t, host.hidden)
			assert.Empty(t, rec.codes)
		})
	}
}

func TestHandleIconClicksAreInert(t *testing.T) {
	positions := []Point{{0, 0}, {-10, 4000}, {1920, 1080}}
	for _, kind := range []EventKind{LeftClick, RightClick, DoubleClick, EventKind(0), EventKind(99)} {
		for _, pos := range positions {
			host := &fakeHost{}
			r, rec := newTestRouter(host)

			// An id on a click event must not be routed.
			r.Handle(TrayEvent{Kind: kind, ID: "quit", Position: pos, Size: Size{16, 16}})

			assert.Empty(t, host.hidden, "kind %v", kind)
			assert.Empty(t, rec.codes, "kind %v", kind)
		}
	}
}

func TestRunDeliversPostedEvents(t *testing.T) {
	host := &fakeHost{done: make(chan struct{})}
	r, _ := newTestRouter(host)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(stopped)
	}()

	r.Post(TrayEvent{Kind: LeftClick})
	r.PostMenuItem("stop")
	r.PostMenuItem("hide")

	select {
	case <-host.done:
	case <-time.After(2 * time.Second):
		t.Fatal("hide was not dispatched")
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, []string{MainWindowName}, host.hidden)
}

func TestPostDropsWhenQueueFull(t *testing.T) {
	host := &fakeHost{}
	r, _ := newTestRouter(host)

	for i := 0; i < routerQueueSize+5; i++ {
		r.PostMenuItem("hide")
	}
	assert.Len(t, r.events, routerQueueSize)
}

func TestHideWindowBeforeStartup(t *testing.T) {
	app := NewDesktopApp(DefaultConfig(), buildTrayMenu())

	err := app.HideWindow(MainWindowName)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWindowNotFound))

	err = app.HideWindow("settings")
	assert.True(t, errors.Is(err, ErrWindowNotFound))
}
