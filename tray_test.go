package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTray implements TrayMenu for testing.
type MockTray struct {
	entries []string
	items   map[string]*MockTrayItem
}

type MockTrayItem struct {
	clicked chan struct{}
}

func (i *MockTrayItem) Clicked() <-chan struct{} {
	return i.clicked
}

func (m *MockTray) AddMenuItem(title, tooltip string) TrayMenuItem {
	m.entries = append(m.entries, title)
	it := &MockTrayItem{clicked: make(chan struct{})}
	if m.items == nil {
		m.items = map[string]*MockTrayItem{}
	}
	m.items[title] = it
	return it
}

func (m *MockTray) AddSeparator() {
	m.entries = append(m.entries, "---")
}

func nextEvent(t *testing.T, r *Router) TrayEvent {
	t.Helper()
	select {
	case ev := <-r.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event posted")
		return TrayEvent{}
	}
}

func TestAddTrayNodesOrder(t *testing.T) {
	tray := &MockTray{}
	r, _ := newTestRouter(&fakeHost{})

	addTrayNodes(tray, buildTrayMenu().Menu, r)

	assert.Equal(t, []string{"Start Pomodoro", "Stop Pomodoro", "---", "Quit", "---", "Hide"}, tray.entries)
}

func TestAddTrayNodesPostsClicks(t *testing.T) {
	tray := &MockTray{}
	r, _ := newTestRouter(&fakeHost{})

	addTrayNodes(tray, buildTrayMenu().Menu, r)

	tests := []struct {
		label string
		id    string
	}{
		{"Quit", "quit"},
		{"Hide", "hide"},
		{"Start Pomodoro", "start"},
		{"Stop Pomodoro", "stop"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			it := tray.items[tt.label]
			require.NotNil(t, it)

			it.clicked <- struct{}{}

			assert.Equal(t, TrayEvent{Kind: MenuItemClick, ID: tt.id}, nextEvent(t, r))
		})
	}
}
