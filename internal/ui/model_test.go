// ABOUTME: Tests for the TUI model
// ABOUTME: Tests key dispatch, status application and view content
package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDispatchActions(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"o", ActionOpen},
		{" ", ActionPlayPause},
		{"s", ActionStop},
		{"m", ActionToggleMute},
	}

	for _, tt := range tests {
		ctrl := NewControl()
		m := NewModel(ctrl)

		m.Update(keyMsg(tt.key))

		select {
		case got := <-ctrl.Actions:
			if got != tt.want {
				t.Errorf("key %q: expected action %d, got %d", tt.key, tt.want, got)
			}
		default:
			t.Errorf("key %q dispatched no action", tt.key)
		}
	}
}

func TestQuitKeySignalsQuit(t *testing.T) {
	ctrl := NewControl()
	m := NewModel(ctrl)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}

	select {
	case <-ctrl.Quit:
	default:
		t.Error("quit channel not signalled")
	}
}

func TestStatusMsgUpdatesView(t *testing.T) {
	ctrl := NewControl()
	m := NewModel(ctrl)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	updated, _ = m.Update(StatusMsg{
		FileName:  "voice.wav",
		SessionID: "0a1b2c3d-0000-0000-0000-000000000000",
		State:     "playing",
		Clock:     1.2,
		Duration:  5.0,
		Volume:    80,
		HasVolume: true,
	})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"voice.wav", "playing", "80%", "[0a1b2c3d]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFrameMsgReplacesPlaceholder(t *testing.T) {
	ctrl := NewControl()
	m := NewModel(ctrl)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	if !strings.Contains(m.View(), "No analysis yet") {
		t.Error("expected placeholder before any frame")
	}

	updated, _ = m.Update(FrameMsg{Frame: "PANE-CONTENT"})
	m = updated.(Model)
	if !strings.Contains(m.View(), "PANE-CONTENT") {
		t.Error("frame content not rendered")
	}
}

func TestErrorShownAndCleared(t *testing.T) {
	ctrl := NewControl()
	m := NewModel(ctrl)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	updated, _ = m.Update(StatusMsg{Err: "load failed"})
	m = updated.(Model)

	if !strings.Contains(m.View(), "load failed") {
		t.Error("error not shown")
	}

	updated, _ = m.Update(StatusMsg{ClearErr: true})
	m = updated.(Model)
	if strings.Contains(m.View(), "load failed") {
		t.Error("error not cleared")
	}
}

func TestFullActionChannelDoesNotBlock(t *testing.T) {
	ctrl := NewControl()
	m := NewModel(ctrl)

	// Fill the channel, then keep typing.
	for i := 0; i < 20; i++ {
		m.Update(keyMsg("s"))
	}
	// Reaching here without deadlock is the assertion.
}
