// ABOUTME: Tests for session values
// ABOUTME: Tests state names and session construction
package session

import (
	"testing"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "stopped"},
		{Playing, "playing"},
		{Paused, "paused"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewSession(t *testing.T) {
	sig := &audio.Signal{Format: audio.Format{SampleRate: 8000}}
	s := New("/music/voice.wav", sig)

	if s.ID == "" {
		t.Error("expected a session id")
	}
	if s.State != Stopped {
		t.Errorf("new session should be stopped, got %v", s.State)
	}
	if s.Name() != "voice.wav" {
		t.Errorf("expected base name, got %q", s.Name())
	}
}

func TestSessionIDsUnique(t *testing.T) {
	sig := &audio.Signal{}
	a := New("a.wav", sig)
	b := New("a.wav", sig)
	if a.ID == b.ID {
		t.Error("expected distinct session ids")
	}
}
