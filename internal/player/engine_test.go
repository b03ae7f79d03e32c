// ABOUTME: Tests for the playback engine
// ABOUTME: Tests volume math and unloaded-state behavior
package player

import (
	"testing"
)

func TestVolumeMultiplier(t *testing.T) {
	tests := []struct {
		volume   int
		muted    bool
		expected float64
	}{
		{100, false, 1.0},
		{50, false, 0.5},
		{0, false, 0.0},
		{80, true, 0.0}, // Muted overrides volume
	}

	for _, tt := range tests {
		result := getVolumeMultiplier(tt.volume, tt.muted)
		if result != tt.expected {
			t.Errorf("volume=%d, muted=%v: expected %f, got %f",
				tt.volume, tt.muted, tt.expected, result)
		}
	}
}

func TestClampVolume(t *testing.T) {
	if got := clampVolume(150); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
	if got := clampVolume(-10); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
	if got := clampVolume(42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestPlayWithoutLoad(t *testing.T) {
	e := NewEngine()
	if err := e.Play(); err == nil {
		t.Error("expected error playing with nothing loaded")
	}
}

func TestIdleEngineState(t *testing.T) {
	e := NewEngine()

	if e.IsInitialized() {
		t.Error("new engine should not report initialized")
	}
	if e.IsBusy() {
		t.Error("new engine should not report busy")
	}

	// These must all be safe no-ops before any Load.
	e.Pause()
	e.Unpause()
	e.Stop()
	e.SetVolume(80)
	e.SetMuted(true)

	if e.Volume() != 80 {
		t.Errorf("expected volume 80, got %d", e.Volume())
	}
	if !e.IsMuted() {
		t.Error("expected muted")
	}
}
