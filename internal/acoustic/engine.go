// ABOUTME: Acoustic analysis engine over a loaded signal
// ABOUTME: Computes pitch, intensity and spectrogram tracks for time windows
package acoustic

import (
	"fmt"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

// Default analysis parameters, tuned for speech.
const (
	DefaultMinPitch = 75.0  // Hz
	DefaultMaxPitch = 600.0 // Hz

	pitchHop       = 0.010 // s
	intensityFrame = 0.032 // s
	intensityHop   = 0.008 // s

	spectrogramFrame   = 0.005  // s, before rounding up to a power of two
	DefaultMaxFreq     = 5000.0 // Hz shown in the spectrogram
	silenceFloor       = 0.003  // RMS below which a frame counts as unvoiced
	intensityReference = 4e-10  // mean square at the auditory threshold
)

// Engine computes acoustic feature tracks from a Signal. All methods are
// read-only over the signal and restricted to the requested time window.
type Engine struct {
	MinPitch float64
	MaxPitch float64
	MaxFreq  float64
}

// NewEngine returns an engine with speech-range defaults.
func NewEngine() *Engine {
	return &Engine{
		MinPitch: DefaultMinPitch,
		MaxPitch: DefaultMaxPitch,
		MaxFreq:  DefaultMaxFreq,
	}
}

// window extracts the sample slice for [from, to) or fails when empty.
func (e *Engine) window(sig *audio.Signal, from, to float64) ([]float64, error) {
	samples := sig.Slice(from, to)
	if len(samples) == 0 {
		return nil, fmt.Errorf("window [%.3f, %.3f) contains no samples", from, to)
	}
	return samples, nil
}
