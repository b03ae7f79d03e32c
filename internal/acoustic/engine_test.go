// ABOUTME: Tests for the acoustic analysis engine
// ABOUTME: Verifies pitch, intensity and spectrogram tracks on synthetic tones
package acoustic

import (
	"math"
	"testing"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

const testRate = 8000

// sineSignal builds a mono test signal of the given frequency and amplitude.
func sineSignal(freq, amp, seconds float64) *audio.Signal {
	n := int(seconds * testRate)
	sig := &audio.Signal{
		Format:  audio.Format{SampleRate: testRate, Channels: 1, BitDepth: 16},
		Samples: make([]float64, n),
	}
	for i := range sig.Samples {
		sig.Samples[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/testRate)
	}
	return sig
}

func silentSignal(seconds float64) *audio.Signal {
	return &audio.Signal{
		Format:  audio.Format{SampleRate: testRate, Channels: 1, BitDepth: 16},
		Samples: make([]float64, int(seconds*testRate)),
	}
}

func TestPitchDetectsSine(t *testing.T) {
	sig := sineSignal(220, 0.5, 1.0)
	e := NewEngine()

	track, err := e.Pitch(sig, 0, 0.5)
	if err != nil {
		t.Fatalf("pitch failed: %v", err)
	}
	if len(track.Times) == 0 {
		t.Fatal("expected at least one pitch frame")
	}

	for i, f := range track.Freqs {
		if math.IsNaN(f) {
			t.Errorf("frame %d: unexpected unvoiced frame", i)
			continue
		}
		if math.Abs(f-220) > 15 {
			t.Errorf("frame %d: expected ~220Hz, got %f", i, f)
		}
	}
}

func TestPitchSilenceIsUnvoiced(t *testing.T) {
	sig := silentSignal(1.0)
	e := NewEngine()

	track, err := e.Pitch(sig, 0, 0.5)
	if err != nil {
		t.Fatalf("pitch failed: %v", err)
	}
	for i, f := range track.Freqs {
		if !math.IsNaN(f) {
			t.Errorf("frame %d: expected NaN for silence, got %f", i, f)
		}
	}
}

func TestPitchEmptyWindow(t *testing.T) {
	sig := sineSignal(220, 0.5, 1.0)
	e := NewEngine()

	if _, err := e.Pitch(sig, 2.0, 2.1); err == nil {
		t.Error("expected error for window past end of signal")
	}
}

func TestIntensityOfSteadyTone(t *testing.T) {
	sig := sineSignal(220, 0.5, 1.0)
	e := NewEngine()

	track, err := e.Intensity(sig, 0, 0.5)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}
	if len(track.Values) == 0 {
		t.Fatal("expected intensity frames")
	}

	// Mean square of a 0.5-amplitude sine is 0.125 -> about 85 dB re 4e-10.
	for i, v := range track.Values {
		if math.IsNaN(v) {
			t.Errorf("frame %d: unexpected NaN", i)
			continue
		}
		if v < 80 || v > 90 {
			t.Errorf("frame %d: expected ~85dB, got %f", i, v)
		}
	}
}

func TestIntensitySilenceIsNaN(t *testing.T) {
	sig := silentSignal(1.0)
	e := NewEngine()

	track, err := e.Intensity(sig, 0, 0.5)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}
	for i, v := range track.Values {
		if !math.IsNaN(v) {
			t.Errorf("frame %d: expected NaN for silence, got %f", i, v)
		}
	}
}

func TestSpectrogramPeakBin(t *testing.T) {
	sig := sineSignal(1000, 0.5, 1.0)
	e := NewEngine()

	sg, err := e.Spectrogram(sig, 0, 0.5)
	if err != nil {
		t.Fatalf("spectrogram failed: %v", err)
	}
	if len(sg.Power) == 0 || len(sg.Freqs) < 2 {
		t.Fatal("expected a populated power grid")
	}

	binHz := sg.Freqs[1] - sg.Freqs[0]
	for fi, row := range sg.Power {
		peak := 0
		for k := range row {
			if row[k] > row[peak] {
				peak = k
			}
		}
		if math.Abs(sg.Freqs[peak]-1000) > binHz {
			t.Errorf("frame %d: expected peak near 1000Hz, got %f", fi, sg.Freqs[peak])
		}
	}
}

func TestSpectrogramFrequencyCeiling(t *testing.T) {
	sig := sineSignal(440, 0.5, 1.0)
	e := NewEngine()

	sg, err := e.Spectrogram(sig, 0, 0.1)
	if err != nil {
		t.Fatalf("spectrogram failed: %v", err)
	}
	top := sg.Freqs[len(sg.Freqs)-1]
	if top > e.MaxFreq {
		t.Errorf("expected bins capped at %f Hz, got %f", e.MaxFreq, top)
	}
}

func TestSpectrogramShortWindowZeroPads(t *testing.T) {
	sig := sineSignal(440, 0.5, 1.0)
	e := NewEngine()

	// One millisecond is shorter than a single analysis frame.
	sg, err := e.Spectrogram(sig, 0, 0.001)
	if err != nil {
		t.Fatalf("spectrogram failed: %v", err)
	}
	if len(sg.Power) != 1 {
		t.Errorf("expected a single zero-padded frame, got %d", len(sg.Power))
	}
}

func TestWindowTimesStayInsideWindow(t *testing.T) {
	sig := sineSignal(220, 0.5, 5.0)
	e := NewEngine()

	from, to := 2.3, 2.4
	track, err := e.Intensity(sig, from, to)
	if err != nil {
		t.Fatalf("intensity failed: %v", err)
	}
	for _, ts := range track.Times {
		if ts < from || ts > to {
			t.Errorf("frame time %f outside window [%f, %f)", ts, from, to)
		}
	}
}
