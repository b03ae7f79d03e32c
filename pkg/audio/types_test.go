// ABOUTME: Tests for core audio types
// ABOUTME: Tests Signal duration, window slicing and sample conversions
package audio

import (
	"math"
	"testing"
)

func TestSignalDuration(t *testing.T) {
	sig := &Signal{
		Format:  Format{SampleRate: 1000, Channels: 1, BitDepth: 16},
		Samples: make([]float64, 2500),
	}

	if d := sig.Duration(); math.Abs(d-2.5) > 1e-9 {
		t.Errorf("expected duration 2.5s, got %f", d)
	}
}

func TestSignalDurationNoRate(t *testing.T) {
	sig := &Signal{Samples: make([]float64, 100)}
	if d := sig.Duration(); d != 0 {
		t.Errorf("expected 0 duration without sample rate, got %f", d)
	}
}

func TestSignalSlice(t *testing.T) {
	sig := &Signal{
		Format:  Format{SampleRate: 100, Channels: 1, BitDepth: 16},
		Samples: make([]float64, 500), // 5 seconds
	}

	tests := []struct {
		name     string
		from, to float64
		want     int
	}{
		{"full window", 1.0, 1.1, 10},
		{"clipped at end", 4.95, 5.05, 5},
		{"past end", 5.0, 5.1, 0},
		{"negative start clipped", -0.5, 0.1, 10},
		{"inverted", 2.0, 1.0, 0},
	}

	for _, tt := range tests {
		got := sig.Slice(tt.from, tt.to)
		if len(got) != tt.want {
			t.Errorf("%s: expected %d samples, got %d", tt.name, tt.want, len(got))
		}
	}
}

func TestSampleConversionRoundTrip(t *testing.T) {
	for _, sample := range []int16{0, 1, -1, 16384, -16384, 32767, -32768} {
		f := FloatFromInt16(sample)
		back := Int16FromFloat(f)
		if diff := int(sample) - int(back); diff < -1 || diff > 1 {
			t.Errorf("sample %d round-tripped to %d", sample, back)
		}
	}
}

func TestInt16FromFloatClamps(t *testing.T) {
	if got := Int16FromFloat(2.0); got != 32767 {
		t.Errorf("expected clamp to 32767, got %d", got)
	}
	if got := Int16FromFloat(-2.0); got != -32768 {
		t.Errorf("expected clamp to -32768, got %d", got)
	}
}

func TestPutInt16Int16At(t *testing.T) {
	var pcm []byte
	pcm = PutInt16(pcm, 1000)
	pcm = PutInt16(pcm, -1000)

	if got := Int16At(pcm, 0); got != 1000 {
		t.Errorf("expected 1000, got %d", got)
	}
	if got := Int16At(pcm, 1); got != -1000 {
		t.Errorf("expected -1000, got %d", got)
	}
}
