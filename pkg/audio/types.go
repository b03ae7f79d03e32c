// ABOUTME: Core audio type definitions
// ABOUTME: Defines Format, Signal and sample conversion helpers
package audio

import "encoding/binary"

// Format describes decoded audio.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Signal is a fully decoded audio file. Samples holds a mono mix normalized
// to [-1, 1] for analysis; PCM holds interleaved 16-bit little-endian frames
// at the original channel count for playback.
type Signal struct {
	Format  Format
	Samples []float64
	PCM     []byte
}

// Duration returns the signal length in seconds.
func (s *Signal) Duration() float64 {
	if s.Format.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.Format.SampleRate)
}

// Slice returns the mono samples covering [from, to) seconds, clipped to the
// signal bounds. An empty slice means the window holds no data.
func (s *Signal) Slice(from, to float64) []float64 {
	rate := float64(s.Format.SampleRate)
	start := int(from * rate)
	end := int(to * rate)

	if start < 0 {
		start = 0
	}
	if end > len(s.Samples) {
		end = len(s.Samples)
	}
	if start >= end {
		return nil
	}
	return s.Samples[start:end]
}

// FloatFromInt16 converts an int16 sample to a normalized float64.
func FloatFromInt16(sample int16) float64 {
	return float64(sample) / 32768.0
}

// Int16FromFloat converts a normalized float64 sample to int16 with clamping.
func Int16FromFloat(sample float64) int16 {
	scaled := sample * 32767.0
	if scaled > 32767 {
		return 32767
	}
	if scaled < -32768 {
		return -32768
	}
	return int16(scaled)
}

// PutInt16 appends an int16 sample as little-endian bytes.
func PutInt16(dst []byte, sample int16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(sample))
}

// Int16At reads the little-endian int16 sample at frame index i.
func Int16At(pcm []byte, i int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[i*2:]))
}
