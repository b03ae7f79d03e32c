// ABOUTME: Pitch extraction via short-time autocorrelation
// ABOUTME: Produces a pitch track with NaN for unvoiced frames
package acoustic

import (
	"math"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

// Pitch computes the fundamental frequency contour for [from, to).
// Frames with no credible pitch candidate carry NaN.
func (e *Engine) Pitch(sig *audio.Signal, from, to float64) (PitchTrack, error) {
	samples, err := e.window(sig, from, to)
	if err != nil {
		return PitchTrack{}, err
	}

	rate := float64(sig.Format.SampleRate)

	// Frames must span at least three periods of the lowest pitch.
	frameLen := int(3 * rate / e.MinPitch)
	if frameLen > len(samples) {
		frameLen = len(samples)
	}
	hop := int(pitchHop * rate)
	if hop < 1 {
		hop = 1
	}

	var track PitchTrack
	for start := 0; start+frameLen <= len(samples); start += hop {
		frame := samples[start : start+frameLen]
		freq := e.detectPitch(frame, rate)

		center := from + (float64(start)+float64(frameLen)/2)/rate
		track.Times = append(track.Times, center)
		track.Freqs = append(track.Freqs, freq)

		if frameLen == len(samples) {
			break
		}
	}
	return track, nil
}

// detectPitch runs autocorrelation over one frame and returns the best
// candidate frequency, or NaN when the frame is silent or out of range.
func (e *Engine) detectPitch(frame []float64, rate float64) float64 {
	var sum float64
	for _, s := range frame {
		sum += s
	}
	mean := sum / float64(len(frame))

	var energy float64
	normalized := make([]float64, len(frame))
	for i, s := range frame {
		v := s - mean
		normalized[i] = v
		energy += v * v
	}
	rms := math.Sqrt(energy / float64(len(frame)))
	if rms < silenceFloor {
		return math.NaN()
	}

	minLag := int(rate / e.MaxPitch)
	maxLag := int(rate / e.MinPitch)
	if maxLag >= len(normalized) {
		maxLag = len(normalized) - 1
	}
	if minLag < 1 {
		minLag = 1
	}

	var bestLag int
	var bestCorr float64
	for lag := minLag; lag <= maxLag; lag++ {
		var corr float64
		for i := 0; i < len(normalized)-lag; i++ {
			corr += normalized[i] * normalized[i+lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	if bestLag == 0 || bestCorr <= 0 {
		return math.NaN()
	}

	freq := rate / float64(bestLag)
	if freq < e.MinPitch || freq > e.MaxPitch {
		return math.NaN()
	}
	return freq
}
