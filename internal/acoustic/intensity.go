// ABOUTME: Intensity extraction via short-time RMS energy
// ABOUTME: Produces a dB contour with NaN for frames without energy
package acoustic

import (
	"math"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
)

// Intensity computes the intensity contour in dB for [from, to).
// Frames of pure silence carry NaN rather than negative infinity.
func (e *Engine) Intensity(sig *audio.Signal, from, to float64) (IntensityTrack, error) {
	samples, err := e.window(sig, from, to)
	if err != nil {
		return IntensityTrack{}, err
	}

	rate := float64(sig.Format.SampleRate)
	frameLen := int(intensityFrame * rate)
	if frameLen > len(samples) {
		frameLen = len(samples)
	}
	if frameLen < 1 {
		frameLen = 1
	}
	hop := int(intensityHop * rate)
	if hop < 1 {
		hop = 1
	}

	var track IntensityTrack
	for start := 0; start+frameLen <= len(samples); start += hop {
		frame := samples[start : start+frameLen]

		var energy float64
		for _, s := range frame {
			energy += s * s
		}
		meanSquare := energy / float64(len(frame))

		db := math.NaN()
		if meanSquare > 0 {
			db = 10 * math.Log10(meanSquare/intensityReference)
		}

		center := from + (float64(start)+float64(frameLen)/2)/rate
		track.Times = append(track.Times, center)
		track.Values = append(track.Values, db)

		if frameLen == len(samples) {
			break
		}
	}
	return track, nil
}
