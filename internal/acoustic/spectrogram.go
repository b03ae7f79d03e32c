// ABOUTME: Spectrogram extraction via short-time Fourier transform
// ABOUTME: Delegates the FFT to gonum and emits a power grid per window
package acoustic

import (
	"math"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrogram computes the power spectrogram for [from, to). Frames are
// Hann-windowed and overlap by half; bins above MaxFreq are dropped.
func (e *Engine) Spectrogram(sig *audio.Signal, from, to float64) (Spectrogram, error) {
	samples, err := e.window(sig, from, to)
	if err != nil {
		return Spectrogram{}, err
	}

	rate := float64(sig.Format.SampleRate)
	winSize := nextPow2(int(spectrogramFrame * rate))
	if winSize < 16 {
		winSize = 16
	}
	hop := winSize / 2

	// Short windows are zero-padded into a single frame.
	if len(samples) < winSize {
		padded := make([]float64, winSize)
		copy(padded, samples)
		samples = padded
	}

	hann := make([]float64, winSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(winSize))
	}

	fft := fourier.NewFFT(winSize)
	binHz := rate / float64(winSize)
	bins := fft.Len()/2 + 1
	maxBin := int(e.MaxFreq / binHz)
	if maxBin >= bins {
		maxBin = bins - 1
	}

	sg := Spectrogram{Freqs: make([]float64, maxBin+1)}
	for k := 0; k <= maxBin; k++ {
		sg.Freqs[k] = float64(k) * binHz
	}

	windowed := make([]float64, winSize)
	for start := 0; start+winSize <= len(samples); start += hop {
		for i := 0; i < winSize; i++ {
			windowed[i] = samples[start+i] * hann[i]
		}
		coeff := fft.Coefficients(nil, windowed)

		row := make([]float64, maxBin+1)
		for k := 0; k <= maxBin; k++ {
			re := real(coeff[k])
			im := imag(coeff[k])
			row[k] = (re*re + im*im) / float64(winSize)
		}

		center := from + (float64(start)+float64(winSize)/2)/rate
		sg.Times = append(sg.Times, center)
		sg.Power = append(sg.Power, row)
	}
	return sg, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
