// ABOUTME: Analysis result types
// ABOUTME: Defines pitch, intensity and spectrogram track structures
package acoustic

// PitchTrack is a pitch contour over a time window. Freqs[i] is the
// fundamental frequency in Hz at Times[i], or NaN for unvoiced frames.
type PitchTrack struct {
	Times []float64
	Freqs []float64
}

// IntensityTrack is an intensity contour over a time window. Values[i] is
// the intensity in dB at Times[i], or NaN where the frame holds no energy.
type IntensityTrack struct {
	Times  []float64
	Values []float64
}

// Spectrogram is a power grid over a time window. Power is indexed
// [frame][bin]; Times has one entry per frame, Freqs one per bin.
type Spectrogram struct {
	Times []float64
	Freqs []float64
	Power [][]float64
}
