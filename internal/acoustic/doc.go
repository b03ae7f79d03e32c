// ABOUTME: Acoustic feature extraction package
// ABOUTME: Pitch, intensity and spectrogram analysis over time windows
// Package acoustic extracts voice analysis features from a decoded signal.
//
// The Engine computes three feature tracks, each restricted to a caller
// supplied time window so per-call cost stays bounded:
//   - Pitch: fundamental frequency via short-time autocorrelation
//   - Intensity: RMS energy in dB
//   - Spectrogram: Hann-windowed STFT power grid (FFT by gonum)
//
// Undefined frames (silence, no pitch candidate) are reported as NaN and
// left for the rendering layer to filter.
package acoustic
