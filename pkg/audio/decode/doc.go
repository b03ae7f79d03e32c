// ABOUTME: Audio file decoder package for multiple codec support
// ABOUTME: Provides FileDecoder interface and WAV, MP3, FLAC, Opus decoders
// Package decode loads complete audio files into audio.Signal values.
//
// Supports: WAV (PCM), MP3, FLAC, Ogg Opus
//
// All decoders implement the FileDecoder interface and produce both a
// normalized mono mix for analysis and interleaved 16-bit PCM for playback.
//
// Example:
//
//	sig, err := decode.Open("speech.wav")
package decode
