// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Signal types and sample conversion functions
// Package audio provides the fundamental audio types used throughout
// voicescope:
//   - Format: sample rate, channel count and bit depth of decoded audio
//   - Signal: a fully decoded file, carrying both a normalized mono mix for
//     analysis and interleaved 16-bit PCM for playback
//
// It also provides int16 <-> float64 sample conversion helpers shared by the
// decoders and the playback engine.
package audio
