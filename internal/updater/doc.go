// ABOUTME: Playback-synchronized analysis updater package
// ABOUTME: Timer-driven state machine coordinating playback, analysis, drawing
// Package updater coordinates audio playback with the real-time analysis
// view. It owns the playback clock and a cancellable repeating ticker; every
// tick analyzes the window [t, t+step) of the loaded signal and redraws the
// spectrogram, pitch and intensity panes.
//
// The state machine is Stopped -> Playing -> Paused -> Playing, with Stop
// reachable from anywhere. When the audio engine reports the stream ended,
// the ticker halts without resetting the clock or the view; that final frame
// stays visible until the next Play, Load or Stop.
package updater
