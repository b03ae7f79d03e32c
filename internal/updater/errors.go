// ABOUTME: Error taxonomy for updater operations
// ABOUTME: Defines load, no-audio and empty-window error kinds
package updater

import (
	"errors"
	"fmt"
)

// ErrNoAudioLoaded is returned by Play when no session is loaded.
// Surfaced to the user; nothing changes.
var ErrNoAudioLoaded = errors.New("no audio file loaded")

// ErrEmptyWindow marks a tick whose analysis window holds no samples. The
// scheduler halts gracefully; playback state is otherwise untouched.
var ErrEmptyWindow = errors.New("analysis window contains no samples")

// LoadError wraps a failure to load an audio file. The prior session, clock
// and rendering are left exactly as they were.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
