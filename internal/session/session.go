// ABOUTME: Session state for one loaded audio file
// ABOUTME: Defines the playback state enum and the session value
package session

import (
	"path/filepath"

	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"github.com/google/uuid"
)

// State is the playback state of a session.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Session is one loaded audio file. A new load replaces the session
// wholesale; the previous one is simply dropped.
type Session struct {
	ID     string
	Path   string
	Signal *audio.Signal
	State  State
}

// New creates a stopped session for a decoded signal.
func New(path string, sig *audio.Signal) *Session {
	return &Session{
		ID:     uuid.New().String(),
		Path:   path,
		Signal: sig,
		State:  Stopped,
	}
}

// Name returns the file name without its directory.
func (s *Session) Name() string {
	return filepath.Base(s.Path)
}
