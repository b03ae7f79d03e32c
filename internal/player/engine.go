// ABOUTME: Audio playback engine using the oto library
// ABOUTME: Plays a loaded PCM signal with pause/resume and software volume
package player

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/VoiceScope/voicescope-go/internal/logger"
	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// Engine owns the audio output device. One loaded signal at a time; a new
// Load replaces the previous one.
type Engine struct {
	mu      sync.Mutex
	otoCtx  *oto.Context
	player  *oto.Player
	pcm     []byte
	format  audio.Format
	volume  int
	muted   bool
	ready   bool
}

// NewEngine creates an engine with full volume and no device attached yet.
func NewEngine() *Engine {
	return &Engine{volume: 100}
}

// Load prepares the signal for playback, initializing the output device for
// its format. Any current playback stops.
func (e *Engine) Load(sig *audio.Signal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()

	if e.otoCtx == nil || e.format.SampleRate != sig.Format.SampleRate || e.format.Channels != sig.Format.Channels {
		// Until the new context is up there is nothing to play on.
		e.ready = false
		if e.otoCtx != nil {
			e.otoCtx.Suspend()
			e.otoCtx = nil
		}
		op := &oto.NewContextOptions{
			SampleRate:   sig.Format.SampleRate,
			ChannelCount: sig.Format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return fmt.Errorf("create audio context: %w", err)
		}
		<-readyChan
		e.otoCtx = ctx

		logger.Info("audio output initialized",
			logger.Int("sampleRate", sig.Format.SampleRate),
			logger.Int("channels", sig.Format.Channels))
	}

	e.pcm = sig.PCM
	e.format = sig.Format
	e.ready = true
	return nil
}

// Play starts playback from the beginning of the loaded signal.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return fmt.Errorf("no signal loaded")
	}

	e.stopLocked()
	e.player = e.otoCtx.NewPlayer(bytes.NewReader(e.pcm))
	e.player.SetVolume(getVolumeMultiplier(e.volume, e.muted))
	e.player.Play()
	return nil
}

// Pause suspends playback, keeping the stream position.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != nil {
		e.player.Pause()
	}
}

// Unpause resumes playback at the suspended position.
func (e *Engine) Unpause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != nil {
		e.player.Play()
	}
}

// Stop halts playback and discards the stream position.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.player != nil {
		e.player.Pause()
		_ = e.player.Close()
		e.player = nil
	}
}

// IsBusy reports whether the device is actively producing sound.
func (e *Engine) IsBusy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player != nil && e.player.IsPlaying()
}

// IsInitialized reports whether a signal is loaded and the device is ready.
func (e *Engine) IsInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// SetVolume sets the volume (0-100).
func (e *Engine) SetVolume(volume int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = clampVolume(volume)
	if e.player != nil {
		e.player.SetVolume(getVolumeMultiplier(e.volume, e.muted))
	}
}

// Volume returns the current volume.
func (e *Engine) Volume() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// SetMuted sets mute state.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	if e.player != nil {
		e.player.SetVolume(getVolumeMultiplier(e.volume, e.muted))
	}
}

// IsMuted returns mute state.
func (e *Engine) IsMuted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close releases the output device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	if e.otoCtx != nil {
		e.otoCtx.Suspend()
	}
	e.ready = false
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}

// getVolumeMultiplier calculates the playback gain.
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
