// ABOUTME: Playback-synchronized analysis updater
// ABOUTME: Owns the playback clock and the per-tick analyze-and-redraw cycle
package updater

import (
	"fmt"
	"sync"
	"time"

	"github.com/VoiceScope/voicescope-go/internal/acoustic"
	"github.com/VoiceScope/voicescope-go/internal/logger"
	"github.com/VoiceScope/voicescope-go/internal/render"
	"github.com/VoiceScope/voicescope-go/internal/session"
	"github.com/VoiceScope/voicescope-go/pkg/audio"
	"github.com/VoiceScope/voicescope-go/pkg/audio/decode"
)

// AudioEngine is the playback collaborator. The updater never decodes or
// mixes audio itself.
type AudioEngine interface {
	Load(sig *audio.Signal) error
	Play() error
	Pause()
	Unpause()
	Stop()
	IsBusy() bool
	IsInitialized() bool
}

// AnalysisEngine is the acoustic collaborator. All three computations are
// restricted to the requested window.
type AnalysisEngine interface {
	Pitch(sig *audio.Signal, from, to float64) (acoustic.PitchTrack, error)
	Intensity(sig *audio.Signal, from, to float64) (acoustic.IntensityTrack, error)
	Spectrogram(sig *audio.Signal, from, to float64) (acoustic.Spectrogram, error)
}

// Config holds updater tuning.
type Config struct {
	TimeStep     float64 // seconds per tick, default 0.1
	DynamicRange float64 // spectrogram color span in dB, default 70
}

// DefaultTimeStep is the analysis window length in seconds.
const DefaultTimeStep = 0.1

// Updater drives the analyze-and-redraw cycle in lockstep with playback.
// All operations and Tick share one mutex; the ticker serializes ticks on a
// single goroutine, so a slow analysis delays the next tick rather than
// overlapping it.
type Updater struct {
	mu       sync.Mutex
	cfg      Config
	engine   AudioEngine
	analyzer AnalysisEngine
	canvas   render.Canvas
	ticker   scheduler

	loadFile func(path string) (*audio.Signal, error)

	sess *session.Session
	// The clock is derived as ticks*TimeStep rather than accumulated, so
	// fifty 0.1s ticks land on 5.0 instead of drifting short of it.
	ticks int
}

// New creates an updater wired to its three collaborators.
func New(cfg Config, engine AudioEngine, analyzer AnalysisEngine, canvas render.Canvas) *Updater {
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = DefaultTimeStep
	}
	if cfg.DynamicRange <= 0 {
		cfg.DynamicRange = render.DefaultDynamicRange
	}

	u := &Updater{
		cfg:      cfg,
		engine:   engine,
		analyzer: analyzer,
		canvas:   canvas,
		loadFile: decode.Open,
	}
	u.ticker = NewTicker(time.Duration(cfg.TimeStep*float64(time.Second)), u.Tick)
	return u
}

// Load decodes the file at path and replaces the session. A decode failure
// leaves the prior session, clock and rendering untouched and returns a
// *LoadError. If the audio device itself rejects the decoded signal, live
// playback is already gone, so the session winds down to Stopped before the
// *LoadError is returned.
func (u *Updater) Load(path string) error {
	sig, err := u.loadFile(path)
	if err != nil {
		logger.Warn("load failed", logger.String("path", path), logger.ErrorField(err))
		return &LoadError{Path: path, Err: err}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.engine.Load(sig); err != nil {
		// The engine stops current playback before swapping devices, so
		// keep the session but stop pretending it is still playing.
		u.ticker.Stop()
		if u.sess != nil {
			u.sess.State = session.Stopped
		}
		logger.Warn("audio engine rejected signal",
			logger.String("path", path), logger.ErrorField(err))
		return &LoadError{Path: path, Err: err}
	}

	u.ticker.Stop()
	u.sess = session.New(path, sig)
	u.ticks = 0
	u.canvas.Clear()
	u.canvas.Flush()

	logger.Info("audio file loaded",
		logger.String("session", u.sess.ID),
		logger.String("path", path),
		logger.Float64("duration", sig.Duration()),
		logger.Int("sampleRate", sig.Format.SampleRate))
	return nil
}

// Play starts or resumes playback and the tick schedule. From Paused the
// clock is preserved; otherwise playback restarts from zero.
func (u *Updater) Play() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.sess == nil {
		return ErrNoAudioLoaded
	}

	if u.sess.State == session.Paused {
		u.engine.Unpause()
		u.sess.State = session.Playing
		u.ticker.Start()
		logger.Info("playback resumed",
			logger.String("session", u.sess.ID),
			logger.Float64("time", u.clockLocked()))
		return nil
	}

	if err := u.engine.Play(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	u.ticks = 0
	u.sess.State = session.Playing
	u.ticker.Start()
	logger.Info("playback started", logger.String("session", u.sess.ID))
	return nil
}

// Pause halts playback and the tick schedule, preserving the clock. No-op
// unless Playing; calling it twice equals calling it once.
func (u *Updater) Pause() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.sess == nil || u.sess.State != session.Playing {
		return
	}
	u.engine.Pause()
	u.ticker.Stop()
	u.sess.State = session.Paused
	logger.Info("playback paused",
		logger.String("session", u.sess.ID),
		logger.Float64("time", u.clockLocked()))
}

// Stop halts playback and the schedule unconditionally, resets the clock
// and clears the rendered view.
func (u *Updater) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.engine.Stop()
	u.ticker.Stop()
	u.ticks = 0
	if u.sess != nil {
		u.sess.State = session.Stopped
	}
	u.canvas.Clear()
	u.canvas.Flush()
	logger.Info("playback stopped")
}

// Tick runs one analyze-and-redraw cycle. Invoked by the ticker while
// Playing; any failure besides end-of-audio and an empty window is logged
// and the schedule keeps running.
func (u *Updater) Tick() {
	u.mu.Lock()
	defer u.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tick panicked", logger.String("panic", fmt.Sprint(r)))
		}
	}()

	if u.sess == nil || u.sess.State != session.Playing {
		return
	}

	// Natural end of playback: halt the schedule but leave the clock and
	// the last rendered frame in place, unlike an explicit Stop.
	if !u.engine.IsBusy() {
		u.ticker.Stop()
		u.sess.State = session.Stopped
		logger.Info("playback finished",
			logger.String("session", u.sess.ID),
			logger.Float64("time", u.clockLocked()))
		return
	}

	from := u.clockLocked()
	to := float64(u.ticks+1) * u.cfg.TimeStep

	if len(u.sess.Signal.Slice(from, to)) == 0 {
		u.ticker.Stop()
		u.sess.State = session.Stopped
		logger.Info("window empty, halting updates",
			logger.String("session", u.sess.ID),
			logger.Float64("from", from),
			logger.ErrorField(ErrEmptyWindow))
		return
	}

	sg, err := u.analyzer.Spectrogram(u.sess.Signal, from, to)
	if err != nil {
		u.logTransient("spectrogram", from, err)
		return
	}
	pt, err := u.analyzer.Pitch(u.sess.Signal, from, to)
	if err != nil {
		u.logTransient("pitch", from, err)
		return
	}
	it, err := u.analyzer.Intensity(u.sess.Signal, from, to)
	if err != nil {
		u.logTransient("intensity", from, err)
		return
	}

	render.DrawFrame(u.canvas, sg, pt, it, u.cfg.DynamicRange)
	u.ticks++
}

func (u *Updater) logTransient(stage string, from float64, err error) {
	logger.Warn("tick failed, continuing",
		logger.String("stage", stage),
		logger.Float64("from", from),
		logger.ErrorField(err))
}

// CurrentTime returns the playback clock in seconds.
func (u *Updater) CurrentTime() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.clockLocked()
}

func (u *Updater) clockLocked() float64 {
	return float64(u.ticks) * u.cfg.TimeStep
}

// State returns the current playback state.
func (u *Updater) State() session.State {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.sess == nil {
		return session.Stopped
	}
	return u.sess.State
}

// Session returns the loaded session, or nil.
func (u *Updater) Session() *session.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sess
}

// SchedulerRunning reports whether the tick schedule is active.
func (u *Updater) SchedulerRunning() bool {
	return u.ticker.Running()
}

// TimeStep returns the configured window length in seconds.
func (u *Updater) TimeStep() float64 {
	return u.cfg.TimeStep
}
