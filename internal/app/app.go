// ABOUTME: Main application orchestration
// ABOUTME: Wires dialog, playback, analysis, rendering and the TUI together
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VoiceScope/voicescope-go/internal/acoustic"
	"github.com/VoiceScope/voicescope-go/internal/dialog"
	"github.com/VoiceScope/voicescope-go/internal/logger"
	"github.com/VoiceScope/voicescope-go/internal/player"
	"github.com/VoiceScope/voicescope-go/internal/render"
	"github.com/VoiceScope/voicescope-go/internal/session"
	"github.com/VoiceScope/voicescope-go/internal/ui"
	"github.com/VoiceScope/voicescope-go/internal/updater"
	tea "github.com/charmbracelet/bubbletea"
)

// Config holds application configuration.
type Config struct {
	InitialFile  string
	TimeStep     float64
	DynamicRange float64
	NoTUI        bool
	PaneWidth    int
	PaneHeight   int
}

// App owns the running application.
type App struct {
	cfg    Config
	engine *player.Engine
	upd    *updater.Updater
	ctrl   *ui.Control
	prog   *tea.Program
}

// New creates the application.
func New(cfg Config) *App {
	if cfg.PaneWidth == 0 {
		cfg.PaneWidth = 72
	}
	if cfg.PaneHeight == 0 {
		cfg.PaneHeight = 6
	}
	return &App{
		cfg:    cfg,
		engine: player.NewEngine(),
	}
}

// Run starts the application and blocks until quit.
func (a *App) Run() error {
	if a.cfg.NoTUI {
		return a.runHeadless()
	}
	return a.runTUI()
}

func (a *App) runTUI() error {
	a.ctrl = ui.NewControl()
	a.prog = ui.Run(a.ctrl)

	canvas := render.NewTextCanvas(a.cfg.PaneWidth, a.cfg.PaneHeight, func(frame string) {
		a.prog.Send(ui.FrameMsg{Frame: frame})
	})
	a.upd = updater.New(updater.Config{
		TimeStep:     a.cfg.TimeStep,
		DynamicRange: a.cfg.DynamicRange,
	}, a.engine, acoustic.NewEngine(), canvas)

	tuiDone := make(chan error, 1)
	go func() {
		_, err := a.prog.Run()
		tuiDone <- err
	}()

	if a.cfg.InitialFile != "" {
		if err := a.upd.Load(a.cfg.InitialFile); err != nil {
			a.prog.Send(ui.StatusMsg{Err: err.Error()})
		}
	}

	go a.handleActions()
	go a.statusLoop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-a.ctrl.Quit:
		logger.Info("quit requested from TUI")
	case <-sigChan:
		logger.Info("shutdown signal received")
	case err := <-tuiDone:
		if err != nil {
			logger.Error("TUI terminated", logger.ErrorField(err))
		}
	}

	a.upd.Stop()
	a.engine.Close()
	a.prog.Quit()
	return nil
}

// runHeadless plays one file to completion, logging per-tick pane summaries.
func (a *App) runHeadless() error {
	if a.cfg.InitialFile == "" {
		return fmt.Errorf("headless mode requires a file argument")
	}

	a.upd = updater.New(updater.Config{
		TimeStep:     a.cfg.TimeStep,
		DynamicRange: a.cfg.DynamicRange,
	}, a.engine, acoustic.NewEngine(), render.NewLogCanvas())

	if err := a.upd.Load(a.cfg.InitialFile); err != nil {
		return err
	}
	if err := a.upd.Play(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-sigChan:
			logger.Info("shutdown signal received")
			a.upd.Stop()
			a.engine.Close()
			return nil
		case <-poll.C:
			if !a.upd.SchedulerRunning() {
				logger.Info("playback complete",
					logger.Float64("finalTime", a.upd.CurrentTime()))
				a.engine.Close()
				return nil
			}
		}
	}
}

// handleActions processes user requests from the TUI.
func (a *App) handleActions() {
	for action := range a.ctrl.Actions {
		switch action {
		case ui.ActionOpen:
			a.openFile()
		case ui.ActionPlayPause:
			a.playPause()
		case ui.ActionStop:
			a.upd.Stop()
		case ui.ActionVolumeUp:
			a.engine.SetVolume(a.engine.Volume() + 5)
		case ui.ActionVolumeDown:
			a.engine.SetVolume(a.engine.Volume() - 5)
		case ui.ActionToggleMute:
			a.engine.SetMuted(!a.engine.IsMuted())
		}
	}
}

func (a *App) openFile() {
	path, err := dialog.OpenAudioFile()
	if err != nil {
		a.prog.Send(ui.StatusMsg{Err: err.Error()})
		return
	}
	if path == "" {
		return // cancelled
	}
	if err := a.upd.Load(path); err != nil {
		a.prog.Send(ui.StatusMsg{Err: err.Error()})
		return
	}
	a.prog.Send(ui.StatusMsg{ClearErr: true})
}

func (a *App) playPause() {
	if a.upd.State() == session.Playing {
		a.upd.Pause()
		return
	}
	if err := a.upd.Play(); err != nil {
		a.prog.Send(ui.StatusMsg{Err: err.Error()})
		return
	}
	a.prog.Send(ui.StatusMsg{ClearErr: true})
}

// statusLoop periodically pushes playback status to the TUI.
func (a *App) statusLoop() {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		msg := ui.StatusMsg{
			State:     a.upd.State().String(),
			Clock:     a.upd.CurrentTime(),
			Volume:    a.engine.Volume(),
			Muted:     a.engine.IsMuted(),
			HasVolume: true,
		}
		if sess := a.upd.Session(); sess != nil {
			msg.FileName = sess.Name()
			msg.SessionID = sess.ID
			msg.Duration = sess.Signal.Duration()
		}
		a.prog.Send(msg)
	}
}
