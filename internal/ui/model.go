// ABOUTME: Bubbletea model for the analysis TUI
// ABOUTME: Defines application state, key handling and the view
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is a user request forwarded to the application loop.
type Action int

const (
	ActionOpen Action = iota
	ActionPlayPause
	ActionStop
	ActionVolumeUp
	ActionVolumeDown
	ActionToggleMute
)

// FrameMsg carries one rendered analysis frame.
type FrameMsg struct {
	Frame string
}

// StatusMsg updates the status line. Zero-valued fields are ignored.
type StatusMsg struct {
	FileName  string
	SessionID string
	Duration  float64
	State     string
	Clock     float64
	Volume    int
	HasVolume bool
	Muted     bool
	Err       string
	ClearErr  bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model represents the TUI state.
type Model struct {
	fileName  string
	sessionID string
	duration  float64
	state     string
	clock     float64
	volume    int
	muted     bool
	lastErr   string

	frame string

	width  int
	height int

	ctrl *Control
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case FrameMsg:
		m.frame = msg.Frame
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := headerStyle.Render("VoiceScope — Voice Analysis and Playback") + "\n"
	s += m.renderStatus() + "\n"

	if m.frame == "" {
		s += statusStyle.Render("No analysis yet. Press o to open an audio file, space to play.") + "\n"
	} else {
		s += m.frame + "\n"
	}

	if m.lastErr != "" {
		s += errStyle.Render("error: "+m.lastErr) + "\n"
	}

	s += helpStyle.Render("o:Open  space:Play/Pause  s:Stop  ↑/↓:Volume  m:Mute  q:Quit")
	return s
}

func (m Model) renderStatus() string {
	file := m.fileName
	if file == "" {
		file = "(no file)"
	}

	mute := ""
	if m.muted {
		mute = " muted"
	}

	sess := ""
	if len(m.sessionID) >= 8 {
		sess = "  [" + m.sessionID[:8] + "]"
	}

	return statusStyle.Render(fmt.Sprintf("%s  %s  t=%.1fs / %.1fs  vol %d%%%s%s",
		file, m.state, m.clock, m.duration, m.volume, mute, sess))
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.requestQuit()
		return m, tea.Quit
	case "o":
		m.ctrl.request(ActionOpen)
	case " ":
		m.ctrl.request(ActionPlayPause)
	case "s":
		m.ctrl.request(ActionStop)
	case "up":
		m.ctrl.request(ActionVolumeUp)
	case "down":
		m.ctrl.request(ActionVolumeDown)
	case "m":
		m.ctrl.request(ActionToggleMute)
	}

	return m, nil
}

// applyStatus updates model fields from a status message.
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.FileName != "" {
		m.fileName = msg.FileName
	}
	if msg.SessionID != "" {
		m.sessionID = msg.SessionID
	}
	if msg.Duration != 0 {
		m.duration = msg.Duration
	}
	if msg.State != "" {
		m.state = msg.State
		m.clock = msg.Clock
	}
	if msg.HasVolume {
		m.volume = msg.Volume
		m.muted = msg.Muted
	}
	if msg.Err != "" {
		m.lastErr = msg.Err
	}
	if msg.ClearErr {
		m.lastErr = ""
	}
}
