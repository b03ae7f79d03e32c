// ABOUTME: TUI initialization and control channels
// ABOUTME: Wraps the bubbletea program and user action plumbing
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control carries user requests from the TUI to the application loop.
type Control struct {
	Actions chan Action
	Quit    chan struct{}
}

// NewControl creates the control channels.
func NewControl() *Control {
	return &Control{
		Actions: make(chan Action, 10),
		Quit:    make(chan struct{}, 1),
	}
}

func (c *Control) request(a Action) {
	select {
	case c.Actions <- a:
	default:
		// A stuck application loop must not freeze key handling.
	}
}

func (c *Control) requestQuit() {
	select {
	case c.Quit <- struct{}{}:
	default:
	}
}

// NewModel creates a new TUI model.
func NewModel(ctrl *Control) Model {
	return Model{
		state:  "stopped",
		volume: 100,
		ctrl:   ctrl,
	}
}

// Run starts the TUI program.
func Run(ctrl *Control) *tea.Program {
	return tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
}
