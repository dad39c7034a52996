// Package action defines the message envelope UI components use to
// report results to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component. ActionType identifies
// it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with its source component name.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
