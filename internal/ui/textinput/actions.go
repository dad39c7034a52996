package textinput

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/action"
)

// Result is the outcome of a text prompt.
type Result struct {
	Text     string
	Context  any  // caller-provided context passed through
	Canceled bool // true when dismissed with Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a textinput action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
