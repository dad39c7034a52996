// Package textinput provides a one-line text prompt popup.
package textinput

import (
	bubbleinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murkandloam/the-gloaming-sub002/internal/ui"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/popup"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   bubbleinput.Model
	context any // passed through to the Result action
}

// New creates a new text input model.
func New() Model {
	in := bubbleinput.New()
	in.Prompt = "> "
	in.CharLimit = 120
	return Model{input: in}
}

// Start initializes the input with a title and optional initial text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input.SetValue("")
	m.input.Blur()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			ctx := m.context
			m.input.Blur()
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}

		case "enter":
			text := m.input.Value()
			ctx := m.context
			m.input.Blur()
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	title := titleStyle().Render(m.title)
	hint := hintStyle().Render("Enter: confirm, Esc: cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
