package gridview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/murkandloam/the-gloaming-sub002/internal/errmsg"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/action"
)

// RefreshRequestedMsg asks the app to rescan the source folders.
type RefreshRequestedMsg struct{}

// Update handles messages for the grid view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case OptionsActionMsg:
		return m.handleOptionsAction(msg)

	case SortActionMsg:
		return m.handleSortAction(msg)

	case PresetsActionMsg:
		return m.handlePresetsAction(msg)
	}

	if m.PopupActive() {
		return m.updatePopup(msg)
	}

	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// updatePopup forwards a message to whichever popup is active.
func (m Model) updatePopup(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.nameActive:
		_, cmd = m.nameInput.Update(msg)
	case m.optionsPopup.Active():
		_, cmd = m.optionsPopup.Update(msg)
	case m.sortPopup.Active():
		_, cmd = m.sortPopup.Update(msg)
	case m.presetsPopup.Active():
		_, cmd = m.presetsPopup.Update(msg)
	}
	return m, cmd
}

// handleKey processes keyboard input on the grid itself.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor.JumpStart()
		m.ensureCursorInBounds()
	case "G", "end":
		m.cursor.Jump(len(m.flatList)-1, len(m.flatList), m.listHeight())
		m.ensureCursorInBounds()
	case "ctrl+d":
		m.moveCursor(m.listHeight() / 2)
	case "ctrl+u":
		m.moveCursor(-m.listHeight() / 2)

	case "f":
		settings := m.settings
		settings.Filter.Mode = cycleFilterMode(settings.Filter.Mode)
		m.applySettingsKeepingSelection(settings)

	case "t":
		settings := m.settings
		settings.HonourThe = !settings.HonourThe
		m.applySettingsKeepingSelection(settings)

	case "o":
		m.optionsPopup.Show(m.settings, m.width, m.height)

	case "s":
		m.sortPopup.Show(m.settings.Pills, m.width, m.height)

	case "p":
		presets, err := m.st.ListPresets()
		if err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPresetLoad, err)
			return m, nil
		}
		m.presetsPopup.Show(presets, m.width, m.height)

	case "v":
		m.toggleVisibility()

	case "L":
		m.logListen(time.Now().Unix())

	case "r":
		return m, func() tea.Msg { return RefreshRequestedMsg{} }
	}

	return m, nil
}

// handleMouse processes wheel scrolling.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button { //nolint:exhaustive // Only handling wheel events
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	}
	return m, nil
}

// moveCursor moves the cursor, skipping group headers.
func (m *Model) moveCursor(delta int) {
	if len(m.flatList) == 0 {
		return
	}

	pos := m.cursor.Pos() + delta
	pos = max(min(pos, len(m.flatList)-1), 0)

	if delta > 0 {
		for pos < len(m.flatList) && m.flatList[pos].IsHeader {
			pos++
		}
	}
	if delta < 0 {
		for pos >= 0 && m.flatList[pos].IsHeader {
			pos--
		}
	}

	if pos >= 0 && pos < len(m.flatList) && !m.flatList[pos].IsHeader {
		m.cursor.SetPos(pos)
		m.ensureCursorVisible()
	}
}

// applySettingsKeepingSelection applies settings while trying to keep
// the same record selected across the rebuilt list.
func (m *Model) applySettingsKeepingSelection(settings gridpreset.Settings) {
	id := m.selectedID()
	m.applySettings(settings)
	m.selectByID(id)
}
