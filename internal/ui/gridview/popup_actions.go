package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/murkandloam/the-gloaming-sub002/internal/errmsg"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/action"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/textinput"
)

// handleOptionsAction applies or dismisses the options popup result.
func (m Model) handleOptionsAction(msg OptionsActionMsg) (Model, tea.Cmd) {
	switch act := msg.(type) {
	case OptionsApplied:
		settings := m.settings
		settings.Filter = act.Filter
		settings.Grouping = act.Grouping
		settings.Distinguish = act.Distinguish
		settings.HonourThe = act.HonourThe
		settings.PresetName = ""
		m.applySettingsKeepingSelection(settings)
	case OptionsCanceled:
		m.optionsPopup.Reset()
	}
	return m, nil
}

// handleSortAction applies or dismisses the sort popup result.
func (m Model) handleSortAction(msg SortActionMsg) (Model, tea.Cmd) {
	switch act := msg.(type) {
	case SortApplied:
		settings := m.settings
		settings.Pills = act.Pills
		settings.PresetName = ""
		m.applySettingsKeepingSelection(settings)
	case SortCanceled:
		m.sortPopup.Reset()
	}
	return m, nil
}

// handlePresetsAction reacts to the presets popup.
func (m Model) handlePresetsAction(msg PresetsActionMsg) (Model, tea.Cmd) {
	switch act := msg.(type) {
	case PresetLoaded:
		m.applySettingsKeepingSelection(act.Preset.Settings)
		m.statusMsg = "Loaded preset: " + act.Preset.Name

	case PresetDeleted:
		if err := m.st.DeletePreset(act.ID); err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPresetDelete, err)
			return m, nil
		}
		presets, err := m.st.ListPresets()
		if err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPresetLoad, err)
			return m, nil
		}
		m.presetsPopup.SetPresets(presets)

	case PresetSaveRequested:
		m.nameActive = true
		m.nameInput.Start("Save preset as", m.settings.PresetName, nil, m.width, m.height)

	case PresetsClosed:
		m.presetsPopup.Reset()
	}
	return m, nil
}

// handleAction reacts to the preset name input.
func (m Model) handleAction(msg action.Msg) (Model, tea.Cmd) {
	result, ok := msg.Action.(textinput.Result)
	if !ok {
		return m, nil
	}

	m.nameActive = false
	m.nameInput.Reset()

	if result.Canceled || result.Text == "" {
		return m, nil
	}

	if _, err := m.st.SavePreset(result.Text, m.settings); err != nil {
		m.statusMsg = errmsg.FormatWith(errmsg.OpPresetSave, result.Text, err)
		return m, nil
	}

	settings := m.settings
	settings.PresetName = result.Text
	m.applySettings(settings)
	m.statusMsg = "Saved preset: " + result.Text
	return m, nil
}
