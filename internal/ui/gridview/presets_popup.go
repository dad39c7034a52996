package gridview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murkandloam/the-gloaming-sub002/internal/state"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/popup"
)

// Compile-time check that PresetsPopup implements popup.Popup.
var _ popup.Popup = (*PresetsPopup)(nil)

var (
	ppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	ppPresetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ppCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	ppHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	ppEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// PresetLoaded signals a preset was chosen.
type PresetLoaded struct {
	Preset state.Preset
}

// PresetDeleted signals a preset should be removed.
type PresetDeleted struct {
	ID int64
}

// PresetSaveRequested asks the grid to prompt for a preset name.
type PresetSaveRequested struct{}

// PresetsClosed signals the popup was dismissed.
type PresetsClosed struct{}

// PresetsActionMsg wraps a presets popup action.
type PresetsActionMsg any

// PresetsPopup lists saved view presets.
type PresetsPopup struct {
	presets []state.Preset
	cursor  int
	width   int
	height  int
	active  bool
}

// NewPresetsPopup creates a new presets popup.
func NewPresetsPopup() *PresetsPopup {
	return &PresetsPopup{}
}

// Show displays the presets popup.
func (p *PresetsPopup) Show(presets []state.Preset, width, height int) {
	p.presets = presets
	p.cursor = 0
	p.width = width
	p.height = height
	p.active = true
}

// Reset clears the popup state.
func (p *PresetsPopup) Reset() {
	p.presets = nil
	p.cursor = 0
	p.active = false
}

// Active returns whether the popup is currently shown.
func (p PresetsPopup) Active() bool {
	return p.active
}

// Init implements popup.Popup.
func (p *PresetsPopup) Init() tea.Cmd {
	return nil
}

// SetSize implements popup.Popup.
func (p *PresetsPopup) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetPresets replaces the listed presets, clamping the cursor.
func (p *PresetsPopup) SetPresets(presets []state.Preset) {
	p.presets = presets
	if p.cursor >= len(presets) {
		p.cursor = max(len(presets)-1, 0)
	}
}

// Update implements popup.Popup.
func (p *PresetsPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !p.active {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case keyUp, "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case keyDown, "j":
		if p.cursor < len(p.presets)-1 {
			p.cursor++
		}
	case keyEnter:
		if len(p.presets) > 0 && p.cursor < len(p.presets) {
			p.active = false
			preset := p.presets[p.cursor]
			return p, func() tea.Msg {
				return PresetsActionMsg(PresetLoaded{Preset: preset})
			}
		}
	case "s": // Save current settings as a new preset
		p.active = false
		return p, func() tea.Msg {
			return PresetsActionMsg(PresetSaveRequested{})
		}
	case "d", "delete":
		if len(p.presets) > 0 && p.cursor < len(p.presets) {
			preset := p.presets[p.cursor]
			return p, func() tea.Msg {
				return PresetsActionMsg(PresetDeleted{ID: preset.ID})
			}
		}
	case keyEsc:
		p.active = false
		return p, func() tea.Msg {
			return PresetsActionMsg(PresetsClosed{})
		}
	}
	return p, nil
}

// View implements popup.Popup.
func (p *PresetsPopup) View() string {
	if !p.active || p.width == 0 || p.height == 0 {
		return ""
	}

	title := ppTitleStyle.Render("View Presets")

	var lines []string
	if len(p.presets) == 0 {
		lines = append(lines, ppEmptyStyle.Render("  No saved presets"))
	} else {
		for i, preset := range p.presets {
			prefix := "  "
			if i == p.cursor {
				prefix = "> "
			}
			desc := describeSettings(preset.Settings)
			line := prefix + ppPresetStyle.Render(preset.Name) + " " + ppHintStyle.Render("("+desc+")")
			if i == p.cursor {
				line = ppCursorStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	list := strings.Join(lines, "\n")
	hint := ppHintStyle.Render("enter: load · s: save current · d: delete · esc: close")

	return title + "\n\n" + list + "\n\n" + hint
}
