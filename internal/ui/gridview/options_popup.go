package gridview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/popup"
)

// Key constants for popup navigation.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySpace = " "
)

// Compile-time check that OptionsPopup implements popup.Popup.
var _ popup.Popup = (*OptionsPopup)(nil)

var (
	opTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	opSectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	opRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	opCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	opValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	opHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Popup rows, in display order. The characteristic flag rows and the
// distinguish rows each span CharacteristicCount consecutive values.
const (
	rowFilterMode = iota
	rowFlagLPs
	rowFlagEPs
	rowFlagSingles
	rowFlagCharFirst
	rowFlagCharLast   = rowFlagCharFirst + collection.CharacteristicCount - 1
	rowFlagInvisible  = rowFlagCharLast + 1
	rowGrouping       = rowFlagInvisible + 1
	rowHonourThe      = rowGrouping + 1
	rowDistFirst      = rowHonourThe + 1
	rowDistLast       = rowDistFirst + collection.CharacteristicCount - 1
	optionsPopupRows  = rowDistLast + 1
)

// OptionsApplied carries the edited settings sections back to the
// grid.
type OptionsApplied struct {
	Filter      gridpreset.FilterConfig
	Grouping    gridpreset.GroupConfig
	Distinguish gridpreset.DistinguishConfig
	HonourThe   bool
}

// OptionsCanceled signals the popup was dismissed without applying.
type OptionsCanceled struct{}

// OptionsActionMsg wraps an options popup action.
type OptionsActionMsg any

// OptionsPopup edits filtering, grouping and distinguish settings on
// a working copy, applied atomically on enter.
type OptionsPopup struct {
	filter      gridpreset.FilterConfig
	grouping    gridpreset.GroupConfig
	distinguish gridpreset.DistinguishConfig
	honourThe   bool

	cursor int
	width  int
	height int
	active bool
}

// NewOptionsPopup creates a new options popup.
func NewOptionsPopup() *OptionsPopup {
	return &OptionsPopup{}
}

// Show displays the popup seeded with the current settings.
func (p *OptionsPopup) Show(s gridpreset.Settings, width, height int) {
	p.filter = s.Filter
	p.grouping = s.Grouping
	p.distinguish = s.Distinguish
	p.honourThe = s.HonourThe
	p.cursor = 0
	p.width = width
	p.height = height
	p.active = true
}

// Reset clears the popup state.
func (p *OptionsPopup) Reset() {
	p.cursor = 0
	p.active = false
}

// Active returns whether the popup is currently shown.
func (p OptionsPopup) Active() bool {
	return p.active
}

// Init implements popup.Popup.
func (p *OptionsPopup) Init() tea.Cmd {
	return nil
}

// SetSize implements popup.Popup.
func (p *OptionsPopup) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update implements popup.Popup.
func (p *OptionsPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
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
		if p.cursor < optionsPopupRows-1 {
			p.cursor++
		}
	case keySpace:
		p.toggleRow()
	case "l", "right":
		p.cycleRow(1)
	case "h", "left":
		p.cycleRow(-1)
	case keyEnter:
		p.active = false
		applied := OptionsApplied{
			Filter:      p.filter,
			Grouping:    p.grouping,
			Distinguish: p.distinguish,
			HonourThe:   p.honourThe,
		}
		return p, func() tea.Msg {
			return OptionsActionMsg(applied)
		}
	case keyEsc:
		p.active = false
		return p, func() tea.Msg {
			return OptionsActionMsg(OptionsCanceled{})
		}
	}
	return p, nil
}

// toggleRow flips the flag under the cursor; cycle rows advance
// instead.
func (p *OptionsPopup) toggleRow() {
	switch {
	case p.cursor == rowFilterMode || p.cursor == rowGrouping:
		p.cycleRow(1)
	case p.cursor == rowFlagLPs:
		p.filter.Some.LPs = !p.filter.Some.LPs
	case p.cursor == rowFlagEPs:
		p.filter.Some.EPs = !p.filter.Some.EPs
	case p.cursor == rowFlagSingles:
		p.filter.Some.Singles = !p.filter.Some.Singles
	case p.cursor >= rowFlagCharFirst && p.cursor <= rowFlagCharLast:
		i := p.cursor - rowFlagCharFirst
		p.filter.Some.Characteristics[i] = !p.filter.Some.Characteristics[i]
	case p.cursor == rowFlagInvisible:
		p.filter.Some.Invisible = !p.filter.Some.Invisible
	case p.cursor == rowHonourThe:
		p.honourThe = !p.honourThe
	case p.cursor >= rowDistFirst && p.cursor <= rowDistLast:
		i := p.cursor - rowDistFirst
		p.distinguish[i] = !p.distinguish[i]
	}
}

// cycleRow advances multi-valued rows in the given direction.
func (p *OptionsPopup) cycleRow(delta int) {
	switch p.cursor {
	case rowFilterMode:
		n := int(gridpreset.FilterModeCount)
		p.filter.Mode = gridpreset.FilterMode((int(p.filter.Mode) + delta + n) % n)
	case rowGrouping:
		// Cycle through: off, then each group field.
		states := gridpreset.GroupFieldCount + 1
		cur := 0
		if p.grouping.Enabled {
			cur = int(p.grouping.Field) + 1
		}
		cur = (cur + delta + states) % states
		if cur == 0 {
			p.grouping.Enabled = false
		} else {
			p.grouping.Enabled = true
			p.grouping.Field = gridpreset.GroupField(cur - 1)
		}
	}
}

// View implements popup.Popup.
func (p *OptionsPopup) View() string {
	if !p.active || p.width == 0 || p.height == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, opTitleStyle.Render("View Options"), "")

	lines = append(lines, opSectionStyle.Render("Filter"))
	lines = append(lines, p.renderCycleRow(rowFilterMode, "Mode", p.filter.Mode.Label()))
	lines = append(lines, p.renderFlagRow(rowFlagLPs, "LPs", p.filter.Some.LPs))
	lines = append(lines, p.renderFlagRow(rowFlagEPs, "EPs", p.filter.Some.EPs))
	lines = append(lines, p.renderFlagRow(rowFlagSingles, "Singles", p.filter.Some.Singles))
	for i, c := range collection.Characteristics() {
		lines = append(lines, p.renderFlagRow(rowFlagCharFirst+i, c.Label(), p.filter.Some.Characteristics[i]))
	}
	lines = append(lines, p.renderFlagRow(rowFlagInvisible, "Include hidden", p.filter.Some.Invisible))

	lines = append(lines, "", opSectionStyle.Render("Grouping"))
	lines = append(lines, p.renderCycleRow(rowGrouping, "Group by", p.groupingLabel()))
	lines = append(lines, p.renderFlagRow(rowHonourThe, `Honour "The"`, p.honourThe))

	lines = append(lines, "", opSectionStyle.Render("Distinguish"))
	for i, c := range collection.Characteristics() {
		lines = append(lines, p.renderFlagRow(rowDistFirst+i, c.Label(), p.distinguish[i]))
	}

	lines = append(lines, "", opHintStyle.Render("space: toggle  h/l: cycle  enter: apply  esc: cancel"))

	return strings.Join(lines, "\n")
}

// groupingLabel returns the display value of the grouping row.
func (p *OptionsPopup) groupingLabel() string {
	if !p.grouping.Enabled {
		return "Off"
	}
	return p.grouping.Field.Label()
}

func (p *OptionsPopup) renderFlagRow(row int, label string, set bool) string {
	check := "[ ]"
	if set {
		check = "[x]"
	}
	line := "  " + check + " " + label
	if row == p.cursor {
		return opCursorStyle.Render(line)
	}
	return opRowStyle.Render(line)
}

func (p *OptionsPopup) renderCycleRow(row int, label, value string) string {
	line := "  " + label + ": "
	if row == p.cursor {
		return opCursorStyle.Render(line + "< " + value + " >")
	}
	return opRowStyle.Render(line) + opValueStyle.Render(value)
}
