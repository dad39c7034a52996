package gridview

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/popup"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/styles"
)

// Compile-time check that SortPopup implements popup.Popup.
var _ popup.Popup = (*SortPopup)(nil)

func spTitleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func spFieldStyle() lipgloss.Style {
	return styles.T().S().Base
}

func spSelectedStyle() lipgloss.Style {
	return styles.T().S().Accent.Bold(true)
}

func spCursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func spHintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func spOrderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Secondary)
}

func spAscStyle() lipgloss.Style {
	return styles.T().S().Success
}

func spDescStyle() lipgloss.Style {
	return styles.T().S().Warning
}

// SortApplied carries the edited pill list back to the grid.
type SortApplied struct {
	Pills []gridpreset.SortPill
}

// SortCanceled signals the popup was dismissed without applying.
type SortCanceled struct{}

// SortActionMsg wraps a sort popup action.
type SortActionMsg any

// SortPopup edits the priority-ordered sort pills.
type SortPopup struct {
	pills  []gridpreset.SortPill // current pills, in priority order
	cursor int                   // cursor over the field list
	width  int
	height int
	active bool
}

// NewSortPopup creates a new sort popup.
func NewSortPopup() *SortPopup {
	return &SortPopup{}
}

// Show displays the sort popup with the current pills.
func (p *SortPopup) Show(current []gridpreset.SortPill, width, height int) {
	p.pills = make([]gridpreset.SortPill, len(current))
	copy(p.pills, current)
	p.cursor = 0
	p.width = width
	p.height = height
	p.active = true
}

// Reset clears the popup state.
func (p *SortPopup) Reset() {
	p.pills = nil
	p.cursor = 0
	p.active = false
}

// Active returns whether the popup is currently shown.
func (p SortPopup) Active() bool {
	return p.active
}

// Init implements popup.Popup.
func (p *SortPopup) Init() tea.Cmd {
	return nil
}

// SetSize implements popup.Popup.
func (p *SortPopup) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// findPill returns the index of the pill with the given field, or -1.
func (p *SortPopup) findPill(field gridpreset.SortField) int {
	for i, pill := range p.pills {
		if pill.Field == field {
			return i
		}
	}
	return -1
}

// Update implements popup.Popup.
func (p *SortPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
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
		if p.cursor < gridpreset.SortFieldCount-1 {
			p.cursor++
		}
	case keySpace: // Toggle pill for the field under the cursor
		field := gridpreset.SortField(p.cursor)
		if idx := p.findPill(field); idx >= 0 {
			p.pills = slices.Delete(p.pills, idx, idx+1)
		} else if len(p.pills) < gridpreset.MaxSortPills {
			p.pills = append(p.pills, gridpreset.SortPill{Field: field, Direction: gridpreset.Asc})
		}
	case "a": // Set ascending
		if idx := p.findPill(gridpreset.SortField(p.cursor)); idx >= 0 {
			p.pills[idx].Direction = gridpreset.Asc
		}
	case "d": // Set descending
		if idx := p.findPill(gridpreset.SortField(p.cursor)); idx >= 0 {
			p.pills[idx].Direction = gridpreset.Desc
		}
	case "K", "shift+up":
		p.movePillUp()
	case "J", "shift+down":
		p.movePillDown()
	case keyEnter:
		p.active = false
		pills := make([]gridpreset.SortPill, len(p.pills))
		copy(pills, p.pills)
		return p, func() tea.Msg {
			return SortActionMsg(SortApplied{Pills: pills})
		}
	case keyEsc:
		p.active = false
		return p, func() tea.Msg {
			return SortActionMsg(SortCanceled{})
		}
	}
	return p, nil
}

// movePillUp raises the priority of the pill under the cursor.
func (p *SortPopup) movePillUp() {
	idx := p.findPill(gridpreset.SortField(p.cursor))
	if idx > 0 {
		p.pills[idx], p.pills[idx-1] = p.pills[idx-1], p.pills[idx]
	}
}

// movePillDown lowers the priority of the pill under the cursor.
func (p *SortPopup) movePillDown() {
	idx := p.findPill(gridpreset.SortField(p.cursor))
	if idx >= 0 && idx < len(p.pills)-1 {
		p.pills[idx], p.pills[idx+1] = p.pills[idx+1], p.pills[idx]
	}
}

// View implements popup.Popup.
func (p *SortPopup) View() string {
	if !p.active || p.width == 0 || p.height == 0 {
		return ""
	}

	title := spTitleStyle().Render("Grid Sorting")

	lines := make([]string, 0, gridpreset.SortFieldCount)
	for i := range gridpreset.SortFieldCount {
		field := gridpreset.SortField(i)
		name := field.Label()

		order := "    "
		orderIndicator := ""
		if idx := p.findPill(field); idx >= 0 {
			order = spOrderStyle().Render("[" + string('1'+rune(idx)) + "] ")
			if p.pills[idx].Direction == gridpreset.Asc {
				orderIndicator = spAscStyle().Render(" ↑asc")
			} else {
				orderIndicator = spDescStyle().Render(" ↓desc")
			}
		}

		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}

		var line string
		if p.findPill(field) >= 0 {
			line = prefix + order + spSelectedStyle().Render(name) + orderIndicator
		} else {
			line = prefix + order + spFieldStyle().Render(name)
		}

		if i == p.cursor {
			line = spCursorStyle().Render(line)
		}

		lines = append(lines, line)
	}

	fieldList := strings.Join(lines, "\n")

	var summary string
	if len(p.pills) == 0 {
		summary = "Unsorted (collection order)"
	} else {
		parts := make([]string, len(p.pills))
		for i, pill := range p.pills {
			parts[i] = pill.Field.Label() + " " + pill.Direction.Label()
		}
		summary = "Sort by: " + strings.Join(parts, ", ")
	}
	summaryLine := spFieldStyle().Render(summary)

	hint := spHintStyle().Render("↑↓ navigate · space toggle · a/d asc/desc · J/K reorder · enter apply")

	return title + "\n\n" + fieldList + "\n\n" + summaryLine + "\n\n" + hint
}
