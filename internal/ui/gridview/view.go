package gridview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/icons"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/popup"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/render"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/styles"
)

const (
	artistColumnWidth = 28
	recordIndent      = "   "
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("39"))

	distinguishedHeaderStyle = lipgloss.NewStyle().Bold(true).
					Foreground(lipgloss.Color("179"))

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View renders the grid view.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - 2
	innerHeight := m.height - 2
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	list := m.renderList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + list

	base := styles.PanelStyle(m.focused).
		Width(innerWidth).
		Height(innerHeight).
		Render(content)

	if view := m.activePopupView(); view != "" {
		box := popup.RenderBordered(view, m.width, m.height, popup.SizeAuto)
		return popup.Compose(base, box, m.width, m.height)
	}

	return base
}

// activePopupView returns the rendered content of the active popup.
func (m Model) activePopupView() string {
	switch {
	case m.nameActive:
		return m.nameInput.View()
	case m.optionsPopup.Active():
		return m.optionsPopup.View()
	case m.sortPopup.Active():
		return m.sortPopup.View()
	case m.presetsPopup.Active():
		return m.presetsPopup.View()
	}
	return ""
}

// renderHeader renders the top line with counts and active settings.
func (m Model) renderHeader(width int) string {
	left := fmt.Sprintf("Records · %s shown · %s",
		humanize.Comma(int64(m.shownCount())), describeSettings(m.settings))
	right := ""
	if m.statusMsg != "" {
		right = dimStyle.Render(render.Truncate(m.statusMsg, width/2))
	}
	if right == "" {
		return render.TruncateAndPad(left, width)
	}
	return render.Row(render.Truncate(left, width/2), right, width)
}

// renderList renders the visible portion of the flat list.
func (m Model) renderList(width, height int) string {
	if len(m.flatList) == 0 {
		return m.renderEmpty(width, height)
	}

	lines := make([]string, 0, height)

	offset := m.cursor.Offset()
	cursorPos := m.cursor.Pos()
	for i := offset; i < len(m.flatList) && len(lines) < height; i++ {
		item := m.flatList[i]
		if item.IsHeader {
			lines = append(lines, m.renderGroupHeader(item, width))
		} else {
			isCursor := i == cursorPos && m.focused
			lines = append(lines, m.renderRecordLine(item.Record, width, isCursor))
		}
	}

	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}

	return strings.Join(lines, "\n")
}

// renderEmpty renders the empty state.
func (m Model) renderEmpty(width, height int) string {
	lines := make([]string, 0, height)

	for range height / 2 {
		lines = append(lines, render.EmptyLine(width))
	}

	msg := "No records match the current filter"
	if len(m.records) == 0 {
		msg = "Collection is empty · press r to scan source folders"
	}
	lines = append(lines, dimStyle.Render(render.TruncateAndPad(msg, width)))

	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}

	return strings.Join(lines, "\n")
}

// renderGroupHeader renders a group header with an extending rule.
// Format: "── 1960s ──────────────"
func (m Model) renderGroupHeader(item Item, width int) string {
	prefix := "── " + icons.Group()
	suffix := " "
	labelWidth := lipgloss.Width(prefix) + lipgloss.Width(item.Header) + lipgloss.Width(suffix)
	remaining := max(width-labelWidth, 0)
	line := prefix + item.Header + suffix + strings.Repeat("─", remaining)

	if item.Distinguished {
		return distinguishedHeaderStyle.Render(line)
	}
	return headerStyle.Render(line)
}

// renderRecordLine renders one record with a two-column layout:
// [indent]Artist                      Title (year) · fmt · listen time
func (m Model) renderRecordLine(r *collection.Record, width int, isCursor bool) string {
	availableWidth := width - len(recordIndent)

	artist := r.Artist
	if m.settings.Grouping.Enabled && m.settings.Grouping.Field == gridpreset.GroupByArtist {
		artist = "" // redundant under an artist header
	}
	artistCol := render.TruncateAndPad(artist, artistColumnWidth)

	titleColWidth := max(availableWidth-artistColumnWidth, 0)

	text := icons.Record() + r.Title
	if year := extractYear(r.ReleaseDate); year != "" {
		text += fmt.Sprintf(" (%s)", year)
	}
	if r.Format != collection.FormatLP {
		text += " · " + r.Format.String()
	}
	if m.showGenres && r.Genre != "" {
		text += " · " + r.Genre
	}
	if secs := m.stats.TotalSeconds(r.ID); secs > 0 {
		text += " · " + icons.Listen() + formatListenTime(secs)
	}
	if !r.ShowOnGrid {
		text += " · " + icons.Hidden() + "hidden"
	}
	titleCol := render.TruncateAndPad(text, titleColWidth)

	if isCursor {
		return cursorStyle.Render(recordIndent + artistCol + titleCol)
	}
	return recordIndent + artistStyle.Render(artistCol) + titleStyle.Render(titleCol)
}

// describeSettings summarises settings for the header and the presets
// popup.
func describeSettings(s gridpreset.Settings) string {
	parts := []string{s.Filter.Mode.Label()}

	if len(s.Pills) > 0 {
		pills := make([]string, len(s.Pills))
		for i, pill := range s.Pills {
			pills[i] = strings.ToLower(pill.Field.Label()) + " " + pill.Direction.Label()
		}
		parts = append(parts, strings.Join(pills, ", "))
	}

	if s.Grouping.Enabled {
		parts = append(parts, "by "+strings.ToLower(s.Grouping.Field.Label()))
	}
	if s.Distinguish.Any() {
		parts = append(parts, "distinguished")
	}
	if s.PresetName != "" {
		parts = append(parts, "preset: "+s.PresetName)
	}

	return strings.Join(parts, " · ")
}

// formatListenTime renders aggregate listen time compactly: "45m",
// "12h30m", "100h".
func formatListenTime(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours >= 100:
		return fmt.Sprintf("%dh", hours)
	case hours > 0:
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func extractYear(date string) string {
	for i := 0; i+4 <= len(date); i++ {
		if isDigits(date[i : i+4]) {
			return date[i : i+4]
		}
	}
	return ""
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
