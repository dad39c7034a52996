// Package gridview renders the record collection as a scrollable
// grid: the projection output with separator and distinguished group
// headers, plus popups for view configuration.
package gridview

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
	"github.com/murkandloam/the-gloaming-sub002/internal/projection"
	"github.com/murkandloam/the-gloaming-sub002/internal/state"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/cursor"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/textinput"
)

// Item is one row of the flat render list: either a group header or a
// record.
type Item struct {
	IsHeader      bool
	Header        string
	Distinguished bool
	Record        *collection.Record
}

// Model is the grid view state.
type Model struct {
	store    *collection.Store
	st       state.Interface
	stats    listenstats.Stats
	settings gridpreset.Settings

	records  []collection.Record
	result   projection.Result
	flatList []Item

	cursor  cursor.Cursor
	width   int
	height  int
	focused bool

	showGenres bool

	statusMsg string

	optionsPopup *OptionsPopup
	sortPopup    *SortPopup
	presetsPopup *PresetsPopup
	nameInput    textinput.Model
	nameActive   bool
}

// New creates a grid view over the given store and state manager.
// Settings start from the persisted view state when one exists.
func New(store *collection.Store, st state.Interface) Model {
	settings := gridpreset.DefaultSettings()
	if saved, err := st.GetViewState(); err == nil && saved != nil {
		settings = *saved
	}

	return Model{
		store:        store,
		st:           st,
		settings:     settings,
		cursor:       cursor.New(ui.ScrollMargin),
		optionsPopup: NewOptionsPopup(),
		sortPopup:    NewSortPopup(),
		presetsPopup: NewPresetsPopup(),
		nameInput:    textinput.New(),
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns the focus state.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetShowGenres controls whether record rows carry their genre.
func (m *Model) SetShowGenres(show bool) {
	m.showGenres = show
}

// Settings returns the current view settings.
func (m Model) Settings() gridpreset.Settings {
	return m.settings
}

// SelectedRecord returns the record under the cursor, or nil when the
// cursor sits on a header or the list is empty.
func (m Model) SelectedRecord() *collection.Record {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.flatList) {
		return nil
	}
	item := m.flatList[pos]
	if item.IsHeader {
		return nil
	}
	return item.Record
}

// PopupActive reports whether any popup currently captures input.
func (m Model) PopupActive() bool {
	return m.optionsPopup.Active() || m.sortPopup.Active() ||
		m.presetsPopup.Active() || m.nameActive
}

// listHeight returns the number of visible list rows after the header
// and separator.
func (m Model) listHeight() int {
	return m.height - ui.PanelOverhead
}

// ensureCursorVisible keeps the cursor in view, pulling a group
// header directly above the cursor into view as well.
func (m *Model) ensureCursorVisible() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		return
	}

	pos := m.cursor.Pos()
	offset := m.cursor.Offset()

	targetOffset := pos
	if pos > 0 && pos-1 < len(m.flatList) && m.flatList[pos-1].IsHeader {
		targetOffset = pos - 1
	}

	if targetOffset < offset+ui.ScrollMargin {
		m.cursor.SetOffset(max(targetOffset-ui.ScrollMargin, 0))
	}

	if pos >= m.cursor.Offset()+listHeight-ui.ScrollMargin {
		m.cursor.SetOffset(pos - listHeight + ui.ScrollMargin + 1)
	}

	maxOffset := max(len(m.flatList)-listHeight, 0)
	m.cursor.SetOffset(max(min(m.cursor.Offset(), maxOffset), 0))
}

// ensureCursorInBounds clamps the cursor after the list changed and
// moves it off headers.
func (m *Model) ensureCursorInBounds() {
	if len(m.flatList) == 0 {
		m.cursor.Reset()
		return
	}

	pos := m.cursor.Pos()
	pos = max(min(pos, len(m.flatList)-1), 0)

	for pos < len(m.flatList) && m.flatList[pos].IsHeader {
		pos++
	}
	if pos >= len(m.flatList) {
		pos = len(m.flatList) - 1
		for pos > 0 && m.flatList[pos].IsHeader {
			pos--
		}
	}

	m.cursor.SetPos(pos)
	m.ensureCursorVisible()
}
