package gridview

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/errmsg"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
	"github.com/murkandloam/the-gloaming-sub002/internal/projection"
)

// Refresh reloads records from the store and rebuilds the projection.
func (m *Model) Refresh() error {
	records, err := m.store.AllRecords()
	if err != nil {
		return err
	}
	m.records = records
	m.reproject()
	return nil
}

// SetStats replaces the listen time lookup and rebuilds the
// projection, since listen time can be a sort key.
func (m *Model) SetStats(stats listenstats.Stats) {
	m.stats = stats
	m.reproject()
}

// applySettings installs new settings, rebuilds the projection and
// schedules a persisted save.
func (m *Model) applySettings(settings gridpreset.Settings) {
	m.settings = settings
	m.reproject()
	m.st.SaveViewState(m.settings)
}

// reproject reruns the projection pipeline over the cached records
// and rebuilds the flat render list.
func (m *Model) reproject() {
	m.result = projection.Project(m.records, m.settings, m.stats)
	m.flatList = buildFlatList(m.result)
	m.ensureCursorInBounds()
}

// buildFlatList turns a projection result into render rows. Without
// groups every record is a plain row; with groups each labelled group
// contributes a header row followed by its records.
func buildFlatList(result projection.Result) []Item {
	if result.Groups == nil {
		items := make([]Item, 0, len(result.Flat))
		for i := range result.Flat {
			items = append(items, Item{Record: &result.Flat[i]})
		}
		return items
	}

	var items []Item
	for gi := range result.Groups {
		g := &result.Groups[gi]
		if g.Label != "" {
			items = append(items, Item{
				IsHeader:      true,
				Header:        g.Label,
				Distinguished: g.Distinguished,
			})
		}
		for ri := range g.Records {
			items = append(items, Item{Record: &g.Records[ri]})
		}
	}
	return items
}

// shownCount returns how many records survive the filter.
func (m Model) shownCount() int {
	return len(m.result.Flat)
}

// toggleVisibility flips the selected record's grid visibility.
func (m *Model) toggleVisibility() {
	r := m.SelectedRecord()
	if r == nil {
		return
	}
	if err := m.store.SetShowOnGrid(r.ID, !r.ShowOnGrid); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpVisibilityToggle, err)
		return
	}
	if err := m.Refresh(); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpCollectionLoad, err)
	}
}

// logListen appends one listen of the selected record to the log and
// refreshes the stats lookup. With no playback clock available the
// length of an average LP side pair is assumed.
func (m *Model) logListen(now int64) {
	const listenSeconds = 2400

	r := m.SelectedRecord()
	if r == nil {
		return
	}
	if err := listenstats.Log(m.st.DB(), r.ID, listenSeconds, now); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpListenLog, err)
		return
	}
	stats, err := listenstats.Resolve(m.st.DB())
	if err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpListenResolve, err)
		return
	}
	m.SetStats(stats)
	m.statusMsg = "Listen logged: " + r.Title
}

// selectedID returns a stable identifier for the selected record, or
// 0 when none is selected.
func (m Model) selectedID() int64 {
	r := m.SelectedRecord()
	if r == nil {
		return 0
	}
	return r.ID
}

// selectByID moves the cursor to the record with the given ID if it
// is still visible.
func (m *Model) selectByID(id int64) {
	if id == 0 {
		return
	}
	for i, item := range m.flatList {
		if !item.IsHeader && item.Record != nil && item.Record.ID == id {
			m.cursor.SetPos(i)
			m.ensureCursorVisible()
			return
		}
	}
}

// cycleFilterMode advances the filter mode, wrapping around.
func cycleFilterMode(mode gridpreset.FilterMode) gridpreset.FilterMode {
	return (mode + 1) % gridpreset.FilterModeCount
}
