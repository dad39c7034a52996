// Package gridpreset defines grid view configuration types shared
// between persistence and UI layers.
package gridpreset

import "github.com/murkandloam/the-gloaming-sub002/internal/collection"

// SortField selects the attribute a sort pill orders by.
type SortField int

const (
	SortFieldArtist SortField = iota
	SortFieldTitle
	SortFieldReleaseDate
	SortFieldDateAdded
	SortFieldListenTime
)

// SortFieldCount is the total number of sort fields.
const SortFieldCount = 5

// Label returns the display name of the sort field.
func (f SortField) Label() string {
	switch f {
	case SortFieldArtist:
		return "Artist"
	case SortFieldTitle:
		return "Title"
	case SortFieldReleaseDate:
		return "Release Date"
	case SortFieldDateAdded:
		return "Date Added"
	case SortFieldListenTime:
		return "Listen Time"
	}
	return ""
}

// Direction specifies ascending or descending order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Label returns a short display name for the direction.
func (d Direction) Label() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// SortPill is one (field, direction) entry in a priority-ordered
// multi-key sort specification.
type SortPill struct {
	Field     SortField
	Direction Direction
}

// MaxSortPills is the maximum number of pills a view carries.
const MaxSortPills = 3

// FilterMode selects which records the grid shows.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterSome
	FilterLPs
	FilterEPs
	FilterSingles
	FilterSoundtracks
	FilterCompilations
	FilterInvisible
)

// FilterModeCount is the total number of filter modes.
const FilterModeCount = 8

// Label returns the display name of the filter mode.
func (m FilterMode) Label() string {
	switch m {
	case FilterSome:
		return "Some"
	case FilterLPs:
		return "LPs"
	case FilterEPs:
		return "EPs"
	case FilterSingles:
		return "Singles"
	case FilterSoundtracks:
		return "Soundtracks"
	case FilterCompilations:
		return "Compilations"
	case FilterInvisible:
		return "Invisible"
	}
	return "All"
}

// SomeFilters holds the independent flags consulted by FilterSome:
// one per format, one per characteristic, plus Invisible which gates
// whether hidden records are ever visible at all (in every mode except
// FilterInvisible).
type SomeFilters struct {
	LPs             bool
	EPs             bool
	Singles         bool
	Characteristics [collection.CharacteristicCount]bool
	Invisible       bool
}

// FormatEnabled reports whether records of format f pass the format
// flags.
func (s SomeFilters) FormatEnabled(f collection.Format) bool {
	switch f {
	case collection.FormatEP:
		return s.EPs
	case collection.FormatSingle:
		return s.Singles
	default:
		return s.LPs
	}
}

// CharacteristicEnabled reports whether the flag for c is set.
func (s SomeFilters) CharacteristicEnabled(c collection.Characteristic) bool {
	if c < 0 || int(c) >= len(s.Characteristics) {
		return false
	}
	return s.Characteristics[c]
}

// FilterConfig pairs the active mode with the Some flags.
type FilterConfig struct {
	Mode FilterMode
	Some SomeFilters
}

// GroupField selects the attribute used for separator grouping.
type GroupField int

const (
	GroupByArtist GroupField = iota // default
	GroupByReleaseDate
	GroupByDecade
	GroupByGenre
)

// GroupFieldCount is the total number of group fields.
const GroupFieldCount = 4

// Label returns the display name of the group field.
func (f GroupField) Label() string {
	switch f {
	case GroupByReleaseDate:
		return "Release Date"
	case GroupByDecade:
		return "Decade"
	case GroupByGenre:
		return "Genre"
	}
	return "Artist"
}

// GroupConfig controls separator grouping.
type GroupConfig struct {
	Enabled bool
	Field   GroupField
}

// DistinguishConfig holds one enabled flag per characteristic. The
// priority order of characteristics is fixed by their declaration
// order in the collection package, not by any map iteration; the
// first enabled characteristic a record carries claims it.
type DistinguishConfig [collection.CharacteristicCount]bool

// Enabled reports whether c is distinguished.
func (d DistinguishConfig) Enabled(c collection.Characteristic) bool {
	if c < 0 || int(c) >= len(d) {
		return false
	}
	return d[c]
}

// Any reports whether at least one characteristic is distinguished.
func (d DistinguishConfig) Any() bool {
	for _, on := range d {
		if on {
			return true
		}
	}
	return false
}

// Toggled returns a copy of d with c flipped.
func (d DistinguishConfig) Toggled(c collection.Characteristic) DistinguishConfig {
	if c >= 0 && int(c) < len(d) {
		d[c] = !d[c]
	}
	return d
}
