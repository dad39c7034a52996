// Package collection defines the record model and its sqlite-backed store.
package collection

import "slices"

// Format is the physical format of a record.
type Format int

const (
	FormatLP Format = iota // default when unknown
	FormatEP
	FormatSingle
)

// FormatCount is the total number of formats.
const FormatCount = 3

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatEP:
		return "EP"
	case FormatSingle:
		return "Single"
	default:
		return "LP"
	}
}

// ParseFormat maps a stored format name to a Format. Unknown names
// fall back to LP.
func ParseFormat(s string) Format {
	switch s {
	case "EP":
		return FormatEP
	case "Single":
		return FormatSingle
	default:
		return FormatLP
	}
}

// Characteristic is a tag a record can carry. The declaration order is
// the fixed priority order used by distinguish partitioning: when a
// record carries several enabled characteristics, the lowest-valued
// one claims it.
type Characteristic int

const (
	Soundtrack Characteristic = iota
	Compilation
	Concert
	ComposerWork
	Miscellanea
	Reissue
)

// CharacteristicCount is the total number of characteristics.
const CharacteristicCount = 6

// Characteristics lists all characteristics in priority order.
func Characteristics() []Characteristic {
	return []Characteristic{Soundtrack, Compilation, Concert, ComposerWork, Miscellanea, Reissue}
}

// String returns the stored identifier of the characteristic.
func (c Characteristic) String() string {
	switch c {
	case Soundtrack:
		return "Soundtrack"
	case Compilation:
		return "Compilation"
	case Concert:
		return "Concert"
	case ComposerWork:
		return "ComposerWork"
	case Miscellanea:
		return "Miscellanea"
	case Reissue:
		return "Reissue"
	}
	return ""
}

// Label returns the plural display name used for distinguished group
// headers.
func (c Characteristic) Label() string {
	switch c {
	case Soundtrack:
		return "Soundtracks"
	case Compilation:
		return "Compilations"
	case Concert:
		return "Concerts"
	case ComposerWork:
		return "Composer Works"
	case Miscellanea:
		return "Miscellanea"
	case Reissue:
		return "Reissues"
	}
	return ""
}

// ParseCharacteristic maps a stored identifier back to a
// Characteristic. The second return is false for unknown identifiers.
func ParseCharacteristic(s string) (Characteristic, bool) {
	for _, c := range Characteristics() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Record is one release in the collection. Optional fields default to
// the zero value; readers apply documented fallbacks instead of
// erroring.
type Record struct {
	ID              int64
	Title           string
	Artist          string
	SortTitle       string // optional override for title sorting
	SortArtist      string // optional override for artist sorting
	Format          Format
	Characteristics []Characteristic
	ReleaseDate     string // free-form: "1967", "01-06-1967", "1967-06-01", ...
	CreatedAt       string // RFC3339-ish, lexicographically sortable
	ShowOnGrid      bool
	Genre           string
}

// HasCharacteristic reports whether the record carries c.
func (r *Record) HasCharacteristic(c Characteristic) bool {
	return slices.Contains(r.Characteristics, c)
}
