package gridpreset

// Settings holds the complete grid view configuration.
type Settings struct {
	Filter      FilterConfig
	Pills       []SortPill // priority order, at most MaxSortPills
	Grouping    GroupConfig
	Distinguish DistinguishConfig
	HonourThe   bool // when false, a leading "The " is stripped from sort and group keys
	PresetName  string
}

// DefaultSettings returns the default grid view settings: every record
// shown, sorted by artist ascending, no grouping, no distinguishing,
// articles stripped.
func DefaultSettings() Settings {
	some := SomeFilters{LPs: true, EPs: true, Singles: true}
	for i := range some.Characteristics {
		some.Characteristics[i] = true
	}
	return Settings{
		Filter: FilterConfig{Mode: FilterAll, Some: some},
		Pills: []SortPill{
			{Field: SortFieldArtist, Direction: Asc},
		},
	}
}
