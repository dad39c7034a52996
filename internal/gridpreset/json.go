package gridpreset

import "encoding/json"

// sortPillJSON is the JSON representation of a SortPill.
type sortPillJSON struct {
	Field     int `json:"field"`
	Direction int `json:"direction"`
}

// settingsJSON is the JSON representation stored in the database.
type settingsJSON struct {
	FilterMode     int            `json:"filterMode"`
	SomeLPs        bool           `json:"someLPs"`
	SomeEPs        bool           `json:"someEPs"`
	SomeSingles    bool           `json:"someSingles"`
	SomeCharacters []bool         `json:"someCharacteristics"`
	SomeInvisible  bool           `json:"someInvisible"`
	Pills          []sortPillJSON `json:"pills"`
	GroupEnabled   bool           `json:"groupEnabled"`
	GroupField     int            `json:"groupField"`
	Distinguish    []bool         `json:"distinguish"`
	HonourThe      bool           `json:"honourThe"`
	PresetName     string         `json:"presetName,omitempty"`
}

// ToJSON serializes Settings to a JSON string for database storage.
func (s Settings) ToJSON() (string, error) {
	sj := settingsJSON{
		FilterMode:     int(s.Filter.Mode),
		SomeLPs:        s.Filter.Some.LPs,
		SomeEPs:        s.Filter.Some.EPs,
		SomeSingles:    s.Filter.Some.Singles,
		SomeCharacters: s.Filter.Some.Characteristics[:],
		SomeInvisible:  s.Filter.Some.Invisible,
		Pills:          make([]sortPillJSON, 0, len(s.Pills)),
		GroupEnabled:   s.Grouping.Enabled,
		GroupField:     int(s.Grouping.Field),
		Distinguish:    s.Distinguish[:],
		HonourThe:      s.HonourThe,
		PresetName:     s.PresetName,
	}
	for _, p := range s.Pills {
		sj.Pills = append(sj.Pills, sortPillJSON{Field: int(p.Field), Direction: int(p.Direction)})
	}

	data, err := json.Marshal(sj)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON deserializes Settings from a JSON string. Out-of-range
// enum values and oversized pill lists are clamped rather than
// rejected, so stale rows from older versions still load.
func FromJSON(data string) (Settings, error) {
	var sj settingsJSON
	if err := json.Unmarshal([]byte(data), &sj); err != nil {
		return Settings{}, err
	}

	s := Settings{
		Filter: FilterConfig{
			Mode: FilterMode(sj.FilterMode),
			Some: SomeFilters{
				LPs:       sj.SomeLPs,
				EPs:       sj.SomeEPs,
				Singles:   sj.SomeSingles,
				Invisible: sj.SomeInvisible,
			},
		},
		Grouping:   GroupConfig{Enabled: sj.GroupEnabled, Field: GroupField(sj.GroupField)},
		HonourThe:  sj.HonourThe,
		PresetName: sj.PresetName,
	}
	if s.Filter.Mode < 0 || s.Filter.Mode >= FilterModeCount {
		s.Filter.Mode = FilterAll
	}
	if s.Grouping.Field < 0 || s.Grouping.Field >= GroupFieldCount {
		s.Grouping.Field = GroupByArtist
	}
	copyBools(s.Filter.Some.Characteristics[:], sj.SomeCharacters)
	copyBools(s.Distinguish[:], sj.Distinguish)

	for _, p := range sj.Pills {
		if len(s.Pills) == MaxSortPills {
			break
		}
		pill := SortPill{Field: SortField(p.Field), Direction: Direction(p.Direction)}
		if pill.Field < 0 || pill.Field >= SortFieldCount {
			continue
		}
		if pill.Direction != Asc && pill.Direction != Desc {
			pill.Direction = Asc
		}
		s.Pills = append(s.Pills, pill)
	}

	return s, nil
}

func copyBools(dst []bool, src []bool) {
	for i := range dst {
		if i < len(src) {
			dst[i] = src[i]
		}
	}
}
