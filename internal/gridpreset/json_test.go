package gridpreset

import (
	"reflect"
	"testing"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
)

func TestToJSON_FromJSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{
			name:     "default settings",
			settings: DefaultSettings(),
		},
		{
			name:     "zero settings",
			settings: Settings{},
		},
		{
			name: "grouping and distinguishing active",
			settings: Settings{
				Filter: FilterConfig{Mode: FilterSome, Some: SomeFilters{LPs: true, Invisible: true}},
				Pills: []SortPill{
					{Field: SortFieldReleaseDate, Direction: Desc},
					{Field: SortFieldArtist, Direction: Asc},
				},
				Grouping:  GroupConfig{Enabled: true, Field: GroupByDecade},
				HonourThe: true,
				Distinguish: func() DistinguishConfig {
					var d DistinguishConfig
					d[collection.Soundtrack] = true
					d[collection.Reissue] = true
					return d
				}(),
			},
		},
		{
			name: "named preset",
			settings: Settings{
				Filter:     FilterConfig{Mode: FilterLPs},
				Pills:      []SortPill{{Field: SortFieldListenTime, Direction: Desc}},
				PresetName: "Most played LPs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.settings.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON() error = %v", err)
			}

			got, err := FromJSON(data)
			if err != nil {
				t.Fatalf("FromJSON() error = %v", err)
			}

			if !reflect.DeepEqual(got, tt.settings) {
				t.Errorf("round trip changed settings:\ngot  %+v\nwant %+v", got, tt.settings)
			}
		})
	}
}

func TestFromJSON_ClampsInvalidValues(t *testing.T) {
	data := `{"filterMode":99,"groupEnabled":true,"groupField":-1,` +
		`"pills":[{"field":0,"direction":0},{"field":77,"direction":0},` +
		`{"field":1,"direction":9},{"field":2,"direction":1},{"field":3,"direction":0}]}`

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if got.Filter.Mode != FilterAll {
		t.Errorf("Mode = %v, want fallback to FilterAll", got.Filter.Mode)
	}
	if got.Grouping.Field != GroupByArtist {
		t.Errorf("GroupField = %v, want fallback to GroupByArtist", got.Grouping.Field)
	}
	want := []SortPill{
		{Field: SortFieldArtist, Direction: Asc},
		{Field: SortFieldTitle, Direction: Asc}, // invalid direction clamped
		{Field: SortFieldReleaseDate, Direction: Desc},
	}
	if !reflect.DeepEqual(got.Pills, want) {
		t.Errorf("Pills = %+v, want invalid field dropped and list capped at %d", got.Pills, MaxSortPills)
	}
}

func TestFromJSON_RejectsMalformedJSON(t *testing.T) {
	if _, err := FromJSON("{not json"); err == nil {
		t.Error("FromJSON() expected error for malformed input")
	}
}
