package projection

import (
	"testing"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

func allSomeFilters() gridpreset.SomeFilters {
	s := gridpreset.SomeFilters{LPs: true, EPs: true, Singles: true}
	for i := range s.Characteristics {
		s.Characteristics[i] = true
	}
	return s
}

func ids(records []collection.Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_VisibilityGate(t *testing.T) {
	records := []collection.Record{
		{ID: 1, ShowOnGrid: true},
		{ID: 2, ShowOnGrid: false},
		{ID: 3, ShowOnGrid: true},
	}

	tests := []struct {
		name      string
		mode      gridpreset.FilterMode
		invisible bool
		want      []int64
	}{
		{"hidden dropped by default", gridpreset.FilterAll, false, []int64{1, 3}},
		{"invisible flag keeps hidden", gridpreset.FilterAll, true, []int64{1, 2, 3}},
		{"invisible mode shows only hidden", gridpreset.FilterInvisible, false, []int64{2}},
		{"invisible mode ignores the flag", gridpreset.FilterInvisible, true, []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			some := allSomeFilters()
			some.Invisible = tt.invisible
			got := Filter(records, gridpreset.FilterConfig{Mode: tt.mode, Some: some})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilter_FormatModes(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Format: collection.FormatLP, ShowOnGrid: true},
		{ID: 2, Format: collection.FormatEP, ShowOnGrid: true},
		{ID: 3, Format: collection.FormatSingle, ShowOnGrid: true},
	}

	tests := []struct {
		name string
		mode gridpreset.FilterMode
		want []int64
	}{
		{"all keeps everything", gridpreset.FilterAll, []int64{1, 2, 3}},
		{"lps", gridpreset.FilterLPs, []int64{1}},
		{"eps", gridpreset.FilterEPs, []int64{2}},
		{"singles", gridpreset.FilterSingles, []int64{3}},
		{"unknown mode falls back to all", gridpreset.FilterMode(99), []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, gridpreset.FilterConfig{Mode: tt.mode, Some: allSomeFilters()})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilter_CharacteristicModes(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Characteristics: []collection.Characteristic{collection.Soundtrack}, ShowOnGrid: true},
		{ID: 2, Characteristics: []collection.Characteristic{collection.Compilation}, ShowOnGrid: true},
		{ID: 3, ShowOnGrid: true},
	}

	cfg := gridpreset.FilterConfig{Mode: gridpreset.FilterSoundtracks, Some: allSomeFilters()}
	if got := ids(Filter(records, cfg)); !equalIDs(got, []int64{1}) {
		t.Errorf("soundtracks mode ids = %v, want [1]", got)
	}

	cfg.Mode = gridpreset.FilterCompilations
	if got := ids(Filter(records, cfg)); !equalIDs(got, []int64{2}) {
		t.Errorf("compilations mode ids = %v, want [2]", got)
	}
}

func TestFilter_SomeMode(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Format: collection.FormatLP, ShowOnGrid: true},
		{ID: 2, Format: collection.FormatEP, ShowOnGrid: true},
		{ID: 3, Format: collection.FormatLP, ShowOnGrid: true,
			Characteristics: []collection.Characteristic{collection.Soundtrack}},
		{ID: 4, Format: collection.FormatLP, ShowOnGrid: true,
			Characteristics: []collection.Characteristic{collection.Soundtrack, collection.Reissue}},
	}

	tests := []struct {
		name  string
		tweak func(*gridpreset.SomeFilters)
		want  []int64
	}{
		{
			name:  "everything enabled keeps everything",
			tweak: func(s *gridpreset.SomeFilters) {},
			want:  []int64{1, 2, 3, 4},
		},
		{
			name:  "format flag excludes that format",
			tweak: func(s *gridpreset.SomeFilters) { s.EPs = false },
			want:  []int64{1, 3, 4},
		},
		{
			name: "carried characteristic with disabled flag excludes",
			tweak: func(s *gridpreset.SomeFilters) {
				s.Characteristics[collection.Soundtrack] = false
			},
			want: []int64{1, 2},
		},
		{
			name: "every carried characteristic is checked independently",
			tweak: func(s *gridpreset.SomeFilters) {
				s.Characteristics[collection.Reissue] = false
			},
			want: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			some := allSomeFilters()
			tt.tweak(&some)
			got := Filter(records, gridpreset.FilterConfig{Mode: gridpreset.FilterSome, Some: some})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrderWithoutDedup(t *testing.T) {
	records := []collection.Record{
		{ID: 5, ShowOnGrid: true},
		{ID: 1, ShowOnGrid: true},
		{ID: 9, ShowOnGrid: true},
	}
	got := Filter(records, gridpreset.FilterConfig{Mode: gridpreset.FilterAll, Some: allSomeFilters()})
	if !equalIDs(ids(got), []int64{5, 1, 9}) {
		t.Errorf("Filter() ids = %v, want input order [5 1 9]", ids(got))
	}
}
