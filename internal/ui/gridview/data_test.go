package gridview

import (
	"testing"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/projection"
)

func TestBuildFlatList_NoGroups(t *testing.T) {
	result := projection.Result{
		Flat: []collection.Record{
			{ID: 1, Title: "Forever Changes"},
			{ID: 2, Title: "Da Capo"},
		},
	}

	items := buildFlatList(result)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for i, item := range items {
		if item.IsHeader {
			t.Errorf("item %d is a header", i)
		}
	}
	if items[0].Record.ID != 1 || items[1].Record.ID != 2 {
		t.Errorf("order = [%d, %d]", items[0].Record.ID, items[1].Record.ID)
	}
}

func TestBuildFlatList_WithGroups(t *testing.T) {
	result := projection.Result{
		Flat: []collection.Record{{ID: 1}, {ID: 2}, {ID: 3}},
		Groups: []projection.Group{
			{Key: "1960s", Label: "1960s", Records: []collection.Record{{ID: 1}, {ID: 2}}},
			{Label: "Soundtracks", Distinguished: true, Records: []collection.Record{{ID: 3}}},
		},
	}

	items := buildFlatList(result)
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	if !items[0].IsHeader || items[0].Header != "1960s" || items[0].Distinguished {
		t.Errorf("item 0 = %+v", items[0])
	}
	if !items[3].IsHeader || items[3].Header != "Soundtracks" || !items[3].Distinguished {
		t.Errorf("item 3 = %+v", items[3])
	}
	if items[4].Record.ID != 3 {
		t.Errorf("item 4 record = %d, want 3", items[4].Record.ID)
	}
}

func TestBuildFlatList_HeaderlessGroupHasNoHeaderRow(t *testing.T) {
	// Distinguish without grouping puts regular records in a group
	// with an empty label.
	result := projection.Result{
		Flat: []collection.Record{{ID: 1}, {ID: 2}},
		Groups: []projection.Group{
			{Records: []collection.Record{{ID: 1}}},
			{Label: "Reissues", Distinguished: true, Records: []collection.Record{{ID: 2}}},
		},
	}

	items := buildFlatList(result)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].IsHeader {
		t.Error("headerless group produced a header row")
	}
	if !items[1].IsHeader {
		t.Error("distinguished group missing its header row")
	}
}

func TestFormatListenTime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h00m"},
		{45000, "12h30m"},
		{360000, "100h"},
	}
	for _, tt := range tests {
		if got := formatListenTime(tt.seconds); got != tt.want {
			t.Errorf("formatListenTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1967", "1967"},
		{"1967-06-01", "1967"},
		{"01-06-1967", "1967"},
		{"June 1967", "1967"},
		{"n/a", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractYear(tt.in); got != tt.want {
			t.Errorf("extractYear(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescribeSettings(t *testing.T) {
	s := gridpreset.DefaultSettings()
	got := describeSettings(s)
	if got != "All · artist asc" {
		t.Errorf("describeSettings(default) = %q", got)
	}

	s.Grouping = gridpreset.GroupConfig{Enabled: true, Field: gridpreset.GroupByDecade}
	s.Distinguish[0] = true
	s.PresetName = "Shelf"
	got = describeSettings(s)
	want := "All · artist asc · by decade · distinguished · preset: Shelf"
	if got != want {
		t.Errorf("describeSettings() = %q, want %q", got, want)
	}
}

func TestCycleFilterMode(t *testing.T) {
	mode := gridpreset.FilterAll
	seen := map[gridpreset.FilterMode]bool{}
	for range gridpreset.FilterModeCount {
		seen[mode] = true
		mode = cycleFilterMode(mode)
	}
	if mode != gridpreset.FilterAll {
		t.Errorf("cycle did not wrap: ended on %v", mode)
	}
	if len(seen) != gridpreset.FilterModeCount {
		t.Errorf("cycle visited %d modes, want %d", len(seen), gridpreset.FilterModeCount)
	}
}
