package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
)

func pills(ps ...gridpreset.SortPill) []gridpreset.SortPill { return ps }

func asc(f gridpreset.SortField) gridpreset.SortPill {
	return gridpreset.SortPill{Field: f, Direction: gridpreset.Asc}
}

func desc(f gridpreset.SortField) gridpreset.SortPill {
	return gridpreset.SortPill{Field: f, Direction: gridpreset.Desc}
}

func TestSort_ArtistWithArticleStripping(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Artist: "The Beatles", ReleaseDate: "1967"},
		{ID: 2, Artist: "ABBA", ReleaseDate: "1975"},
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldArtist)), nil, false)
	assert.Equal(t, []int64{2, 1}, ids(got), "ABBA should sort before The Beatles")
}

func TestSort_TitleArticleChangesOrder(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Title: "The Who"},
		{ID: 2, Title: "Velvet Underground"},
	}
	pill := pills(asc(gridpreset.SortFieldTitle))

	// "Velvet Underground" < "Who" once the article is stripped.
	got := Sort(records, pill, nil, false)
	assert.Equal(t, []int64{2, 1}, ids(got), "article stripped")

	// "The Who" < "Velvet Underground" when the article is honoured.
	got = Sort(records, pill, nil, true)
	assert.Equal(t, []int64{1, 2}, ids(got), "article honoured")
}

func TestSort_DateSentinel(t *testing.T) {
	records := []collection.Record{
		{ID: 1, ReleaseDate: "1995"},
		{ID: 2}, // no release date: sentinel 9999
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldReleaseDate)), nil, false)
	assert.Equal(t, []int64{1, 2}, ids(got), "dated record first ascending")

	// The sentinel is a literal value, so it leads under a descending
	// secondary pill once the primary ties.
	records[0].Title = "Same"
	records[1].Title = "Same"
	got = Sort(records, pills(asc(gridpreset.SortFieldTitle), desc(gridpreset.SortFieldReleaseDate)), nil, false)
	assert.Equal(t, []int64{2, 1}, ids(got), "sentinel leads descending secondary")
}

func TestSort_MultiKeyTieBreak(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Artist: "Neu!", Title: "Neu! 2", ReleaseDate: "1973"},
		{ID: 2, Artist: "Neu!", Title: "Neu!", ReleaseDate: "1972"},
		{ID: 3, Artist: "Can", Title: "Future Days", ReleaseDate: "1973"},
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldArtist), asc(gridpreset.SortFieldReleaseDate)), nil, false)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestSort_Stability(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Artist: "Same Artist", Title: "B"},
		{ID: 2, Artist: "Same Artist", Title: "A"},
		{ID: 3, Artist: "Same Artist", Title: "C"},
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldArtist)), nil, false)
	assert.Equal(t, []int64{1, 2, 3}, ids(got), "full tie must preserve input order")
}

func TestSort_EmptyPillsPreserveOrder(t *testing.T) {
	records := []collection.Record{
		{ID: 3, Artist: "Zebra"},
		{ID: 1, Artist: "Aardvark"},
	}

	got := Sort(records, nil, nil, false)
	assert.Equal(t, []int64{3, 1}, ids(got), "no pills preserves input order")
}

func TestSort_DuplicatePillsAreHarmless(t *testing.T) {
	records := []collection.Record{
		{ID: 1, Artist: "B"},
		{ID: 2, Artist: "A"},
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldArtist), asc(gridpreset.SortFieldArtist)), nil, false)
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestSort_ListenTime(t *testing.T) {
	stats := listenstats.Stats{
		1: {TotalSeconds: 120},
		2: {TotalSeconds: 9000},
	}
	records := []collection.Record{
		{ID: 1},
		{ID: 2},
		{ID: 3}, // no stats: 0
	}

	got := Sort(records, pills(desc(gridpreset.SortFieldListenTime)), stats, false)
	assert.Equal(t, []int64{2, 1, 3}, ids(got))
}

func TestSort_DateAddedLexicographic(t *testing.T) {
	records := []collection.Record{
		{ID: 1, CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: 2, CreatedAt: "2023-12-31T23:59:59Z"},
		{ID: 3}, // empty sorts first ascending
	}

	got := Sort(records, pills(asc(gridpreset.SortFieldDateAdded)), nil, false)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []collection.Record{
		{ID: 2, Artist: "B"},
		{ID: 1, Artist: "A"},
	}

	_ = Sort(records, pills(asc(gridpreset.SortFieldArtist)), nil, false)
	assert.Equal(t, []int64{2, 1}, ids(records), "input must not be mutated")
}
