package projection

import (
	"cmp"
	"sort"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
)

// Sort orders records by the given pills in priority order. The input
// is not modified. The sort is stable: records equal under every pill
// keep their relative input order, and an empty pill list returns the
// input order unchanged.
func Sort(records []collection.Record, pills []gridpreset.SortPill, stats listenstats.Stats, honourThe bool) []collection.Record {
	out := make([]collection.Record, len(records))
	copy(out, records)
	if len(pills) == 0 {
		return out
	}

	// Resolve every key once up front; comparisons then only look at
	// precomputed values.
	keys := make(map[int64][]sortKey, len(out))
	for i := range out {
		ks := make([]sortKey, len(pills))
		for j, p := range pills {
			ks[j] = resolveKey(&out[i], p.Field, stats, honourThe)
		}
		keys[out[i].ID] = ks
	}

	sort.SliceStable(out, func(a, b int) bool {
		return compareKeys(keys[out[a].ID], keys[out[b].ID], pills) < 0
	})

	return out
}

// compareKeys walks the pills in priority order and returns the first
// non-zero signed comparison.
func compareKeys(a, b []sortKey, pills []gridpreset.SortPill) int {
	for i, p := range pills {
		c := compareKey(a[i], b[i])
		if p.Direction == gridpreset.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareKey(a, b sortKey) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.num, b.num)
	}
	return cmp.Compare(a.str, b.str)
}
