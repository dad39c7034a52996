// Package projection turns the record collection and the grid view
// settings into the ordered structure the grid renders: filter, sort,
// separator grouping, then distinguish partitioning. The whole
// pipeline is a pure function over its inputs; it never errors and is
// simply re-run from scratch whenever any input changes.
package projection

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
)

// Result is the projection output. Flat always holds every surviving
// record in render order. Groups is nil when neither grouping nor any
// distinguish flag is active, signalling flat rendering to the caller.
type Result struct {
	Flat   []collection.Record
	Groups []Group
}

// Project runs the full pipeline. The input records are never
// mutated; stats may be nil for an empty lookup.
func Project(records []collection.Record, s gridpreset.Settings, stats listenstats.Stats) Result {
	filtered := Filter(records, s.Filter)
	sorted := Sort(filtered, s.Pills, stats, s.HonourThe)

	var groups []Group
	if s.Grouping.Enabled {
		groups = groupRecords(sorted, s.Grouping.Field, s.HonourThe, firstDirection(s.Pills))
	}

	if s.Distinguish.Any() {
		flat, out := distinguishRecords(sorted, groups, s.Distinguish, s.Grouping.Enabled)
		return Result{Flat: flat, Groups: out}
	}

	return Result{Flat: sorted, Groups: groups}
}

// firstDirection is the group ordering direction: the first pill's
// direction, ascending when no pills exist.
func firstDirection(pills []gridpreset.SortPill) gridpreset.Direction {
	if len(pills) == 0 {
		return gridpreset.Asc
	}
	return pills[0].Direction
}
