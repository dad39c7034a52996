package projection

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

// distinguishRecords pulls records matching any enabled characteristic
// out of the regular sequence into trailing distinguished groups. A
// record is claimed by the first enabled characteristic it carries, in
// priority order, even when it carries several.
//
// When separator groups exist they are rebuilt without the claimed
// records and groups left empty are dropped. Without grouping, a
// single header-less group holds the regular records. The flat
// sequence is regular records in sorted order followed by the buckets
// in priority order.
func distinguishRecords(sorted []collection.Record, groups []Group, cfg gridpreset.DistinguishConfig, grouped bool) ([]collection.Record, []Group) {
	var buckets [collection.CharacteristicCount][]collection.Record
	claimed := make(map[int64]bool)
	var regular []collection.Record

	for i := range sorted {
		r := sorted[i]
		c, ok := claimCharacteristic(&r, cfg)
		if !ok {
			regular = append(regular, r)
			continue
		}
		buckets[c] = append(buckets[c], r)
		claimed[r.ID] = true
	}

	var out []Group
	if grouped {
		for _, g := range groups {
			kept := g.Records[:0:0]
			for _, r := range g.Records {
				if !claimed[r.ID] {
					kept = append(kept, r)
				}
			}
			if len(kept) == 0 {
				continue
			}
			g.Records = kept
			out = append(out, g)
		}
	} else {
		out = append(out, Group{Records: regular})
	}

	flat := make([]collection.Record, 0, len(sorted))
	flat = append(flat, regular...)
	for _, c := range collection.Characteristics() {
		if len(buckets[c]) == 0 {
			continue
		}
		out = append(out, Group{
			Label:          c.Label(),
			Characteristic: c,
			Distinguished:  true,
			Records:        buckets[c],
		})
		flat = append(flat, buckets[c]...)
	}

	return flat, out
}

// claimCharacteristic returns the first enabled characteristic the
// record carries, in priority order.
func claimCharacteristic(r *collection.Record, cfg gridpreset.DistinguishConfig) (collection.Characteristic, bool) {
	for _, c := range collection.Characteristics() {
		if cfg.Enabled(c) && r.HasCharacteristic(c) {
			return c, true
		}
	}
	return 0, false
}
