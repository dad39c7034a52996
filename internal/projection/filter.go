package projection

import (
	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

// Filter applies the visibility gate and the active filter mode.
// Order is preserved and records are never duplicated.
func Filter(records []collection.Record, cfg gridpreset.FilterConfig) []collection.Record {
	out := make([]collection.Record, 0, len(records))
	for i := range records {
		r := &records[i]

		// Hidden records are dropped before any mode rule runs,
		// unless the Invisible flag allows them or the mode itself
		// asks for them.
		if !r.ShowOnGrid && !cfg.Some.Invisible && cfg.Mode != gridpreset.FilterInvisible {
			continue
		}

		if keep(r, cfg) {
			out = append(out, *r)
		}
	}
	return out
}

func keep(r *collection.Record, cfg gridpreset.FilterConfig) bool {
	switch cfg.Mode {
	case gridpreset.FilterSome:
		if !cfg.Some.FormatEnabled(r.Format) {
			return false
		}
		// Every characteristic the record carries must have its flag
		// enabled. A characteristic the record lacks imposes no
		// constraint.
		for _, c := range r.Characteristics {
			if !cfg.Some.CharacteristicEnabled(c) {
				return false
			}
		}
		return true
	case gridpreset.FilterLPs:
		return r.Format == collection.FormatLP
	case gridpreset.FilterEPs:
		return r.Format == collection.FormatEP
	case gridpreset.FilterSingles:
		return r.Format == collection.FormatSingle
	case gridpreset.FilterSoundtracks:
		return r.HasCharacteristic(collection.Soundtrack)
	case gridpreset.FilterCompilations:
		return r.HasCharacteristic(collection.Compilation)
	case gridpreset.FilterInvisible:
		return !r.ShowOnGrid
	default:
		// FilterAll and anything unrecognised: no filtering.
		return true
	}
}
