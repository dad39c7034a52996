package projection

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

const (
	unknownArtist = "Unknown Artist"
	unknownYear   = "Unknown Year"
	unknownDecade = "Unknown Decade"
	unknownGenre  = "Unknown Genre"
)

// Group is one rendered section of the grid: either a regular
// separator group keyed by a derived string, or a distinguished group
// holding records claimed by a characteristic. Distinguished groups
// always render after every regular group, in characteristic priority
// order; regular groups order by key. A group with an empty Label is
// rendered without a header.
type Group struct {
	Key            string // derived key; empty for the ungrouped regular group
	Label          string // display header
	Characteristic collection.Characteristic
	Distinguished  bool
	Records        []collection.Record
}

// groupRecords partitions sorted records into separator groups keyed
// by the group field. Records keep their sorted order within each
// group; groups are ordered by numeric-aware key comparison in the
// given direction.
func groupRecords(records []collection.Record, field gridpreset.GroupField, honourThe bool, dir gridpreset.Direction) []Group {
	byKey := make(map[string]*Group)
	var order []string

	for i := range records {
		key := groupKey(&records[i], field, honourThe)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, Label: key}
			byKey[key] = g
			order = append(order, key)
		}
		g.Records = append(g.Records, records[i])
	}

	cl := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(order, func(a, b int) bool {
		c := cl.CompareString(order[a], order[b])
		if dir == gridpreset.Desc {
			c = -c
		}
		return c < 0
	})

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return groups
}

// groupKey derives the separator key for one record. Unknown group
// fields behave as artist grouping.
func groupKey(r *collection.Record, field gridpreset.GroupField, honourThe bool) string {
	switch field {
	case gridpreset.GroupByReleaseDate:
		return releaseDateKey(r.ReleaseDate)
	case gridpreset.GroupByDecade:
		return decadeKey(r.ReleaseDate)
	case gridpreset.GroupByGenre:
		if r.Genre == "" {
			return unknownGenre
		}
		return r.Genre
	default:
		artist := r.SortArtist
		if artist == "" {
			artist = r.Artist
		}
		if artist == "" {
			return unknownArtist
		}
		return stripArticle(artist, honourThe)
	}
}

// releaseDateKey is the first four characters of the raw release date,
// whatever encoding it uses.
func releaseDateKey(date string) string {
	if date == "" {
		return unknownYear
	}
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// decadeKey folds the leading four characters of the release date into
// a decade when they are numeric.
func decadeKey(date string) string {
	year, err := strconv.Atoi(releaseDateKey(date))
	if err != nil {
		return unknownDecade
	}
	return strconv.Itoa(year/10*10) + "s"
}
