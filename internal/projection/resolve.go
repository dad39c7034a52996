package projection

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
)

// yearSentinel is the year assigned to absent or unparsable release
// dates. It compares as a literal value, so such records sort last
// ascending and first descending.
const yearSentinel = 9999

var (
	dayMonthYearRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	yearFirstRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearRunRe      = regexp.MustCompile(`\d{4}`)
)

// sortKey is a resolved comparable value: either a number or a
// lower-cased string.
type sortKey struct {
	str     string
	num     int64
	numeric bool
}

// resolveKey maps (record, field) to a comparable value, applying the
// documented per-field defaults so resolution is total.
func resolveKey(r *collection.Record, field gridpreset.SortField, stats listenstats.Stats, honourThe bool) sortKey {
	switch field {
	case gridpreset.SortFieldTitle:
		title := r.SortTitle
		if title == "" {
			title = r.Title
		}
		return stringKey(stripArticle(title, honourThe))
	case gridpreset.SortFieldReleaseDate:
		return sortKey{num: releaseYear(r.ReleaseDate), numeric: true}
	case gridpreset.SortFieldDateAdded:
		return stringKey(r.CreatedAt)
	case gridpreset.SortFieldListenTime:
		return sortKey{num: stats.TotalSeconds(r.ID), numeric: true}
	default: // SortFieldArtist
		artist := r.SortArtist
		if artist == "" {
			artist = r.Artist
		}
		return stringKey(stripArticle(artist, honourThe))
	}
}

func stringKey(s string) sortKey {
	return sortKey{str: strings.ToLower(s)}
}

// stripArticle removes a leading "The " (case-insensitive) unless the
// article is honoured.
func stripArticle(s string, honourThe bool) string {
	if honourThe {
		return s
	}
	if len(s) >= 4 && strings.EqualFold(s[:4], "The ") {
		return s[4:]
	}
	return s
}

// releaseYear extracts an integer year from a free-form release date.
// Recognised encodings: "DD-MM-YYYY" (last four digits), "YYYY-MM-DD"
// (first four digits), otherwise the first run of four digits anywhere
// in the string. Absent or unparsable dates yield the sentinel.
func releaseYear(date string) int64 {
	switch {
	case date == "":
		return yearSentinel
	case dayMonthYearRe.MatchString(date):
		return mustYear(date[len(date)-4:])
	case yearFirstRe.MatchString(date):
		return mustYear(date[:4])
	}
	if run := yearRunRe.FindString(date); run != "" {
		return mustYear(run)
	}
	return yearSentinel
}

func mustYear(digits string) int64 {
	y, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return yearSentinel
	}
	return y
}
