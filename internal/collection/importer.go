package collection

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// audioExtensions lists the file types the importer reads metadata
// from.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".mp4":  true,
}

// ImportStats summarises one import run.
type ImportStats struct {
	Added   []string // "artist - title" of records created
	Skipped int      // folders already present in the collection
	Errors  int      // folders whose files could not be read
}

// ImportFolders walks the given source directories, treating each
// folder of audio files as one release, and adds a record per folder
// not already in the collection. Walk and read errors skip the
// offending entry rather than aborting the run.
func ImportFolders(store *Store, sources []string) (ImportStats, error) {
	var stats ImportStats

	for _, src := range sources {
		folders := discoverAlbumFolders(src)
		for _, dir := range folders {
			r, ok := recordFromFolder(dir)
			if !ok {
				stats.Errors++
				continue
			}

			exists, err := store.HasRecord(r.Artist, r.Title)
			if err != nil {
				return stats, err
			}
			if exists {
				stats.Skipped++
				continue
			}

			if _, err := store.Add(r); err != nil {
				return stats, err
			}
			stats.Added = append(stats.Added, r.Artist+" - "+r.Title)
		}
	}

	return stats, nil
}

// discoverAlbumFolders returns every directory under root containing
// at least one audio file, sorted for deterministic import order.
func discoverAlbumFolders(root string) []string {
	seen := make(map[string]bool)
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // skip unreadable entries, keep walking
		}
		if d.IsDir() {
			return nil
		}
		if audioExtensions[strings.ToLower(filepath.Ext(path))] {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})

	folders := make([]string, 0, len(seen))
	for dir := range seen {
		folders = append(folders, dir)
	}
	sort.Strings(folders)
	return folders
}

// recordFromFolder derives one record from the first readable audio
// file in dir.
func recordFromFolder(dir string) (Record, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Record{}, false
	}

	var trackCount int
	var meta tag.Metadata
	for _, e := range entries {
		if e.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		trackCount++
		if meta != nil {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		m, err := tag.ReadFrom(f)
		f.Close()
		if err != nil {
			continue
		}
		meta = m
	}
	if meta == nil {
		return Record{}, false
	}

	artist := meta.AlbumArtist()
	if artist == "" {
		artist = meta.Artist()
	}
	title := meta.Album()
	if title == "" {
		title = filepath.Base(dir)
	}

	r := Record{
		Title:      title,
		Artist:     artist,
		Format:     formatForImport(title, trackCount),
		Genre:      meta.Genre(),
		ShowOnGrid: true,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if year := meta.Year(); year > 0 {
		r.ReleaseDate = strconv.Itoa(year)
	}
	if isVariousArtists(artist) {
		r.Characteristics = append(r.Characteristics, Compilation)
	}
	return r, true
}

// formatForImport guesses a format from the folder contents. The guess
// is only a starting point; the collection owner can correct it.
func formatForImport(title string, trackCount int) Format {
	switch {
	case strings.HasSuffix(strings.ToLower(title), " ep"):
		return FormatEP
	case trackCount == 1:
		return FormatSingle
	default:
		return FormatLP
	}
}

func isVariousArtists(artist string) bool {
	switch strings.ToLower(artist) {
	case "various artists", "various", "va":
		return true
	}
	return false
}
