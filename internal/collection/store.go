package collection

import (
	"database/sql"
	"strings"

	dbutil "github.com/murkandloam/the-gloaming-sub002/internal/db"
)

// Store gives access to the records table.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an already opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const recordColumns = `id, title, artist, sort_title, sort_artist, format,
	characteristics, release_date, created_at, show_on_grid, genre`

// AllRecords returns every record in the collection, in insertion
// order. Ordering for display is the projection pipeline's job.
func (s *Store) AllRecords() ([]Record, error) {
	rows, err := s.db.Query(`SELECT ` + recordColumns + ` FROM records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// RecordByID returns one record by its ID.
func (s *Store) RecordByID(id int64) (*Record, error) {
	row := s.db.QueryRow(`SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	r, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RecordCount returns the number of records in the collection.
func (s *Store) RecordCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	return count, err
}

// Add inserts a record and returns its assigned ID.
func (s *Store) Add(r Record) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO records (title, artist, sort_title, sort_artist, format,
		                     characteristics, release_date, created_at, show_on_grid, genre)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Title, r.Artist, r.SortTitle, r.SortArtist, r.Format.String(),
		encodeCharacteristics(r.Characteristics), r.ReleaseDate, r.CreatedAt,
		boolToInt(r.ShowOnGrid), r.Genre)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// SetShowOnGrid toggles a record's grid visibility.
func (s *Store) SetShowOnGrid(id int64, show bool) error {
	_, err := s.db.Exec(`UPDATE records SET show_on_grid = ? WHERE id = ?`, boolToInt(show), id)
	return err
}

// SetCharacteristics replaces a record's characteristic set.
func (s *Store) SetCharacteristics(id int64, cs []Characteristic) error {
	_, err := s.db.Exec(`UPDATE records SET characteristics = ? WHERE id = ?`,
		encodeCharacteristics(cs), id)
	return err
}

// Delete removes a record together with its listen log rows.
func (s *Store) Delete(id int64) error {
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM listen_log WHERE record_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM records WHERE id = ?`, id)
		return err
	})
}

// HasRecord reports whether a record with the given artist and title
// already exists. Used by the importer to keep re-imports idempotent.
func (s *Store) HasRecord(artist, title string) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM records WHERE artist = ? AND title = ?
	`, artist, title).Scan(&count)
	return count > 0, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var sortTitle, sortArtist, format, characteristics sql.NullString
	var releaseDate, genre sql.NullString
	var showOnGrid int

	err := row.Scan(&r.ID, &r.Title, &r.Artist, &sortTitle, &sortArtist, &format,
		&characteristics, &releaseDate, &r.CreatedAt, &showOnGrid, &genre)
	if err != nil {
		return Record{}, err
	}

	r.SortTitle = dbutil.NullStringValue(sortTitle)
	r.SortArtist = dbutil.NullStringValue(sortArtist)
	r.Format = ParseFormat(dbutil.NullStringValue(format))
	r.Characteristics = decodeCharacteristics(dbutil.NullStringValue(characteristics))
	r.ReleaseDate = dbutil.NullStringValue(releaseDate)
	r.ShowOnGrid = showOnGrid != 0
	r.Genre = dbutil.NullStringValue(genre)
	return r, nil
}

// encodeCharacteristics stores the set as a comma-separated identifier
// list.
func encodeCharacteristics(cs []Characteristic) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		if name := c.String(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ",")
}

// decodeCharacteristics parses the stored list, silently dropping
// identifiers it no longer recognises.
func decodeCharacteristics(s string) []Characteristic {
	if s == "" {
		return nil
	}
	var cs []Characteristic
	for _, name := range strings.Split(s, ",") {
		if c, ok := ParseCharacteristic(strings.TrimSpace(name)); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
