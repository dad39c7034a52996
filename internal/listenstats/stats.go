// Package listenstats resolves per-record listening time from the
// listen log.
package listenstats

import "database/sql"

// Listen holds aggregated listening time for one record.
type Listen struct {
	TotalSeconds int64
}

// Stats maps a record ID to its aggregated listening time. A missing
// entry means zero seconds.
type Stats map[int64]Listen

// TotalSeconds returns the listening time for id, or 0 if unknown.
func (s Stats) TotalSeconds(id int64) int64 {
	return s[id].TotalSeconds
}

// Resolve aggregates the listen log into a Stats lookup. The result is
// a snapshot: callers hand it to the projection as-is and re-resolve
// when the log changes.
func Resolve(db *sql.DB) (Stats, error) {
	rows, err := db.Query(`
		SELECT record_id, SUM(seconds)
		FROM listen_log
		GROUP BY record_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(Stats)
	for rows.Next() {
		var id, total int64
		if err := rows.Scan(&id, &total); err != nil {
			return nil, err
		}
		stats[id] = Listen{TotalSeconds: total}
	}
	return stats, rows.Err()
}

// Log appends one listen of the given length to the log.
func Log(db *sql.DB, recordID, seconds, listenedAt int64) error {
	_, err := db.Exec(`
		INSERT INTO listen_log (record_id, listened_at, seconds)
		VALUES (?, ?, ?)
	`, recordID, listenedAt, seconds)
	return err
}
