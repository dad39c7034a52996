package state

import (
	"database/sql"
)

const currentSchemaVersion = 3

// InitSchema creates all tables and indexes if they do not exist and
// applies column migrations. Safe to call on every startup.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			sort_title TEXT,
			sort_artist TEXT,
			format TEXT NOT NULL DEFAULT 'LP',
			characteristics TEXT,
			release_date TEXT,
			created_at TEXT NOT NULL,
			show_on_grid INTEGER NOT NULL DEFAULT 1,
			genre TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_records_artist ON records(artist);
		CREATE INDEX IF NOT EXISTS idx_records_show_on_grid ON records(show_on_grid);

		CREATE TABLE IF NOT EXISTS view_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			settings TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS view_presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			settings TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS listen_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
			listened_at INTEGER NOT NULL,
			seconds INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_listen_log_record ON listen_log(record_id);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add sort override columns if missing
	_, _ = db.Exec(`ALTER TABLE records ADD COLUMN sort_title TEXT`)
	_, _ = db.Exec(`ALTER TABLE records ADD COLUMN sort_artist TEXT`)

	return nil
}
