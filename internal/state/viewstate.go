package state

import (
	"database/sql"
	"errors"

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

func getViewState(db *sql.DB) (*gridpreset.Settings, error) {
	row := db.QueryRow(`SELECT settings FROM view_state WHERE id = 1`)

	var data string
	err := row.Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	settings, err := gridpreset.FromJSON(data)
	if err != nil {
		// A row we cannot parse is treated as absent rather than
		// blocking startup.
		return nil, nil //nolint:nilnil // see above
	}
	return &settings, nil
}

func saveViewState(db *sql.DB, settings gridpreset.Settings) error {
	data, err := settings.ToJSON()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO view_state (id, settings)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET settings = excluded.settings
	`, data)
	return err
}
