package state

import (
	"database/sql"
	"time"

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

// Preset is a named, saved grid view configuration.
type Preset struct {
	ID       int64
	Name     string
	Settings gridpreset.Settings
}

// ListPresets returns all saved view presets ordered by name.
func (m *Manager) ListPresets() ([]Preset, error) {
	return listPresets(m.db)
}

// SavePreset saves a view preset, replacing any existing preset with
// the same name.
func (m *Manager) SavePreset(name string, settings gridpreset.Settings) (int64, error) {
	return savePreset(m.db, name, settings)
}

// DeletePreset deletes a view preset by ID.
func (m *Manager) DeletePreset(id int64) error {
	_, err := m.db.Exec(`DELETE FROM view_presets WHERE id = ?`, id)
	return err
}

func listPresets(db *sql.DB) ([]Preset, error) {
	rows, err := db.Query(`
		SELECT id, name, settings
		FROM view_presets
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		var data string

		if err := rows.Scan(&p.ID, &p.Name, &data); err != nil {
			return nil, err
		}

		settings, err := gridpreset.FromJSON(data)
		if err != nil {
			// Skip invalid presets
			continue
		}
		p.Settings = settings

		presets = append(presets, p)
	}

	return presets, rows.Err()
}

func savePreset(db *sql.DB, name string, settings gridpreset.Settings) (int64, error) {
	settings.PresetName = name
	data, err := settings.ToJSON()
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()

	result, err := db.Exec(`
		UPDATE view_presets
		SET settings = ?, updated_at = ?
		WHERE name = ?
	`, data, now, name)
	if err != nil {
		return 0, err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		var id int64
		err := db.QueryRow(`SELECT id FROM view_presets WHERE name = ?`, name).Scan(&id)
		return id, err
	}

	result, err = db.Exec(`
		INSERT INTO view_presets (name, settings, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, name, data, now, now)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}
