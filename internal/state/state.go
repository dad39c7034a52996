// Package state persists the collection, the grid view state, named
// view presets and the listen log in a sqlite database under the XDG
// data directory.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

const (
	appName      = "gloaming"
	dbFileName   = "gloaming.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *gridpreset.Settings
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending view state
	if pending != nil {
		_ = saveViewState(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetViewState returns the persisted grid view settings, or nil on
// first run.
func (m *Manager) GetViewState() (*gridpreset.Settings, error) {
	return getViewState(m.db)
}

// SaveViewState schedules a debounced write of the grid view
// settings. Rapid setting changes collapse into one write; Close
// flushes whatever is still pending.
func (m *Manager) SaveViewState(settings gridpreset.Settings) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &settings

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveViewState(m.db, *pending)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
