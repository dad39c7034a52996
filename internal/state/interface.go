package state

import (
	"database/sql"

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
)

// Interface defines the state manager contract for dependency
// injection and testing.
type Interface interface {
	DB() *sql.DB
	GetViewState() (*gridpreset.Settings, error)
	SaveViewState(settings gridpreset.Settings)
	ListPresets() ([]Preset, error)
	SavePreset(name string, settings gridpreset.Settings) (int64, error)
	DeletePreset(id int64) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
