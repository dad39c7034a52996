package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons         string   `koanf:"icons"`          // "nerd", "unicode", or "none"
	SourceFolders []string `koanf:"source_folders"` // paths to scan for record folders

	// Grid display settings
	Grid GridConfig `koanf:"grid"`
}

// GridConfig holds grid rendering configuration.
type GridConfig struct {
	ShowGenres bool `koanf:"show_genres"` // append the genre to each record row
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

// loadFile loads configuration from a single file. A missing file
// yields the zero config.
func loadFile(path string) (*Config, error) {
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later paths win over earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in source_folders
	for i, src := range cfg.SourceFolders {
		cfg.SourceFolders[i] = expandPath(src)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/gloaming/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gloaming", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasSources returns true if at least one source folder is configured.
func (c *Config) HasSources() bool {
	return len(c.SourceFolders) > 0
}
