// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps practice-related settings. Nil fields were not set.
type PracticeConfig struct {
	Corpus           *string `toml:"corpus"`
	Words            *int    `toml:"words"`
	Core             *bool   `toml:"core"`
	Common           *bool   `toml:"common"`
	Uncommon         *bool   `toml:"uncommon"`
	Obscure          *bool   `toml:"obscure"`
	Sandbox          *bool   `toml:"sandbox"`
	Deprecation      *string `toml:"deprecation"`
	KU               *bool   `toml:"ku"`
	PU               *bool   `toml:"pu"`
	Commentary       *bool   `toml:"commentary"`
	Definitions      *bool   `toml:"definitions"`
	Hints            *bool   `toml:"hints"`
	FinishOnLastWord *bool   `toml:"finish-on-last-word"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
