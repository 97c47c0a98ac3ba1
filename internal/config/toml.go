// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analyze    AnalyzeConfig    `toml:"analyze"`
	Generate   GenerateConfig   `toml:"generate"`
	Passphrase PassphraseConfig `toml:"passphrase"`
}

// AnalyzeConfig maps analysis-related settings.
type AnalyzeConfig struct {
	Verbose   *bool `toml:"verbose"`
	NoHistory *bool `toml:"no-history"`
}

// GenerateConfig maps password generation settings.
type GenerateConfig struct {
	Length           *int  `toml:"length"`
	Count            *int  `toml:"count"`
	NoUppercase      *bool `toml:"no-uppercase"`
	NoDigits         *bool `toml:"no-digits"`
	NoSpecial        *bool `toml:"no-special"`
	ExcludeAmbiguous *bool `toml:"exclude-ambiguous"`
}

// PassphraseConfig maps passphrase generation settings.
type PassphraseConfig struct {
	Words     *int    `toml:"words"`
	Separator *string `toml:"separator"`
	Wordlist  *string `toml:"wordlist"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
