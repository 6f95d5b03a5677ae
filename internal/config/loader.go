package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	userDir   = ".cryptsteps"
	fileName  = "config.yaml"
	localPath = "configs/cryptsteps.yaml"
)

// Environment variables read by ApplyEnv.
const (
	EnvAudioEnabled = "CRYPTSTEPS_AUDIO_ENABLED"
	EnvMusicEnabled = "CRYPTSTEPS_MUSIC_ENABLED"
	EnvMasterVolume = "CRYPTSTEPS_MASTER_VOLUME"
	EnvDifficulty   = "CRYPTSTEPS_DIFFICULTY"
)

// Load reads the settings.
// Search order: customPath -> ~/.cryptsteps/config.yaml -> ./configs/cryptsteps.yaml -> embedded default.
// Files are decoded over Default(), so a file only needs the keys it changes.
func Load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if path := userConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML settings over the hardcoded defaults.
func Parse(data []byte) (Settings, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Marshal encodes settings as YAML.
func Marshal(cfg Settings) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, fileName)
}

// ApplyEnv overrides settings from environment variables. lookup is usually
// os.LookupEnv.
func ApplyEnv(cfg *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Field: EnvAudioEnabled, Reason: "not a boolean", Err: err}
		}
		cfg.Audio.Enabled = b
	}
	if v, ok := lookup(EnvMusicEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Field: EnvMusicEnabled, Reason: "not a boolean", Err: err}
		}
		cfg.Audio.Music = b
	}
	if v, ok := lookup(EnvMasterVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &ConfigError{Field: EnvMasterVolume, Reason: "not a number", Err: err}
		}
		cfg.Audio.MasterVolume = f
	}
	if v, ok := lookup(EnvDifficulty); ok {
		p, err := ParsePreset(v)
		if err != nil {
			return err
		}
		cfg.Difficulty = p
	}
	return nil
}
