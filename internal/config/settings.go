package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds the user preferences read from the optional YAML settings
// file. Flags override environment variables, which override the file.
type Settings struct {
	Language string `yaml:"language"`
	NoColor  bool   `yaml:"no_color"`
	Seed     int    `yaml:"seed"`
}

// DefaultSettings returns a Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Language: DefaultLanguage,
	}
}

// SettingsPath returns the location of the settings file under the
// platform-specific user config directory.
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(configDir, AppDirName, SettingsFileName), nil
}

// LoadSettings reads the YAML settings file at path.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("%s %s: %w", ErrSettingsRead, path, err)
	}

	if len(data) == 0 {
		return settings, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("%s %s: %w", ErrSettingsParse, path, err)
	}

	return settings, nil
}

// ApplyEnv applies environment variable overrides to the settings.
// Supported variables: GOCONTACTS_LANG, GOCONTACTS_NO_COLOR.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvLanguage); v != "" {
		s.Language = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s %s=%q: %w", ErrEnvBool, EnvNoColor, v, err)
		}
		s.NoColor = b
	}
	return nil
}

// Validate checks that settings values are usable. Unknown languages are
// accepted: the localization bundle falls back to English for them.
func (s *Settings) Validate() error {
	if s.Language == "" {
		return errors.New(ErrLangEmpty)
	}
	if s.Seed < 0 {
		return fmt.Errorf("%s: %d", ErrSeedNegative, s.Seed)
	}
	return nil
}
