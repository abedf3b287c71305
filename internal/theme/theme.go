// Package theme persists the user's light/dark preference across runs.
package theme

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	Dark  = "dark"
	Light = "light"
)

const (
	configName = "config"
	configType = "yaml"
	themeKey   = "theme"

	// EnvVar overrides the stored preference; terminals expose no reliable
	// system dark-mode signal, so this stands in for one.
	EnvVar = "FAIRPAY_THEME"
)

// Store reads and writes the theme preference in a config directory.
type Store struct {
	v   *viper.Viper
	dir string
}

// NewStore opens the preference store rooted at dir. An empty dir selects
// the user config directory. A missing config file is not an error.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "fairpay")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault(themeKey, "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Store{v: v, dir: dir}, nil
}

// Get returns the active theme: the stored preference, else the EnvVar
// override, else dark.
func (s *Store) Get() string {
	if t := s.v.GetString(themeKey); t == Dark || t == Light {
		return t
	}
	if t := os.Getenv(EnvVar); t == Dark || t == Light {
		return t
	}
	return Dark
}

// Set stores the theme and writes it to disk, creating the config directory
// on first use.
func (s *Store) Set(theme string) error {
	s.v.Set(themeKey, theme)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return s.v.WriteConfigAs(filepath.Join(s.dir, configName+"."+configType))
}

// Toggle flips the active theme, persists it, and returns the new value.
func (s *Store) Toggle() (string, error) {
	next := Dark
	if s.Get() == Dark {
		next = Light
	}
	return next, s.Set(next)
}
