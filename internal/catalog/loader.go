package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

type countriesFile struct {
	Countries    []Country `yaml:"countries"`
	Industries   []Option  `yaml:"industries"`
	CompanySizes []Option  `yaml:"company_sizes"`
}

type rolesFile struct {
	Roles []Role `yaml:"roles"`
}

type titlesFile struct {
	Titles []string `yaml:"titles"`
}

// Load reads the embedded lookup tables into a Catalog.
func Load() (*Catalog, error) {
	var countries countriesFile
	if err := readConfig("configs/countries.yaml", &countries); err != nil {
		return nil, err
	}

	var roles rolesFile
	if err := readConfig("configs/roles.yaml", &roles); err != nil {
		return nil, err
	}

	var titles titlesFile
	if err := readConfig("configs/titles.yaml", &titles); err != nil {
		return nil, err
	}

	return &Catalog{
		Countries:    countries.Countries,
		Industries:   countries.Industries,
		CompanySizes: countries.CompanySizes,
		Roles:        roles.Roles,
		Titles:       titles.Titles,
	}, nil
}

func readConfig(path string, target any) error {
	data, err := configFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
