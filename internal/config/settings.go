package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/qareport/internal/output"
	"github.com/gorewood/qareport/internal/report"
)

// FileName is the settings file looked up inside Dir().
const FileName = "config.yaml"

// Settings are user defaults for report generation. Zero values mean
// "use the built-in default"; command-line flags override any of them.
type Settings struct {
	Title       string `yaml:"title,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Format      string `yaml:"format,omitempty"`
	Frontmatter bool   `yaml:"frontmatter,omitempty"`
}

// Load reads Settings from dir/config.yaml.
// A missing directory or file yields zero Settings and no error.
func Load(dir string) (Settings, error) {
	if dir == "" {
		return Settings{}, nil
	}

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks enumerated fields.
func (s Settings) Validate() error {
	if err := output.ValidateColorMode(s.Color); err != nil {
		return err
	}
	if _, err := report.ParseFormat(s.Format); err != nil {
		return err
	}
	return nil
}
