// Package config locates the template files each output shape renders from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/blueprint/internal/scaffold"
)

// ErrTemplateNotConfigured is returned when no template location is
// configured for a requested shape.
var ErrTemplateNotConfigured = errors.New("template location not configured")

// Config maps output shapes to template file paths. Paths may be absolute or
// relative to the working directory.
type Config struct {
	Templates map[string]string `json:"templates"`
}

// LoadConfig reads .blueprint/config.json from the specified directory.
// Returns an error if no config is found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".blueprint", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the directory's .blueprint folder.
func SaveConfig(dir string, cfg *Config) error {
	bpDir := filepath.Join(dir, ".blueprint")
	if err := os.MkdirAll(bpDir, 0755); err != nil {
		return fmt.Errorf("failed to create .blueprint dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(bpDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// FromDir returns a Config whose every shape resolves to <dir>/<shape>.tmpl.
func FromDir(dir string) *Config {
	templates := make(map[string]string, len(scaffold.Shapes))
	for _, shape := range scaffold.Shapes {
		templates[string(shape)] = filepath.Join(dir, string(shape)+".tmpl")
	}
	return &Config{Templates: templates}
}

// envKey returns the environment variable overriding a shape's template
// location, e.g. BLUEPRINT_MODEL_TEMPLATE.
func envKey(shape scaffold.Shape) string {
	return "BLUEPRINT_" + strings.ToUpper(string(shape)) + "_TEMPLATE"
}

// TemplatePath resolves the template location for a shape: environment
// override first, then the configured map. Absence of both is a fatal
// configuration error for the caller.
func (c *Config) TemplatePath(shape scaffold.Shape) (string, error) {
	if v, ok := os.LookupEnv(envKey(shape)); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	if c != nil {
		if path, ok := c.Templates[string(shape)]; ok && path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w for shape %q (set %s or templates.%s in .blueprint/config.json)",
		ErrTemplateNotConfigured, shape, envKey(shape), shape)
}

// Source adapts a Config into a scaffold.Source reading template files from
// disk.
type Source struct {
	Config *Config
}

// Template implements scaffold.Source.
func (s Source) Template(shape scaffold.Shape) (string, error) {
	path, err := s.Config.TemplatePath(shape)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}
