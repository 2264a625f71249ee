// Package formats provides pluggable map file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	TileSize int               `yaml:"tile_size,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Map represents a parsed map file ready for use.
type Map struct {
	ID       string
	Name     string
	TileSize int // 0 means the configured default
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML map file. Every list entry of rows is one grid row;
// quote rows that start or end with spaces.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	ym.ID = strings.TrimSpace(ym.ID)
	if ym.ID == "" {
		return Map{}, errors.New("map id is required")
	}
	if len(ym.Rows) == 0 {
		return Map{}, fmt.Errorf("map %s has no rows", ym.ID)
	}
	if ym.TileSize < 0 {
		return Map{}, fmt.Errorf("map %s has negative tile_size %d", ym.ID, ym.TileSize)
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	return Map{
		ID:       ym.ID,
		Name:     name,
		TileSize: ym.TileSize,
		Rows:     ym.Rows,
		Metadata: ym.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
