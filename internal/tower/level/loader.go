package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tower-climber/internal/tower/level/formats"
)

// Map is a named tower grid.
type Map struct {
	ID       string
	Name     string
	TileSize int // 0 means the configured default
	Rows     []string
	FilePath string // empty for built-in maps
}

// Layout parses the map. fallbackTile is used when the map sets no tile size.
func (m Map) Layout(fallbackTile int) Layout {
	return Parse(m.Rows, m.Tile(fallbackTile))
}

// Tile returns the effective tile size.
func (m Map) Tile(fallbackTile int) int {
	if m.TileSize > 0 {
		return m.TileSize
	}
	return fallbackTile
}

// Columns returns the width of the widest row in tiles.
func (m Map) Columns() int {
	cols := 0
	for _, r := range m.Rows {
		cols = max(cols, utf8.RuneCountInString(r))
	}
	return cols
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		maps = append(maps, m)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})

	return maps, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Map{
		ID:       parsed.ID,
		Name:     parsed.Name,
		TileSize: parsed.TileSize,
		Rows:     parsed.Rows,
		FilePath: path,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Map, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
