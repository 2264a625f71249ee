package level

import (
	"fmt"
	"strconv"
	"strings"
)

// Catalog is the ordered set of playable maps: built-ins first, then maps
// found on disk. A file whose id matches a built-in replaces it in place.
type Catalog struct {
	maps []Map
}

// NewCatalog builds a catalog from the built-in maps and, when dir is not
// empty, every map file under dir.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{maps: Builtins()}
	if dir == "" {
		return c, nil
	}

	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("level: cannot load maps: %w", err)
	}
	for _, m := range loaded {
		c.add(m)
	}
	return c, nil
}

func (c *Catalog) add(m Map) {
	for i := range c.maps {
		if c.maps[i].ID == m.ID {
			c.maps[i] = m
			return
		}
	}
	c.maps = append(c.maps, m)
}

// List returns all maps in menu order.
func (c *Catalog) List() []Map {
	out := make([]Map, len(c.maps))
	copy(out, c.maps)
	return out
}

// Len returns the number of maps.
func (c *Catalog) Len() int {
	return len(c.maps)
}

// Lookup resolves a map by id or by its 1-based menu number.
func (c *Catalog) Lookup(ref string) (Map, error) {
	ref = strings.TrimSpace(ref)
	for _, m := range c.maps {
		if m.ID == ref {
			return m, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(c.maps) {
		return c.maps[n-1], nil
	}
	return Map{}, fmt.Errorf("level: unknown map %q", ref)
}
