// Package level turns textual tile grids into tower geometry.
// This package depends on core but core does not depend on level.
package level

import (
	"sort"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// Map symbols.
const (
	SymPlatform = '-'
	SymEnemy    = 'E'
	SymGunner   = 'M'
	SymObstacle = 'O'
	SymLadder   = 'H'
	SymSpawn    = 'P'
	SymExit     = 'X'
	SymEmpty    = ' '
)

// Point is a tile's top-left corner in world pixels.
type Point struct {
	X, Y int
}

// Layout is the parsed content of a grid: merged geometry plus marker positions.
type Layout struct {
	Platforms []core.Rect
	Ladders   []core.Rect
	Obstacles []core.Rect
	Enemies   []Point
	Gunners   []Point
	Spawns    []Point
	Exit      *Point // last X in row-major order, nil when absent
	Width     int    // widest row in pixels
	Height    int    // rows in pixels
}

// Parse scans rows top to bottom, left to right and converts each symbol to
// world pixels (col*tile, row*tile). Columns count characters, not bytes.
// Unknown symbols are ignored. A tile size
// below 1 yields an empty layout.
func Parse(rows []string, tile int) Layout {
	var l Layout
	if tile <= 0 {
		return l
	}

	var platforms, ladders []core.Rect
	for row, line := range rows {
		cells := []rune(line)
		l.Width = max(l.Width, len(cells)*tile)
		for col, sym := range cells {
			x, y := col*tile, row*tile
			switch sym {
			case SymPlatform:
				platforms = append(platforms, core.NewRect(x, y, tile, tile))
			case SymEnemy:
				l.Enemies = append(l.Enemies, Point{x, y})
			case SymGunner:
				l.Gunners = append(l.Gunners, Point{x, y})
			case SymObstacle:
				l.Obstacles = append(l.Obstacles, core.NewRect(x, y, tile, tile))
			case SymLadder:
				ladders = append(ladders, core.NewRect(x, y, tile, tile))
			case SymSpawn:
				l.Spawns = append(l.Spawns, Point{x, y})
			case SymExit:
				p := Point{x, y}
				l.Exit = &p
			}
		}
	}
	l.Height = len(rows) * tile

	l.Platforms = mergePlatforms(platforms)
	l.Ladders = mergeLadders(ladders)
	return l
}

// mergePlatforms joins tiles into maximal horizontal strips.
// Tiles on different rows never merge.
func mergePlatforms(tiles []core.Rect) []core.Rect {
	if len(tiles) == 0 {
		return nil
	}

	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})

	merged := make([]core.Rect, 0, len(tiles))
	current := tiles[0]
	for _, t := range tiles[1:] {
		if t.Y == current.Y && t.X == current.Right() {
			current.W += t.W
			continue
		}
		merged = append(merged, current)
		current = t
	}
	return append(merged, current)
}

// mergeLadders joins tiles into maximal vertical runs.
func mergeLadders(tiles []core.Rect) []core.Rect {
	if len(tiles) == 0 {
		return nil
	}

	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].X != tiles[j].X {
			return tiles[i].X < tiles[j].X
		}
		return tiles[i].Y < tiles[j].Y
	})

	merged := make([]core.Rect, 0, len(tiles))
	current := tiles[0]
	for _, t := range tiles[1:] {
		if t.X == current.X && t.Y == current.Bottom() {
			current.H += t.H
			continue
		}
		merged = append(merged, current)
		current = t
	}
	return append(merged, current)
}

// Translate returns a copy of the layout moved by (dx, dy).
func (l Layout) Translate(dx, dy int) Layout {
	out := Layout{Width: l.Width, Height: l.Height}
	for _, r := range l.Platforms {
		out.Platforms = append(out.Platforms, r.Translate(dx, dy))
	}
	for _, r := range l.Ladders {
		out.Ladders = append(out.Ladders, r.Translate(dx, dy))
	}
	for _, r := range l.Obstacles {
		out.Obstacles = append(out.Obstacles, r.Translate(dx, dy))
	}
	shift := func(ps []Point) []Point {
		var res []Point
		for _, p := range ps {
			res = append(res, Point{p.X + dx, p.Y + dy})
		}
		return res
	}
	out.Enemies = shift(l.Enemies)
	out.Gunners = shift(l.Gunners)
	out.Spawns = shift(l.Spawns)
	if l.Exit != nil {
		p := Point{l.Exit.X + dx, l.Exit.Y + dy}
		out.Exit = &p
	}
	return out
}

// Empty reports whether the layout holds no geometry and no markers.
func (l Layout) Empty() bool {
	return len(l.Platforms) == 0 && len(l.Ladders) == 0 && len(l.Obstacles) == 0 &&
		len(l.Enemies) == 0 && len(l.Gunners) == 0 && len(l.Spawns) == 0 && l.Exit == nil
}
