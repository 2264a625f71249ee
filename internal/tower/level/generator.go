package level

import (
	"strings"

	"github.com/vovakirdan/tower-climber/internal/config"
)

// Rand is the subset of *rand.Rand the generator draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// BandRows is the height of one generated band in tiles.
const BandRows = 3

// Generator produces bands of tower rows to stack above the current world top.
// Each band is an empty row, a marker row and a platform row, top to bottom.
type Generator struct {
	cfg        config.EndlessConfig
	columns    int
	tile       int
	rng        Rand
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator for a tower that is columns tiles wide.
func NewGenerator(cfg config.EndlessConfig, columns, tile int, rng Rand, diff *config.DifficultyManager) *Generator {
	return &Generator{
		cfg:        cfg,
		columns:    max(columns, 1),
		tile:       tile,
		rng:        rng,
		difficulty: diff,
	}
}

// Band returns the rows of the next band, top row first. height is the
// distance climbed so far and drives difficulty scaling.
func (g *Generator) Band(height, ticks int) []string {
	platform := []byte(strings.Repeat(" ", g.columns))
	markers := []byte(strings.Repeat(" ", g.columns))

	strips := 1 + g.rng.Intn(2)
	for range strips {
		span := g.cfg.MaxStrip - g.cfg.MinStrip + 1
		length := g.cfg.MinStrip
		if span > 1 {
			length += g.rng.Intn(span)
		}
		length = min(g.difficulty.StripLength(length, height, ticks), g.columns)
		start := g.rng.Intn(g.columns - length + 1)
		for c := start; c < start+length; c++ {
			platform[c] = SymPlatform
		}
		g.placeMarkers(markers, start, length, height, ticks)
	}

	// Keep a gap so the band can always be passed from below
	if !strings.ContainsRune(string(platform), SymEmpty) {
		platform[g.columns-1] = SymEmpty
		markers[g.columns-1] = SymEmpty
	}

	return []string{
		strings.Repeat(" ", g.columns),
		string(markers),
		string(platform),
	}
}

// placeMarkers rolls one enemy, gunner and obstacle above a strip.
func (g *Generator) placeMarkers(markers []byte, start, length, height, ticks int) {
	rolls := []struct {
		sym    byte
		chance float64
	}{
		{SymEnemy, g.cfg.EnemyChance},
		{SymGunner, g.cfg.GunnerChance},
		{SymObstacle, g.cfg.ObstacleChance},
	}
	for _, r := range rolls {
		if g.rng.Float64() >= g.difficulty.SpawnChance(r.chance, height, ticks) {
			continue
		}
		col := start + g.rng.Intn(length)
		if markers[col] == SymEmpty {
			markers[col] = r.sym
		}
	}
}

// Above generates a band whose bottom edge sits at worldTop and returns it in
// world coordinates.
func (g *Generator) Above(worldTop, height, ticks int) Layout {
	rows := g.Band(height, ticks)
	return Parse(rows, g.tile).Translate(0, worldTop-len(rows)*g.tile)
}

// BandHeight returns the pixel height of one band.
func (g *Generator) BandHeight() int {
	return BandRows * g.tile
}
