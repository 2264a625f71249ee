package tower

import (
	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int { return r.i % n }

func testConfig() *config.Tower {
	cfg := config.DefaultTowerConfig()
	return &cfg
}

// terrainOf builds terrain from loose rects.
func terrainOf(platforms, obstacles, ladders []core.Rect) *Terrain {
	return NewTerrain(level.Layout{Platforms: platforms, Obstacles: obstacles, Ladders: ladders}, 60, 60)
}

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func pressed(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Press(id, a)
	}
	return in
}

func held(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Hold(id, a)
	}
	return in
}
