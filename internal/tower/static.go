package tower

import (
	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

// Kind tags geometry and actors by role.
type Kind int

const (
	KindPlatform Kind = iota
	KindObstacle
	KindLadder
	KindExit
	KindPlayer
	KindEnemy
	KindMachinegunner
	KindProjectile
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindObstacle:
		return "obstacle"
	case KindLadder:
		return "ladder"
	case KindExit:
		return "exit"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMachinegunner:
		return "machinegunner"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Static is immutable world geometry. It has a bounding box and nothing else.
type Static struct {
	Kind Kind
	Rect core.Rect
}

// Bounds returns the bounding box.
func (s Static) Bounds() core.Rect {
	return s.Rect
}

// Terrain holds all static geometry of a session.
type Terrain struct {
	Platforms []Static
	Obstacles []Static
	Ladders   []Static
	Exit      *Static
}

// NewTerrain builds terrain from a parsed layout. The exit marker becomes an
// exitW x exitH box anchored at the marker tile.
func NewTerrain(l level.Layout, exitW, exitH int) *Terrain {
	t := &Terrain{}
	t.Add(l)
	if l.Exit != nil {
		t.Exit = &Static{Kind: KindExit, Rect: core.NewRect(l.Exit.X, l.Exit.Y, exitW, exitH)}
	}
	return t
}

// Add appends the geometry of a layout. Markers are ignored.
func (t *Terrain) Add(l level.Layout) {
	for _, r := range l.Platforms {
		t.Platforms = append(t.Platforms, Static{Kind: KindPlatform, Rect: r})
	}
	for _, r := range l.Obstacles {
		t.Obstacles = append(t.Obstacles, Static{Kind: KindObstacle, Rect: r})
	}
	for _, r := range l.Ladders {
		t.Ladders = append(t.Ladders, Static{Kind: KindLadder, Rect: r})
	}
}

// Solids returns platforms and obstacles, the geometry actors collide with,
// in resolution order.
func (t *Terrain) Solids() [][]Static {
	return [][]Static{t.Platforms, t.Obstacles}
}

// OnLadder reports whether r touches any ladder.
func (t *Terrain) OnLadder(r core.Rect) bool {
	return anyIntersects(t.Ladders, r)
}

// Blocked reports whether the point lies inside a platform or obstacle.
func (t *Terrain) Blocked(x, y int) bool {
	for _, group := range t.Solids() {
		for _, s := range group {
			if s.Rect.Contains(x, y) {
				return true
			}
		}
	}
	return false
}

// Supported reports whether r overlaps a platform or obstacle.
func (t *Terrain) Supported(r core.Rect) bool {
	return anyIntersects(t.Platforms, r) || anyIntersects(t.Obstacles, r)
}

// SolidBelow reports whether a platform or obstacle lies under r, anywhere
// down its column.
func (t *Terrain) SolidBelow(r core.Rect) bool {
	for _, group := range t.Solids() {
		for _, s := range group {
			if s.Rect.X < r.Right() && r.X < s.Rect.Right() && s.Rect.Bottom() > r.Y {
				return true
			}
		}
	}
	return false
}

// Top returns the smallest Y of any platform, or fallback without platforms.
func (t *Terrain) Top(fallback int) int {
	top := fallback
	for i, p := range t.Platforms {
		if i == 0 || p.Rect.Y < top {
			top = p.Rect.Y
		}
	}
	return top
}

// Cull drops geometry whose top edge is below y and returns how many pieces went.
func (t *Terrain) Cull(y int) int {
	before := len(t.Platforms) + len(t.Obstacles) + len(t.Ladders)
	keep := func(list []Static) []Static {
		out := list[:0]
		for _, s := range list {
			if s.Rect.Y <= y {
				out = append(out, s)
			}
		}
		return out
	}
	t.Platforms = keep(t.Platforms)
	t.Obstacles = keep(t.Obstacles)
	t.Ladders = keep(t.Ladders)
	return before - len(t.Platforms) - len(t.Obstacles) - len(t.Ladders)
}

func anyIntersects(list []Static, r core.Rect) bool {
	for _, s := range list {
		if s.Rect.Intersects(r) {
			return true
		}
	}
	return false
}
