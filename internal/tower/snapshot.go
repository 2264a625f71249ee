package tower

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Variant     Variant
	MapID       string
	Phase       core.Phase
	Score       int
	Kills       int
	Climbed     int
	CameraTop   int
	Players     []core.Rect // dead players keep their slot with zero size
	Enemies     []core.Rect
	EnemyStates []AlertState
	Gunners     []core.Rect
	Projectiles []core.Rect
	Terrain     int // number of static pieces
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:      g.tick,
		Variant:   g.variant,
		MapID:     g.mapDef.ID,
		Phase:     st.Phase,
		Score:     st.Score,
		Kills:     st.Kills,
		Climbed:   st.Climbed,
		CameraTop: g.camera.Top(),
		Terrain:   len(g.terrain.Platforms) + len(g.terrain.Obstacles) + len(g.terrain.Ladders),
	}
	for _, p := range g.players {
		r := p.Bounds()
		if !p.Alive {
			r.W, r.H = 0, 0
		}
		snap.Players = append(snap.Players, r)
	}
	for _, e := range g.enemies.All() {
		snap.Enemies = append(snap.Enemies, e.Bounds())
		snap.EnemyStates = append(snap.EnemyStates, e.State)
	}
	for _, m := range g.gunners.All() {
		snap.Gunners = append(snap.Gunners, m.Bounds())
	}
	for _, pr := range g.projectiles.All() {
		snap.Projectiles = append(snap.Projectiles, pr.Bounds())
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;V:%s;M:%s;S:%d:%d:%d:%d;C:%d;N:%d;",
		snap.Tick, snap.Variant, snap.MapID, snap.Phase, snap.Score, snap.Kills, snap.Climbed,
		snap.CameraTop, snap.Terrain)

	rects := func(tag string, list []core.Rect) {
		fmt.Fprintf(h, "%s:", tag)
		for _, r := range list {
			fmt.Fprintf(h, "%d:%d:%d:%d,", r.X, r.Y, r.W, r.H)
		}
	}
	rects("P", snap.Players)
	rects(";E", snap.Enemies)
	fmt.Fprintf(h, ";A:%v", snap.EnemyStates)
	rects(";G", snap.Gunners)
	rects(";B", snap.Projectiles)

	return h.Sum64()
}
