// Package tower implements the tower climber simulation: players, patrolling
// enemies, turrets and projectiles advancing under delta-time physics.
package tower

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

// Variant selects the win condition.
type Variant string

const (
	VariantClimb   Variant = "climb"   // reach the exit
	VariantArena   Variant = "arena"   // clear every enemy
	VariantEndless Variant = "endless" // climb a generated tower
)

// ParseVariant converts a flag value to a variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantClimb, VariantArena, VariantEndless:
		return v, nil
	case "":
		return VariantClimb, nil
	default:
		return "", fmt.Errorf("tower: unknown variant %q (use climb, arena or endless)", s)
	}
}

// GameID returns the registry id of a variant.
func (v Variant) GameID() string {
	switch v {
	case VariantArena:
		return "tower_arena"
	case VariantEndless:
		return "tower_endless"
	default:
		return "tower"
	}
}

// Score weights.
const (
	PointsPerKill   = 100
	PointsPerTile   = 10
	PointsIfVictory = 1000
)

// LoadTuning loads the configuration the way every session does: config file
// search from path, the named difficulty preset, validation.
// An empty preset keeps the file's difficulty.
func LoadTuning(path, preset string) (config.Tower, error) {
	cfg, err := config.LoadTower(path)
	if err != nil {
		return config.Tower{}, err
	}
	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return config.Tower{}, err
		}
		config.ApplyTowerPreset(&cfg, p)
	}
	if err := cfg.Validate(); err != nil {
		return config.Tower{}, err
	}
	return cfg, nil
}

// Game is the session controller. It owns every entity and mutates them only
// inside Step.
type Game struct {
	variant Variant
	opts    registry.SessionOptions
	mapDef  level.Map
	logger  *log.Logger

	// Configuration
	runtime    core.RuntimeConfig
	cfg        *config.Tower
	difficulty *config.DifficultyManager
	rng        Rand
	tuned      bool // cfg injected, skip loading on Reset

	// World
	terrain     *Terrain
	players     []*Player
	enemies     *Arena[*Enemy]
	gunners     *Arena[*Machinegunner]
	projectiles *Arena[*Projectile]
	camera      *Camera
	generator   *level.Generator
	worldTop    int
	worldH      int
	tile        int

	// Progress
	state     core.GameState
	tick      uint64
	spawnY    int
	bestClimb int
}

// New creates a climb variant session.
func New() *Game { return NewVariant(VariantClimb) }

// NewVariant creates a session of the given variant.
func NewVariant(v Variant) *Game {
	return &Game{
		variant: v,
		opts:    registry.SessionOptions{Players: 1},
		logger:  log.New(io.Discard),
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant.GameID()
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	switch g.variant {
	case VariantArena:
		return "Tower Climber (Arena)"
	case VariantEndless:
		return "Tower Climber (Endless)"
	default:
		return "Tower Climber"
	}
}

// Variant returns the configured variant.
func (g *Game) Variant() Variant {
	return g.variant
}

// Configure selects map, player count, tuning and logger for the following
// Resets.
func (g *Game) Configure(opts registry.SessionOptions) error {
	catalog, err := level.NewCatalog(opts.MapsDir)
	if err != nil {
		return err
	}
	ref := opts.Map
	if ref == "" {
		ref = "1"
	}
	m, err := catalog.Lookup(ref)
	if err != nil {
		return err
	}

	opts.Map = m.ID
	opts.Players = core.Clamp(opts.Players, 1, core.MaxPlayers)
	if opts.Logger != nil {
		g.logger = opts.Logger
	}
	g.opts = opts
	g.mapDef = m
	return nil
}

// Options returns the session options in effect.
func (g *Game) Options() registry.SessionOptions {
	return g.opts
}

// UseConfig injects tuning instead of loading it on Reset. Tests use it to
// patch constants.
func (g *Game) UseConfig(cfg config.Tower) {
	g.cfg = &cfg
	g.tuned = true
}

// UseMap plays m instead of a catalog map.
func (g *Game) UseMap(m level.Map) {
	g.mapDef = m
	g.opts.Map = m.ID
}

// Reset rebuilds every entity from the session configuration.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.tuned {
		cfg, err := LoadTuning(g.opts.ConfigPath, g.opts.Difficulty)
		if err != nil {
			g.logger.Warn("falling back to default tuning", "err", err)
			cfg = config.DefaultTowerConfig()
		}
		g.cfg = &cfg
	}
	// Every rebuild replays the same random sequence.
	g.rng = NewRand(runtime.Seed)
	if g.mapDef.ID == "" {
		g.mapDef = level.Builtins()[0]
		g.opts.Map = g.mapDef.ID
	}
	g.opts.Players = core.Clamp(g.opts.Players, 1, core.MaxPlayers)

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.opts.Difficulty != "" {
		if preset, err := config.ParsePreset(g.opts.Difficulty); err == nil && !config.IsFixedPreset(preset) {
			g.difficulty.SetInitialLevel(config.InitialLevelForPreset(preset))
		}
	}

	g.build()

	g.state = core.GameState{Phase: core.PhaseRunning}
	g.tick = 0
	g.bestClimb = 0

	g.logger.Info("session started",
		"variant", g.variant,
		"map", g.mapDef.ID,
		"players", len(g.players),
		"enemies", g.enemies.Len(),
		"gunners", g.gunners.Len(),
	)
}

// build creates terrain and actors from the selected map.
func (g *Game) build() {
	g.tile = g.mapDef.Tile(g.cfg.Level.TileSize)
	layout := g.mapDef.Layout(g.cfg.Level.TileSize)
	if g.variant == VariantEndless {
		layout.Exit = nil
	}

	g.terrain = NewTerrain(layout, g.cfg.Level.ExitWidth, g.cfg.Level.ExitHeight)
	g.enemies = NewArena[*Enemy]()
	g.gunners = NewArena[*Machinegunner]()
	g.projectiles = NewArena[*Projectile]()
	g.spawnActors(layout)

	g.players = g.players[:0]
	for i := range g.opts.Players {
		x, y := g.spawnPoint(layout, i)
		g.players = append(g.players, NewPlayer(x, y, core.PlayerID(i), g.cfg))
	}
	g.spawnY = g.players[0].Bounds().Y

	g.worldH = max(layout.Height, g.cfg.Screen.Height)
	g.worldTop = 0
	g.camera = NewCamera(g.cfg.Camera, g.cfg.Screen.Width, g.cfg.Screen.Height, g.worldH, g.variant == VariantEndless)
	g.camera.Snap(g.trackY())

	g.generator = nil
	if g.variant == VariantEndless {
		g.generator = level.NewGenerator(g.cfg.Endless, g.mapDef.Columns(), g.tile, g.rng, g.difficulty)
		g.extendWorld()
	}
}

func (g *Game) spawnActors(l level.Layout) {
	for _, p := range l.Enemies {
		g.enemies.Add(NewEnemy(p.X, p.Y, g.cfg, g.rng))
	}
	for _, p := range l.Gunners {
		g.gunners.Add(NewMachinegunner(p.X, p.Y, g.cfg))
	}
}

// spawnPoint returns the spawn of player slot i. Extra players without a
// marker of their own stand one tile right of the first spawn.
func (g *Game) spawnPoint(l level.Layout, i int) (int, int) {
	switch {
	case i < len(l.Spawns):
		return l.Spawns[i].X, l.Spawns[i].Y
	case len(l.Spawns) > 0:
		return l.Spawns[0].X + i*g.tile, l.Spawns[0].Y
	default:
		return g.tile * (i + 1), 0
	}
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.MultiInputFrame, dt float64) core.StepResult {
	if g.state.Phase != core.PhaseRunning {
		if in.AnyPressed(core.ActionRestart) {
			g.logger.Info("session restarted", "map", g.mapDef.ID)
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Player(core.Player1).WasPressed(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.state.Elapsed += dt

	g.camera.Update(g.trackY())

	for id := range core.MaxPlayers {
		if in.Player(core.PlayerID(id)).WasPressed(core.ActionShoot) {
			g.PlayerShoot(id)
		}
	}

	for _, p := range g.players {
		p.Update(in.Player(p.Binding), g.terrain, dt)
	}
	for _, e := range g.enemies.All() {
		e.Update(g.terrain, g.players, g.rng, dt)
		if pr, ok := e.TryShoot(dt); ok {
			g.projectiles.Add(pr)
		}
	}
	for _, m := range g.gunners.All() {
		m.Update(g.terrain, g.players, dt)
		if pr, ok := m.TryShoot(dt); ok {
			g.projectiles.Add(pr)
		}
	}
	for id, pr := range g.projectiles.All() {
		if !pr.Update(dt, g.cfg.Screen.Width) {
			g.projectiles.Remove(id)
		}
	}

	g.resolveProjectiles()
	g.checkFalls()
	g.updateClimb()
	g.evaluate()

	if g.variant == VariantEndless {
		g.extendWorld()
		g.cull()
	}

	g.enemies.Compact()
	g.gunners.Compact()
	g.projectiles.Compact()

	return core.StepResult{State: g.State()}
}

// PlayerShoot fires for player slot i. Out-of-range and dead slots are
// ignored. A shot fired inside the viewport alerts patrolling enemies there.
func (g *Game) PlayerShoot(i int) bool {
	if i < 0 || i >= len(g.players) {
		return false
	}
	pr, ok := g.players[i].Shoot()
	if !ok {
		return false
	}
	g.projectiles.Add(pr)

	cx, cy := pr.Bounds().Center()
	view := g.camera.Viewport()
	if view.Contains(cx, cy) {
		for _, e := range g.enemies.All() {
			e.HearGunshot(cx, view)
		}
	}
	return true
}

// resolveProjectiles applies hits in precedence order: obstacles, then the
// opposing side. Each projectile resolves at most once.
func (g *Game) resolveProjectiles() {
	for id, pr := range g.projectiles.All() {
		r := pr.Bounds()
		if anyIntersects(g.terrain.Obstacles, r) {
			g.projectiles.Remove(id)
			continue
		}

		hit := false
		switch pr.Owner {
		case OwnerPlayer:
			for eid, e := range g.enemies.All() {
				if e.Bounds().Intersects(r) {
					g.enemies.Remove(eid)
					g.state.Kills++
					hit = true
					g.logger.Debug("enemy killed", "x", e.Bounds().X, "y", e.Bounds().Y)
				}
			}
			for mid, m := range g.gunners.All() {
				if m.Bounds().Intersects(r) {
					g.gunners.Remove(mid)
					g.state.Kills++
					hit = true
					g.logger.Debug("machinegunner killed", "x", m.Bounds().X, "y", m.Bounds().Y)
				}
			}
		case OwnerEnemy:
			for _, p := range g.players {
				if p.Alive && p.Bounds().Intersects(r) {
					p.Kill()
					hit = true
					g.logger.Info("player shot", "player", int(p.Binding)+1)
				}
			}
		}
		if hit {
			g.projectiles.Remove(id)
		}
	}
}

// checkFalls kills players below the fall line. Enemies below it are dropped
// only while airborne with no solid left in their column; ones still settling
// onto a floor further down stay.
func (g *Game) checkFalls() {
	line := g.camera.FallLine()
	for _, p := range g.players {
		if p.Alive && p.Bounds().Y > line {
			p.Kill()
			g.logger.Info("player fell", "player", int(p.Binding)+1)
		}
	}
	for id, e := range g.enemies.All() {
		if g.fellOut(e.Bounds(), e.OnGround, line) {
			g.enemies.Remove(id)
		}
	}
	for id, m := range g.gunners.All() {
		if g.fellOut(m.Bounds(), m.OnGround, line) {
			g.gunners.Remove(id)
		}
	}
}

func (g *Game) fellOut(r core.Rect, onGround bool, line int) bool {
	return !onGround && r.Y > line && !g.terrain.SolidBelow(r)
}

// updateClimb records the best height above spawn reached by a live player.
func (g *Game) updateClimb() {
	if top, ok := g.topmost(); ok {
		g.bestClimb = max(g.bestClimb, g.spawnY-top.Bounds().Y)
	}
	if g.tile > 0 {
		g.state.Climbed = g.bestClimb / g.tile
	}
}

// evaluate checks victory before defeat.
func (g *Game) evaluate() {
	switch {
	case g.won():
		g.state.Phase = core.PhaseVictory
		g.logger.Info("victory", "variant", g.variant, "kills", g.state.Kills, "climbed", g.state.Climbed)
	case g.AlivePlayers() == 0:
		g.state.Phase = core.PhaseGameOver
		g.logger.Info("game over", "variant", g.variant, "kills", g.state.Kills, "climbed", g.state.Climbed)
	}
}

func (g *Game) won() bool {
	switch g.variant {
	case VariantEndless:
		goal := g.cfg.Endless.HeightGoal
		return goal > 0 && g.bestClimb >= goal
	case VariantClimb:
		if g.terrain.Exit != nil {
			for _, p := range g.players {
				if p.Alive && p.Bounds().Intersects(g.terrain.Exit.Rect) {
					return true
				}
			}
			return false
		}
	}
	return g.enemies.Len() == 0 && g.gunners.Len() == 0
}

// extendWorld stacks generated bands until the world reaches GenerateAhead
// pixels above the viewport.
func (g *Game) extendWorld() {
	if g.generator == nil {
		return
	}
	limit := g.camera.Top() - g.cfg.Endless.GenerateAhead
	for g.worldTop > limit {
		band := g.generator.Above(g.worldTop, g.bestClimb, int(g.tick))
		g.terrain.Add(band)
		g.spawnActors(band)
		g.worldTop -= g.generator.BandHeight()
	}
}

// cull drops geometry and actors more than CullMargin below the viewport.
func (g *Game) cull() {
	line := g.camera.Top() + g.cfg.Screen.Height + g.cfg.Endless.CullMargin
	if n := g.terrain.Cull(line); n > 0 {
		g.logger.Debug("culled terrain", "pieces", n, "below", line)
	}
	for id, e := range g.enemies.All() {
		if e.Bounds().Y > line {
			g.enemies.Remove(id)
		}
	}
	for id, m := range g.gunners.All() {
		if m.Bounds().Y > line {
			g.gunners.Remove(id)
		}
	}
}

// topmost returns the live player with the smallest Y.
func (g *Game) topmost() (*Player, bool) {
	var best *Player
	for _, p := range g.players {
		if p.Alive && (best == nil || p.Bounds().Y < best.Bounds().Y) {
			best = p
		}
	}
	return best, best != nil
}

// trackY returns the Y the camera follows: the topmost live player, or the
// current band position when nobody is alive.
func (g *Game) trackY() int {
	if p, ok := g.topmost(); ok {
		return p.Bounds().Y
	}
	return g.camera.Top() + g.cfg.Camera.LowerBand
}

// AlivePlayers returns the number of live players.
func (g *Game) AlivePlayers() int {
	n := 0
	for _, p := range g.players {
		if p.Alive {
			n++
		}
	}
	return n
}

// EnemiesLeft returns live enemies plus machinegunners.
func (g *Game) EnemiesLeft() int {
	return g.enemies.Len() + g.gunners.Len()
}

// MapID returns the id of the map in play.
func (g *Game) MapID() string {
	return g.mapDef.ID
}

// Players returns the player slots. Callers must not modify them.
func (g *Game) Players() []*Player {
	return g.players
}

// Camera returns the session camera.
func (g *Game) Camera() *Camera {
	return g.camera
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.state
	st.Score = PointsPerKill*st.Kills + PointsPerTile*st.Climbed
	if st.Phase == core.PhaseVictory {
		st.Score += PointsIfVictory
	}
	st.GameOver = st.Phase != core.PhaseRunning
	return st
}

// Register the variants with the registry
func init() {
	registry.Register(VariantClimb.GameID(), func() registry.Game {
		return NewVariant(VariantClimb)
	})
	registry.Register(VariantArena.GameID(), func() registry.Game {
		return NewVariant(VariantArena)
	})
	registry.Register(VariantEndless.GameID(), func() registry.Game {
		return NewVariant(VariantEndless)
	})
}
