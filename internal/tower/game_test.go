package tower

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

const tick = 0.02

// row10 places content on row 10 of a 12 row map with a full floor below.
// With 40px tiles a player spawned on row 10 stands exactly on the floor.
func row10(content string, floor bool) []string {
	rows := make([]string, 12)
	rows[10] = content
	if floor {
		rows[11] = "--------------------"
	}
	return rows
}

func newTileGame(v Variant, players int, rows []string) *Game {
	g := NewVariant(v)
	g.opts.Players = players
	g.UseConfig(config.DefaultTowerConfig())
	g.UseMap(level.Map{ID: "unit", Name: "Unit", TileSize: 40, Rows: rows})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1})
	return g
}

// runUntil steps with in until the phase leaves RUNNING or limit ticks pass.
func runUntil(g *Game, in core.MultiInputFrame, limit int) int {
	for i := 1; i <= limit; i++ {
		if g.Step(in, tick).State.Phase != core.PhaseRunning {
			return i
		}
	}
	return limit
}

func TestPlayerShotKillsMachinegunner(t *testing.T) {
	for _, v := range []Variant{VariantClimb, VariantArena} {
		t.Run(string(v), func(t *testing.T) {
			g := newTileGame(v, 1, row10(" PM", true))

			g.Step(pressed(core.Player1, core.ActionShoot), tick)
			runUntil(g, idle(), 10)

			st := g.State()
			if st.Kills != 1 {
				t.Errorf("Kills = %d, expected 1", st.Kills)
			}
			if st.Phase != core.PhaseVictory {
				t.Errorf("Phase = %v, expected %v", st.Phase, core.PhaseVictory)
			}
			if st.Score != PointsPerKill+PointsIfVictory {
				t.Errorf("Score = %d, expected %d", st.Score, PointsPerKill+PointsIfVictory)
			}
			if g.EnemiesLeft() != 0 {
				t.Errorf("EnemiesLeft() = %d, expected 0", g.EnemiesLeft())
			}
		})
	}
}

func TestProjectileOverlappingEnemyKillsIt(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P          E", true))

	var target *Enemy
	for _, e := range g.enemies.All() {
		target = e
	}
	cx, cy := target.Bounds().Center()
	g.projectiles.Add(NewProjectile(cx, cy, 1, OwnerPlayer, &g.cfg.Projectile))

	g.Step(idle(), tick)

	if st := g.State(); st.Kills != 1 || st.Phase != core.PhaseVictory {
		t.Errorf("Kills=%d Phase=%v, expected 1 and victory", st.Kills, st.Phase)
	}
	if g.projectiles.Len() != 0 {
		t.Errorf("projectiles left = %d, expected 0", g.projectiles.Len())
	}
}

func TestObstacleStopsProjectile(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P O  M", true))

	g.Step(pressed(core.Player1, core.ActionShoot), tick)
	for range 10 {
		g.Step(idle(), tick)
	}

	if g.State().Kills != 0 {
		t.Errorf("Kills = %d, expected 0", g.State().Kills)
	}
	for _, pr := range g.projectiles.All() {
		if pr.Owner == OwnerPlayer {
			t.Error("player projectile passed through an obstacle")
		}
	}
}

func TestEnemyShotKillsPlayer(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P    E", true))

	runUntil(g, idle(), 200)

	st := g.State()
	if st.Phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, expected %v", st.Phase, core.PhaseGameOver)
	}
	if g.AlivePlayers() != 0 {
		t.Errorf("AlivePlayers() = %d, expected 0", g.AlivePlayers())
	}
	if st.Kills != 0 || st.Score != 0 {
		t.Errorf("Kills=%d Score=%d, expected 0 and 0", st.Kills, st.Score)
	}
}

// withExit adds an unreachable exit so the climb is only won there.
func withExit(rows []string) []string {
	rows[0] = "          X"
	return rows
}

func TestPlayerFallsOutOfWorld(t *testing.T) {
	g := newTileGame(VariantClimb, 1, withExit(row10(" P            M", false)))

	n := runUntil(g, idle(), 100)

	if g.State().Phase != core.PhaseGameOver {
		t.Fatalf("Phase after %d ticks = %v, expected %v", n, g.State().Phase, core.PhaseGameOver)
	}
	if g.Players()[0].Alive {
		t.Error("player below the fall line is still alive")
	}
}

// tallRows returns an n row map with 64px tiles: an exit in the top right
// corner and the spawn on row 1. Callers fill in the rest.
func tallRows(n int) []string {
	rows := make([]string, n)
	rows[0] = "                  X"
	rows[1] = " P"
	return rows
}

func newTallGame(v Variant, rows []string) *Game {
	g := NewVariant(v)
	g.UseConfig(config.DefaultTowerConfig())
	g.UseMap(level.Map{ID: "tall", Name: "Tall", TileSize: 64, Rows: rows})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1})
	return g
}

func TestPlayerSurvivesLongDrop(t *testing.T) {
	rows := tallRows(40)
	rows[39] = "--------------------"
	g := newTallGame(VariantClimb, rows)

	for i := range 150 {
		g.Step(idle(), tick)
		if !g.Players()[0].Alive {
			t.Fatalf("player died at tick %d, y=%d, camera top=%d", i+1, g.Players()[0].Bounds().Y, g.Camera().Top())
		}
	}

	p := g.Players()[0]
	if !p.OnGround || p.Bounds().Bottom() != 39*64 {
		t.Errorf("player bottom = %d onGround=%v, expected standing on the floor at %d", p.Bounds().Bottom(), p.OnGround, 39*64)
	}
	if got, want := g.Camera().Top(), 40*64-720; got != want {
		t.Errorf("Camera().Top() = %d, expected %d", got, want)
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected %v", g.State().Phase, core.PhaseRunning)
	}
}

func TestActorsBelowFirstScreenSurvive(t *testing.T) {
	rows := tallRows(40)
	rows[2] = "---"
	rows[36] = "     E"
	rows[37] = "--------------------"
	rows[38] = "          M"
	rows[39] = "--------------------"
	g := newTallGame(VariantArena, rows)

	if g.EnemiesLeft() != 2 {
		t.Fatalf("setup: EnemiesLeft() = %d, expected 2", g.EnemiesLeft())
	}

	g.Step(idle(), tick)
	if g.EnemiesLeft() != 2 || g.State().Phase != core.PhaseRunning {
		t.Fatalf("after one tick EnemiesLeft()=%d Phase=%v, expected 2 and running", g.EnemiesLeft(), g.State().Phase)
	}

	for range 100 {
		g.Step(idle(), tick)
	}
	if g.EnemiesLeft() != 2 {
		t.Errorf("EnemiesLeft() = %d, expected 2", g.EnemiesLeft())
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected %v", g.State().Phase, core.PhaseRunning)
	}
}

func TestEnemyWithNothingBelowIsDropped(t *testing.T) {
	rows := tallRows(40)
	rows[1] = " P        M"
	rows[2] = "---       -"
	rows[30] = "               E"
	g := newTallGame(VariantArena, rows)

	g.Step(idle(), tick)

	if g.enemies.Len() != 0 {
		t.Errorf("enemies = %d, expected the unsupported one dropped", g.enemies.Len())
	}
	if g.gunners.Len() != 1 {
		t.Errorf("gunners = %d, expected 1", g.gunners.Len())
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected %v", g.State().Phase, core.PhaseRunning)
	}
}

func TestClimbVictoryAtExit(t *testing.T) {
	g := newTileGame(VariantClimb, 1, row10(" PX                M", true))

	runUntil(g, held(core.Player1, core.ActionRight), 10)

	if g.State().Phase != core.PhaseVictory {
		t.Fatalf("Phase = %v, expected %v", g.State().Phase, core.PhaseVictory)
	}
	if g.EnemiesLeft() != 1 {
		t.Errorf("EnemiesLeft() = %d, expected 1", g.EnemiesLeft())
	}
}

func TestArenaIgnoresExit(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" PX                M", true))

	for range 10 {
		g.Step(held(core.Player1, core.ActionRight), tick)
	}

	if !g.Players()[0].Bounds().Intersects(g.terrain.Exit.Rect) {
		t.Fatal("setup: player should stand on the exit")
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected %v", g.State().Phase, core.PhaseRunning)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.MultiInputFrame, 400)
	for i := range inputs {
		in := core.NewMultiInputFrame()
		if i%40 < 20 {
			in.Hold(core.Player1, core.ActionRight)
		} else {
			in.Hold(core.Player1, core.ActionLeft)
		}
		if i%25 == 0 {
			in.Press(core.Player1, core.ActionShoot)
		}
		if i%60 == 30 {
			in.Press(core.Player1, core.ActionUp)
		}
		inputs[i] = in
	}

	run := func() Snapshot {
		g := NewVariant(VariantClimb)
		g.UseConfig(config.DefaultTowerConfig())
		g.UseMap(level.Builtins()[0])
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})
		for _, in := range inputs {
			if g.Step(in, tick).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Tick == 0 {
		t.Error("simulation did not advance")
	}
}

func TestRestartRebuildsSession(t *testing.T) {
	g := newTileGame(VariantClimb, 1, withExit(row10(" P      E     M", false)))
	wantEnemies := g.EnemiesLeft()

	runUntil(g, idle(), 100)
	if g.State().Phase != core.PhaseGameOver {
		t.Fatal("setup: expected game over")
	}

	// Steps after the end change nothing
	before := g.Snapshot()
	g.Step(idle(), tick)
	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("state changed after game over without restart")
	}

	g.Step(pressed(core.Player1, core.ActionRestart), tick)

	st := g.State()
	if st.Phase != core.PhaseRunning || st.GameOver {
		t.Errorf("Phase=%v GameOver=%v after restart, expected running", st.Phase, st.GameOver)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick after restart = %d, expected 0", g.Snapshot().Tick)
	}
	if g.AlivePlayers() != 1 {
		t.Errorf("AlivePlayers() = %d, expected 1", g.AlivePlayers())
	}
	if g.EnemiesLeft() != wantEnemies {
		t.Errorf("EnemiesLeft() = %d, expected %d", g.EnemiesLeft(), wantEnemies)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P                 M", true))

	g.Step(idle(), tick)
	g.Step(pressed(core.Player1, core.ActionRestart), tick)

	if got := g.Snapshot().Tick; got != 2 {
		t.Errorf("Tick = %d, expected 2", got)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTileGame(VariantArena, 2, row10(" P                 M", true))

	g.Step(pressed(core.Player1, core.ActionPause), tick)
	if !g.State().Paused {
		t.Fatal("Paused = false, expected true")
	}

	tickBefore := g.Snapshot().Tick
	for range 5 {
		g.Step(idle(), tick)
	}
	if g.Snapshot().Tick != tickBefore {
		t.Errorf("Tick advanced while paused: %d -> %d", tickBefore, g.Snapshot().Tick)
	}

	g.Step(pressed(core.Player2, core.ActionPause), tick)
	if !g.State().Paused {
		t.Error("player 2 should not toggle pause")
	}

	g.Step(pressed(core.Player1, core.ActionPause), tick)
	if g.State().Paused {
		t.Error("Paused = true after second press, expected false")
	}
}

func TestShootSlotOutOfRange(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P                 M", true))

	for _, slot := range []int{-1, 1, 5} {
		if g.PlayerShoot(slot) {
			t.Errorf("PlayerShoot(%d) = true, expected false", slot)
		}
	}

	g.Step(pressed(core.Player2, core.ActionShoot), tick)
	for _, pr := range g.projectiles.All() {
		if pr.Owner == OwnerPlayer {
			t.Error("missing player 2 fired a projectile")
		}
	}
}

func TestPlayerShotAlertsEnemiesInView(t *testing.T) {
	g := newTileGame(VariantArena, 1, row10(" P             E", true))

	if !g.PlayerShoot(0) {
		t.Fatal("PlayerShoot(0) = false, expected true")
	}
	for _, e := range g.enemies.All() {
		if e.State != StateAlert {
			t.Errorf("State = %v, expected %v", e.State, StateAlert)
		}
		if e.Facing != -1 {
			t.Errorf("Facing = %d, expected -1", e.Facing)
		}
	}
}

func TestPlayerSpawns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		players int
		wantX   []int
	}{
		{"single spawn shared", " P", 2, []int{40, 80}},
		{"own spawns", " P   P", 2, []int{40, 200}},
		{"count clamped", " P", 5, []int{40, 80}},
		{"no spawn marker", "   ", 1, []int{40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTileGame(VariantArena, tc.players, row10(tc.content+"     M", true))
			if len(g.Players()) != len(tc.wantX) {
				t.Fatalf("players = %d, expected %d", len(g.Players()), len(tc.wantX))
			}
			for i, p := range g.Players() {
				if p.Bounds().X != tc.wantX[i] {
					t.Errorf("player %d X = %d, expected %d", i+1, p.Bounds().X, tc.wantX[i])
				}
				if p.Binding != core.PlayerID(i) {
					t.Errorf("player %d binding = %d, expected %d", i+1, p.Binding, i)
				}
			}
		})
	}
}

func TestTwoPlayersSurviveOneDeath(t *testing.T) {
	g := newTileGame(VariantArena, 2, row10(" P   P             M", true))

	g.Players()[0].Kill()
	g.Step(idle(), tick)

	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v with one player alive, expected running", g.State().Phase)
	}
	if g.AlivePlayers() != 1 {
		t.Errorf("AlivePlayers() = %d, expected 1", g.AlivePlayers())
	}
}

func TestEndlessGeneratesAboveAndCulls(t *testing.T) {
	g := newTileGame(VariantEndless, 1, row10(" P", true))

	if g.terrain.Exit != nil {
		t.Error("endless tower should have no exit")
	}
	if limit := g.camera.Top() - g.cfg.Endless.GenerateAhead; g.worldTop > limit {
		t.Errorf("worldTop = %d, expected <= %d", g.worldTop, limit)
	}
	if g.terrain.Top(0) >= 0 {
		t.Errorf("Top() = %d, expected generated platforms above 0", g.terrain.Top(0))
	}

	g.camera.Snap(-5000)
	g.extendWorld()
	g.cull()

	line := g.camera.Top() + g.cfg.Screen.Height + g.cfg.Endless.CullMargin
	for _, p := range g.terrain.Platforms {
		if p.Rect.Y > line {
			t.Fatalf("platform at y=%d survived culling below %d", p.Rect.Y, line)
		}
	}
	if limit := g.camera.Top() - g.cfg.Endless.GenerateAhead; g.worldTop > limit {
		t.Errorf("worldTop = %d after climbing, expected <= %d", g.worldTop, limit)
	}
}

func TestEndlessHeightGoal(t *testing.T) {
	cfg := config.DefaultTowerConfig()
	cfg.Endless.HeightGoal = 64

	g := NewVariant(VariantEndless)
	g.UseConfig(cfg)
	g.UseMap(level.Map{ID: "unit", TileSize: 40, Rows: row10(" P", true)})
	g.Reset(core.DefaultConfig())

	g.Players()[0].Body.Y -= 200
	g.Step(idle(), tick)

	if g.State().Phase != core.PhaseVictory {
		t.Errorf("Phase = %v, expected %v", g.State().Phase, core.PhaseVictory)
	}
	if g.State().Climbed < 4 {
		t.Errorf("Climbed = %d tiles, expected at least 4", g.State().Climbed)
	}
}

func TestConfigureSelectsMapAndPlayers(t *testing.T) {
	g := New()

	if err := g.Configure(registry.SessionOptions{Map: "2", Players: 3}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	opts := g.Options()
	if opts.Map != "level_1" || opts.Players != 2 {
		t.Errorf("Options() = %+v, expected map level_1 and 2 players", opts)
	}

	if err := g.Configure(registry.SessionOptions{Map: "nowhere"}); err == nil {
		t.Error("Configure() with unknown map should fail")
	}
}

func TestConfigureCarriesTuningAndMaps(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	mapYAML := "id: custom\nname: Custom\nrows:\n  - \" P   X\"\n  - \"------\"\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(mapYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	tuning := filepath.Join(t.TempDir(), "tower.yaml")
	if err := os.WriteFile(tuning, []byte("physics:\n  gravity: 1500\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	opts := registry.SessionOptions{Map: "custom", MapsDir: dir, ConfigPath: tuning, Difficulty: "hard"}
	if err := g.Configure(opts); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	g.Reset(core.DefaultConfig())

	if g.MapID() != "custom" {
		t.Errorf("MapID() = %q, expected custom", g.MapID())
	}
	if g.cfg.Physics.Gravity != 1500 {
		t.Errorf("Gravity = %v, expected 1500", g.cfg.Physics.Gravity)
	}
	if g.cfg.Enemy.BurstShotCount != 4 {
		t.Errorf("BurstShotCount = %d, expected the hard preset's 4", g.cfg.Enemy.BurstShotCount)
	}

	// Options of one session do not leak into the next
	other := New()
	other.Reset(core.DefaultConfig())
	if other.cfg.Physics.Gravity != 2000 {
		t.Errorf("second session Gravity = %v, expected 2000", other.cfg.Physics.Gravity)
	}
	if err := other.Configure(registry.SessionOptions{Map: "custom"}); err == nil {
		t.Error("Configure() without MapsDir should not find the custom map")
	}
}

func TestLoadTuningRejectsUnknownPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadTuning("", "brutal"); err == nil {
		t.Error("LoadTuning() with an unknown preset should fail")
	}
	cfg, err := LoadTuning("", "")
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if cfg.Enemy.BurstShotCount != config.DefaultTowerConfig().Enemy.BurstShotCount {
		t.Errorf("empty preset changed BurstShotCount to %d", cfg.Enemy.BurstShotCount)
	}
}

func TestRestartReplaysSeed(t *testing.T) {
	g := newBuiltinGame(t)
	play := func() uint64 {
		for range 60 {
			g.Step(idle(), tick)
		}
		return g.Snapshot().Hash()
	}

	first := play()
	g.Players()[0].Kill()
	g.Step(idle(), tick)
	if !g.State().GameOver {
		t.Fatal("setup: expected game over")
	}
	g.Step(pressed(core.Player1, core.ActionRestart), tick)

	if second := play(); second != first {
		t.Errorf("restarted session hash = %d, expected %d", second, first)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range []Variant{VariantClimb, VariantArena, VariantEndless} {
		g, err := registry.Create(v.GameID())
		if err != nil {
			t.Fatalf("Create(%q) error = %v", v.GameID(), err)
		}
		if g.ID() != v.GameID() {
			t.Errorf("ID() = %q, expected %q", g.ID(), v.GameID())
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s does not accept session options", v.GameID())
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", VariantClimb, false},
		{"climb", VariantClimb, false},
		{"arena", VariantArena, false},
		{"endless", VariantEndless, false},
		{"speedrun", "", true},
	}

	for _, tc := range tests {
		got, err := ParseVariant(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseVariant(%q) = %q, %v, expected %q", tc.in, got, err, tc.want)
		}
	}
}
