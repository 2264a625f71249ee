package tower

import (
	"testing"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// wideFloor is thick enough that a 0.25s gravity step cannot tunnel through it.
var wideFloor = core.NewRect(0, 200, 1280, 640)

var fullView = core.NewRect(0, 0, 1280, 720)

func TestEnemyReversesAtEdge(t *testing.T) {
	tests := []struct {
		name        string
		x           int
		obstacles   []core.Rect
		wantReverse bool
	}{
		{"middle of platform", 40, nil, false},
		{"at the right edge", 95, nil, true},
		{"obstacle continues the floor", 95, []core.Rect{core.NewRect(128, 200, 64, 64)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			terrain := terrainOf([]core.Rect{core.NewRect(0, 200, 128, 64)}, tc.obstacles, nil)
			e := NewEnemy(tc.x, 170, testConfig(), fixedRand{i: 1})
			if e.VelX <= 0 {
				t.Fatalf("setup: VelX = %v, expected positive", e.VelX)
			}

			e.Update(terrain, nil, fixedRand{i: 1}, 0.01)

			if !e.OnGround {
				t.Fatal("OnGround = false, expected true")
			}
			reversed := e.VelX < 0
			if reversed != tc.wantReverse {
				t.Errorf("reversed = %v, expected %v (VelX=%v)", reversed, tc.wantReverse, e.VelX)
			}
			if reversed && e.Facing != -1 {
				t.Errorf("Facing = %d after reversal, expected -1", e.Facing)
			}
		})
	}
}

func TestEnemyEdgeProbePlacement(t *testing.T) {
	e := NewEnemy(100, 170, testConfig(), fixedRand{i: 1})

	got := e.EdgeProbe()
	if want := core.NewRect(134, 200, 6, 6); got != want {
		t.Errorf("EdgeProbe() moving right = %+v, expected %+v", got, want)
	}

	e.VelX = -100
	got = e.EdgeProbe()
	if want := core.NewRect(90, 200, 6, 6); got != want {
		t.Errorf("EdgeProbe() moving left = %+v, expected %+v", got, want)
	}
}

func TestEnemyReversesAtWall(t *testing.T) {
	terrain := terrainOf([]core.Rect{wideFloor}, []core.Rect{core.NewRect(135, 136, 64, 64)}, nil)
	e := NewEnemy(100, 170, testConfig(), fixedRand{i: 1})

	e.Update(terrain, nil, fixedRand{i: 1}, 0.1)

	if e.Bounds().Right() != 135 {
		t.Errorf("Right() = %d, expected 135", e.Bounds().Right())
	}
	if e.VelX != -100 {
		t.Errorf("VelX = %v, expected -100", e.VelX)
	}
}

func TestEnemyFlipsAtScreenEdge(t *testing.T) {
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	e := NewEnemy(2, 170, testConfig(), fixedRand{i: 0})
	if e.VelX >= 0 {
		t.Fatalf("setup: VelX = %v, expected negative", e.VelX)
	}

	e.Update(terrain, nil, fixedRand{i: 0}, 0.1)

	if e.Bounds().X != 0 {
		t.Errorf("X = %d, expected 0", e.Bounds().X)
	}
	if e.VelX != 100 || e.Facing != 1 {
		t.Errorf("VelX=%v Facing=%d, expected 100 and 1", e.VelX, e.Facing)
	}
}

func TestEnemyPatrolDirectionChange(t *testing.T) {
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	rng := fixedRand{f: 0, i: 2} // interval 1.2s, then "stop"
	e := NewEnemy(600, 170, testConfig(), rng)

	for range 4 {
		e.Update(terrain, nil, rng, 0.25)
	}
	if e.VelX != -100 {
		t.Fatalf("VelX before interval = %v, expected -100", e.VelX)
	}

	e.Update(terrain, nil, rng, 0.25)
	if e.VelX != 0 {
		t.Errorf("VelX after interval = %v, expected 0", e.VelX)
	}
	if e.DirTimer != 0 {
		t.Errorf("DirTimer = %v, expected 0", e.DirTimer)
	}
}

func TestEnemyAlertCycleTiming(t *testing.T) {
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	rng := fixedRand{i: 1}
	e := NewEnemy(600, 170, testConfig(), rng)

	if !e.HearGunshot(700, fullView) {
		t.Fatal("HearGunshot() = false, expected true")
	}

	checks := map[int]AlertState{
		1:  StateAlert,
		27: StateAlert,
		28: StateCooldown,
		35: StateCooldown,
		36: StatePatrol,
	}
	for tick := 1; tick <= 36; tick++ {
		e.Update(terrain, nil, rng, 0.25)
		if want, ok := checks[tick]; ok && e.State != want {
			t.Errorf("tick %d: State = %v, expected %v", tick, e.State, want)
		}
		if e.State == StateAlert && e.VelX != 0 {
			t.Errorf("tick %d: VelX = %v while alert, expected 0", tick, e.VelX)
		}
		if e.State == StateCooldown && e.VelX != 100 {
			t.Errorf("tick %d: VelX = %v in cooldown, expected 100", tick, e.VelX)
		}
	}
}

func TestEnemySpotsPlayer(t *testing.T) {
	cfg := testConfig()
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	e := NewEnemy(300, 170, cfg, fixedRand{i: 1})
	p := NewPlayer(600, 160, core.Player1, cfg)

	e.Update(terrain, []*Player{p}, fixedRand{i: 1}, 0.25)

	if e.State != StateAlert {
		t.Fatalf("State = %v, expected %v", e.State, StateAlert)
	}
	if e.Facing != 1 {
		t.Errorf("Facing = %d, expected 1", e.Facing)
	}
	if e.LastSeenX != p.Body.CenterX() {
		t.Errorf("LastSeenX = %d, expected %d", e.LastSeenX, p.Body.CenterX())
	}
}

func TestEnemyIgnoresDeadPlayer(t *testing.T) {
	cfg := testConfig()
	terrain := terrainOf([]core.Rect{wideFloor}, nil, nil)
	e := NewEnemy(300, 170, cfg, fixedRand{i: 1})
	p := NewPlayer(600, 160, core.Player1, cfg)
	p.Kill()

	e.Update(terrain, []*Player{p}, fixedRand{i: 1}, 0.25)

	if e.State != StatePatrol {
		t.Errorf("State = %v, expected %v", e.State, StatePatrol)
	}
}

func TestEnemyLineOfSight(t *testing.T) {
	e := NewEnemy(100, 170, testConfig(), fixedRand{i: 1}) // center (115, 185)

	tests := []struct {
		name      string
		target    core.Rect
		obstacles []core.Rect
		platforms []core.Rect
		expected  bool
	}{
		{"clear line", core.NewRect(400, 165, 30, 40), nil, nil, true},
		{"obstacle in between", core.NewRect(400, 165, 30, 40), []core.Rect{core.NewRect(250, 150, 64, 64)}, nil, false},
		{"platform in between", core.NewRect(400, 165, 30, 40), nil, []core.Rect{core.NewRect(250, 150, 64, 64)}, false},
		{"floor below the ray", core.NewRect(400, 165, 30, 40), nil, []core.Rect{core.NewRect(0, 200, 1280, 64)}, true},
		{"outside vertical tolerance", core.NewRect(400, 365, 30, 40), nil, nil, false},
		{"outside detection range", core.NewRect(800, 165, 30, 40), nil, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			terrain := terrainOf(tc.platforms, tc.obstacles, nil)
			if got := e.CanSee(tc.target, terrain); got != tc.expected {
				t.Errorf("CanSee() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEnemyHearGunshot(t *testing.T) {
	cfg := testConfig()

	e := NewEnemy(600, 170, cfg, fixedRand{i: 1})
	if !e.HearGunshot(100, fullView) {
		t.Fatal("HearGunshot() in view = false, expected true")
	}
	if e.State != StateAlert || e.Facing != -1 || e.VelX != 0 {
		t.Errorf("State=%v Facing=%d VelX=%v, expected alert, -1, 0", e.State, e.Facing, e.VelX)
	}
	if e.HearGunshot(1000, fullView) {
		t.Error("HearGunshot() while alert = true, expected false")
	}

	far := NewEnemy(600, 2000, cfg, fixedRand{i: 1})
	if far.HearGunshot(100, fullView) {
		t.Error("HearGunshot() outside the viewport = true, expected false")
	}
}

func TestEnemyBurstFire(t *testing.T) {
	e := NewEnemy(600, 170, testConfig(), fixedRand{i: 1})

	if _, ok := e.TryShoot(0.25); ok {
		t.Fatal("TryShoot() while patrolling = true, expected false")
	}

	e.HearGunshot(700, fullView)

	var fired []int
	for tick := 1; tick <= 17; tick++ {
		if pr, ok := e.TryShoot(0.25); ok {
			fired = append(fired, tick)
			if pr.Owner != OwnerEnemy || pr.Dir != e.Facing {
				t.Errorf("tick %d: owner=%v dir=%d, expected enemy %d", tick, pr.Owner, pr.Dir, e.Facing)
			}
		}
	}

	want := []int{1, 3, 5, 17}
	if len(fired) != len(want) {
		t.Fatalf("shots at ticks %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("shot %d at tick %d, expected %d", i+1, fired[i], want[i])
		}
	}
}
