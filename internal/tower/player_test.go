package tower

import (
	"testing"

	"github.com/vovakirdan/tower-climber/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// groundedPlayer returns a player resting on a wide floor at y=200.
func groundedPlayer(t *testing.T) (*Player, *Terrain) {
	t.Helper()
	terrain := terrainOf([]core.Rect{core.NewRect(0, 200, 1280, 64)}, nil, nil)
	p := NewPlayer(300, 160, core.Player1, testConfig())
	p.Update(frame(), terrain, 1.0/60)
	if !p.OnGround {
		t.Fatal("setup: player should be on the ground")
	}
	return p, terrain
}

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	p, terrain := groundedPlayer(t)
	dt := 1.0 / 60

	p.Update(frame(core.ActionUp), terrain, dt)
	if p.VelY >= 0 {
		t.Fatalf("VelY after jump = %v, expected negative", p.VelY)
	}
	if p.OnGround {
		t.Error("OnGround after jump = true, expected false")
	}

	// Holding up in the air only adds gravity
	before := p.VelY
	p.Update(frame(core.ActionUp), terrain, dt)
	if got, want := p.VelY, before+p.cfg.Physics.Gravity*dt; got != want {
		t.Errorf("VelY while airborne = %v, expected %v", got, want)
	}
}

func TestPlayerHorizontalMovementAndFacing(t *testing.T) {
	p, terrain := groundedPlayer(t)
	startX := p.Body.X

	p.Update(frame(core.ActionLeft), terrain, 0.1)
	if p.FacingRight {
		t.Error("FacingRight after moving left = true, expected false")
	}
	if got, want := p.Body.X, startX-17.5; got != want {
		t.Errorf("X = %v, expected %v", got, want)
	}

	p.Update(frame(core.ActionLeft, core.ActionRight), terrain, 0.1)
	if p.VelX != 0 {
		t.Errorf("VelX with both directions held = %v, expected 0", p.VelX)
	}
	if p.FacingRight {
		t.Error("facing should not change when directions cancel")
	}
}

func TestPlayerLadderClimb(t *testing.T) {
	terrain := terrainOf(nil, nil, []core.Rect{core.NewRect(100, 0, 64, 640)})
	p := NewPlayer(110, 300, core.Player1, testConfig())

	p.Update(frame(core.ActionUp), terrain, 0.125)
	if !p.Climbing {
		t.Fatal("Climbing = false, expected true")
	}
	if p.Body.Y != 281.25 {
		t.Errorf("Y while climbing up = %v, expected 281.25", p.Body.Y)
	}

	// No gravity while climbing and idle
	p.Update(frame(), terrain, 0.125)
	if p.Body.Y != 281.25 {
		t.Errorf("Y while idle on ladder = %v, expected 281.25", p.Body.Y)
	}

	p.Update(frame(core.ActionDown), terrain, 0.125)
	if p.Body.Y != 300 {
		t.Errorf("Y while climbing down = %v, expected 300", p.Body.Y)
	}
}

func TestPlayerLadderJumpSideways(t *testing.T) {
	terrain := terrainOf(nil, nil, []core.Rect{core.NewRect(100, 0, 64, 640)})
	p := NewPlayer(110, 300, core.Player1, testConfig())
	p.Update(frame(core.ActionUp), terrain, 0.125)

	p.Update(frame(core.ActionShoot, core.ActionRight), terrain, 0.125)

	if p.Climbing {
		t.Error("Climbing after ladder jump = true, expected false")
	}
	if p.VelX != p.cfg.Player.Speed {
		t.Errorf("VelX = %v, expected %v", p.VelX, p.cfg.Player.Speed)
	}
	want := p.cfg.Player.LadderJumpFactor*p.cfg.Player.Jump + p.cfg.Physics.Gravity*0.125
	if p.VelY != want {
		t.Errorf("VelY = %v, expected %v", p.VelY, want)
	}
}

func TestPlayerLeavingLadderStopsClimbing(t *testing.T) {
	terrain := terrainOf(nil, nil, []core.Rect{core.NewRect(100, 0, 64, 640)})
	p := NewPlayer(110, 300, core.Player1, testConfig())
	p.Update(frame(core.ActionUp), terrain, 0.125)

	p.Body.X = 500
	p.Update(frame(), terrain, 0.125)
	if p.Climbing || p.OnLadder {
		t.Errorf("Climbing=%v OnLadder=%v off the ladder, expected both false", p.Climbing, p.OnLadder)
	}
}

func TestPlayerShoot(t *testing.T) {
	p := NewPlayer(100, 100, core.Player1, testConfig())

	pr, ok := p.Shoot()
	if !ok {
		t.Fatal("Shoot() = false for a live player, expected true")
	}
	if pr.Dir != 1 || pr.Owner != OwnerPlayer {
		t.Errorf("projectile dir=%d owner=%v, expected 1 player", pr.Dir, pr.Owner)
	}
	cx, cy := pr.Bounds().Center()
	px, py := p.Bounds().Center()
	if cx != px || cy != py {
		t.Errorf("projectile center = (%d, %d), expected (%d, %d)", cx, cy, px, py)
	}

	p.FacingRight = false
	if pr, _ := p.Shoot(); pr.Dir != -1 {
		t.Errorf("Dir facing left = %d, expected -1", pr.Dir)
	}

	p.Kill()
	if _, ok := p.Shoot(); ok {
		t.Error("Shoot() = true for a dead player, expected false")
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	p := NewPlayer(100, 100, core.Player1, testConfig())
	p.Kill()

	p.Update(frame(core.ActionRight), terrainOf(nil, nil, nil), 0.1)
	if p.Body.X != 100 || p.Body.Y != 100 {
		t.Errorf("dead player moved to (%v, %v)", p.Body.X, p.Body.Y)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	p := NewPlayer(5, 100, core.Player1, testConfig())

	p.Update(frame(core.ActionLeft), terrainOf(nil, nil, nil), 0.1)
	if p.Bounds().X != 0 {
		t.Errorf("X = %d, expected 0", p.Bounds().X)
	}
}
