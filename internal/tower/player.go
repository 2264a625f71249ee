package tower

import (
	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
)

// Player is an input-driven actor with a ground mode and a ladder mode.
type Player struct {
	Body        core.Body
	VelX, VelY  float64
	OnGround    bool
	FacingRight bool
	Alive       bool
	Binding     core.PlayerID
	Climbing    bool
	OnLadder    bool

	cfg *config.Tower
}

// NewPlayer creates a live player with its top-left corner at (x, y).
func NewPlayer(x, y int, binding core.PlayerID, cfg *config.Tower) *Player {
	return &Player{
		Body:        core.NewBody(float64(x), float64(y), cfg.Player.Width, cfg.Player.Height),
		FacingRight: true,
		Alive:       true,
		Binding:     binding,
		cfg:         cfg,
	}
}

// Bounds returns the integer hitbox.
func (p *Player) Bounds() core.Rect {
	return p.Body.Rect()
}

// Update advances the player by dt seconds. Dead players do not move.
func (p *Player) Update(in core.InputFrame, t *Terrain, dt float64) {
	if !p.Alive {
		return
	}
	pc := p.cfg.Player
	dir := in.Horizontal()

	p.OnLadder = t.OnLadder(p.Bounds())
	if !p.OnLadder {
		p.Climbing = false
	} else if in.IsHeld(core.ActionUp) {
		p.Climbing = true
	}

	if p.Climbing {
		p.VelY = 0
		if in.IsHeld(core.ActionUp) {
			p.VelY -= pc.ClimbSpeed
		}
		if in.IsHeld(core.ActionDown) {
			p.VelY += pc.ClimbSpeed
		}
		p.VelX = float64(dir) * pc.Speed / 2

		// Shoot plus a direction leaves the ladder sideways
		if in.IsHeld(core.ActionShoot) && dir != 0 {
			p.Climbing = false
			p.VelY = pc.LadderJumpFactor * pc.Jump
			p.VelX = float64(dir) * pc.Speed
		}
	} else {
		p.VelX = float64(dir) * pc.Speed
		if in.IsHeld(core.ActionUp) && p.OnGround {
			p.VelY = pc.Jump
			p.OnGround = false
		}
	}

	if !p.Climbing {
		p.VelY += p.cfg.Physics.Gravity * dt
	}

	switch {
	case dir > 0:
		p.FacingRight = true
	case dir < 0:
		p.FacingRight = false
	}

	p.Body.X += p.VelX * dt
	resolveHorizontal(&p.Body, p.VelX, t.Solids())

	p.Body.Y += p.VelY * dt
	p.OnGround = false
	resolveVertical(&p.Body, &p.VelY, &p.OnGround, t.Solids())

	clampToScreen(&p.Body, p.cfg.Screen.Width)
}

// Shoot spawns a projectile at the player's center moving in the facing
// direction. Returns false when the player is dead.
func (p *Player) Shoot() (*Projectile, bool) {
	if !p.Alive {
		return nil, false
	}
	dir := 1
	if !p.FacingRight {
		dir = -1
	}
	cx, cy := p.Bounds().Center()
	return NewProjectile(cx, cy, dir, OwnerPlayer, &p.cfg.Projectile), true
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.Alive = false
	p.VelX, p.VelY = 0, 0
	p.Climbing = false
}

// Facing returns -1 or +1.
func (p *Player) Facing() int {
	if p.FacingRight {
		return 1
	}
	return -1
}
