package tower

import (
	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
)

// AlertState is the enemy behavior mode.
type AlertState int

const (
	StatePatrol AlertState = iota
	StateAlert
	StateCooldown
)

// String returns the uppercase state name.
func (s AlertState) String() string {
	switch s {
	case StatePatrol:
		return "PATROL"
	case StateAlert:
		return "ALERT"
	case StateCooldown:
		return "COOLDOWN"
	default:
		return "UNKNOWN"
	}
}

// Enemy is a patroller that detects players by line of sight and fires
// bursts while alert.
type Enemy struct {
	Body       core.Body
	VelX, VelY float64
	OnGround   bool
	Facing     int
	State      AlertState

	AlertTimer    float64
	CooldownTimer float64
	RaycastTimer  float64
	BurstShots    int
	ShootTimer    float64
	BurstResting  bool
	LastSeenX     int
	DirTimer      float64
	DirInterval   float64

	cfg *config.Tower
}

// NewEnemy creates a patrolling enemy at (x, y) walking in a random direction.
func NewEnemy(x, y int, cfg *config.Tower, rng Rand) *Enemy {
	e := &Enemy{
		Body:   core.NewBody(float64(x), float64(y), cfg.Enemy.Width, cfg.Enemy.Height),
		Facing: 1,
		State:  StatePatrol,
		cfg:    cfg,
	}
	e.VelX = cfg.Enemy.Speed
	if rng.Intn(2) == 0 {
		e.VelX = -cfg.Enemy.Speed
		e.Facing = -1
	}
	e.DirInterval = e.rollInterval(rng)
	return e
}

// Bounds returns the integer hitbox.
func (e *Enemy) Bounds() core.Rect {
	return e.Body.Rect()
}

func (e *Enemy) rollInterval(rng Rand) float64 {
	return randRange(rng, e.cfg.Enemy.DirectionChangeMin, e.cfg.Enemy.DirectionChangeMax)
}

// Update advances movement, physics and detection by dt seconds.
func (e *Enemy) Update(t *Terrain, players []*Player, rng Rand, dt float64) {
	ec := e.cfg.Enemy

	switch e.State {
	case StatePatrol:
		e.DirTimer += dt
		if e.DirTimer >= e.DirInterval {
			e.DirTimer = 0
			e.DirInterval = e.rollInterval(rng)
			switch rng.Intn(3) {
			case 0:
				e.VelX = -ec.Speed
			case 1:
				e.VelX = ec.Speed
			default:
				e.VelX = 0
			}
		}
	case StateAlert:
		e.VelX = 0
		e.AlertTimer += dt
		if e.AlertTimer >= ec.AlertDuration {
			e.State = StateCooldown
			e.CooldownTimer = 0
		}
	case StateCooldown:
		e.CooldownTimer += dt
		if e.CooldownTimer >= ec.CooldownDuration {
			e.State = StatePatrol
			e.DirTimer = 0
		}
	}
	if e.State == StateCooldown {
		e.VelX = float64(e.Facing) * ec.Speed
	}
	e.syncFacing()

	e.VelY += e.cfg.Physics.Gravity * dt

	e.Body.X += e.VelX * dt
	if resolveHorizontal(&e.Body, e.VelX, t.Solids()) {
		e.reverse()
	}
	if side := clampToScreen(&e.Body, e.cfg.Screen.Width); side != 0 && e.VelX != 0 {
		e.VelX = float64(-side) * ec.Speed
		e.syncFacing()
	}

	e.Body.Y += e.VelY * dt
	e.OnGround = false
	resolveVertical(&e.Body, &e.VelY, &e.OnGround, t.Solids())

	if e.OnGround && e.VelX != 0 && !e.GroundAhead(t) {
		e.reverse()
	}

	if e.OnGround && e.State != StateCooldown {
		e.RaycastTimer += dt
		if e.RaycastTimer >= ec.RaycastInterval {
			e.RaycastTimer = 0
			if p := e.Spot(players, t); p != nil {
				e.alert(p.Body.CenterX(), e.State == StatePatrol)
			}
		}
	}
}

// reverse flips direction and snaps speed to the patrol speed.
func (e *Enemy) reverse() {
	if e.VelX > 0 {
		e.VelX = -e.cfg.Enemy.Speed
	} else {
		e.VelX = e.cfg.Enemy.Speed
	}
	e.syncFacing()
}

func (e *Enemy) syncFacing() {
	switch {
	case e.VelX > 0:
		e.Facing = 1
	case e.VelX < 0:
		e.Facing = -1
	}
}

// EdgeProbe returns the square checked for support ahead of the feet.
func (e *Enemy) EdgeProbe() core.Rect {
	r := e.Bounds()
	size := e.cfg.Enemy.ProbeSize
	x := r.Right() + e.cfg.Enemy.EdgeLookahead
	if e.VelX < 0 {
		x = r.X - e.cfg.Enemy.EdgeLookahead - size
	}
	return core.NewRect(x, r.Bottom(), size, size)
}

// GroundAhead reports whether the edge probe finds a platform or obstacle.
func (e *Enemy) GroundAhead(t *Terrain) bool {
	return t.Supported(e.EdgeProbe())
}

// Spot returns the first live player in clear line of sight, or nil.
func (e *Enemy) Spot(players []*Player, t *Terrain) *Player {
	for _, p := range players {
		if p.Alive && e.CanSee(p.Bounds(), t) {
			return p
		}
	}
	return nil
}

// CanSee reports whether target is within the detection band and no platform
// or obstacle sits on the stepped ray between the two centers.
func (e *Enemy) CanSee(target core.Rect, t *Terrain) bool {
	ec := e.cfg.Enemy
	ex, ey := e.Bounds().Center()
	tx, ty := target.Center()

	if core.Abs(ty-ey) > ec.VerticalTolerance || core.Abs(tx-ex) > ec.DetectionRange {
		return false
	}
	return clearRay(ex, ey, tx, ty, ec.RayStep, t)
}

// clearRay samples the segment every step pixels, endpoints excluded.
func clearRay(x0, y0, x1, y1, step int, t *Terrain) bool {
	dx, dy := x1-x0, y1-y0
	length := max(core.Abs(dx), core.Abs(dy))
	if length == 0 || step <= 0 {
		return true
	}
	for d := step; d < length; d += step {
		x := x0 + dx*d/length
		y := y0 + dy*d/length
		if t.Blocked(x, y) {
			return false
		}
	}
	return true
}

// alert faces x and refreshes the alert timer. Entering from patrol also
// freezes the enemy and arms the burst so the first shot fires this tick.
func (e *Enemy) alert(x int, entering bool) {
	e.LastSeenX = x
	if x > e.Body.CenterX() {
		e.Facing = 1
	} else {
		e.Facing = -1
	}
	e.AlertTimer = 0
	if !entering {
		return
	}
	e.State = StateAlert
	e.VelX = 0
	e.ShootTimer = e.cfg.Enemy.BurstShotInterval
	e.BurstShots = 0
	e.BurstResting = false
}

// HearGunshot alerts a patrolling enemy inside the viewport toward the shot.
// Returns true if the enemy switched to ALERT.
func (e *Enemy) HearGunshot(x int, viewport core.Rect) bool {
	if e.State != StatePatrol || !e.Bounds().Intersects(viewport) {
		return false
	}
	e.alert(x, true)
	return true
}

// TryShoot advances the burst timer while alert and returns a projectile when
// a shot is due.
func (e *Enemy) TryShoot(dt float64) (*Projectile, bool) {
	if e.State != StateAlert {
		return nil, false
	}
	ec := e.cfg.Enemy

	e.ShootTimer += dt
	if e.BurstResting {
		if e.ShootTimer < ec.BurstCooldown {
			return nil, false
		}
		e.BurstResting = false
		e.BurstShots = 0
		e.ShootTimer = ec.BurstShotInterval
	}
	if e.ShootTimer < ec.BurstShotInterval {
		return nil, false
	}

	e.ShootTimer = 0
	e.BurstShots++
	if e.BurstShots >= ec.BurstShotCount {
		e.BurstResting = true
	}
	cx, cy := e.Bounds().Center()
	return NewProjectile(cx, cy, e.Facing, OwnerEnemy, &e.cfg.Projectile), true
}
