package tower

import (
	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
)

// Machinegunner is a stationary turret. It has no horizontal velocity, turns
// toward the nearest live player and fires bursts whether or not it can see.
type Machinegunner struct {
	Body       core.Body
	VelY       float64
	OnGround   bool
	Facing     int
	BurstShots int
	ShootTimer float64
	InCooldown bool

	cfg *config.Tower
}

// NewMachinegunner creates a turret at (x, y) facing right.
func NewMachinegunner(x, y int, cfg *config.Tower) *Machinegunner {
	return &Machinegunner{
		Body:   core.NewBody(float64(x), float64(y), cfg.Machinegunner.Width, cfg.Machinegunner.Height),
		Facing: 1,
		cfg:    cfg,
	}
}

// Bounds returns the integer hitbox.
func (m *Machinegunner) Bounds() core.Rect {
	return m.Body.Rect()
}

// Update turns toward the nearest player and settles under gravity.
func (m *Machinegunner) Update(t *Terrain, players []*Player, dt float64) {
	m.faceNearest(players)

	m.VelY += m.cfg.Physics.Gravity * dt
	m.Body.Y += m.VelY * dt
	m.OnGround = false
	resolveVertical(&m.Body, &m.VelY, &m.OnGround, t.Solids())
}

func (m *Machinegunner) faceNearest(players []*Player) {
	cx := m.Body.CenterX()
	var nearest *Player
	best := 0
	for _, p := range players {
		if !p.Alive {
			continue
		}
		d := core.Abs(p.Body.CenterX() - cx)
		if nearest == nil || d < best {
			nearest, best = p, d
		}
	}
	if nearest == nil {
		return
	}
	if nearest.Body.CenterX() > cx {
		m.Facing = 1
	} else {
		m.Facing = -1
	}
}

// TryShoot advances the burst timer. The first shot of each burst comes one
// full interval after the burst starts.
func (m *Machinegunner) TryShoot(dt float64) (*Projectile, bool) {
	mc := m.cfg.Machinegunner

	m.ShootTimer += dt
	if m.InCooldown {
		if m.ShootTimer >= mc.BurstCooldown {
			m.InCooldown = false
			m.BurstShots = 0
			m.ShootTimer = 0
		}
		return nil, false
	}
	if m.BurstShots >= mc.ShotsPerBurst || m.ShootTimer < mc.ShotInterval {
		return nil, false
	}

	m.ShootTimer = 0
	m.BurstShots++
	if m.BurstShots >= mc.ShotsPerBurst {
		m.InCooldown = true
	}
	cx, cy := m.Bounds().Center()
	return NewProjectile(cx, cy, m.Facing, OwnerEnemy, &m.cfg.Projectile), true
}
