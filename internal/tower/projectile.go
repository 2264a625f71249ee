package tower

import (
	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
)

// Owner tags who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the lowercase name of the owner.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile is a straight-line hitbox. It lives until it leaves the screen
// horizontally or resolves its first hit.
type Projectile struct {
	Body  core.Body
	Dir   int // -1 or +1
	Owner Owner
	Speed float64
}

// NewProjectile creates a projectile centered on (x, y).
func NewProjectile(x, y, dir int, owner Owner, cfg *config.ProjectileConfig) *Projectile {
	p := &Projectile{
		Body:  core.NewBody(0, 0, cfg.Width, cfg.Height),
		Dir:   dir,
		Owner: owner,
		Speed: cfg.Speed,
	}
	p.Body.CenterOn(x, y)
	return p
}

// Update moves the projectile and reports whether it is still on screen.
func (p *Projectile) Update(dt float64, screenW int) bool {
	p.Body.X += p.Speed * float64(p.Dir) * dt
	r := p.Body.Rect()
	return r.Right() >= 0 && r.X <= screenW
}

// Bounds returns the integer hitbox.
func (p *Projectile) Bounds() core.Rect {
	return p.Body.Rect()
}
