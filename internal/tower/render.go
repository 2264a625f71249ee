package tower

import (
	"fmt"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// Minimum terminal size the tower is playable at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Sprite is a drawable view of one entity in world pixels.
type Sprite struct {
	Kind   Kind
	Rect   core.Rect
	Facing int    // -1 left, +1 right, 0 for geometry
	Tag    string // state name, owner or player number
}

// Sprites returns every static piece and live actor in draw order.
func (g *Game) Sprites() []Sprite {
	var out []Sprite
	for _, group := range [][]Static{g.terrain.Ladders, g.terrain.Platforms, g.terrain.Obstacles} {
		for _, s := range group {
			out = append(out, Sprite{Kind: s.Kind, Rect: s.Rect})
		}
	}
	if g.terrain.Exit != nil {
		out = append(out, Sprite{Kind: KindExit, Rect: g.terrain.Exit.Rect})
	}
	for _, m := range g.gunners.All() {
		tag := "firing"
		if m.InCooldown {
			tag = "cooldown"
		}
		out = append(out, Sprite{Kind: KindMachinegunner, Rect: m.Bounds(), Facing: m.Facing, Tag: tag})
	}
	for _, e := range g.enemies.All() {
		out = append(out, Sprite{Kind: KindEnemy, Rect: e.Bounds(), Facing: e.Facing, Tag: e.State.String()})
	}
	for _, p := range g.players {
		if p.Alive {
			out = append(out, Sprite{Kind: KindPlayer, Rect: p.Bounds(), Facing: p.Facing(), Tag: fmt.Sprintf("p%d", int(p.Binding)+1)})
		}
	}
	for _, pr := range g.projectiles.All() {
		out = append(out, Sprite{Kind: KindProjectile, Rect: pr.Bounds(), Facing: pr.Dir, Tag: pr.Owner.String()})
	}
	return out
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	for _, s := range g.Sprites() {
		r := g.toCells(s.Rect, dst.Width(), dst.Height()-hudRows)
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		glyph, color := spriteGlyph(s)
		dst.FillRect(r, glyph, color)
		if s.Kind == KindPlayer || s.Kind == KindEnemy {
			g.drawFacing(dst, r, s)
		}
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// toCells converts a world rect to terminal cells, clipped to the playfield
// below the HUD. Anything visible covers at least one cell.
func (g *Game) toCells(r core.Rect, cols, rows int) core.Rect {
	sw, sh := g.cfg.Screen.Width, g.cfg.Screen.Height
	top := g.camera.Top()

	x0 := floorDiv(r.X*cols, sw)
	x1 := max(ceilDiv(r.Right()*cols, sw), x0+1)
	y0 := floorDiv((r.Y-top)*rows, sh)
	y1 := max(ceilDiv((r.Bottom()-top)*rows, sh), y0+1)

	x0, x1 = max(x0, 0), min(x1, cols)
	y0, y1 = max(y0, 0), min(y1, rows)
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func spriteGlyph(s Sprite) (rune, core.Color) {
	switch s.Kind {
	case KindPlatform:
		return '=', core.ColorPlatform
	case KindObstacle:
		return '#', core.ColorObstacle
	case KindLadder:
		return 'H', core.ColorLadder
	case KindExit:
		return '▓', core.ColorExit
	case KindPlayer:
		if s.Tag == "p2" {
			return '@', core.ColorPlayer2
		}
		return '@', core.ColorPlayer1
	case KindEnemy:
		switch s.Tag {
		case StateAlert.String():
			return 'E', core.ColorEnemyAlert
		case StateCooldown.String():
			return 'e', core.ColorEnemyCooldown
		default:
			return 'e', core.ColorEnemyPatrol
		}
	case KindMachinegunner:
		if s.Tag == "cooldown" {
			return 'm', core.ColorGunnerCooldown
		}
		return 'M', core.ColorGunner
	case KindProjectile:
		if s.Tag == OwnerPlayer.String() {
			return '-', core.ColorPlayerShot
		}
		return '*', core.ColorEnemyShot
	default:
		return '?', core.ColorDefault
	}
}

// drawFacing marks the leading edge of an actor.
func (g *Game) drawFacing(dst *core.Screen, r core.Rect, s Sprite) {
	if r.W < 2 {
		return
	}
	x, mark := r.Right()-1, '>'
	if s.Facing < 0 {
		x, mark = r.X, '<'
	}
	cell := dst.GetCell(x, r.Y)
	dst.SetColored(x, r.Y, mark, cell.Color)
}

// renderHUD draws score, enemies left and players alive.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	dst.FillRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ', core.ColorDefault)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", st.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Enemies: %d  |  Players: %d/%d", g.EnemiesLeft(), g.AlivePlayers(), len(g.players)))

	right := fmt.Sprintf("Height: %d", st.Climbed)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.State()
	switch {
	case st.Phase == core.PhaseVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", st.Score)
		g.drawCenteredBox(dst, g.victoryTitle(), subtitle)
	case st.Phase == core.PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", st.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case st.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) victoryTitle() string {
	switch g.variant {
	case VariantArena:
		return "ARENA CLEARED!"
	case VariantEndless:
		return "SUMMIT REACHED!"
	default:
		if g.terrain.Exit == nil {
			return "TOWER CLEARED!"
		}
		return "YOU ESCAPED!"
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
