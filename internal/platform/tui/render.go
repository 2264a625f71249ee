package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tower-climber/internal/core"
)

// Palette holds one style per screen colour slot.
type Palette [core.ColorCount]lipgloss.Style

// DefaultPalette is the tower colour scheme. Enemies shade from red to orange
// as they calm down.
func DefaultPalette() Palette {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	var p Palette
	p[core.ColorDefault] = lipgloss.NewStyle()
	p[core.ColorPlatform] = fg("252")
	p[core.ColorObstacle] = fg("245")
	p[core.ColorLadder] = fg("178")
	p[core.ColorExit] = fg("226").Bold(true)
	p[core.ColorPlayer1] = fg("46").Bold(true)
	p[core.ColorPlayer2] = fg("51").Bold(true)
	p[core.ColorEnemyPatrol] = fg("160")
	p[core.ColorEnemyAlert] = fg("196").Bold(true)
	p[core.ColorEnemyCooldown] = fg("208")
	p[core.ColorGunner] = fg("164").Bold(true)
	p[core.ColorGunnerCooldown] = fg("96")
	p[core.ColorPlayerShot] = fg("231")
	p[core.ColorEnemyShot] = fg("203")
	return p
}

var defaultPalette = DefaultPalette()

// style returns the style of slot c; unknown slots render unstyled.
func (p *Palette) style(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		return p[core.ColorDefault]
	}
	return p[c]
}

// Render converts a screen buffer to a styled string, one line per row.
// Runs of cells sharing a slot are styled together.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			slot := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != slot {
					break
				}
				run = append(run, cell.Rune)
			}
			if slot == core.ColorDefault {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(p.style(slot).Render(string(run)))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
