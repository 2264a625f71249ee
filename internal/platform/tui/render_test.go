package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tower-climber/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 10")
	s.FillRect(core.NewRect(0, 2, 12, 1), '=', core.ColorPlatform)
	s.SetColored(3, 1, '@', core.ColorPlayer1)
	s.SetColored(8, 1, 'e', core.ColorEnemyPatrol)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	for _, want := range []string{"Score: 10", "@", "e", "============"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() is missing %q", want)
		}
	}
}

func TestPaletteUnknownSlotIsUnstyled(t *testing.T) {
	p := DefaultPalette()
	got := p.style(core.ColorCount + 3).Render("x")
	if got != "x" {
		t.Errorf("style(unknown).Render() = %q, expected %q", got, "x")
	}
}
