package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/engine"
	"github.com/vovakirdan/bouncybet/internal/field"
	"github.com/vovakirdan/bouncybet/internal/progress"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Glyphs used on the field.
const (
	glyphObstacle   = 'O'
	glyphReward     = '$'
	glyphHazard     = 'X'
	glyphProjectile = '●'
	glyphLauncher   = '▲'
	glyphAimPoint   = '+'
	glyphPreview    = '·'
)

func objectGlyph(t field.ObjectType) (rune, core.Color) {
	switch t {
	case field.Reward:
		return glyphReward, core.ColorGreen
	case field.Hazard:
		return glyphHazard, core.ColorRed
	default:
		return glyphObstacle, core.ColorBlue
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// frame bundles what one rendered frame needs.
type frame struct {
	snap   engine.Snapshot
	view   progress.View
	player string
	status string
}

// drawFrame renders the header, the field and the status line into s.
func drawFrame(s *core.Screen, l Layout, f frame) {
	s.Clear()
	drawHeader(s, f)

	bx, by, bw, bh := l.Box()
	s.DrawBox(bx, by, bw, bh, core.ColorGray)

	for _, o := range f.snap.Objects {
		r, c := objectGlyph(o.Type)
		x, y := l.ToCell(o.Pos)
		s.SetColored(x, y, r, c)
	}

	lx, ly := l.ToCell(f.snap.Launcher)
	if f.snap.Aim.Active {
		px, py := l.ToCell(f.snap.Aim.PreviewEnd)
		s.DrawLine(lx, ly, px, py, glyphPreview, core.ColorYellow)
		ax, ay := l.ToCell(f.snap.Aim.Point)
		s.SetColored(ax, ay, glyphAimPoint, core.ColorWhite)
	}

	launcherColor := core.ColorGray
	if f.snap.Armed {
		launcherColor = core.ColorCyan
	}
	s.SetColored(lx, ly, glyphLauncher, launcherColor)

	if f.snap.HasProjectile {
		x, y := l.ToCell(f.snap.ProjectilePos)
		s.SetColored(x, y, glyphProjectile, core.ColorYellow)
	}

	s.DrawTextColored(1, s.Height()-1, f.status, core.ColorWhite)
}

func drawHeader(s *core.Screen, f frame) {
	s.DrawTextColored(1, 0, "BOUNCY BET", core.ColorYellow)
	if f.player != "" {
		name := "player: " + f.player
		s.DrawTextColored(s.Width()-len([]rune(name))-1, 0, name, core.ColorGray)
	}

	stats := fmt.Sprintf("Coins %d   Score %d   High %d",
		f.view.Coins, f.view.CurrentRoundScore, f.view.HighScore)
	s.DrawText(1, 1, stats)

	if f.snap.Phase == engine.PhaseInFlight {
		timer := fmt.Sprintf("%4.1fs", f.snap.Remaining)
		s.DrawTextColored(s.Width()-len(timer)-1, 1, timer, core.ColorCyan)
	}
}

// statusLine describes what the player can do next.
func statusLine(snap engine.Snapshot, v progress.View, roundsPlayed int) string {
	switch {
	case !v.IsRoundActive && roundsPlayed > 0 && !v.CanAffordWager:
		return fmt.Sprintf("Round over: %d points. Not enough coins for another bet.", v.CurrentRoundScore)
	case !v.IsRoundActive && roundsPlayed > 0:
		return fmt.Sprintf("Round over: %d points. Press enter to bet again.", v.CurrentRoundScore)
	case !v.IsRoundActive && !v.CanAffordWager:
		return "Not enough coins to bet."
	case !v.IsRoundActive:
		return fmt.Sprintf("Press enter to bet %d coins and start a round.", config.WagerAmount)
	case snap.Phase == engine.PhaseAiming:
		return fmt.Sprintf("Power %d%%. Release to launch.", snap.Aim.Percent)
	case snap.Phase == engine.PhaseInFlight:
		return "Ball in play."
	default:
		return "Drag back from the launcher (or press a) to aim."
	}
}
