package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return newScaledTestModel(t, 1)
}

// newScaledTestModel runs the simulation timeScale times faster than real time.
func newScaledTestModel(t *testing.T, timeScale float64) Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewSession(ctx, SessionConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:   80,
			ScreenH:   40,
			TickRate:  60,
			Seed:      42,
			PlayerID:  "tester",
			TimeScale: timeScale,
		},
		Tuning: config.DefaultTuning(),
		Logger: log.New(io.Discard),
	})
}

func press(m Model, k tea.KeyMsg) Model {
	next, _ := m.Update(k)
	return next.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// tickUntil drives frame ticks until cond holds.
func tickUntil(t *testing.T, m Model, what string, cond func(Model) bool) Model {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond(m) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	return m
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "Coins 100") {
		t.Errorf("view should show the starting balance, got:\n%s", out)
	}
	if !strings.Contains(out, "Press enter") {
		t.Error("view should prompt for a bet")
	}
}

func TestModelWagerAndKeyboardLaunch(t *testing.T) {
	m := newScaledTestModel(t, 10) // A 10 s round lasts about one second

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	v := m.Controller().View()
	if v.Coins != 90 || !v.IsRoundActive {
		t.Fatalf("after enter: coins=%d active=%v", v.Coins, v.IsRoundActive)
	}

	m = tickUntil(t, m, "armed engine", func(m Model) bool { return m.snap.Armed })

	m = press(m, runeKey('a'))
	for range 6 {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m = tickUntil(t, m, "projectile", func(m Model) bool { return m.snap.HasProjectile })

	if m.snap.Remaining <= 0 {
		t.Error("round timer should be running")
	}

	m = tickUntil(t, m, "settlement", func(m Model) bool { return m.roundsPlayed == 1 })

	v = m.Controller().View()
	score := v.CurrentRoundScore
	if v.IsRoundActive {
		t.Error("round should be inactive after settlement")
	}
	if v.Coins != max(90+score, 0) {
		t.Errorf("coins = %d after scoring %d, expected %d", v.Coins, score, max(90+score, 0))
	}
	if v.HighScore != max(score, 0) {
		t.Errorf("highScore = %d, expected %d", v.HighScore, max(score, 0))
	}

	m = tickUntil(t, m, "idle engine", func(m Model) bool { return !m.snap.HasProjectile })
	if m.snap.Score != score {
		t.Errorf("engine score %d does not match settled score %d", m.snap.Score, score)
	}
	if m.snap.Armed || m.snap.Phase != engine.PhaseIdle {
		t.Error("engine should be idle and disarmed after the round")
	}
}

func TestModelIgnoresAimWithoutWager(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runeKey('a'))
	if m.keyAiming {
		t.Error("keyboard aiming should not start before a wager")
	}

	next, _ := m.Update(tea.MouseMsg{X: 40, Y: 35, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if next.(Model).dragging {
		t.Error("mouse drag should not start before a wager")
	}
}

func TestModelHistoryToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("tab should open the history panel")
	}
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("empty history should say so")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showHistory {
		t.Error("tab should close the history panel")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 49 {
		t.Errorf("screen = %dx%d, expected 120x49", m.screen.Width(), m.screen.Height())
	}
}
