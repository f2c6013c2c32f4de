package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/engine"
	"github.com/vovakirdan/bouncybet/internal/progress"
	"github.com/vovakirdan/bouncybet/internal/storage"
)

// SessionConfig holds everything needed to start one player's game.
type SessionConfig struct {
	Runtime core.RuntimeConfig
	Tuning  config.Tuning
	Store   *storage.Store // Nil keeps progress in memory only
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	ctx        context.Context
	controller *progress.Controller
	loop       *engine.Loop
	screen     *core.Screen
	layout     Layout
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	history    historyPanel

	snap         engine.Snapshot
	cursor       core.Vec // Keyboard aim point in scene coordinates
	keyAiming    bool
	dragging     bool
	showHistory  bool
	roundsPlayed int
	quitting     bool
}

// NewSession builds the engine, loop and controller for a player and starts
// the simulation goroutine. The loop stops when ctx is cancelled.
func NewSession(ctx context.Context, sc SessionConfig) Model {
	cfg := sc.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = config.DefaultTickRate
	}
	logger := sc.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("player", cfg.PlayerID)

	eng := engine.New(sc.Tuning, rand.New(rand.NewSource(cfg.Seed)), nil)
	loop := engine.NewLoop(eng, cfg.TickRate)
	loop.SetTimeScale(cfg.TimeScale)

	var repo progress.Repository = &progress.MemoryRepository{}
	opts := []progress.Option{
		progress.WithLogger(logger),
		progress.WithPlayerID(cfg.PlayerID),
	}
	var source HistorySource
	if sc.Store != nil {
		repo = sc.Store.PlayerRepository(cfg.PlayerID, logger)
		opts = append(opts, progress.WithRoundLog(sc.Store))
		source = sc.Store
	}
	controller := progress.NewController(ctx, repo, loop, opts...)

	go func() {
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("simulation stopped", "err", err)
		}
	}()

	h := help.New()
	h.ShowAll = false

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	return Model{
		ctx:        ctx,
		controller: controller,
		loop:       loop,
		screen:     screen,
		layout:     NewLayout(eng.Scene(), screen.Width(), screen.Height()),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		history:    newHistoryPanel(source, cfg.ScreenW, cfg.ScreenH),
		snap:       loop.Snapshot(),
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.load(m.ctx, m.controller.PlayerID())
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history.table, cmd = m.history.table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Wager):
		m.controller.PlaceWager()

	case key.Matches(msg, m.keys.Aim):
		if m.controller.CanAim() && !m.keyAiming {
			m.cursor = m.snap.Launcher
			m.keyAiming = true
			m.loop.Pointer(core.Down(m.cursor))
		}

	case key.Matches(msg, m.keys.Up):
		m.nudgeCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.nudgeCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.nudgeCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.nudgeCursor(1, 0)

	case key.Matches(msg, m.keys.Release):
		if m.keyAiming {
			m.keyAiming = false
			m.loop.Pointer(core.Up(m.cursor))
		}

	case key.Matches(msg, m.keys.Cancel):
		m.keyAiming = false
		m.dragging = false
		m.loop.CancelAim()
	}

	return m, nil
}

// nudgeCursor moves the keyboard aim point by one cell.
func (m *Model) nudgeCursor(dx, dy int) {
	if !m.keyAiming {
		return
	}
	cw, ch := m.layout.CellSize()
	m.cursor = m.cursor.Add(core.V(float64(dx)*cw, float64(dy)*ch))
	m.loop.Pointer(core.Move(m.cursor))
}

// handleMouse turns left-button drags into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHistory || msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	p := m.layout.ToScene(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !m.controller.CanAim() {
			return m, nil
		}
		m.dragging = true
		m.loop.Pointer(core.Down(p))
	case tea.MouseActionMotion:
		if m.dragging {
			m.loop.Pointer(core.Move(p))
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.loop.Pointer(core.Up(p))
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.layout = NewLayout(m.snap.Scene, m.screen.Width(), m.screen.Height())
	m.history.resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies engine notifications and picks up the latest frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, msg := range m.loop.Mailbox().Drain() {
		msg.Deliver(m.controller)
		if msg.Kind == engine.MessageRoundEnded {
			m.roundsPlayed++
			m.keyAiming = false
			m.dragging = false
			if m.showHistory {
				m.history.load(m.ctx, m.controller.PlayerID())
			}
		}
	}
	m.snap = m.loop.Snapshot()

	// Drop a keyboard gesture once the engine disables aiming.
	if m.keyAiming && m.snap.Phase == engine.PhaseIdle && !m.snap.Armed {
		m.keyAiming = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHistory {
		return m.history.view(m.config.ScreenW, m.help.View(m.keys))
	}

	v := m.controller.View()
	drawFrame(m.screen, m.layout, frame{
		snap:   m.snap,
		view:   v,
		player: m.controller.PlayerID(),
		status: statusLine(m.snap, v, m.roundsPlayed),
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Controller exposes the player's controller.
func (m Model) Controller() *progress.Controller {
	return m.controller
}

// Run starts the Bubble Tea program for a local player.
func Run(ctx context.Context, sc SessionConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSession(ctx, sc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to aim
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
