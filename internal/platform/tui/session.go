package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/storage"
)

// anonymousPlayer is used when a remote user has no name.
const anonymousPlayer = "anonymous"

// PlayerIDFor maps a remote user name to the player id progress is saved under.
func PlayerIDFor(user string) string {
	if user == "" {
		return anonymousPlayer
	}
	return user
}

// SessionHost builds games for remote players. All sessions share one store,
// which the host opens and closes. A player may hold several sessions at once;
// each keeps its own balance and the last settled round wins on disk.
type SessionHost struct {
	store    *storage.Store
	tuning   config.Tuning
	tickRate int
	logger   *log.Logger

	mu     sync.Mutex
	active map[string]int
}

// NewSessionHost opens the player database at dbPath. If it cannot be opened
// the host still serves games, keeping progress in memory per session.
func NewSessionHost(dbPath string, tuning config.Tuning, tickRate int, logger *log.Logger) *SessionHost {
	if logger == nil {
		logger = log.Default()
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open player database, progress will not persist", "error", err)
		store = nil
	}
	return &SessionHost{
		store:    store,
		tuning:   tuning,
		tickRate: tickRate,
		logger:   logger,
		active:   make(map[string]int),
	}
}

// Persistent reports whether sessions save to the database.
func (h *SessionHost) Persistent() bool {
	return h.store != nil
}

// Open starts a game for user on a width x height terminal. The game runs
// until ctx is done; release must be called once the session ends.
func (h *SessionHost) Open(ctx context.Context, user string, width, height int) (m Model, release func()) {
	player := PlayerIDFor(user)

	h.mu.Lock()
	h.active[player]++
	n := h.active[player]
	h.mu.Unlock()

	if n > 1 {
		h.logger.Warn("player already has an open session", "player", player, "sessions", n)
	}

	m = NewSession(ctx, SessionConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: h.tickRate,
			Seed:     time.Now().UnixNano(),
			PlayerID: player,
		},
		Tuning: h.tuning,
		Store:  h.store,
		Logger: h.logger,
	})

	var once sync.Once
	release = func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.active[player]--; h.active[player] <= 0 {
				delete(h.active, player)
			}
		})
	}
	return m, release
}

// Active returns the number of open sessions for player.
func (h *SessionHost) Active(player string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active[player]
}

// Close closes the shared store.
func (h *SessionHost) Close() error {
	if h.store == nil {
		return nil
	}
	return h.store.Close()
}
