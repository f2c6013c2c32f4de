// Package progress tracks the player's coins and high score across rounds
// and settles each round's wager.
package progress

import (
	"context"
	"time"

	"github.com/vovakirdan/bouncybet/internal/config"
)

// PlayerState is the durable per-player record.
type PlayerState struct {
	Coins     int `json:"coins"`
	HighScore int `json:"highScore"`
}

// Default returns the state of a new player.
func Default() PlayerState {
	return PlayerState{
		Coins:     config.StartingCoins,
		HighScore: config.StartingHighScore,
	}
}

// Valid reports whether the state could have been produced by play.
func (s PlayerState) Valid() bool {
	return s.Coins >= 0 && s.HighScore >= 0
}

// Repository loads and saves a single player's state.
// Load never fails: a missing or unreadable record yields Default().
type Repository interface {
	Load(ctx context.Context) PlayerState
	Save(ctx context.Context, s PlayerState) error
}

// RoundRecord is one settled round.
type RoundRecord struct {
	ID         int64
	PlayerID   string
	Wager      int
	Score      int
	Payout     int
	CoinsAfter int
	CreatedAt  time.Time
}

// RoundLog appends settled rounds to a history.
type RoundLog interface {
	RecordRound(ctx context.Context, r RoundRecord) error
}

// RoundStarter prepares the field for a new round.
type RoundStarter interface {
	PrepareNewRound()
}

// MemoryRepository keeps state in memory. Useful for tests and for running
// without a database.
type MemoryRepository struct {
	state *PlayerState
	Saves int
}

// Load returns the saved state, or Default() when nothing was saved.
func (m *MemoryRepository) Load(context.Context) PlayerState {
	if m.state == nil {
		return Default()
	}
	return *m.state
}

// Save stores s.
func (m *MemoryRepository) Save(_ context.Context, s PlayerState) error {
	m.state = &s
	m.Saves++
	return nil
}
