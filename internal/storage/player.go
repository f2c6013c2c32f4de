package storage

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/progress"
)

// PlayerStateKey returns the kv key a player's state is stored under.
func PlayerStateKey(playerID string) string {
	return "playerState:" + playerID
}

// storedPlayerState is the on-disk record. Both keys are required.
type storedPlayerState struct {
	Coins     *int `json:"coins"`
	HighScore *int `json:"highScore"`
}

// PlayerRepository stores one player's state as JSON in the kv table.
type PlayerRepository struct {
	store    *Store
	playerID string
	logger   *log.Logger
}

// PlayerRepository returns a repository bound to playerID.
func (s *Store) PlayerRepository(playerID string, logger *log.Logger) *PlayerRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &PlayerRepository{store: s, playerID: playerID, logger: logger}
}

// Load returns the stored state. Missing, unreadable, corrupt, incomplete or
// negative records all yield progress.Default(). Unknown keys count as corrupt.
func (r *PlayerRepository) Load(ctx context.Context) progress.PlayerState {
	key := PlayerStateKey(r.playerID)
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cannot read player state, using defaults", "player", r.playerID, "err", err)
		return progress.Default()
	}
	if !ok {
		return progress.Default()
	}

	var rec storedPlayerState
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil || dec.More() {
		r.logger.Warn("corrupt player state, using defaults", "player", r.playerID, "err", err)
		return progress.Default()
	}
	if rec.Coins == nil || rec.HighScore == nil {
		r.logger.Warn("incomplete player state, using defaults", "player", r.playerID)
		return progress.Default()
	}
	st := progress.PlayerState{Coins: *rec.Coins, HighScore: *rec.HighScore}
	if !st.Valid() {
		r.logger.Warn("invalid player state, using defaults", "player", r.playerID, "coins", st.Coins, "highScore", st.HighScore)
		return progress.Default()
	}
	return st
}

// Save writes st.
func (r *PlayerRepository) Save(ctx context.Context, st progress.PlayerState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, PlayerStateKey(r.playerID), raw)
}

// Reset deletes the stored state so the next Load returns the default.
func (r *PlayerRepository) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, PlayerStateKey(r.playerID))
}

var _ progress.Repository = (*PlayerRepository)(nil)
