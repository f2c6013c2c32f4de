package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/bouncybet/internal/progress"
)

// timeLayout matches what SQLite writes for CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05"

// RecordRound appends a settled round to the history. A zero CreatedAt is
// replaced by the current time.
func (s *Store) RecordRound(ctx context.Context, r progress.RoundRecord) error {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (player_id, wager, score, payout, coins_after, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.PlayerID, r.Wager, r.Score, r.Payout, r.CoinsAfter,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record round: %w", err)
	}
	return nil
}

var _ progress.RoundLog = (*Store)(nil)

// RecentRounds returns a player's most recent rounds, newest first.
func (s *Store) RecentRounds(ctx context.Context, playerID string, limit int) ([]progress.RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_id, wager, score, payout, coins_after, created_at
		 FROM rounds
		 WHERE player_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []progress.RoundRecord
	for rows.Next() {
		var r progress.RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Wager, &r.Score, &r.Payout, &r.CoinsAfter, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RoundStats contains aggregated statistics for a player's rounds.
type RoundStats struct {
	PlayerID    string
	RoundsCount int
	BestScore   int
	AvgScore    float64
	TotalPayout int64
}

// PlayerRoundStats aggregates every recorded round of a player.
func (s *Store) PlayerRoundStats(ctx context.Context, playerID string) (RoundStats, error) {
	stats := RoundStats{PlayerID: playerID}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(payout), 0)
		 FROM rounds WHERE player_id = ?`,
		playerID,
	).Scan(&stats.RoundsCount, &stats.BestScore, &stats.AvgScore, &stats.TotalPayout)
	if err != nil {
		return RoundStats{}, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	return stats, nil
}

// ClearRounds deletes a player's round history.
func (s *Store) ClearRounds(ctx context.Context, playerID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM rounds WHERE player_id = ?", playerID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
