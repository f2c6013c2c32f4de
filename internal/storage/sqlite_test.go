package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := store.PlayerRepository("local", quietLogger())
	if err := repo.Save(ctx, progress.PlayerState{Coins: 77, HighScore: 12}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got := store.PlayerRepository("local", quietLogger()).Load(ctx)
	if got != (progress.PlayerState{Coins: 77, HighScore: 12}) {
		t.Errorf("Load() after reopen = %+v", got)
	}
}

func TestKVGetPutDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || string(v) != "two" {
		t.Errorf("Get(k) = %q, %v, %v; expected \"two\"", v, ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("key should be gone after Delete")
	}
}

func TestPlayerRepositoryEmptyStoreDefaults(t *testing.T) {
	store := openTestStore(t)
	repo := store.PlayerRepository("nobody", quietLogger())

	if got := repo.Load(context.Background()); got != progress.Default() {
		t.Errorf("Load() on empty store = %+v, expected %+v", got, progress.Default())
	}
}

func TestPlayerRepositorySaveLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := store.PlayerRepository("alice", quietLogger())

	want := progress.PlayerState{Coins: 95, HighScore: 5}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := repo.Load(ctx); got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}

	// Other players are unaffected
	if got := store.PlayerRepository("bob", quietLogger()).Load(ctx); got != progress.Default() {
		t.Errorf("bob Load() = %+v, expected defaults", got)
	}
}

func TestPlayerRepositoryStoresJSON(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := store.PlayerRepository("alice", quietLogger())

	if err := repo.Save(ctx, progress.PlayerState{Coins: 40, HighScore: 60}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	raw, ok, err := store.Get(ctx, "playerState:alice")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(raw) != `{"coins":40,"highScore":60}` {
		t.Errorf("stored value = %s", raw)
	}
}

func TestPlayerRepositoryCorruptFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"wrong types", `{"coins":"lots","highScore":1}`},
		{"negative coins", `{"coins":-5,"highScore":1}`},
		{"negative high score", `{"coins":5,"highScore":-1}`},
		{"empty object", `{}`},
		{"null", `null`},
		{"array", `[]`},
		{"missing high score", `{"coins":50}`},
		{"missing coins", `{"highScore":7}`},
		{"unknown key only", `{"unknown":1}`},
		{"extra key", `{"coins":50,"highScore":7,"gems":3}`},
		{"trailing garbage", `{"coins":50,"highScore":7} x`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			ctx := context.Background()
			if err := store.Put(ctx, PlayerStateKey("local"), []byte(tc.raw)); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}

			got := store.PlayerRepository("local", quietLogger()).Load(ctx)
			if got != progress.Default() {
				t.Errorf("Load() = %+v, expected defaults", got)
			}
		})
	}
}

func TestPlayerRepositoryReset(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := store.PlayerRepository("local", quietLogger())

	_ = repo.Save(ctx, progress.PlayerState{Coins: 3, HighScore: 300})
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := repo.Load(ctx); got != progress.Default() {
		t.Errorf("Load() after Reset = %+v", got)
	}
}

func TestRecordAndRecentRounds(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i, score := range []int{5, -50, 105} {
		err := store.RecordRound(ctx, progress.RoundRecord{
			PlayerID:   "alice",
			Wager:      10,
			Score:      score,
			Payout:     score,
			CoinsAfter: 100 + i,
		})
		if err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}
	_ = store.RecordRound(ctx, progress.RoundRecord{PlayerID: "bob", Wager: 10, Score: 1, Payout: 1})

	rounds, err := store.RecentRounds(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}
	// Newest first
	if rounds[0].Score != 105 || rounds[1].Score != -50 {
		t.Errorf("unexpected order: %d, %d", rounds[0].Score, rounds[1].Score)
	}
	if rounds[0].CoinsAfter != 102 || rounds[0].PlayerID != "alice" {
		t.Errorf("unexpected record %+v", rounds[0])
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should default to the insert time")
	}
}

func TestRecordRoundKeepsCreatedAt(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	played := time.Date(2024, time.March, 9, 18, 30, 15, 0, time.UTC)
	err := store.RecordRound(ctx, progress.RoundRecord{
		PlayerID:   "alice",
		Wager:      10,
		Score:      55,
		Payout:     55,
		CoinsAfter: 145,
		CreatedAt:  played,
	})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	rounds, err := store.RecentRounds(ctx, "alice", 1)
	if err != nil || len(rounds) != 1 {
		t.Fatalf("RecentRounds() = %v, %v", rounds, err)
	}
	if !rounds[0].CreatedAt.Equal(played) {
		t.Errorf("CreatedAt = %v, expected %v", rounds[0].CreatedAt, played)
	}
}

func TestPlayerRoundStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.PlayerRoundStats(ctx, "alice")
	if err != nil {
		t.Fatalf("PlayerRoundStats() failed: %v", err)
	}
	if empty.RoundsCount != 0 || empty.BestScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{10, 30, -10} {
		_ = store.RecordRound(ctx, progress.RoundRecord{PlayerID: "alice", Wager: 10, Score: score, Payout: score})
	}

	stats, err := store.PlayerRoundStats(ctx, "alice")
	if err != nil {
		t.Fatalf("PlayerRoundStats() failed: %v", err)
	}
	if stats.RoundsCount != 3 || stats.BestScore != 30 || stats.TotalPayout != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore < 9.9 || stats.AvgScore > 10.1 {
		t.Errorf("AvgScore = %v, expected 10", stats.AvgScore)
	}

	if err := store.ClearRounds(ctx, "alice"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}
	rounds, _ := store.RecentRounds(ctx, "alice", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected no rounds after clear, got %d", len(rounds))
	}
}

func TestControllerWithSQLite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	repo := store.PlayerRepository("alice", quietLogger())

	c := progress.NewController(ctx, repo, starterFunc(func() {}),
		progress.WithRoundLog(store),
		progress.WithPlayerID("alice"),
		progress.WithLogger(quietLogger()),
	)
	c.PlaceWager()
	c.RoundDidEnd(5)

	if got := repo.Load(ctx); got != (progress.PlayerState{Coins: 95, HighScore: 5}) {
		t.Errorf("persisted state = %+v", got)
	}
	rounds, err := store.RecentRounds(ctx, "alice", 10)
	if err != nil || len(rounds) != 1 {
		t.Fatalf("RecentRounds() = %v, %v", rounds, err)
	}
}

type starterFunc func()

func (f starterFunc) PrepareNewRound() { f() }
