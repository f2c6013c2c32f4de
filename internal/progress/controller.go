package progress

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/config"
)

// View is what the presentation layer shows.
type View struct {
	Coins             int
	HighScore         int
	CurrentRoundScore int
	IsRoundActive     bool
	CanAffordWager    bool
}

// Controller owns the player's state and settles rounds. It implements the
// engine's observer interface and is meant to be driven from one goroutine.
type Controller struct {
	playerID string
	repo     Repository
	rounds   RoundLog
	starter  RoundStarter
	logger   *log.Logger

	state        PlayerState
	currentScore int
	roundActive  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRoundLog records every settled round in l.
func WithRoundLog(l RoundLog) Option {
	return func(c *Controller) {
		c.rounds = l
	}
}

// WithLogger sets the logger. The default discards debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithPlayerID names the player in logs and round records.
func WithPlayerID(id string) Option {
	return func(c *Controller) {
		c.playerID = id
	}
}

// NewController loads the player's state from repo.
func NewController(ctx context.Context, repo Repository, starter RoundStarter, opts ...Option) *Controller {
	c := &Controller{
		playerID: "local",
		repo:     repo,
		starter:  starter,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = repo.Load(ctx)
	c.logger.Debug("player state loaded", "player", c.playerID, "coins", c.state.Coins, "highScore", c.state.HighScore)
	return c
}

// PlaceWager deducts the wager and starts a round. It returns false and
// changes nothing when a round is already active or the player cannot pay.
func (c *Controller) PlaceWager() bool {
	if c.roundActive {
		c.logger.Debug("wager ignored, round active", "player", c.playerID)
		return false
	}
	if c.state.Coins < config.WagerAmount {
		c.logger.Debug("wager ignored, insufficient coins", "player", c.playerID, "coins", c.state.Coins)
		return false
	}

	c.state.Coins -= config.WagerAmount
	c.roundActive = true
	c.currentScore = 0
	c.logger.Info("wager placed", "player", c.playerID, "wager", config.WagerAmount, "coins", c.state.Coins)

	c.starter.PrepareNewRound()
	return true
}

// ScoreDidChange records the live round score.
func (c *Controller) ScoreDidChange(score int) {
	c.currentScore = score
}

// RoundDidEnd credits the payout, updates the high score and persists.
// The balance after a round is coins - wager + payout, except that it is
// floored at zero: a negative payout larger than the remaining coins leaves
// the player with 0 instead of a negative balance. The recorded payout keeps
// its full negative value.
func (c *Controller) RoundDidEnd(finalScore int) {
	payout := finalScore * config.PayoutMultiplier
	c.state.Coins = max(c.state.Coins+payout, 0)
	c.state.HighScore = max(c.state.HighScore, finalScore)
	c.roundActive = false
	c.currentScore = finalScore

	c.logger.Info("round settled",
		"player", c.playerID,
		"score", finalScore,
		"payout", payout,
		"coins", c.state.Coins,
		"highScore", c.state.HighScore,
	)

	ctx := context.Background()
	if err := c.repo.Save(ctx, c.state); err != nil {
		c.logger.Error("failed to save player state", "player", c.playerID, "err", err)
	}

	if c.rounds != nil {
		rec := RoundRecord{
			PlayerID:   c.playerID,
			Wager:      config.WagerAmount,
			Score:      finalScore,
			Payout:     payout,
			CoinsAfter: c.state.Coins,
			CreatedAt:  time.Now(),
		}
		if err := c.rounds.RecordRound(ctx, rec); err != nil {
			c.logger.Error("failed to record round", "player", c.playerID, "err", err)
		}
	}
}

// View returns the values the presentation layer displays.
func (c *Controller) View() View {
	return View{
		Coins:             c.state.Coins,
		HighScore:         c.state.HighScore,
		CurrentRoundScore: c.currentScore,
		IsRoundActive:     c.roundActive,
		CanAffordWager:    c.state.Coins >= config.WagerAmount,
	}
}

// CanAim reports whether drag gestures should be forwarded to the engine.
func (c *Controller) CanAim() bool {
	return c.roundActive
}

// State returns a copy of the player's state.
func (c *Controller) State() PlayerState {
	return c.state
}

// PlayerID returns the player this controller settles rounds for.
func (c *Controller) PlayerID() string {
	return c.playerID
}
