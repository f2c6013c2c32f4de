package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/platform/tui"
	"github.com/vovakirdan/bouncybet/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Enter       - Bet 10 coins and start a round
  Mouse drag  - Drag back from the launcher and release to launch
  A           - Grab the ball with the keyboard
  Arrows/WASD - Pull the ball while grabbed
  Space       - Launch
  Esc         - Cancel aim
  Tab         - Round history
  Q/Ctrl+C    - Quit

Logs are written to ~/.bouncybet/bouncybet.log.

Examples:
  bouncybet play
  bouncybet play --player alice
  bouncybet play --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.PlayerID = flagPlayer

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open player database: %v\n", err)
		logger.Warn("playing without persistence", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "player", cfg.PlayerID, "seed", cfg.Seed, "fps", cfg.TickRate)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := tui.Run(ctx, tui.SessionConfig{
		Runtime: cfg,
		Tuning:  tuning,
		Store:   store,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
