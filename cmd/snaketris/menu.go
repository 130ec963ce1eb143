package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaketris/internal/platform/tui"
	"github.com/vovakirdan/snaketris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for high
scores. Leaving a match with Esc returns to the menu.

Examples:
  snaketris menu
  snaketris menu --fps 30
  snaketris menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	opts := tui.Options{Player: playerName(), Debug: flagDebug, Logger: logger}
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			backToMenu, err := tui.Run(game, store, cfg, opts)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
