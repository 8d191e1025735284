package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, then Play. After a game, B or Esc
(while paused or on the game over screen) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 60
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := applyGameFlags()
	if err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	title := gameTitle()
	for {
		res, err := tui.RunMenu(invaders.GameID, title, store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = res.Config
		preset = res.Difficulty

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(invaders.GameID, title, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case res.Play:
			game, err := registry.Create(invaders.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if d, ok := game.(registry.DifficultyAware); ok {
				if err := d.SetDifficulty(string(preset)); err != nil {
					return err
				}
			}

			logger.Info("starting game", "difficulty", preset)
			back, err := tui.Run(game, store, cfg, logger)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !back {
				return nil
			}
		}
	}
}
