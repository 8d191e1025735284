package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up/W            - Fire
  P                     - Pause
  R                     - Restart (after game over)
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - 5 lives, aliens shoot half as often
  normal - The config as written
  hard   - 2 lives, aliens shoot twice as often and move faster
  fixed  - No speed-up between levels

Config files are searched in ~/.arcade/configs and ./configs as
invaders.yaml or invaders.toml.

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 42
  invaders play --config ./my-invaders.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the config and difficulty flags.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates and applies --config and --difficulty.
func applyGameFlags() (config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return "", err
		}
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(string(preset))
	return preset, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := applyGameFlags(); err != nil {
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

	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
