package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/platform/tui"
)

var (
	flagQuick bool
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the menu and climb",
	Long: `Start Sky Climb with the main menu. Pick Play to climb, Shop to spend
coins, or High Scores to look at past runs.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Jump (start, double jump)
  C/Enter          - Continue after falling
  R                - Restart
  P                - Pause
  M                - Toggle sound
  Y                - Copy your score to the clipboard
  B/Esc            - Back to menu (paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skyclimb play
  skyclimb play --quick
  skyclimb play --difficulty hard
  skyclimb play --config ./climb.yaml --watch`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagQuick, "quick", false, "Skip the menu and start climbing")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.GameOptions{
		Store:     store,
		Player:    flagPlayer,
		Config:    &game,
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
	}

	if flagWatch {
		if flagConfig == "" {
			return fmt.Errorf("--watch needs --config")
		}
		watcher, err := config.Watch(flagConfig)
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	cfg := runtimeConfig()
	logger.Info("starting", "player", flagPlayer, "seed", cfg.Seed, "fps", cfg.TickRate)

	if flagQuick {
		err = tui.Run(cfg, opts)
	} else {
		err = tui.RunSession(cfg, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
	return err
}
