package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/platform/tui"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs of the current player, or of everyone with --all.

Examples:
  skyclimb scores
  skyclimb scores --all --limit 20
  skyclimb scores --tui
  skyclimb scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	player := flagPlayer
	if flagScoresAll {
		player = ""
	}

	if flagScoresClear {
		if err := store.ClearRuns(player); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
	}

	runs, err := store.TopRuns(player, flagScoresLimit)
	if err != nil {
		return err
	}

	title := "High Scores - " + flagPlayer
	if player == "" {
		title = "High Scores - everyone"
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skyclimb play' to set the first high score!")
		return nil
	}

	now := time.Now()
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Player,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Coins)),
			strconv.Itoa(r.ContinuesUsed),
			r.Duration.Round(time.Second).String(),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		}
	}
	fmt.Println(tui.RenderTable(tui.DayTheme(),
		[]string{"Rank", "Player", "Score", "Coins", "Continues", "Time", "When"},
		rows, 0, 2, 3, 4))

	stats, err := store.Stats(player)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %s  Best: %s  Average: %s  Coins: %s\n",
			humanize.Comma(int64(stats.RunsCount)),
			humanize.Comma(int64(stats.HighScore)),
			humanize.CommafWithDigits(stats.AvgScore, 0),
			humanize.Comma(stats.TotalCoins),
		)
	}
	return nil
}
