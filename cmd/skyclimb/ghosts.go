package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/chart"
	"github.com/vovakirdan/skyclimb/internal/games/climb"
	"github.com/vovakirdan/skyclimb/internal/platform/tui"
)

var (
	flagGhostLast int
	flagGhostPNG  string
	flagGhostList bool
)

var ghostsCmd = &cobra.Command{
	Use:   "ghosts",
	Short: "Preview the ghost markers for a score",
	Long: `Generate the ghost population a run would start with and print how the
markers spread over the configured score bands.

The previous score defaults to the player's stored last score.

Examples:
  skyclimb ghosts
  skyclimb ghosts --last 1200 --seed 7 --list
  skyclimb ghosts --png ghosts.png`,
	RunE: runGhosts,
}

func init() {
	ghostsCmd.Flags().IntVar(&flagGhostLast, "last", -1, "Previous run score (-1 = stored last score)")
	ghostsCmd.Flags().StringVar(&flagGhostPNG, "png", "", "Also draw the distribution to this PNG file")
	ghostsCmd.Flags().BoolVar(&flagGhostList, "list", false, "List every marker")
}

func runGhosts(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	last := flagGhostLast
	if last < 0 {
		last = 0
		if store := openStore(logger); store != nil {
			last = loadGame(store, cfg, logger).Snapshot().LastScore
			//nolint:errcheck // Read-only use
			store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pop := climb.NewGhostGenerator(cfg, climb.NewRand(seed)).Generate(last)

	fmt.Printf("Ghosts for last score %d (seed %d): %d markers, cap %d\n\n",
		last, seed, len(pop.Fakes), cfg.Ghosts.Cap)

	counts := climb.BandCounts(pop.Fakes, cfg.Ghosts.Bands)
	rows := make([][]string, len(counts))
	for i, n := range counts {
		b := cfg.Ghosts.Bands[i]
		mid := (b.Min + b.Max) / 2
		rows[i] = []string{
			fmt.Sprintf("%d-%d", b.Min, b.Max),
			strconv.Itoa(n),
			strconv.Itoa(b.Count),
			fmt.Sprintf("%.3f", climb.Density(cfg.Ghosts.Curve, cfg.Ghosts.MinDensity, mid)),
		}
	}
	fmt.Println(tui.RenderTable(tui.DayTheme(),
		[]string{"Band", "Markers", "Minimum", "Density"}, rows, 1, 2, 3))

	if flagGhostList {
		fmt.Println()
		for _, f := range pop.Fakes {
			fmt.Printf("  %6d  %s\n", f.Score, f.Name)
		}
	}

	if flagGhostPNG != "" {
		if err := chart.SaveGhosts(flagGhostPNG, pop, cfg.Ghosts, chart.Options{}); err != nil {
			return err
		}
		fmt.Printf("\nSaved %s\n", flagGhostPNG)
	}
	return nil
}
