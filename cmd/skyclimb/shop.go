package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/games/climb"
	"github.com/vovakirdan/skyclimb/internal/platform/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop [buy-jump | buy <skin> | select <skin>]",
	Short: "Spend coins on double jumps and skins",
	Long: `Open the shop. Without arguments the interactive shop is shown.

Examples:
  skyclimb shop
  skyclimb shop list
  skyclimb shop buy-jump
  skyclimb shop buy golden
  skyclimb shop select golden`,
	Args: cobra.MaximumNArgs(2),
	RunE: runShop,
}

func runShop(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store == nil {
		return errors.New("the shop needs a database")
	}
	defer store.Close()

	economy := loadGame(store, cfg, logger).Economy()

	if len(args) == 0 {
		rc := runtimeConfig()
		return tui.RunShop(economy, rc.ScreenW, rc.ScreenH)
	}

	switch args[0] {
	case "list":
	case "buy-jump":
		if err := economy.BuyDoubleJump(); err != nil {
			return err
		}
		fmt.Println("Bought a double jump.")
	case "buy", "select":
		if len(args) < 2 {
			return fmt.Errorf("%s needs a skin id", args[0])
		}
		if args[0] == "buy" {
			err = economy.BuySkin(args[1])
		} else {
			err = economy.SelectSkin(args[1])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Done: %s %s.\n", args[0], args[1])
	default:
		return fmt.Errorf("unknown shop action %q", args[0])
	}

	printShop(economy)
	return nil
}

func printShop(e *climb.Economy) {
	fmt.Println()
	fmt.Printf("Coins: %s   Double jumps: %d (price %d)\n",
		humanize.Comma(int64(e.Coins())), e.DoubleJumps(), e.DoubleJumpPrice())
	fmt.Println()
	for _, s := range e.Skins() {
		mark := " "
		switch {
		case s.Selected:
			mark = "*"
		case s.Owned:
			mark = "+"
		}
		fmt.Printf("  %s %-10s %-14s %6s\n", mark, s.ID, s.Name, humanize.Comma(int64(s.Price)))
	}
}
