package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/platform/tui"
	"github.com/vovakirdan/sumstack/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker menu",
	Long: `Start Sum Stack in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  sumstack menu
  sumstack menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	err := menuLoop(store, appConfig.Game.EffectiveStartLevel(), runtimeConfig())

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// menuLoop shows the menu until the player quits, running games and the
// scoreboard in between.
func menuLoop(store *storage.Store, startLevel int, cfg core.RuntimeConfig) error {
	scores, reader := storeViews(store)

	for {
		res, err := tui.RunMenu(scores, startLevel, cfg)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen level across menu visits
		cfg = res.Config
		startLevel = res.StartLevel

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(reader, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			logger.Debug("menu selection", "game", res.GameID, "level", startLevel)
			backToMenu, err := playGame(res.Mode, startLevel, cfg, store)
			if err != nil {
				return err
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
