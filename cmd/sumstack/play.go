package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumstack/internal/config"
	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
	"github.com/vovakirdan/sumstack/internal/platform/tui"
	"github.com/vovakirdan/sumstack/internal/registry"
	"github.com/vovakirdan/sumstack/internal/storage"
)

var (
	flagLevel      int
	flagDifficulty string
	flagTimeLimit  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [classic|time]",
	Short: "Play a game",
	Long: `Start playing Sum Stack in the given mode (default from config).

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Select or deselect a block
  X                - Drop the selection
  P                - Pause
  R                - Retry at the same start level
  Esc/B            - Back to menu
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options pick the start level:
  easy   - Level 1
  normal - Level 4
  hard   - Level 7

Examples:
  sumstack play
  sumstack play time --time-limit 90s
  sumstack play classic --level 5
  sumstack play --difficulty hard`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(engine.ModeClassic), string(engine.ModeTime)},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level 1-10 (overrides config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().DurationVar(&flagTimeLimit, "time-limit", 0, "Time mode clock (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := appConfig.Game.EngineMode()
	if len(args) == 1 {
		switch args[0] {
		case string(engine.ModeClassic), string(engine.ModeTime):
			mode = engine.Mode(args[0])
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'sumstack list' to see available modes.")
			os.Exit(1)
		}
	}

	startLevel, err := resolveStartLevel(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig()

	backToMenu, err := playGame(mode, startLevel, cfg, store)
	if err == nil && backToMenu {
		err = menuLoop(store, startLevel, cfg)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// resolveStartLevel applies flag overrides over the loaded config.
// A difficulty preset wins over an explicit level.
func resolveStartLevel(cmd *cobra.Command) (int, error) {
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return 0, err
		}
		if lvl, ok := config.StartLevelForPreset(preset); ok {
			return lvl, nil
		}
	}
	if cmd.Flags().Changed("level") {
		return engine.ClampStartLevel(flagLevel), nil
	}
	return appConfig.Game.EffectiveStartLevel(), nil
}

// timeLimit returns the time mode clock from the flag or config.
func timeLimit() time.Duration {
	if flagTimeLimit > 0 {
		return flagTimeLimit
	}
	return appConfig.Game.TimeLimit()
}

// playGame runs one game session and reports whether the player went back to the menu.
func playGame(mode engine.Mode, startLevel int, cfg core.RuntimeConfig, store *storage.Store) (bool, error) {
	sumstack.SetStartLevel(startLevel)
	sumstack.SetTimeLimit(timeLimit())

	game, err := registry.Create(sumstack.IDForMode(mode))
	if err != nil {
		return false, err
	}

	scores, _ := storeViews(store)
	return tui.Run(game, scores, cfg,
		tui.WithLogger(logger),
		tui.WithHelp(appConfig.UI.ShowHelp),
	)
}
