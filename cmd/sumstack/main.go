// sumstack is a terminal puzzle game: pick blocks that add up to the target
// before the rising stack reaches the top.
//
// Usage:
//
//	sumstack list                - List available game modes
//	sumstack play [classic|time] - Play a game
//	sumstack menu                - Start menu to pick a mode interactively
//	sumstack scores [mode]       - Show high scores for a mode
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default from config: ~/.sumstack/scores.db)
//	--config <path>     - Use a custom config file
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sumstack/internal/config"
	"github.com/vovakirdan/sumstack/internal/core"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
	"github.com/vovakirdan/sumstack/internal/platform/tui"
	"github.com/vovakirdan/sumstack/internal/storage"

	// Import the game to register its modes
	_ "github.com/vovakirdan/sumstack/internal/games/sumstack"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sumstack",
	Short: "Sum Stack - clear blocks that add up to the target",
	Long: `Sum Stack is a terminal puzzle game. Blocks numbered 1-9 rise from the
bottom of a 10x6 grid. Select blocks whose values add up to the target
to clear them before the stack reaches the top.

Available commands:
  list     - Show the available game modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  scores   - View high scores

Examples:
  sumstack menu
  sumstack play classic --level 3
  sumstack play time --difficulty hard
  sumstack scores time`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		appConfig = cfg
		if !cmd.Flags().Changed("db") {
			flagDBPath = cfg.Storage.Path
		}

		if err := setupLogger(cfg.Log); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
		logger.Debug("config loaded", "source", cfg.Source)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumstack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger points the package logger at the configured log file.
// The TUI owns the terminal, so nothing is logged to stdout or stderr.
func setupLogger(lc config.LogConfig) error {
	levelName := lc.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level := log.InfoLevel
	if levelName != "" {
		parsed, err := log.ParseLevel(strings.ToLower(levelName))
		if err != nil {
			return err
		}
		level = parsed
	}

	if lc.Path == "" {
		return nil
	}
	path, err := config.ExpandPath(lc.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sumstack",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// openStore opens the score database. Failures are reported and yield nil;
// the game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// storeViews returns the interfaces the TUI reads and writes scores through.
// Both are nil when store is nil.
func storeViews(store *storage.Store) (tui.ScoreStore, tui.ScoreReader) {
	if store == nil {
		return nil, nil
	}
	return store, store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickPeriod = engine.TickPeriod
	cfg.Seed = flagSeed
	return cfg
}
