package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumstack/internal/games/sumstack"
	"github.com/vovakirdan/sumstack/internal/games/sumstack/engine"
	"github.com/vovakirdan/sumstack/internal/registry"
	"github.com/vovakirdan/sumstack/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|time]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the given mode (default classic).
A registered game id such as sumstack_time is accepted as well.

Examples:
  sumstack scores
  sumstack scores time --limit 20
  sumstack scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

// resolveGameID maps a mode name or game id to a registered game id.
func resolveGameID(arg string) (string, bool) {
	switch arg {
	case "", string(engine.ModeClassic):
		return sumstack.IDClassic, true
	case string(engine.ModeTime):
		return sumstack.IDTime, true
	}
	return arg, registry.Exists(arg)
}

func runScores(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	gameID, ok := resolveGameID(arg)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'sumstack list' to see available modes.")
		os.Exit(1)
	}
	info, _ := registry.Info(gameID)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sumstack play %s' to set the first high score!\n", modeArg(gameID))
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %s   Games: %d   Avg: %.0f   Top level: %d\n",
			humanize.Comma(int64(stats.HighScore)), stats.GamesCount, stats.AvgScore, stats.BestLevel)
		fmt.Printf("Total: %s points, last played %s\n",
			humanize.Comma(stats.TotalScore), humanize.Time(stats.LastPlayed))
	}
}

// modeArg returns the play argument for a game id.
func modeArg(gameID string) string {
	if gameID == sumstack.IDTime {
		return string(engine.ModeTime)
	}
	return string(engine.ModeClassic)
}
