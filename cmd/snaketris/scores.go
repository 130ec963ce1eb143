package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaketris/internal/registry"
	"github.com/vovakirdan/snaketris/internal/storage"
)

var flagMatches int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent matches",
	Long: `Display the top 10 high scores and the most recent matches for a mode
(default: snaketris).

Examples:
  snaketris scores
  snaketris scores snaketris_classic --matches 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagMatches, "matches", 5, "Number of recent matches to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "snaketris"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'snaketris list' to see modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("\nPlay 'snaketris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	matches, err := store.RecentMatches(gameID, flagMatches)
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}
	if len(matches) > 0 {
		fmt.Printf("\nRecent matches\n\n")
		fmt.Printf("  %-12s  %-6s  %-6s  %-5s  %-6s  %s\n", "Player", "Score", "Length", "Kills", "Deaths", "Time")
		for _, m := range matches {
			secs := float64(m.Frames) / float64(max(flagFPS, 1))
			fmt.Printf("  %-12s  %-6d  %-6d  %-5d  %-6d  %.0fs\n", m.Player, m.Score, m.MaxLength, m.Kills, m.Deaths, secs)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("\nBest: %d  Average: %.1f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}
	return nil
}
