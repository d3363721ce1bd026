package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with the level each run reached.

Examples:
  arkanoid scores
  arkanoid scores --limit 25
  arkanoid scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(arkanoid.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(arkanoid.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Arkanoid")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return nil
	}

	printScores(scores)

	fmt.Println()
	if stats, err := store.GetGameStats(arkanoid.GameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Furthest level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "Rank", "Score", "Level", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "----", "-----", "-----", "----", "---")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-16s  %s\n", i+1, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"), e.RunID)
	}
}
