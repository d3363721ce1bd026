package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels a game would play, in order. With --levels-dir the
directory is loaded instead of the built-in set; files that fail to parse
are reported and skipped.

Examples:
  arkanoid levels
  arkanoid levels --levels-dir ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels := arkanoid.BuiltinLevels()
	source := "built-in"

	if flagLevelsDir != "" {
		logger, closeLog, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()
		arkanoid.SetLogger(logger)

		custom, err := arkanoid.NewLoader(flagLevelsDir).LoadAll()
		if err != nil {
			return fmt.Errorf("loading levels: %w", err)
		}
		levels, source = custom, flagLevelsDir
	}

	if len(levels) == 0 {
		fmt.Printf("No levels found in %s.\n", source)
		return nil
	}

	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-*s  %6s  %5s  %s\n", "#", maxIDLen, "ID", maxNameLen, "Name", "Blocks", "Balls", "Paddle")
	fmt.Printf("  %-3s  %-*s  %-*s  %6s  %5s  %s\n", "-", maxIDLen, "--", maxNameLen, "----", "------", "-----", "------")

	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %-*s  %6d  %5d  %gx%g\n",
			i+1, maxIDLen, l.ID, maxNameLen, l.Name,
			len(l.AllBlocks()), len(l.Balls), l.Paddle.Width, l.Paddle.Speed)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play --level <id>' to start from a level.")
	return nil
}
