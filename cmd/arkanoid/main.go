// arkanoid is a terminal brick breaker built on a continuous collision engine.
//
// Usage:
//
//	arkanoid play            - Pick a level and play
//	arkanoid levels          - List available levels
//	arkanoid sim             - Run a headless simulation and print its hash
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Seed recorded with the run
//	--db <path>         - Set database path (default: ~/.arkanoid/scores.db)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game settings shared by play, sim, levels and serve
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a terminal brick breaker. Balls bounce off the paddle,
the walls and the blocks; a block breaks when it is hit by a ball of a
different color, and the ball takes the block's color.

Available commands:
  play     - Pick a level and play
  levels   - Show the level list
  sim      - Run a headless simulation
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arkanoid play
  arkanoid play --level 2 --difficulty hard
  arkanoid levels --levels-dir ./my-levels
  arkanoid serve --ssh :2222
  arkanoid scores`,
	// Commands return their errors; main prints them once.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		arkanoid.SetConfigPath(flagConfig)
		arkanoid.SetDifficultyPreset(flagDifficulty)
		arkanoid.SetLevelsDir(flagLevelsDir)
		arkanoid.SetStartLevel(flagLevel)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Seed recorded with the run (0 = time based)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevel, "level", "", "Start level by ID or number")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Load levels from this directory instead of the built-in set")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger. Without --log-file, logs go to fallback.
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the scores database, or returns nil so play continues
// without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
