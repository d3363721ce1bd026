package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var (
	flagTicks     int
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Runs the game without a terminal for a number of ticks and prints the
final state and its hash. The simulation is deterministic: the same
config, levels and flags always print the same hash.

With --autopilot the paddle follows the lowest falling ball.

Examples:
  arkanoid sim --ticks 3600
  arkanoid sim --autopilot --ticks 20000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Move the paddle under the lowest falling ball")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	arkanoid.SetLogger(logger)

	gameCfg, levels, first := arkanoid.Settings()
	game := arkanoid.NewWithLevels(gameCfg, levels).StartAt(first)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: flagSeed})

	for i := 0; i < flagTicks && !game.State().GameOver; i++ {
		in := core.NewInputFrame()
		if flagAutopilot {
			steer(game, &in)
		}
		game.Step(in)
	}

	snap := game.Snapshot()
	fmt.Printf("ticks:   %d\n", snap.Tick)
	fmt.Printf("state:   %s\n", snap.State)
	fmt.Printf("level:   %d (%s)\n", snap.LevelIndex+1, game.Level().Def().ID)
	fmt.Printf("score:   %d\n", snap.Score)
	fmt.Printf("lives:   %d\n", snap.Lives)
	fmt.Printf("blocks:  %d\n", snap.RemainingBlocks)
	fmt.Printf("hash:    %016x\n", snap.Hash())
	return nil
}

// steer moves the paddle center toward the lowest ball that is falling.
func steer(game *arkanoid.Game, in *core.InputFrame) {
	level := game.Level()
	target, lowest := 0.0, -1.0
	for _, b := range level.Balls() {
		v, ok := b.Velocity()
		if !ok || v.DY <= 0 {
			continue
		}
		if c := b.Center(); c.Y > lowest {
			target, lowest = c.X, c.Y
		}
	}
	if lowest < 0 {
		return
	}

	center := level.Paddle().CollisionRectangle().Center().X
	switch {
	case target < center-10:
		in.Set(core.ActionLeft)
	case target > center+10:
		in.Set(core.ActionRight)
	}
}
