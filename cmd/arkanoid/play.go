package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Arkanoid",
	Long: `Pick a starting level and play. After a game you return to the
level menu.

Controls:
  Left/A, Right/D  - Move paddle
  Space/Enter      - Serve now
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower balls, wider paddle
  normal - Config values
  hard   - 2 lives, faster balls, narrower paddle

Examples:
  arkanoid play
  arkanoid play --no-menu --level 03-final-boss
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml --log-file arkanoid.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the level menu and start right away")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Bubble Tea owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	arkanoid.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagNoMenu {
		// The registered factory reads --config, --difficulty, --levels-dir
		// and --level on Reset.
		game, err := newGame(arkanoid.GameID)
		if err != nil {
			return err
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	gameCfg, levels, first := arkanoid.Settings()
	for {
		result, err := tui.RunMenu(levels, first, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, arkanoid.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		first = result.Level
		game := arkanoid.NewWithLevels(gameCfg, levels).StartAt(first)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

// newGame creates a registered game by ID.
func newGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q", id)
	}
	return registry.Create(id)
}
