package main

import (
	"io"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

func TestNewGameFromRegistry(t *testing.T) {
	arkanoid.SetStartLevel("2")
	t.Cleanup(func() { arkanoid.SetStartLevel("") })

	game, err := newGame(arkanoid.GameID)
	if err != nil {
		t.Fatalf("newGame() error = %v", err)
	}
	if game.ID() != arkanoid.GameID {
		t.Errorf("ID() = %q, expected %q", game.ID(), arkanoid.GameID)
	}

	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if got := game.State().Level; got != 2 {
		t.Errorf("State().Level = %d, expected 2", got)
	}
}

func TestNewGameUnknown(t *testing.T) {
	if _, err := newGame("tetris"); err == nil {
		t.Error("newGame(\"tetris\") should fail")
	}
}

func TestCommandErrorsAreReturned(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"sim with bad log level", []string{"sim", "--log-level", "loud", "--ticks", "1"}},
		{"levels with bad log level", []string{"levels", "--log-level", "loud", "--levels-dir", t.TempDir()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() {
				flagLogLevel = "info"
				flagLevelsDir = ""
				arkanoid.SetLevelsDir("")
				rootCmd.SetArgs(nil)
			})
			rootCmd.SetOut(io.Discard)
			rootCmd.SetErr(io.Discard)
			rootCmd.SetArgs(tc.args)

			if err := rootCmd.Execute(); err == nil {
				t.Errorf("Execute(%v) = nil, expected an error", tc.args)
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	t.Cleanup(func() { flagLogLevel = "info" })

	for _, level := range []string{"debug", "info", "warn", "error"} {
		flagLogLevel = level
		logger, closeLog, err := newLogger(io.Discard)
		if err != nil {
			t.Errorf("newLogger() with %q error = %v", level, err)
			continue
		}
		if logger == nil {
			t.Errorf("newLogger() with %q returned a nil logger", level)
		}
		closeLog()
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger(io.Discard); err == nil {
		t.Error("newLogger() with \"loud\" should fail")
	}
}
