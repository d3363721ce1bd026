package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in 800x600 configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Arena: ArenaConfig{
			Width:         800,
			Height:        600,
			WallThickness: 20,
			HUDHeight:     25,
			DeathHeight:   20,
		},
		Ball: BallConfig{
			X:      400,
			Y:      400,
			Radius: 5,
			Color:  core.ColorWhite,
		},
		Paddle: PaddleConfig{
			Y:               560,
			Height:          20,
			Color:           core.ColorOrange,
			WidthMultiplier: 1,
		},
		Physics: PhysicsConfig{
			EdgeTolerance:   0.01,
			Backoff:         0.5,
			SpeedMultiplier: 1,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BlockPoints: 5,
			ClearBonus:  100,
			ServeDelay:  60,
		},
		Borders: BordersConfig{
			TopY:      25,
			LeftX:     0,
			RightMinX: 780,
		},
	}
}
