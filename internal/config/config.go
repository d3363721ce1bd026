// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ArkanoidConfig contains all tunable parameters of the game.
type ArkanoidConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Borders  BordersConfig  `yaml:"borders"`
}

// ArenaConfig describes the playfield in arena units.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"` // left and right walls
	HUDHeight     float64 `yaml:"hud_height"`     // top wall, also the HUD band
	DeathHeight   float64 `yaml:"death_height"`   // death region at the bottom
}

// BallConfig defines where and how balls are served.
type BallConfig struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Radius float64    `yaml:"radius"`
	Color  core.Color `yaml:"color"`
}

// PaddleConfig defines the paddle placement. Width and speed come from the
// level; WidthMultiplier scales the level width.
type PaddleConfig struct {
	Y               float64    `yaml:"y"`
	Height          float64    `yaml:"height"`
	Color           core.Color `yaml:"color"`
	WidthMultiplier float64    `yaml:"width_multiplier"`
}

// PhysicsConfig holds the collision thresholds.
type PhysicsConfig struct {
	EdgeTolerance   float64 `yaml:"edge_tolerance"`   // block edge classification distance
	Backoff         float64 `yaml:"backoff"`          // fraction of a step a ball is pulled back on collision
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // scales every level's ball speed
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	BlockPoints int `yaml:"block_points"`
	ClearBonus  int `yaml:"clear_bonus"`
	ServeDelay  int `yaml:"serve_delay"` // ticks before balls start moving
}

// BordersConfig classifies perimeter walls by position.
type BordersConfig struct {
	TopY      float64 `yaml:"top_y"`
	LeftX     float64 `yaml:"left_x"`
	RightMinX float64 `yaml:"right_min_x"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string is normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyArkanoidPreset adjusts lives, ball speed and paddle width.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.SpeedMultiplier = 0.8
		cfg.Paddle.WidthMultiplier = 1.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.SpeedMultiplier = 1.25
		cfg.Paddle.WidthMultiplier = 0.8
	}
}

// Validate reports every unusable value.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size %vx%v must be positive", c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius %v must be positive", c.Ball.Radius))
	}
	if c.Paddle.Height <= 0 || c.Paddle.WidthMultiplier <= 0 {
		errs = append(errs, errors.New("paddle height and width multiplier must be positive"))
	}
	if c.Physics.EdgeTolerance <= 0 || c.Physics.Backoff <= 0 || c.Physics.SpeedMultiplier <= 0 {
		errs = append(errs, errors.New("physics values must be positive"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives %d must be at least 1", c.Gameplay.Lives))
	}
	if c.Gameplay.ServeDelay < 0 {
		errs = append(errs, fmt.Errorf("serve delay %d must not be negative", c.Gameplay.ServeDelay))
	}
	return errors.Join(errs...)
}
