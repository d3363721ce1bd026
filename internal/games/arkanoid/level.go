// Package arkanoid implements the brick breaker: level definitions, the
// per-level orchestration of paddle, balls and blocks, and the registry game
// that chains levels together.
package arkanoid

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/blocks"
	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/sprites"
)

// LevelResult is the outcome of one GameLevel step.
type LevelResult int

const (
	LevelRunning   LevelResult = iota
	LevelCleared               // no scoring blocks left
	LevelBallsLost             // every ball fell into the death region
)

// GameLevel owns the objects of one level. Score and lives are borrowed
// from the Game so they carry across levels.
type GameLevel struct {
	def LevelDef
	cfg config.ArkanoidConfig

	sprites *sprites.Collection
	env     *collision.Environment
	input   core.InputFrame

	paddle *sprites.Paddle
	balls  []*sprites.Ball
	blocks []*blocks.Block
	death  *blocks.Block

	remainingBlocks *core.Counter
	remainingBalls  *core.Counter
	score           *core.Counter
	lives           *core.Counter

	blockOpts blocks.Options
}

var (
	_ blocks.BlockHost = (*GameLevel)(nil)
	_ blocks.BallHost  = (*GameLevel)(nil)
)

// NewGameLevel creates an uninitialized level.
func NewGameLevel(def LevelDef, cfg config.ArkanoidConfig, score, lives *core.Counter) *GameLevel {
	rule := blocks.BorderRule{
		TopY:      cfg.Borders.TopY,
		LeftX:     cfg.Borders.LeftX,
		RightMinX: cfg.Borders.RightMinX,
	}
	return &GameLevel{
		def:             def,
		cfg:             cfg,
		sprites:         sprites.NewCollection(),
		env:             collision.NewEnvironment(),
		input:           core.NewInputFrame(),
		remainingBlocks: core.NewCounter(0),
		remainingBalls:  core.NewCounter(0),
		score:           score,
		lives:           lives,
		blockOpts: blocks.Options{
			EdgeTolerance: cfg.Physics.EdgeTolerance,
			Borders:       &rule,
		},
	}
}

// Initialize builds the arena, the level blocks and the first serve.
// The paddle is added before the balls so input moves it first each tick.
func (l *GameLevel) Initialize() {
	a := l.cfg.Arena
	sensor := &l.input

	width := l.def.Paddle.Width * l.cfg.Paddle.WidthMultiplier
	l.paddle = sprites.NewPaddle(
		geometry.R(a.Width/2-width/2, l.cfg.Paddle.Y, width, l.cfg.Paddle.Height),
		l.cfg.Paddle.Color, sensor, l.def.Paddle.Speed, a.Width,
	)
	l.sprites.Add(l.paddle)
	l.env.Add(l.paddle)

	l.ServeBalls()

	walls := []geometry.Rectangle{
		geometry.R(0, 0, a.Width, a.HUDHeight),
		geometry.R(0, a.HUDHeight, a.WallThickness, a.Height-a.HUDHeight),
		geometry.R(a.Width-a.WallThickness, a.HUDHeight, a.WallThickness, a.Height-a.HUDHeight),
	}
	for _, r := range walls {
		l.add(blocks.NewBlock(r, core.ColorGray, l.blockOpts))
	}

	deathOpts := l.blockOpts
	deathOpts.DeathRegion = true
	l.death = blocks.NewBlock(geometry.R(0, a.Height-a.DeathHeight, a.Width, a.DeathHeight), core.ColorGray, deathOpts)
	l.death.AddHitListener(blocks.NewBallRemover(l, l.remainingBalls))
	l.add(l.death)

	remover := blocks.NewBlockRemover(l, l.remainingBlocks)
	tracker := blocks.NewScoreTracker(l.score, l.cfg.Gameplay.BlockPoints)
	hitLog := blocks.NewLoggingListener(logger)
	for _, def := range l.def.AllBlocks() {
		b := blocks.NewBlock(def.Rect(), def.Color, l.blockOpts)
		b.AddHitListener(remover)
		b.AddHitListener(tracker)
		b.AddHitListener(hitLog)
		l.add(b)
		l.blocks = append(l.blocks, b)
		l.remainingBlocks.Increase(1)
	}

	l.sprites.Add(sprites.NewIndicator(geometry.Pt(a.WallThickness, 0), l.score, l.lives, l.def.Name))
}

func (l *GameLevel) add(b *blocks.Block) {
	l.sprites.Add(b)
	l.env.Add(b)
}

// ServeBalls puts a fresh set of balls at the serve point with the level's
// starting velocities.
func (l *GameLevel) ServeBalls() {
	a := l.cfg.Arena
	for _, def := range l.def.Balls {
		ball := sprites.NewBall(geometry.Pt(l.cfg.Ball.X, l.cfg.Ball.Y), l.cfg.Ball.Radius, l.cfg.Ball.Color)
		ball.SetFrame(sprites.Frame{MinX: 0, MinY: 0, MaxX: a.Width, MaxY: a.Height})
		ball.SetForbiddenArea(0, 0, a.Width, a.HUDHeight)
		ball.SetEnvironment(l.env)
		ball.SetBackoff(l.cfg.Physics.Backoff)
		ball.SetVelocity(def.Velocity().Scaled(l.cfg.Physics.SpeedMultiplier))

		l.sprites.Add(ball)
		l.balls = append(l.balls, ball)
		l.remainingBalls.Increase(1)
	}
}

// Step runs one tick: record the input, advance every sprite, then check
// the counters.
func (l *GameLevel) Step(in core.InputFrame) LevelResult {
	l.input = in
	l.sprites.NotifyAllTimePassed()

	if l.remainingBlocks.Value() <= 0 {
		l.score.Increase(l.cfg.Gameplay.ClearBonus)
		return LevelCleared
	}
	if l.remainingBalls.Value() <= 0 {
		return LevelBallsLost
	}
	return LevelRunning
}

// RemoveBlock implements blocks.BlockHost.
func (l *GameLevel) RemoveBlock(b *blocks.Block) {
	l.sprites.Remove(b)
	l.env.Remove(b)
	if idx := slices.Index(l.blocks, b); idx >= 0 {
		l.blocks = slices.Concat(l.blocks[:idx], l.blocks[idx+1:])
	}
}

// RemoveBall implements blocks.BallHost.
func (l *GameLevel) RemoveBall(h collision.Hitter) {
	ball, ok := h.(*sprites.Ball)
	if !ok {
		return
	}
	l.sprites.Remove(ball)
	if idx := slices.Index(l.balls, ball); idx >= 0 {
		l.balls = slices.Concat(l.balls[:idx], l.balls[idx+1:])
	}
}

// Draw draws every sprite in order.
func (l *GameLevel) Draw(s sprites.Surface) {
	l.sprites.DrawAllOn(s)
}

func (l *GameLevel) Def() LevelDef                       { return l.def }
func (l *GameLevel) Paddle() *sprites.Paddle             { return l.paddle }
func (l *GameLevel) Balls() []*sprites.Ball              { return slices.Clone(l.balls) }
func (l *GameLevel) Blocks() []*blocks.Block             { return slices.Clone(l.blocks) }
func (l *GameLevel) Environment() *collision.Environment { return l.env }
func (l *GameLevel) RemainingBlocks() int                { return l.remainingBlocks.Value() }
func (l *GameLevel) RemainingBalls() int                 { return l.remainingBalls.Value() }
