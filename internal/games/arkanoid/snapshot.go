package arkanoid

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// BallState is the observable state of one ball.
type BallState struct {
	X, Y   float64
	DX, DY float64
	Color  int
}

// BlockState is the observable state of one scoring block.
type BlockState struct {
	X, Y  float64
	Color int
}

// Snapshot contains the observable game state for determinism checks.
type Snapshot struct {
	Tick            uint64
	State           string
	LevelIndex      int
	ServeDelay      int
	Score           int
	Lives           int
	RemainingBlocks int
	RemainingBalls  int
	PaddleX         float64
	Balls           []BallState
	Blocks          []BlockState
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		State:           g.state,
		LevelIndex:      g.levelIndex,
		ServeDelay:      g.serveDelay,
		Score:           g.score.Value(),
		Lives:           g.lives.Value(),
		RemainingBlocks: g.level.RemainingBlocks(),
		RemainingBalls:  g.level.RemainingBalls(),
		PaddleX:         g.level.Paddle().CollisionRectangle().Left(),
	}

	for _, b := range g.level.Balls() {
		v, _ := b.Velocity()
		c := b.Center()
		snap.Balls = append(snap.Balls, BallState{X: c.X, Y: c.Y, DX: v.DX, DY: v.DY, Color: int(b.Color())})
	}
	for _, b := range g.level.Blocks() {
		r := b.CollisionRectangle()
		snap.Blocks = append(snap.Blocks, BlockState{X: r.UpperLeft.X, Y: r.UpperLeft.Y, Color: int(b.Color())})
	}
	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(snap.Tick)
	_, _ = d.WriteString(snap.State)
	putI(snap.LevelIndex)
	putI(snap.ServeDelay)
	putI(snap.Score)
	putI(snap.Lives)
	putI(snap.RemainingBlocks)
	putI(snap.RemainingBalls)
	putF(snap.PaddleX)

	putI(len(snap.Balls))
	for _, b := range snap.Balls {
		putF(b.X)
		putF(b.Y)
		putF(b.DX)
		putF(b.DY)
		putI(b.Color)
	}
	putI(len(snap.Blocks))
	for _, b := range snap.Blocks {
		putF(b.X)
		putF(b.Y)
		putI(b.Color)
	}
	return d.Sum64()
}
