package blocks

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// HitListener is told when a block is struck in a way that matters.
// Implementations must be comparable (pointer types).
type HitListener interface {
	HitEvent(beingHit *Block, hitter collision.Hitter)
}

// HitNotifier keeps a list of hit listeners.
type HitNotifier interface {
	AddHitListener(hl HitListener)
	RemoveHitListener(hl HitListener)
}

// BlockHost takes blocks out of play.
type BlockHost interface {
	RemoveBlock(b *Block)
}

// BallHost takes balls out of play.
type BallHost interface {
	RemoveBall(h collision.Hitter)
}

// BlockRemover removes a block struck by a ball of a different color and
// decrements the remaining-blocks counter.
type BlockRemover struct {
	host      BlockHost
	remaining *core.Counter
}

// NewBlockRemover creates a BlockRemover.
func NewBlockRemover(host BlockHost, remaining *core.Counter) *BlockRemover {
	return &BlockRemover{host: host, remaining: remaining}
}

// HitEvent implements HitListener.
func (r *BlockRemover) HitEvent(beingHit *Block, hitter collision.Hitter) {
	if beingHit.ColorMatches(hitter) {
		return
	}
	r.remaining.Decrease(1)
	beingHit.RemoveHitListener(r)
	r.host.RemoveBlock(beingHit)
}

// BallRemover removes the ball that struck the death region and decrements
// the remaining-balls counter.
type BallRemover struct {
	host      BallHost
	remaining *core.Counter
}

// NewBallRemover creates a BallRemover.
func NewBallRemover(host BallHost, remaining *core.Counter) *BallRemover {
	return &BallRemover{host: host, remaining: remaining}
}

// HitEvent implements HitListener.
func (r *BallRemover) HitEvent(_ *Block, hitter collision.Hitter) {
	r.host.RemoveBall(hitter)
	r.remaining.Decrease(1)
}

// DefaultBlockPoints is awarded per removed block.
const DefaultBlockPoints = 5

// ScoreTracker adds points for every block struck by a ball of a different
// color.
type ScoreTracker struct {
	score  *core.Counter
	points int
}

// NewScoreTracker creates a ScoreTracker. Non-positive points use
// DefaultBlockPoints.
func NewScoreTracker(score *core.Counter, points int) *ScoreTracker {
	if points <= 0 {
		points = DefaultBlockPoints
	}
	return &ScoreTracker{score: score, points: points}
}

// HitEvent implements HitListener.
func (s *ScoreTracker) HitEvent(beingHit *Block, hitter collision.Hitter) {
	if !beingHit.ColorMatches(hitter) {
		s.score.Increase(s.points)
	}
}

// LoggingListener writes one debug line per notified hit.
type LoggingListener struct {
	logger *log.Logger
}

// NewLoggingListener creates a LoggingListener. A nil logger uses the
// package default.
func NewLoggingListener(logger *log.Logger) *LoggingListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingListener{logger: logger}
}

// HitEvent implements HitListener.
func (l *LoggingListener) HitEvent(beingHit *Block, hitter collision.Hitter) {
	r := beingHit.CollisionRectangle()
	l.logger.Debug("block hit",
		"x", r.UpperLeft.X,
		"y", r.UpperLeft.Y,
		"block_color", beingHit.Color(),
		"ball_color", hitter.Color(),
		"death", beingHit.IsDeathRegion(),
	)
}
