// Package blocks implements the rectangular obstacles of a level: scoring
// blocks, border walls and the death region, together with the hit listeners
// that react to them.
package blocks

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/sprites"
)

// DefaultEdgeTolerance is the distance within which a collision point is on
// a block edge.
const DefaultEdgeTolerance = 0.01

// BorderRule identifies perimeter walls by position. A non-death block is a
// border when its upper-left y equals TopY, its x equals LeftX or its x is at
// least RightMinX.
type BorderRule struct {
	TopY      float64
	LeftX     float64
	RightMinX float64
}

// DefaultBorderRule matches the 800x600 arena layout.
var DefaultBorderRule = BorderRule{TopY: 25, LeftX: 0, RightMinX: 780}

func (r BorderRule) matches(upperLeft geometry.Point) bool {
	return upperLeft.Y == r.TopY || upperLeft.X == r.LeftX || upperLeft.X >= r.RightMinX
}

// Options tunes a block's classification.
type Options struct {
	// DeathRegion marks the block whose hits always notify.
	DeathRegion bool
	// EdgeTolerance defaults to DefaultEdgeTolerance when not positive.
	EdgeTolerance float64
	// Borders defaults to DefaultBorderRule when nil.
	Borders *BorderRule
}

// Block is a rectangular obstacle with a color and hit listeners.
type Block struct {
	rect      geometry.Rectangle
	color     core.Color
	death     bool
	tolerance float64
	borders   BorderRule
	listeners []HitListener
}

var (
	_ collision.Collidable = (*Block)(nil)
	_ sprites.Sprite       = (*Block)(nil)
	_ HitNotifier          = (*Block)(nil)
)

// NewBlock creates a block. ColorDefault becomes ColorGray.
func NewBlock(rect geometry.Rectangle, color core.Color, opts Options) *Block {
	if color == core.ColorDefault {
		color = core.ColorGray
	}
	b := &Block{
		rect:      rect,
		color:     color,
		death:     opts.DeathRegion,
		tolerance: opts.EdgeTolerance,
		borders:   DefaultBorderRule,
	}
	if b.tolerance <= 0 {
		b.tolerance = DefaultEdgeTolerance
	}
	if opts.Borders != nil {
		b.borders = *opts.Borders
	}
	return b
}

func (b *Block) Color() core.Color { return b.color }

// CollisionRectangle implements collision.Collidable.
func (b *Block) CollisionRectangle() geometry.Rectangle { return b.rect }

// IsDeathRegion reports whether the block removes balls that touch it.
func (b *Block) IsDeathRegion() bool { return b.death }

// IsBorder reports whether the block is a perimeter wall.
func (b *Block) IsBorder() bool {
	return !b.death && b.borders.matches(b.rect.UpperLeft)
}

// ColorMatches reports whether the hitter already carries the block color.
func (b *Block) ColorMatches(h collision.Hitter) bool {
	return h.Color() == b.color
}

// Hit implements collision.Collidable.
//
// A point on a left or right edge negates dx and a point on a top or bottom
// edge negates dy; a corner negates both. Listeners run before the hitter
// adopts the block color, so they observe its pre-hit color.
func (b *Block) Hit(hitter collision.Hitter, collisionPoint geometry.Point, v geometry.Velocity) geometry.Velocity {
	if b.onVerticalEdge(collisionPoint) {
		v = v.FlipX()
	}
	if b.onHorizontalEdge(collisionPoint) {
		v = v.FlipY()
	}

	border := b.IsBorder()
	if b.death || (!border && !b.ColorMatches(hitter)) {
		b.notifyHit(hitter)
	}
	if !b.death && !border {
		hitter.SetColor(b.color)
	}

	return v
}

func (b *Block) onVerticalEdge(p geometry.Point) bool {
	return math.Abs(p.X-b.rect.Left()) < b.tolerance || math.Abs(p.X-b.rect.Right()) < b.tolerance
}

func (b *Block) onHorizontalEdge(p geometry.Point) bool {
	return math.Abs(p.Y-b.rect.Top()) < b.tolerance || math.Abs(p.Y-b.rect.Bottom()) < b.tolerance
}

// AddHitListener registers hl. Registering the same listener twice is a no-op.
func (b *Block) AddHitListener(hl HitListener) {
	if hl == nil || slices.Contains(b.listeners, hl) {
		return
	}
	b.listeners = append(b.listeners, hl)
}

// RemoveHitListener unregisters hl. Removing an absent listener is a no-op.
func (b *Block) RemoveHitListener(hl HitListener) {
	if idx := slices.Index(b.listeners, hl); idx >= 0 {
		b.listeners = slices.Concat(b.listeners[:idx], b.listeners[idx+1:])
	}
}

// notifyHit iterates a copy so listeners may unregister during the call.
func (b *Block) notifyHit(hitter collision.Hitter) {
	for _, hl := range slices.Clone(b.listeners) {
		hl.HitEvent(b, hitter)
	}
}

// DrawOn implements sprites.Sprite.
func (b *Block) DrawOn(s sprites.Surface) {
	s.FillRect(b.rect, b.color)
}

// TimePassed implements sprites.Sprite. Blocks are static.
func (b *Block) TimePassed() {}
