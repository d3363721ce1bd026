package sprites

import (
	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// DefaultBackoff is the fraction of one velocity step a ball is pulled back
// from an obstacle collision point.
const DefaultBackoff = 0.5

// Frame is the static arena boundary a ball reflects off.
type Frame struct {
	MinX, MinY, MaxX, MaxY float64
}

// DefaultFrame is the 800x600 arena.
var DefaultFrame = Frame{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

// Ball is the moving body. It is the only object advanced by velocity.
type Ball struct {
	center   geometry.Point
	radius   float64
	color    core.Color
	velocity geometry.Velocity
	moving   bool

	frame     Frame
	forbidden geometry.Rectangle
	hasZone   bool
	backoff   float64

	env *collision.Environment
}

var _ collision.Hitter = (*Ball)(nil)

// NewBall creates a stationary ball. A radius below 1 becomes 1 and
// ColorDefault becomes ColorBlack.
func NewBall(center geometry.Point, radius float64, color core.Color) *Ball {
	if radius < 1 {
		radius = 1
	}
	if color == core.ColorDefault {
		color = core.ColorBlack
	}
	return &Ball{
		center:  center,
		radius:  radius,
		color:   color,
		frame:   DefaultFrame,
		backoff: DefaultBackoff,
	}
}

func (b *Ball) Center() geometry.Point { return b.center }
func (b *Ball) Radius() float64        { return b.radius }
func (b *Ball) Color() core.Color      { return b.color }

// SetColor repaints the ball.
func (b *Ball) SetColor(c core.Color) { b.color = c }

// Velocity returns the current velocity and whether one is set.
func (b *Ball) Velocity() (geometry.Velocity, bool) {
	return b.velocity, b.moving
}

// SetVelocity sets the velocity and makes the ball move.
func (b *Ball) SetVelocity(v geometry.Velocity) {
	b.velocity = v
	b.moving = true
}

// ClearVelocity makes the ball stationary; MoveOneStep becomes a no-op.
func (b *Ball) ClearVelocity() {
	b.velocity = geometry.Velocity{}
	b.moving = false
}

// SetFrame sets the arena bounds used by the fallback reflection.
func (b *Ball) SetFrame(f Frame) { b.frame = f }

// SetForbiddenArea sets the rectangle spanned by two corners that the ball
// bounces away from.
func (b *Ball) SetForbiddenArea(x1, y1, x2, y2 float64) {
	b.forbidden = geometry.R(x1, y1, x2-x1, y2-y1)
	b.hasZone = true
}

// SetEnvironment sets the obstacles the ball collides with.
func (b *Ball) SetEnvironment(env *collision.Environment) { b.env = env }

// SetBackoff overrides DefaultBackoff. Non-positive values are ignored.
func (b *Ball) SetBackoff(f float64) {
	if f > 0 {
		b.backoff = f
	}
}

// MoveOneStep advances the ball by one velocity step.
//
// If the motion segment meets an obstacle, the ball is placed just before
// the collision point, the obstacle decides the new velocity and the step
// ends. Otherwise the ball reflects off the frame and the forbidden area and
// then moves.
func (b *Ball) MoveOneStep() {
	if !b.moving {
		return
	}

	if b.env != nil {
		trajectory := geometry.NewLine(b.center, b.velocity.ApplyToPoint(b.center))
		if info, ok := b.env.ClosestCollision(trajectory); ok {
			b.center = geometry.Pt(
				info.Point.X-b.velocity.DX*b.backoff,
				info.Point.Y-b.velocity.DY*b.backoff,
			)
			b.velocity = info.Object.Hit(b, info.Point, b.velocity)
			return
		}
	}

	r := b.radius
	next := b.velocity.ApplyToPoint(b.center)
	if next.X-r <= b.frame.MinX || next.X+r >= b.frame.MaxX {
		b.velocity = b.velocity.FlipX()
	}
	if next.Y-r <= b.frame.MinY || next.Y+r >= b.frame.MaxY {
		b.velocity = b.velocity.FlipY()
	}

	if b.hasZone {
		next = b.velocity.ApplyToPoint(b.center)
		z := b.forbidden
		overlapX := next.X+r > z.Left() && next.X-r < z.Right()
		overlapY := next.Y+r > z.Top() && next.Y-r < z.Bottom()
		outside := b.center.X+r <= z.Left() || b.center.X-r >= z.Right() ||
			b.center.Y+r <= z.Top() || b.center.Y-r >= z.Bottom()

		if overlapX && overlapY && outside {
			// Both axes overlap here, so both components flip.
			b.velocity = b.velocity.FlipX().FlipY()
		}
	}

	b.center = b.velocity.ApplyToPoint(b.center)
}

// TimePassed implements Sprite.
func (b *Ball) TimePassed() {
	b.MoveOneStep()
}

// DrawOn implements Sprite.
func (b *Ball) DrawOn(s Surface) {
	s.FillCircle(b.center, b.radius, b.color)
}
