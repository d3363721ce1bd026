package sprites

import (
	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// PaddleRegions is the number of equal slices the paddle surface is split into.
const PaddleRegions = 5

// centerRegion reflects vertically instead of using a launch angle.
const centerRegion = 3

// regionAngles maps a 1-based region to its launch angle in degrees.
var regionAngles = [PaddleRegions + 1]float64{
	1: 300,
	2: 330,
	4: 30,
	5: 60,
}

// Sensor reports which actions are active this frame.
type Sensor interface {
	Has(a core.Action) bool
}

// Paddle is the player-controlled obstacle at the bottom of the arena.
type Paddle struct {
	rect       geometry.Rectangle
	color      core.Color
	sensor     Sensor
	speed      float64
	arenaWidth float64
}

var (
	_ collision.Collidable = (*Paddle)(nil)
	_ Sprite               = (*Paddle)(nil)
)

// NewPaddle creates a paddle. sensor may be nil, in which case the paddle
// never moves on its own.
func NewPaddle(rect geometry.Rectangle, color core.Color, sensor Sensor, speed, arenaWidth float64) *Paddle {
	return &Paddle{
		rect:       rect,
		color:      color,
		sensor:     sensor,
		speed:      speed,
		arenaWidth: arenaWidth,
	}
}

// CollisionRectangle implements collision.Collidable.
func (p *Paddle) CollisionRectangle() geometry.Rectangle {
	return p.rect
}

// MoveLeft shifts the paddle left by its speed, re-entering from the right
// once it has fully left the arena.
func (p *Paddle) MoveLeft() {
	x := p.rect.Left() - p.speed
	if x+p.rect.Width < 0 {
		x = p.arenaWidth
	}
	p.rect = p.rect.Moved(x)
}

// MoveRight shifts the paddle right by its speed, re-entering from the left.
func (p *Paddle) MoveRight() {
	x := p.rect.Left() + p.speed
	if x > p.arenaWidth {
		x = -p.rect.Width
	}
	p.rect = p.rect.Moved(x)
}

// Region returns the 1-based paddle region containing x, clamped to
// [1, PaddleRegions]. A zero-width paddle is all center.
func (p *Paddle) Region(x float64) int {
	regionWidth := p.rect.Width / PaddleRegions
	if regionWidth <= 0 {
		return centerRegion
	}
	region := int((x-p.rect.Left())/regionWidth) + 1
	return min(PaddleRegions, max(1, region))
}

// Hit implements collision.Collidable. The outgoing direction depends only
// on where along the paddle the collision point falls; speed is kept.
func (p *Paddle) Hit(_ collision.Hitter, collisionPoint geometry.Point, v geometry.Velocity) geometry.Velocity {
	region := p.Region(collisionPoint.X)
	if region == centerRegion {
		return v.FlipY()
	}
	return geometry.FromAngleAndSpeed(regionAngles[region], v.Speed())
}

// TimePassed moves the paddle according to the sensor.
func (p *Paddle) TimePassed() {
	if p.sensor == nil {
		return
	}
	if p.sensor.Has(core.ActionLeft) {
		p.MoveLeft()
	}
	if p.sensor.Has(core.ActionRight) {
		p.MoveRight()
	}
}

// DrawOn implements Sprite.
func (p *Paddle) DrawOn(s Surface) {
	s.FillRect(p.rect, p.color)
}
