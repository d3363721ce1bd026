package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Velocity is a displacement applied to a position once per simulation step.
type Velocity struct {
	DX, DY float64
}

// V creates a velocity from its components.
func V(dx, dy float64) Velocity {
	return Velocity{DX: dx, DY: dy}
}

// FromAngleAndSpeed builds a velocity from a heading in degrees and a speed.
// Angle 0 points up (decreasing y) and grows clockwise.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := angle * math.Pi / 180
	return Velocity{
		DX: speed * math.Sin(rad),
		DY: -speed * math.Cos(rad),
	}
}

func (v Velocity) vec() r2.Point {
	return r2.Point{X: v.DX, Y: v.DY}
}

// ApplyToPoint returns p moved by one step of v.
func (v Velocity) ApplyToPoint(p Point) Point {
	return fromVec(p.vec().Add(v.vec()))
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return v.vec().Norm()
}

// FlipX returns the velocity with its horizontal component negated.
func (v Velocity) FlipX() Velocity {
	return Velocity{DX: -v.DX, DY: v.DY}
}

// FlipY returns the velocity with its vertical component negated.
func (v Velocity) FlipY() Velocity {
	return Velocity{DX: v.DX, DY: -v.DY}
}

// Scaled returns the velocity multiplied by f.
func (v Velocity) Scaled(f float64) Velocity {
	return fromVelocityVec(v.vec().Mul(f))
}

func fromVelocityVec(p r2.Point) Velocity {
	return Velocity{DX: p.X, DY: p.Y}
}

// Equal reports whether both components differ by less than Epsilon.
func (v Velocity) Equal(other Velocity) bool {
	return math.Abs(v.DX-other.DX) < Epsilon && math.Abs(v.DY-other.DY) < Epsilon
}
