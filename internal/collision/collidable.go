// Package collision holds the registry of obstacles a moving body can strike
// and answers "what is the first thing this motion segment hits".
package collision

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Hitter is the moving body as seen by an obstacle during a hit.
type Hitter interface {
	Color() core.Color
	SetColor(c core.Color)
}

// Collidable is anything with a rectangular collision boundary and a
// reflection policy. Implementations must be comparable (pointer types),
// since the environment tracks membership by identity.
type Collidable interface {
	// CollisionRectangle returns the current collision boundary.
	CollisionRectangle() geometry.Rectangle

	// Hit is called when hitter strikes the obstacle at collisionPoint while
	// moving with currentVelocity. It returns the velocity after the bounce
	// and may perform obstacle-specific side effects.
	Hit(hitter Hitter, collisionPoint geometry.Point, currentVelocity geometry.Velocity) geometry.Velocity
}

// Info describes the nearest collision along a motion segment.
type Info struct {
	Point  geometry.Point
	Object Collidable
}
