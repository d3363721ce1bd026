package collision

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Environment is the ordered set of obstacles registered for a level.
// It is not safe for concurrent use; the simulation is single-threaded.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Add registers c. Adding an already registered obstacle is a no-op.
func (e *Environment) Add(c Collidable) {
	if c == nil || e.Contains(c) {
		return
	}
	e.collidables = append(e.collidables, c)
}

// Remove unregisters c. Removing an absent obstacle is a no-op.
// The backing slice is replaced, never edited in place, so a query or caller
// holding the previous slice keeps a stable view.
func (e *Environment) Remove(c Collidable) {
	idx := slices.Index(e.collidables, c)
	if idx < 0 {
		return
	}
	e.collidables = slices.Concat(e.collidables[:idx], e.collidables[idx+1:])
}

// Contains reports whether c is registered.
func (e *Environment) Contains(c Collidable) bool {
	return slices.Contains(e.collidables, c)
}

// Len returns the number of registered obstacles.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// Collidables returns a copy of the registered obstacles in registration order.
func (e *Environment) Collidables() []Collidable {
	return slices.Clone(e.collidables)
}

// ClosestCollision returns the collision nearest to trajectory.Start, or
// false when no obstacle boundary meets the segment. On an exact distance
// tie the obstacle registered first wins.
func (e *Environment) ClosestCollision(trajectory geometry.Line) (Info, bool) {
	var (
		best    Info
		found   bool
		minDist = math.Inf(1)
	)

	for _, c := range e.collidables {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRectangle())
		if !ok {
			continue
		}
		if d := trajectory.Start.Distance(p); d < minDist {
			minDist = d
			best = Info{Point: p, Object: c}
			found = true
		}
	}

	return best, found
}
