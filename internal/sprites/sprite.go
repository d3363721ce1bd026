// Package sprites contains the drawable, per-tick animated game objects:
// the ball, the paddle and the HUD, plus the ordered collection that drives
// them once per frame.
package sprites

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Surface is the drawing target in arena coordinates. The platform layer
// maps it onto a terminal screen.
type Surface interface {
	FillRect(r geometry.Rectangle, c core.Color)
	FillCircle(center geometry.Point, radius float64, c core.Color)
	DrawText(at geometry.Point, text string, c core.Color)
}

// Sprite is anything drawn and advanced once per frame.
// Implementations must be comparable (pointer types).
type Sprite interface {
	DrawOn(s Surface)
	TimePassed()
}

// Collection is the ordered list of sprites of a level.
type Collection struct {
	sprites []Sprite
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends s. Adding a sprite twice is a no-op.
func (c *Collection) Add(s Sprite) {
	if s == nil || slices.Contains(c.sprites, s) {
		return
	}
	c.sprites = append(c.sprites, s)
}

// Remove drops s. Removing an absent sprite is a no-op.
func (c *Collection) Remove(s Sprite) {
	if idx := slices.Index(c.sprites, s); idx >= 0 {
		c.sprites = slices.Concat(c.sprites[:idx], c.sprites[idx+1:])
	}
}

// Len returns the number of sprites.
func (c *Collection) Len() int {
	return len(c.sprites)
}

// NotifyAllTimePassed advances every sprite in order. It iterates a copy,
// so sprites removed during the pass still get their turn this frame and
// sprites added during it start next frame.
func (c *Collection) NotifyAllTimePassed() {
	for _, s := range slices.Clone(c.sprites) {
		s.TimePassed()
	}
}

// DrawAllOn draws every sprite in order onto s.
func (c *Collection) DrawAllOn(s Surface) {
	for _, sp := range c.sprites {
		sp.DrawOn(s)
	}
}
