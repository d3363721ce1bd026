package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/sprites"
)

// Glyphs used when drawing the arena.
const (
	BlockGlyph = '█'
	BallGlyph  = '●'
)

// canvas scales arena coordinates onto a character screen.
type canvas struct {
	dst    *core.Screen
	sx, sy float64 // cells per arena unit
}

var _ sprites.Surface = (*canvas)(nil)

func newCanvas(dst *core.Screen, arenaW, arenaH float64) *canvas {
	return &canvas{
		dst: dst,
		sx:  float64(dst.Width()) / arenaW,
		sy:  float64(dst.Height()) / arenaH,
	}
}

// span maps [lo, hi) in arena units to a cell range of at least one cell.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (c *canvas) FillRect(r geometry.Rectangle, col core.Color) {
	x0, x1 := span(r.Left(), r.Right(), c.sx)
	y0, y1 := span(r.Top(), r.Bottom(), c.sy)
	c.dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), BlockGlyph, col)
}

func (c *canvas) FillCircle(center geometry.Point, _ float64, col core.Color) {
	x := int(math.Floor(center.X * c.sx))
	y := int(math.Floor(center.Y * c.sy))
	c.dst.SetColored(x, y, BallGlyph, col)
}

func (c *canvas) DrawText(at geometry.Point, text string, col core.Color) {
	x := int(math.Floor(at.X * c.sx))
	y := int(math.Floor(at.Y * c.sy))
	c.dst.DrawTextColored(x, y, text, col)
}
