package blocks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/collision"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
	"github.com/vovakirdan/tui-arkanoid/internal/sprites"
)

// hitter is a colored stand-in for the ball.
type hitter struct{ c core.Color }

func (h *hitter) Color() core.Color     { return h.c }
func (h *hitter) SetColor(c core.Color) { h.c = c }

// recorder logs HitEvent calls along with the hitter color seen at the time.
type recorder struct {
	events []core.Color
	onHit  func()
}

func (r *recorder) HitEvent(_ *Block, h collision.Hitter) {
	r.events = append(r.events, h.Color())
	if r.onHit != nil {
		r.onHit()
	}
}

// host collects removals.
type host struct {
	blocks []*Block
	balls  []collision.Hitter
}

func (h *host) RemoveBlock(b *Block)          { h.blocks = append(h.blocks, b) }
func (h *host) RemoveBall(b collision.Hitter) { h.balls = append(h.balls, b) }

func TestBlockHitEdgeClassification(t *testing.T) {
	b := NewBlock(geometry.R(50, 50, 50, 20), core.ColorCyan, Options{})
	in := geometry.V(3, 4)

	tests := []struct {
		name     string
		point    geometry.Point
		expected geometry.Velocity
	}{
		{"left edge", geometry.Pt(50, 60), geometry.V(-3, 4)},
		{"right edge", geometry.Pt(100, 60), geometry.V(-3, 4)},
		{"top edge", geometry.Pt(75, 50), geometry.V(3, -4)},
		{"bottom edge", geometry.Pt(75, 70), geometry.V(3, -4)},
		{"corner", geometry.Pt(50, 50), geometry.V(-3, -4)},
		{"within tolerance", geometry.Pt(50.009, 60), geometry.V(-3, 4)},
		{"outside tolerance", geometry.Pt(50.02, 60), geometry.V(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Hit(&hitter{c: core.ColorCyan}, tc.point, in)
			if !got.Equal(tc.expected) {
				t.Errorf("Hit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBlockLeftEdgeFromCollisionQuery(t *testing.T) {
	b := NewBlock(geometry.R(50, 50, 50, 20), core.ColorCyan, Options{})
	env := collision.NewEnvironment()
	env.Add(b)

	info, ok := env.ClosestCollision(geometry.L(40, 60, 200, 60))
	if !ok || !info.Point.Equal(geometry.Pt(50, 60)) {
		t.Fatalf("ClosestCollision() = %v, %v; expected (50, 60)", info.Point, ok)
	}
	v := info.Object.Hit(&hitter{c: core.ColorWhite}, info.Point, geometry.V(160, 0))
	if !v.Equal(geometry.V(-160, 0)) {
		t.Errorf("Hit() = %v, expected (-160, 0)", v)
	}
}

func TestBlockSameColorDoesNotNotify(t *testing.T) {
	b := NewBlock(geometry.R(50, 300, 50, 20), core.ColorPink, Options{})
	rec := &recorder{}
	b.AddHitListener(rec)

	h := &hitter{c: core.ColorPink}
	v := b.Hit(h, geometry.Pt(75, 300), geometry.V(1, 2))

	if len(rec.events) != 0 {
		t.Errorf("listener notified %d times, expected 0", len(rec.events))
	}
	if h.Color() != core.ColorPink {
		t.Errorf("hitter color = %v, expected pink", h.Color())
	}
	if !v.Equal(geometry.V(1, -2)) {
		t.Errorf("Hit() = %v, expected (1, -2)", v)
	}
}

func TestBlockMismatchNotifiesThenRecolors(t *testing.T) {
	b := NewBlock(geometry.R(50, 300, 50, 20), core.ColorPink, Options{})
	rec := &recorder{}
	b.AddHitListener(rec)

	h := &hitter{c: core.ColorWhite}
	b.Hit(h, geometry.Pt(75, 320), geometry.V(1, 2))

	if len(rec.events) != 1 || rec.events[0] != core.ColorWhite {
		t.Errorf("listener saw %v, expected [white]", rec.events)
	}
	if h.Color() != core.ColorPink {
		t.Errorf("hitter color = %v, expected pink", h.Color())
	}
}

func TestBlockBordersAndDeathRegion(t *testing.T) {
	tests := []struct {
		name        string
		rect        geometry.Rectangle
		opts        Options
		border      bool
		notified    int
		keepsColour bool
	}{
		{"top wall", geometry.R(0, 0, 800, 25), Options{}, true, 0, true},
		{"left wall", geometry.R(0, 25, 20, 575), Options{}, true, 0, true},
		{"right wall", geometry.R(780, 25, 20, 575), Options{}, true, 0, true},
		{"row at top y", geometry.R(300, 25, 50, 20), Options{}, true, 0, true},
		{"ordinary block", geometry.R(300, 150, 50, 20), Options{}, false, 1, false},
		{"death region", geometry.R(0, 580, 800, 20), Options{DeathRegion: true}, false, 1, true},
		{
			name:        "custom rule frees the top row",
			rect:        geometry.R(300, 25, 50, 20),
			opts:        Options{Borders: &BorderRule{TopY: 10, LeftX: -1, RightMinX: 1000}},
			border:      false,
			notified:    1,
			keepsColour: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBlock(tc.rect, core.ColorGray, tc.opts)
			rec := &recorder{}
			b.AddHitListener(rec)

			if b.IsBorder() != tc.border {
				t.Errorf("IsBorder() = %v, expected %v", b.IsBorder(), tc.border)
			}

			h := &hitter{c: core.ColorWhite}
			b.Hit(h, tc.rect.Center(), geometry.V(1, 1))

			if len(rec.events) != tc.notified {
				t.Errorf("notified %d times, expected %d", len(rec.events), tc.notified)
			}
			if kept := h.Color() == core.ColorWhite; kept != tc.keepsColour {
				t.Errorf("hitter color = %v, keeps color expected %v", h.Color(), tc.keepsColour)
			}
		})
	}
}

func TestDeathRegionNotifiesOnSameColor(t *testing.T) {
	b := NewBlock(geometry.R(0, 580, 800, 20), core.ColorGray, Options{DeathRegion: true})
	rec := &recorder{}
	b.AddHitListener(rec)

	b.Hit(&hitter{c: core.ColorGray}, geometry.Pt(400, 580), geometry.V(0, 5))
	if len(rec.events) != 1 {
		t.Errorf("death region notified %d times, expected 1", len(rec.events))
	}
}

func TestBlockListenerSelfRemovalDuringNotify(t *testing.T) {
	b := NewBlock(geometry.R(50, 300, 50, 20), core.ColorRed, Options{})
	first := &recorder{}
	second := &recorder{}
	third := &recorder{}
	first.onHit = func() {
		b.RemoveHitListener(first)
		b.RemoveHitListener(second)
	}
	b.AddHitListener(first)
	b.AddHitListener(second)
	b.AddHitListener(third)

	b.Hit(&hitter{c: core.ColorWhite}, geometry.Pt(75, 300), geometry.V(0, 1))
	for i, r := range []*recorder{first, second, third} {
		if len(r.events) != 1 {
			t.Errorf("listener %d notified %d times, expected 1", i, len(r.events))
		}
	}

	b.Hit(&hitter{c: core.ColorWhite}, geometry.Pt(75, 300), geometry.V(0, 1))
	if len(first.events) != 1 || len(second.events) != 1 || len(third.events) != 2 {
		t.Errorf("after removal: %d %d %d, expected 1 1 2",
			len(first.events), len(second.events), len(third.events))
	}
}

func TestBlockListenerRegistration(t *testing.T) {
	b := NewBlock(geometry.R(100, 100, 10, 10), core.ColorRed, Options{})
	rec := &recorder{}

	b.RemoveHitListener(rec) // absent: no-op
	b.AddHitListener(rec)
	b.AddHitListener(rec)
	b.AddHitListener(nil)

	b.Hit(&hitter{c: core.ColorWhite}, geometry.Pt(105, 100), geometry.V(0, 1))
	if len(rec.events) != 1 {
		t.Errorf("duplicate registration notified %d times, expected 1", len(rec.events))
	}
}

func TestNewBlockDefaults(t *testing.T) {
	b := NewBlock(geometry.R(100, 100, 10, 10), core.ColorDefault, Options{EdgeTolerance: -1})
	if b.Color() != core.ColorGray {
		t.Errorf("Color() = %v, expected gray", b.Color())
	}
	if b.tolerance != DefaultEdgeTolerance {
		t.Errorf("tolerance = %v, expected %v", b.tolerance, DefaultEdgeTolerance)
	}
	if b.borders != DefaultBorderRule {
		t.Errorf("borders = %+v, expected %+v", b.borders, DefaultBorderRule)
	}
}

func TestBlockDraw(t *testing.T) {
	var s sprites.Surface = &canvas{}
	b := NewBlock(geometry.R(1, 2, 3, 4), core.ColorPurple, Options{})
	b.TimePassed()
	b.DrawOn(s)

	c := s.(*canvas)
	if len(c.fills) != 1 || c.fills[0] != core.ColorPurple {
		t.Errorf("DrawOn() fills = %v, expected [purple]", c.fills)
	}
}

type canvas struct{ fills []core.Color }

func (c *canvas) FillRect(_ geometry.Rectangle, col core.Color)        { c.fills = append(c.fills, col) }
func (c *canvas) FillCircle(_ geometry.Point, _ float64, _ core.Color) {}
func (c *canvas) DrawText(_ geometry.Point, _ string, _ core.Color)    {}

func TestLoggingListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	b := NewBlock(geometry.R(50, 300, 50, 20), core.ColorOrange, Options{})
	b.AddHitListener(NewLoggingListener(logger))

	b.Hit(&hitter{c: core.ColorWhite}, geometry.Pt(75, 300), geometry.V(0, 1))

	out := buf.String()
	if !strings.Contains(out, "block hit") || !strings.Contains(out, "orange") || !strings.Contains(out, "white") {
		t.Errorf("log output = %q", out)
	}
}
