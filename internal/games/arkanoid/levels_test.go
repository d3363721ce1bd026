package arkanoid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

func TestBuiltinLevels(t *testing.T) {
	levels := BuiltinLevels()

	tests := []struct {
		id     string
		name   string
		blocks int
		width  float64
		speed  float64
	}{
		{"01-sunny-day", "Sunny Day", 12, 120, 7},
		{"02-moonlight", "Moonlight", 20, 100, 6},
		{"03-final-boss", "Final Boss", 36, 70, 7},
	}

	if len(levels) != len(tests) {
		t.Fatalf("BuiltinLevels() returned %d levels, expected %d", len(levels), len(tests))
	}
	for i, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			l := levels[i]
			if l.ID != tc.id || l.Name != tc.name {
				t.Errorf("level = %s %q, expected %s %q", l.ID, l.Name, tc.id, tc.name)
			}
			if n := len(l.AllBlocks()); n != tc.blocks {
				t.Errorf("blocks = %d, expected %d", n, tc.blocks)
			}
			if l.Paddle.Width != tc.width || l.Paddle.Speed != tc.speed {
				t.Errorf("paddle = %+v, expected width %v speed %v", l.Paddle, tc.width, tc.speed)
			}
			if len(l.Balls) != 2 {
				t.Errorf("balls = %d, expected 2", len(l.Balls))
			}
		})
	}
}

func TestSunnyDayLayout(t *testing.T) {
	l := BuiltinLevels()[0]
	blocks := l.AllBlocks()

	if v := l.Balls[0].Velocity(); !v.Equal(geometry.FromAngleAndSpeed(-30, 5)) {
		t.Errorf("first ball velocity = %v", v)
	}
	first, last := blocks[0], blocks[len(blocks)-1]
	if first.Rect() != geometry.R(50, 300, 50, 20) {
		t.Errorf("first block = %v", first.Rect())
	}
	if last.Rect() != geometry.R(600, 300, 50, 20) {
		t.Errorf("last block = %v", last.Rect())
	}

	colors := []core.Color{core.ColorPink, core.ColorOrange, core.ColorYellow, core.ColorLightPink, core.ColorMoccasin, core.ColorPink}
	for i, c := range colors {
		if blocks[i].Color != c {
			t.Errorf("block %d color = %v, expected %v", i, blocks[i].Color, c)
		}
	}
}

func TestParseLevel(t *testing.T) {
	data := `
id: custom
paddle: { width: 80, speed: 5 }
balls:
  - { dx: 1, dy: -2 }
blocks:
  - { x: 10, y: 40, width: 30, height: 10, color: blue }
rows:
  - { x: 100, y: 60, count: 3, width: 20, height: 10, gap: 5, colors: [red, green] }
`
	l, err := ParseLevel([]byte(data))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	if l.Name != "custom" {
		t.Errorf("Name = %q, expected id fallback", l.Name)
	}

	got := l.AllBlocks()
	expected := []BlockDef{
		{X: 10, Y: 40, Width: 30, Height: 10, Color: core.ColorBlue},
		{X: 100, Y: 60, Width: 20, Height: 10, Color: core.ColorRed},
		{X: 125, Y: 60, Width: 20, Height: 10, Color: core.ColorGreen},
		{X: 150, Y: 60, Width: 20, Height: 10, Color: core.ColorRed},
	}
	if len(got) != len(expected) {
		t.Fatalf("AllBlocks() = %d blocks, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("block %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "id: [", "invalid YAML"},
		{"missing id", "paddle: {width: 1, speed: 1}\nballs: [{dx: 1}]", "missing id"},
		{"no balls", "id: x\npaddle: {width: 1, speed: 1}", "at least one ball"},
		{"still ball", "id: x\npaddle: {width: 1, speed: 1}\nballs: [{angle: 30}]", "no velocity"},
		{"no paddle", "id: x\nballs: [{dx: 1}]", "paddle width"},
		{"empty row", "id: x\npaddle: {width: 1, speed: 1}\nballs: [{dx: 1}]\nrows: [{count: 0}]", "count 0"},
		{"flat block", "id: x\npaddle: {width: 1, speed: 1}\nballs: [{dx: 1}]\nblocks: [{width: 5}]", "size"},
		{"bad color", "id: x\npaddle: {width: 1, speed: 1}\nballs: [{dx: 1}]\nblocks: [{width: 5, height: 5, color: plaid}]", "unknown color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ParseLevel() error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func writeLevel(t *testing.T, dir, name, id string) {
	t.Helper()
	data := "id: " + id + "\npaddle: {width: 50, speed: 5}\nballs: [{dx: 0, dy: -5}]\nblocks: [{x: 100, y: 100, width: 20, height: 10}]\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pack"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, dir, "b.yaml", "beta")
	writeLevel(t, filepath.Join(dir, "pack"), "a.yml", "alpha")
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	levels, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(levels) != 2 || levels[0].ID != "alpha" || levels[1].ID != "beta" {
		t.Fatalf("LoadAll() = %v, expected [alpha beta]", levels)
	}
	if levels[0].FilePath != filepath.ToSlash(filepath.Join(dir, "pack", "a.yml")) {
		t.Errorf("FilePath = %q", levels[0].FilePath)
	}

	l, err := loader.LoadByID("beta")
	if err != nil || l.ID != "beta" {
		t.Errorf("LoadByID(beta) = %v, %v", l.ID, err)
	}
	if _, err := loader.LoadByID("gamma"); err == nil {
		t.Error("LoadByID(gamma) should fail")
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("LoadAll() on a missing directory should fail")
	}
}

func TestFindLevel(t *testing.T) {
	levels := BuiltinLevels()

	tests := []struct {
		ref      string
		expected int
		wantErr  bool
	}{
		{"02-moonlight", 1, false},
		{"1", 0, false},
		{"3", 2, false},
		{"4", 0, true},
		{"0", 0, true},
		{"moon", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			idx, err := FindLevel(levels, tc.ref)
			if (err != nil) != tc.wantErr {
				t.Fatalf("FindLevel(%q) error = %v, wantErr %v", tc.ref, err, tc.wantErr)
			}
			if !tc.wantErr && idx != tc.expected {
				t.Errorf("FindLevel(%q) = %d, expected %d", tc.ref, idx, tc.expected)
			}
		})
	}
}
