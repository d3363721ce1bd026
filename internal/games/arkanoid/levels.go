package arkanoid

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// LevelDef is one level as written in a YAML file.
type LevelDef struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Paddle PaddleDef  `yaml:"paddle"`
	Balls  []BallDef  `yaml:"balls"`
	Blocks []BlockDef `yaml:"blocks"`
	Rows   []RowDef   `yaml:"rows"`

	// FilePath is set by the loader.
	FilePath string `yaml:"-"`
}

// PaddleDef sizes the paddle for a level.
type PaddleDef struct {
	Width float64 `yaml:"width"`
	Speed float64 `yaml:"speed"`
}

// BallDef is a starting velocity: either angle and speed (degrees, 0 is up,
// clockwise) or dx and dy. A positive speed selects the angle form.
type BallDef struct {
	Angle float64 `yaml:"angle"`
	Speed float64 `yaml:"speed"`
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

// Velocity resolves the definition.
func (b BallDef) Velocity() geometry.Velocity {
	if b.Speed > 0 {
		return geometry.FromAngleAndSpeed(b.Angle, b.Speed)
	}
	return geometry.V(b.DX, b.DY)
}

// BlockDef is a single block.
type BlockDef struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  core.Color `yaml:"color"`
}

// Rect returns the block rectangle.
func (b BlockDef) Rect() geometry.Rectangle {
	return geometry.R(b.X, b.Y, b.Width, b.Height)
}

// RowDef is a horizontal run of Count equal blocks starting at (X, Y), with
// Gap units between neighbours. Colors are cycled along the row.
type RowDef struct {
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	Count  int          `yaml:"count"`
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Gap    float64      `yaml:"gap"`
	Colors []core.Color `yaml:"colors"`
}

// AllBlocks returns the explicit blocks followed by every expanded row.
func (l LevelDef) AllBlocks() []BlockDef {
	out := make([]BlockDef, 0, len(l.Blocks))
	out = append(out, l.Blocks...)
	for _, r := range l.Rows {
		for i := range r.Count {
			var c core.Color
			if len(r.Colors) > 0 {
				c = r.Colors[i%len(r.Colors)]
			}
			out = append(out, BlockDef{
				X:      r.X + float64(i)*(r.Width+r.Gap),
				Y:      r.Y,
				Width:  r.Width,
				Height: r.Height,
				Color:  c,
			})
		}
	}
	return out
}

// Validate reports every problem with the definition.
func (l LevelDef) Validate() error {
	var errs []error
	if strings.TrimSpace(l.ID) == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if l.Paddle.Width <= 0 || l.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle width %v and speed %v must be positive", l.Paddle.Width, l.Paddle.Speed))
	}
	if len(l.Balls) == 0 {
		errs = append(errs, errors.New("at least one ball is required"))
	}
	for i, b := range l.Balls {
		if b.Velocity().Speed() == 0 {
			errs = append(errs, fmt.Errorf("ball %d has no velocity", i))
		}
	}
	for i, r := range l.Rows {
		if r.Count <= 0 {
			errs = append(errs, fmt.Errorf("row %d: count %d must be positive", i, r.Count))
		}
	}
	for i, b := range l.AllBlocks() {
		if b.Width <= 0 || b.Height <= 0 {
			errs = append(errs, fmt.Errorf("block %d: size %vx%v must be positive", i, b.Width, b.Height))
		}
	}
	return errors.Join(errs...)
}

// ParseLevel decodes and validates a YAML level.
func ParseLevel(data []byte) (LevelDef, error) {
	var l LevelDef
	if err := yaml.Unmarshal(data, &l); err != nil {
		return LevelDef{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if err := l.Validate(); err != nil {
		return LevelDef{}, fmt.Errorf("level %q: %w", l.ID, err)
	}
	return l, nil
}

// Loader reads level files from a file system tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for the directory root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, root: "."}
}

// BuiltinLevels returns the levels shipped with the game.
func BuiltinLevels() []LevelDef {
	sub, err := fs.Sub(builtinFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("arkanoid: builtin levels: %v", err))
	}
	levels, err := NewFSLoader(sub).LoadAll()
	if err != nil || len(levels) == 0 {
		panic(fmt.Sprintf("arkanoid: builtin levels: %v", err))
	}
	return levels
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]LevelDef, error) {
	var levels []LevelDef

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(p) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, path being relative to the loader root.
func (l *Loader) LoadFile(p string) (LevelDef, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return LevelDef{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return LevelDef{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = path.Join(l.root, p)
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (LevelDef, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return LevelDef{}, err
	}
	idx, err := FindLevel(levels, id)
	if err != nil {
		return LevelDef{}, err
	}
	return levels[idx], nil
}

// FindLevel resolves a level by ID or by 1-based position.
func FindLevel(levels []LevelDef, ref string) (int, error) {
	for i, lvl := range levels {
		if lvl.ID == ref {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(levels) {
		return n - 1, nil
	}
	return 0, fmt.Errorf("level not found: %s", ref)
}

func isLevelFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
