package arkanoid

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "arkanoid"

// Game states
const (
	StateServe    = "serve"    // balls waiting for the serve delay
	StatePlaying  = "playing"  // balls in play
	StatePaused   = "paused"   // game paused
	StateGameOver = "gameover" // no lives left
	StateWin      = "win"      // every level cleared
)

// Minimum terminal size for a readable arena.
const (
	minScreenW = 40
	minScreenH = 15
)

// Settings chosen on the command line before the platform creates the game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLevelsDir loads levels from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel selects the first level by ID or 1-based number.
func SetStartLevel(ref string) {
	startLevel = ref
}

// SetLogger sets the logger used for level transitions and hit events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game chains levels together with shared score and lives.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ArkanoidConfig
	levels  []LevelDef
	first   int

	levelIndex int
	level      *GameLevel
	score      *core.Counter
	lives      *core.Counter

	state      string
	serveDelay int
	tick       uint64

	// fixed skips the package settings on Reset.
	fixed bool
}

var _ registry.Game = (*Game)(nil)

// New creates a game that reads the package settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithLevels creates a game with an explicit configuration and level
// list, ignoring the package settings.
func NewWithLevels(cfg config.ArkanoidConfig, levels []LevelDef) *Game {
	return &Game{cfg: cfg, levels: levels, fixed: true}
}

// Settings resolves the package settings into a validated config, a level
// list and the index of the start level.
func Settings() (config.ArkanoidConfig, []LevelDef, int) {
	cfg := loadConfig()
	levels, first := loadLevels()
	return cfg, levels, first
}

// StartAt selects the level index that Reset starts from.
// Out-of-range indexes are ignored.
func (g *Game) StartAt(index int) *Game {
	if index >= 0 && index < len(g.levels) {
		g.first = index
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Arkanoid" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.fixed {
		g.cfg = loadConfig()
		g.levels, g.first = loadLevels()
	}

	g.score = core.NewCounter(0)
	g.lives = core.NewCounter(g.cfg.Gameplay.Lives)
	g.tick = 0
	g.startLevel(g.first)
}

func loadConfig() config.ArkanoidConfig {
	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}
	return cfg
}

func loadLevels() ([]LevelDef, int) {
	levels := BuiltinLevels()
	if levelsDir != "" {
		custom, err := NewLoader(levelsDir).LoadAll()
		switch {
		case err != nil:
			logger.Warn("using built-in levels", "dir", levelsDir, "err", err)
		case len(custom) == 0:
			logger.Warn("no levels found, using built-in levels", "dir", levelsDir)
		default:
			levels = custom
		}
	}

	first := 0
	if startLevel != "" {
		idx, err := FindLevel(levels, startLevel)
		if err != nil {
			logger.Warn("starting from the first level", "err", err)
		} else {
			first = idx
		}
	}
	return levels, first
}

func (g *Game) startLevel(index int) {
	g.levelIndex = index
	g.level = NewGameLevel(g.levels[index], g.cfg, g.score, g.lives)
	g.level.Initialize()
	g.serve()
	logger.Info("level started",
		"level", g.level.Def().ID,
		"name", g.level.Def().Name,
		"blocks", g.level.RemainingBlocks(),
		"score", g.score.Value(),
		"lives", g.lives.Value(),
	)
}

func (g *Game) serve() {
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
			if g.serveDelay > 0 {
				g.state = StateServe
			}
		case StatePlaying, StateServe:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.state == StateServe {
		if in.Has(core.ActionConfirm) {
			g.serveDelay = 0
		}
		if g.serveDelay > 0 {
			g.serveDelay--
			return core.StepResult{State: g.State()}
		}
		g.state = StatePlaying
	}

	switch g.level.Step(in) {
	case LevelCleared:
		g.handleLevelClear()
	case LevelBallsLost:
		g.handleBallsLost()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleLevelClear() {
	logger.Info("level cleared", "level", g.level.Def().ID, "score", g.score.Value())
	if g.levelIndex+1 >= len(g.levels) {
		g.state = StateWin
		logger.Info("all levels cleared", "score", g.score.Value())
		return
	}
	g.startLevel(g.levelIndex + 1)
}

func (g *Game) handleBallsLost() {
	g.lives.Decrease(1)
	logger.Info("life lost", "level", g.level.Def().ID, "lives", g.lives.Value())
	if g.lives.Value() <= 0 {
		g.state = StateGameOver
		logger.Info("game over", "score", g.score.Value())
		return
	}
	// Remaining blocks stay; only the balls are served again.
	g.level.ServeBalls()
	g.serve()
}

// Level returns the level in play.
func (g *Game) Level() *GameLevel { return g.level }

// Phase returns the state name (serve, playing, paused, gameover, win).
func (g *Game) Phase() string { return g.state }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.level == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Value(),
		Level:    g.levelIndex + 1,
		Lives:    g.lives.Value(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.level.Draw(newCanvas(dst, g.cfg.Arena.Width, g.cfg.Arena.Height))
	g.renderOverlay(dst)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		msg := "Get ready..."
		if g.serveDelay <= g.runtime.TickRate/2 {
			msg = "Go!"
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value()))
	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value()))
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
