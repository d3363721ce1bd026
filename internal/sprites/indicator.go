package sprites

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geometry"
)

// Indicator is the HUD line: score, lives and level name.
type Indicator struct {
	at        geometry.Point
	score     *core.Counter
	lives     *core.Counter
	levelName string
	color     core.Color
}

// NewIndicator creates a HUD drawn at the given arena point.
// Either counter may be nil to omit it.
func NewIndicator(at geometry.Point, score, lives *core.Counter, levelName string) *Indicator {
	return &Indicator{
		at:        at,
		score:     score,
		lives:     lives,
		levelName: levelName,
		color:     core.ColorBrightWhite,
	}
}

// Text returns the rendered HUD string.
func (i *Indicator) Text() string {
	text := ""
	if i.lives != nil {
		text += fmt.Sprintf("Lives: %d   ", i.lives.Value())
	}
	if i.score != nil {
		text += fmt.Sprintf("Score: %d   ", i.score.Value())
	}
	return text + "Level: " + i.levelName
}

// DrawOn implements Sprite.
func (i *Indicator) DrawOn(s Surface) {
	s.DrawText(i.at, i.Text(), i.color)
}

// TimePassed implements Sprite. The HUD reads live counters, so it has
// nothing to advance.
func (i *Indicator) TimePassed() {}
