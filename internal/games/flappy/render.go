package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
	GroundFill    = '▒'
	GroundStud    = '╪'
)

// flapSprites are the actor frames, wing up to wing down.
var flapSprites = [flapFrames]rune{'▲', '►', '▼'}

// groundStride is the world distance between ground studs.
const groundStride = 40.0

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(fieldW, fieldH float64, screenW, screenH int) viewport {
	return viewport{sx: float64(screenW) / fieldW, sy: float64(screenH) / fieldH}
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// fade picks a color for a given visibility; ok is false when hidden.
func fade(base core.Color, alpha float64) (core.Color, bool) {
	switch {
	case alpha < 0.25:
		return base, false
	case alpha < 0.75:
		return core.ColorFaded, true
	default:
		return base, true
	}
}

// Render draws the current stage to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.stage
	cfg := s.Config()
	v := newViewport(cfg.Field.Width, cfg.Field.Height, dst.Width(), dst.Height())

	for _, p := range s.Spawner().Pipes() {
		drawPipe(dst, v, p, cfg.Field.Height)
	}
	for _, seg := range s.Ground().Segments() {
		drawGround(dst, v, seg)
	}
	drawActor(dst, v, s.Actor())

	dst.DrawTextCentered(0, fmt.Sprintf(" %s ", s.score.Text()), core.ColorWhite)

	if c, ok := fade(core.ColorCyan, s.MessageAlpha()); ok {
		drawCenteredMessage(dst, c, "GET READY", "Press SPACE to flap")
	}
	if c, ok := fade(core.ColorRed, s.BannerAlpha()); ok {
		drawCenteredMessage(dst, c, "GAME OVER", "")
	}
	if c, ok := fade(core.ColorBrightYellow, s.ReadoutAlpha()); ok {
		dst.DrawTextCentered(dst.Height()/2+3, fmt.Sprintf("High Score: %d", s.HighScore()), c)
	}

	if g.paused {
		drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

func drawPipe(dst *core.Screen, v viewport, p *physics.Body, fieldH float64) {
	if !p.Visible {
		return
	}
	r := v.rect(p.Box)
	dst.DrawRect(r, PipeChar, core.ColorPipe)
	// Cap on the corridor side of each piece.
	if p.Box.Bottom() <= fieldH/2 {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Bottom()-1, PipeCapTop, core.ColorPipeCap)
		}
	} else {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, PipeCapBottom, core.ColorPipeCap)
		}
	}
}

func drawGround(dst *core.Screen, v viewport, seg *physics.Body) {
	r := v.rect(seg.Box)
	dst.DrawRect(r, GroundFill, core.ColorGround)
	for x := r.X; x < r.Right(); x++ {
		worldX := float64(x)/v.sx - seg.Box.X
		ch := GroundChar
		if int(worldX/groundStride)%2 == 1 {
			ch = GroundStud
		}
		dst.SetColored(x, r.Y, ch, core.ColorGroundStud)
	}
}

func drawActor(dst *core.Screen, v viewport, a *Actor) {
	c, ok := fade(core.ColorActor, a.Alpha)
	if !ok {
		return
	}
	r := v.rect(a.Box())
	dst.DrawRect(r, '●', c)
	dst.SetColored(r.Right()-1, r.Y, flapSprites[a.Frame()], c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
	}
}
