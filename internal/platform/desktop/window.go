// Package desktop runs the flappy stage in an Ebitengine window.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// layoutScale maps world units to logical pixels.
const layoutScale = 0.5

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 83, G: 160, B: 48, A: 255}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	actorColor  = color.RGBA{R: 245, G: 200, B: 40, A: 255}
)

// RunRecorder records finished runs.
type RunRecorder interface {
	SaveScore(score int) (int64, error)
}

// shape is a filled rectangle in logical pixels.
type shape struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// label is a line of debug text in logical pixels.
type label struct {
	Text string
	X, Y int
}

// Window adapts a flappy game to ebiten.Game.
type Window struct {
	game     *flappy.Game
	rc       core.RuntimeConfig
	recorder RunRecorder
	logger   *log.Logger
}

// Option configures a Window.
type Option func(*Window)

// WithRecorder records every finished run with a positive score.
func WithRecorder(r RunRecorder) Option {
	return func(w *Window) { w.recorder = r }
}

// WithLogger sets the host logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) { w.logger = l }
}

// New creates a window host and resets the game.
func New(game *flappy.Game, rc core.RuntimeConfig, opts ...Option) *Window {
	w := &Window{game: game, rc: rc.Normalize(), logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(w)
	}
	game.Reset(w.rc)
	return w
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionActivate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}

	w.step(in)
	return nil
}

func (w *Window) step(in core.InputFrame) core.StepResult {
	res := w.game.Step(in)
	if res.RunEnded && w.recorder != nil && res.State.Score > 0 {
		if _, err := w.recorder.SaveScore(res.State.Score); err != nil {
			w.logger.Warn("cannot record run", "score", res.State.Score, "err", err)
		}
	}
	return res
}

// Draw renders the stage.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	for _, s := range w.shapes() {
		vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color, false)
	}
	for _, l := range w.labels() {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout returns the logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.size()
}

func (w *Window) size() (int, int) {
	cfg := w.game.Stage().Config()
	return int(cfg.Field.Width * layoutScale), int(cfg.Field.Height * layoutScale)
}

func toShape(b core.Box, c color.RGBA) shape {
	return shape{
		X:     float32(b.X * layoutScale),
		Y:     float32(b.Y * layoutScale),
		W:     float32(b.W * layoutScale),
		H:     float32(b.H * layoutScale),
		Color: c,
	}
}

// withAlpha scales a color's alpha by visibility.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := core.ClampF(alpha, 0, 1)
	// Premultiplied: scale every channel.
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// shapes builds the display list, back to front.
func (w *Window) shapes() []shape {
	s := w.game.Stage()
	var out []shape
	for _, p := range s.Spawner().Pipes() {
		if p.Visible {
			out = append(out, toShape(p.Box, pipeColor))
		}
	}
	for _, g := range s.Ground().Segments() {
		out = append(out, toShape(g.Box, groundColor))
	}
	if a := s.Actor(); a.Alpha > 0 {
		out = append(out, toShape(a.Box(), withAlpha(actorColor, a.Alpha)))
	}
	return out
}

// labels builds the text overlay.
func (w *Window) labels() []label {
	s := w.game.Stage()
	width, height := w.size()
	out := []label{{Text: fmt.Sprintf("%d", s.Score()), X: width / 2, Y: 16}}

	if s.MessageAlpha() >= 0.5 {
		out = append(out, label{Text: "GET READY - click or press SPACE", X: width/2 - 96, Y: height / 3})
	}
	if s.BannerAlpha() >= 0.5 {
		out = append(out, label{Text: "GAME OVER", X: width/2 - 27, Y: height/2 - 24})
	}
	if s.ReadoutAlpha() >= 0.5 {
		out = append(out, label{Text: fmt.Sprintf("High Score: %d", s.HighScore()), X: width/2 - 42, Y: height / 2})
	}
	if w.game.State().Paused {
		out = append(out, label{Text: "PAUSED - press P", X: width/2 - 48, Y: height/2 + 24})
	}
	return out
}

// Run opens the window and blocks until it is closed.
func Run(w *Window) error {
	width, height := w.size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetTPS(w.rc.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
