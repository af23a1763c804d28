package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/timeline"
)

// Obstacle is one spawned pair plus its gap sentinel.
type Obstacle struct {
	Top    *physics.Body
	Bottom *physics.Body
	Gap    *physics.Body
	Height int // Bottom edge of the top piece
}

// Spawner creates obstacle pairs on a fixed cadence. Pieces are never
// despawned individually when they leave the field; Clear reclaims them on
// reset.
type Spawner struct {
	cfg    config.ObstacleConfig
	fieldW float64
	speed  float64
	rng    *rand.Rand

	pipes *physics.Group
	gaps  *physics.Group
	timer *timeline.Timer

	spawned int
}

func newSpawner(world *physics.World, tl *timeline.Timeline, cfg config.FlappyConfig, seed int64) *Spawner {
	sp := &Spawner{
		cfg:    cfg.Obstacles,
		fieldW: cfg.Field.Width,
		speed:  cfg.Physics.ScrollSpeed,
		rng:    rand.New(rand.NewSource(seed)),
		pipes:  world.NewGroup("pipes"),
		gaps:   world.NewGroup("gaps"),
	}
	// Created paused; only a running stage lets it accumulate time.
	sp.timer = tl.AddTimer(cfg.Obstacles.SpawnInterval, true, true, func() { sp.Spawn() })
	return sp
}

// SpawnX returns the horizontal spawn position, just past the right field edge.
func (sp *Spawner) SpawnX() float64 {
	return sp.fieldW + sp.cfg.SpawnMargin
}

// Spawn creates an obstacle at a random height in [min, min+range).
func (sp *Spawner) Spawn() Obstacle {
	h := sp.rng.Intn(sp.cfg.TopHeightRange) + sp.cfg.TopMinHeight
	return sp.SpawnAt(h)
}

// SpawnAt creates an obstacle whose top piece ends at height h.
func (sp *Spawner) SpawnAt(h int) Obstacle {
	x := sp.SpawnX()
	y := float64(h)
	half := sp.cfg.PipeWidth / 2

	top := sp.pipes.Create(core.NewBox(x-half, y-sp.cfg.PipeLength, sp.cfg.PipeWidth, sp.cfg.PipeLength))
	bottom := sp.pipes.Create(core.NewBox(x-half, y+sp.cfg.Corridor, sp.cfg.PipeWidth, sp.cfg.PipeLength))

	// The sentinel's right edge sits at x+offset, spanning the corridor.
	gapRight := x + sp.cfg.SentinelOffset
	gap := sp.gaps.Create(core.NewBox(gapRight-sp.cfg.SentinelWidth, y, sp.cfg.SentinelWidth, sp.cfg.Corridor))
	gap.Visible = false

	for _, b := range []*physics.Body{top, bottom, gap} {
		b.Vel.X = -sp.speed
	}

	sp.spawned++
	return Obstacle{Top: top, Bottom: bottom, Gap: gap, Height: h}
}

// Clear destroys every obstacle piece and gap sentinel.
func (sp *Spawner) Clear() {
	sp.pipes.Clear()
	sp.gaps.Clear()
}

// Pause stops the spawn timer.
func (sp *Spawner) Pause() {
	sp.timer.Pause()
}

// Resume restarts the spawn timer.
func (sp *Spawner) Resume() {
	sp.timer.Resume()
}

// Paused reports whether the spawn timer is paused.
func (sp *Spawner) Paused() bool {
	return sp.timer.Paused()
}

// Freeze stops every obstacle piece and sentinel in place.
func (sp *Spawner) Freeze() {
	sp.pipes.SetVelocityX(0)
	sp.gaps.SetVelocityX(0)
}

// Pipes returns the live obstacle pieces.
func (sp *Spawner) Pipes() []*physics.Body {
	return sp.pipes.Bodies()
}

// Gaps returns the live gap sentinels.
func (sp *Spawner) Gaps() []*physics.Body {
	return sp.gaps.Bodies()
}

// Spawned returns how many obstacles have been created since start.
func (sp *Spawner) Spawned() int {
	return sp.spawned
}
