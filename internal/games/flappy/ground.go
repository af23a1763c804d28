package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Ground is a set of tiled segments that wrap around to scroll forever.
type Ground struct {
	group *physics.Group
	speed float64
}

func newGround(world *physics.World, cfg config.FlappyConfig) *Ground {
	g := &Ground{
		group: world.NewGroup("ground"),
		speed: cfg.Physics.ScrollSpeed,
	}
	for _, x := range cfg.Ground.Segments {
		g.group.Create(core.NewBox(x, cfg.Ground.Y, cfg.Ground.SegmentWidth, cfg.Ground.Height))
	}
	return g
}

// Scroll sets every segment moving left at the scroll speed.
func (g *Ground) Scroll() {
	g.group.SetVelocityX(-g.speed)
}

// Freeze stops every segment.
func (g *Ground) Freeze() {
	g.group.SetVelocityX(0)
}

// Segments returns the ground segments.
func (g *Ground) Segments() []*physics.Body {
	return g.group.Bodies()
}

// wrap moves any segment that has fully left the field to just after the
// right-most segment.
func (g *Ground) wrap() {
	segs := g.group.Bodies()
	for _, s := range segs {
		if s.Box.Right() >= 0 {
			continue
		}
		right := s.Box.X
		for _, o := range segs {
			if o != s && o.Box.Right() > right {
				right = o.Box.Right()
			}
		}
		s.Box.X = right
	}
}
