package physics

import "github.com/vovakirdan/tui-flappy/internal/core"

// Group is an ordered collection of bodies that can be moved or cleared together.
type Group struct {
	name    string
	members []*Body
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// Create adds a new visible, gravity-free body to the group.
func (g *Group) Create(box core.Box) *Body {
	b := NewBody(box)
	b.group = g
	g.members = append(g.members, b)
	return b
}

// Bodies returns a snapshot of the live members.
func (g *Group) Bodies() []*Body {
	out := make([]*Body, len(g.members))
	copy(out, g.members)
	return out
}

// Len returns the number of live members.
func (g *Group) Len() int {
	return len(g.members)
}

// Remove destroys a single member. Returns false if b is not in the group.
func (g *Group) Remove(b *Body) bool {
	for i, m := range g.members {
		if m == b {
			g.members = append(g.members[:i], g.members[i+1:]...)
			b.removed = true
			b.group = nil
			return true
		}
	}
	return false
}

// Clear destroys every member.
func (g *Group) Clear() {
	for _, b := range g.members {
		b.removed = true
		b.group = nil
	}
	g.members = g.members[:0]
}

// SetVelocityX sets the horizontal velocity of every member.
func (g *Group) SetVelocityX(vx float64) {
	for _, b := range g.members {
		b.Vel.X = vx
	}
}
