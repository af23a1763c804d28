// Package physics is a minimal arcade-style rigid-body world: bodies move by
// constant velocity plus optional gravity, and colliders report overlaps
// between a body and a group through callbacks. There is no separation or
// bounce response; reactions are entirely up to the callback.
package physics

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body is a moving axis-aligned box.
type Body struct {
	Box     core.Box
	Vel     core.Vec // Units per second
	Gravity bool     // Whether world gravity applies to this body
	Visible bool

	group   *Group
	removed bool
}

// NewBody creates a visible body without gravity.
func NewBody(box core.Box) *Body {
	return &Body{Box: box, Visible: true}
}

// Removed reports whether the body has been destroyed.
func (b *Body) Removed() bool {
	return b.removed
}

// Destroy removes the body from its group and from collision checks.
func (b *Body) Destroy() {
	if b.group != nil {
		b.group.Remove(b)
		return
	}
	b.removed = true
}

// integrate advances the body by dt seconds.
func (b *Body) integrate(gravity, dt float64) {
	if b.Gravity {
		b.Vel.Y += gravity * dt
	}
	b.Box.X += b.Vel.X * dt
	b.Box.Y += b.Vel.Y * dt
}

// CollideFunc is invoked for every overlapping (body, member) pair of an active collider.
type CollideFunc func(body, other *Body)

// Collider pairs a single body with a group.
// An inactive collider is skipped, not removed, so it can be re-armed cheaply.
type Collider struct {
	Active bool

	body  *Body
	group *Group
	fn    CollideFunc
}

// World owns bodies, groups and colliders and advances them in lockstep.
type World struct {
	Gravity float64 // Downward acceleration, units per second squared

	bodies    []*Body
	groups    []*Group
	colliders []*Collider
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity float64) *World {
	return &World{Gravity: gravity}
}

// AddBody registers a standalone body (one that belongs to no group).
func (w *World) AddBody(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	return b
}

// NewGroup creates a group whose members are integrated by this world.
func (w *World) NewGroup(name string) *Group {
	g := &Group{name: name}
	w.groups = append(w.groups, g)
	return g
}

// AddCollider registers an active collider between body and every member of group.
func (w *World) AddCollider(body *Body, group *Group, fn CollideFunc) *Collider {
	c := &Collider{Active: true, body: body, group: group, fn: fn}
	w.colliders = append(w.colliders, c)
	return c
}

// Step integrates all bodies by dt seconds, then evaluates colliders in
// registration order. Callbacks run synchronously on the caller's goroutine.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if !b.removed {
			b.integrate(w.Gravity, dt)
		}
	}
	for _, g := range w.groups {
		for _, b := range g.members {
			b.integrate(w.Gravity, dt)
		}
	}

	for _, c := range w.colliders {
		c.check()
	}
}

// check reports overlaps to the callback. Members are snapshotted so the
// callback may destroy bodies; a collider deactivated mid-pass stops reporting.
func (c *Collider) check() {
	if !c.Active || c.body.removed {
		return
	}
	for _, other := range c.group.Bodies() {
		if !c.Active {
			return
		}
		if other.removed {
			continue
		}
		if c.body.Box.Intersects(other.Box) {
			c.fn(c.body, other)
		}
	}
}
