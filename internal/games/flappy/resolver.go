package flappy

import "github.com/vovakirdan/tui-flappy/internal/physics"

// Resolver wires the actor's three collision pairings to stage reactions.
// Colliders are switched off by flag, never removed.
type Resolver struct {
	ground   *physics.Collider
	obstacle *physics.Collider
	gap      *physics.Collider

	running func() bool
	crash   func()
	scored  func()
}

func newResolver(world *physics.World, actor *Actor, ground *Ground, sp *Spawner, s *Stage) *Resolver {
	r := &Resolver{
		running: func() bool { return s.state.Run == Running },
		crash:   s.EndRun,
		scored:  s.scoreGap,
	}
	r.ground = world.AddCollider(actor.body, ground.group, r.onCrash)
	r.obstacle = world.AddCollider(actor.body, sp.pipes, r.onCrash)
	r.gap = world.AddCollider(actor.body, sp.gaps, r.onGap)
	return r
}

func (r *Resolver) onCrash(_, _ *physics.Body) {
	if !r.running() {
		return
	}
	r.crash()
}

func (r *Resolver) onGap(_, gap *physics.Body) {
	if !r.running() {
		return
	}
	gap.Destroy()
	r.scored()
}

// Activate re-arms the ground and obstacle reactions.
func (r *Resolver) Activate() {
	r.ground.Active = true
	r.obstacle.Active = true
}

// Deactivate disarms the ground and obstacle reactions.
func (r *Resolver) Deactivate() {
	r.ground.Active = false
	r.obstacle.Active = false
}

// Active reports whether the ground and obstacle reactions are armed.
func (r *Resolver) Active() bool {
	return r.ground.Active && r.obstacle.Active
}
