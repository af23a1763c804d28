package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestStepAppliesGravityOnlyWhenEnabled(t *testing.T) {
	w := NewWorld(1600)
	falling := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))
	falling.Gravity = true
	floating := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))

	w.Step(0.5)

	if falling.Vel.Y != 800 {
		t.Errorf("falling Vel.Y = %v, expected 800", falling.Vel.Y)
	}
	if falling.Box.Y != 400 {
		t.Errorf("falling Y = %v, expected 400", falling.Box.Y)
	}
	if floating.Vel.Y != 0 || floating.Box.Y != 0 {
		t.Errorf("gravity-free body moved: vel=%v y=%v", floating.Vel.Y, floating.Box.Y)
	}
}

func TestGroupMembersMoveWithVelocity(t *testing.T) {
	w := NewWorld(0)
	g := w.NewGroup("pipes")
	a := g.Create(core.NewBox(100, 0, 10, 10))
	b := g.Create(core.NewBox(200, 0, 10, 10))
	g.SetVelocityX(-200)

	w.Step(0.25)

	if a.Box.X != 50 || b.Box.X != 150 {
		t.Errorf("members at %v/%v, expected 50/150", a.Box.X, b.Box.X)
	}

	g.SetVelocityX(0)
	w.Step(1)
	if a.Box.X != 50 {
		t.Errorf("frozen member moved to %v", a.Box.X)
	}
}

func TestColliderFiresOnOverlap(t *testing.T) {
	w := NewWorld(0)
	actor := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))
	g := w.NewGroup("ground")
	hit := g.Create(core.NewBox(5, 5, 10, 10))
	g.Create(core.NewBox(50, 50, 10, 10))

	var got []*Body
	w.AddCollider(actor, g, func(body, other *Body) {
		if body != actor {
			t.Error("callback should receive the collider's body first")
		}
		got = append(got, other)
	})

	w.Step(0)

	if len(got) != 1 || got[0] != hit {
		t.Fatalf("expected exactly one overlap with the near member, got %d", len(got))
	}
}

func TestInactiveColliderIsSkipped(t *testing.T) {
	w := NewWorld(0)
	actor := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))
	g := w.NewGroup("pipes")
	g.Create(core.NewBox(0, 0, 10, 10))

	calls := 0
	c := w.AddCollider(actor, g, func(_, _ *Body) { calls++ })
	c.Active = false
	w.Step(0)
	if calls != 0 {
		t.Fatalf("inactive collider fired %d times", calls)
	}

	c.Active = true
	w.Step(0)
	if calls != 1 {
		t.Fatalf("re-armed collider fired %d times, expected 1", calls)
	}
}

func TestColliderDeactivatedMidPassStops(t *testing.T) {
	w := NewWorld(0)
	actor := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))
	g := w.NewGroup("pipes")
	g.Create(core.NewBox(0, 0, 10, 10))
	g.Create(core.NewBox(1, 1, 10, 10))

	calls := 0
	var c *Collider
	c = w.AddCollider(actor, g, func(_, _ *Body) {
		calls++
		c.Active = false
	})
	w.Step(0)

	if calls != 1 {
		t.Errorf("expected 1 call before deactivation took effect, got %d", calls)
	}
}

func TestCallbackMayDestroyMember(t *testing.T) {
	w := NewWorld(0)
	actor := w.AddBody(NewBody(core.NewBox(0, 0, 10, 10)))
	g := w.NewGroup("gaps")
	g.Create(core.NewBox(0, 0, 10, 10))
	g.Create(core.NewBox(2, 2, 10, 10))

	calls := 0
	w.AddCollider(actor, g, func(_, other *Body) {
		calls++
		other.Destroy()
	})
	w.Step(0)

	if calls != 2 {
		t.Errorf("expected both members reported, got %d", calls)
	}
	if g.Len() != 0 {
		t.Errorf("expected group to be empty, has %d", g.Len())
	}

	w.Step(0)
	if calls != 2 {
		t.Errorf("destroyed members should not be reported again, calls=%d", calls)
	}
}

func TestGroupClearAndRemove(t *testing.T) {
	w := NewWorld(0)
	g := w.NewGroup("pipes")
	a := g.Create(core.NewBox(0, 0, 1, 1))
	b := g.Create(core.NewBox(0, 0, 1, 1))

	if !g.Remove(a) || !a.Removed() {
		t.Fatal("Remove should destroy a member")
	}
	if g.Remove(a) {
		t.Error("removing twice should report false")
	}

	g.Clear()
	if g.Len() != 0 || !b.Removed() {
		t.Error("Clear should destroy every member")
	}
	if g.Name() != "pipes" {
		t.Errorf("Name() = %q", g.Name())
	}
}

func TestStandaloneBodyDestroy(t *testing.T) {
	w := NewWorld(10)
	b := w.AddBody(NewBody(core.NewBox(0, 0, 1, 1)))
	b.Gravity = true
	b.Destroy()
	w.Step(1)
	if b.Box.Y != 0 || math.Abs(b.Vel.Y) > 0 {
		t.Error("destroyed body should not be integrated")
	}
}
