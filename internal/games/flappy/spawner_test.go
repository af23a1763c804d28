package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnGeometry(t *testing.T) {
	s := NewStage(config.DefaultFlappyConfig(), WithSeed(42))
	sp := s.Spawner()

	for i := 0; i < 1000; i++ {
		o := sp.Spawn()
		if o.Height < 100 || o.Height >= 400 {
			t.Fatalf("spawn %d: height %d outside [100, 400)", i, o.Height)
		}
		if got := o.Top.Box.Bottom(); got != float64(o.Height) {
			t.Fatalf("spawn %d: top piece ends at %v, want %d", i, got, o.Height)
		}
		if corridor := o.Bottom.Box.Y - o.Top.Box.Bottom(); corridor != 200 {
			t.Fatalf("spawn %d: corridor = %v, want 200", i, corridor)
		}
		if o.Gap.Box.Y != float64(o.Height) || o.Gap.Box.H != 200 {
			t.Fatalf("spawn %d: sentinel spans %v+%v, want %d+200", i, o.Gap.Box.Y, o.Gap.Box.H, o.Height)
		}
		if o.Gap.Box.Right() != sp.SpawnX()+50 {
			t.Fatalf("spawn %d: sentinel right edge = %v", i, o.Gap.Box.Right())
		}
		if o.Gap.Visible {
			t.Fatalf("spawn %d: sentinel must be invisible", i)
		}
		for _, b := range []struct {
			name    string
			vx      float64
			gravity bool
		}{
			{"top", o.Top.Vel.X, o.Top.Gravity},
			{"bottom", o.Bottom.Vel.X, o.Bottom.Gravity},
			{"gap", o.Gap.Vel.X, o.Gap.Gravity},
		} {
			if b.vx != -200 || b.gravity {
				t.Fatalf("spawn %d: %s velocity %v gravity %v", i, b.name, b.vx, b.gravity)
			}
		}
	}
}

func TestSpawnXIsOffField(t *testing.T) {
	s := NewStage(config.DefaultFlappyConfig())
	if got := s.Spawner().SpawnX(); got != 1050 {
		t.Errorf("SpawnX = %v, want 1050", got)
	}
	o := s.Spawner().SpawnAt(150)
	if o.Top.Box.X <= 1000-o.Top.Box.W {
		t.Errorf("obstacle spawned inside the field at x=%v", o.Top.Box.X)
	}
}

func TestSpawnIsDeterministic(t *testing.T) {
	heights := func(seed int64) []int {
		sp := NewStage(config.DefaultFlappyConfig(), WithSeed(seed)).Spawner()
		out := make([]int, 20)
		for i := range out {
			out[i] = sp.Spawn().Height
		}
		return out
	}

	a, b := heights(5), heights(5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("height %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSpawnerClear(t *testing.T) {
	s := NewStage(config.DefaultFlappyConfig())
	sp := s.Spawner()
	o := sp.SpawnAt(120)
	sp.SpawnAt(300)

	sp.Clear()

	if len(sp.Pipes()) != 0 || len(sp.Gaps()) != 0 {
		t.Fatalf("Clear left %d pipes and %d gaps", len(sp.Pipes()), len(sp.Gaps()))
	}
	if !o.Top.Removed() || !o.Gap.Removed() {
		t.Error("cleared bodies should report removed")
	}
}

func TestGroundWrapsForever(t *testing.T) {
	s, _ := newTestStage(t)
	width := s.Config().Field.Width

	for i := 0; i < 600; i++ {
		s.Update(tick)

		left, right := width, 0.0
		for _, seg := range s.Ground().Segments() {
			left = min(left, seg.Box.X)
			right = max(right, seg.Box.Right())
		}
		if left > 0 || right < width {
			t.Fatalf("tick %d: ground covers [%v, %v], want at least [0, %v]", i, left, right, width)
		}
	}
}

func TestActorFlapAnimation(t *testing.T) {
	s, _ := newTestStage(t)
	a := s.Actor()

	frames := map[int]bool{}
	for i := 0; i < 30; i++ {
		s.Update(tick)
		frames[a.Frame()] = true
	}
	if len(frames) != flapFrames {
		t.Errorf("saw frames %v, want all %d", frames, flapFrames)
	}

	s.Activate()
	s.EndRun()
	if a.Animating() {
		t.Error("animation should stop when the run ends")
	}
	f := a.Frame()
	s.Update(tick)
	s.Update(tick)
	if a.Frame() != f {
		t.Error("frame advanced while the animation was stopped")
	}
}
