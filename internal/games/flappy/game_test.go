package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func activate() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionActivate)
	return in
}

func pause() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%22 == 0 {
			inputs[i].Set(core.ActionActivate)
		}
	}

	play := func() (core.GameState, int, float64) {
		g := New(config.DefaultFlappyConfig())
		g.Reset(testRuntime(12345))
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st, g.Stage().Spawner().Spawned(), g.Stage().Actor().Box().Y
	}

	st1, spawned1, y1 := play()
	st2, spawned2, y2 := play()

	if st1 != st2 {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if spawned1 != spawned2 {
		t.Errorf("spawn counts differ: %d vs %d", spawned1, spawned2)
	}
	if y1 != y2 {
		t.Errorf("actor positions differ: %v vs %v", y1, y2)
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(42))

	g.Step(activate())
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Phase != "running" {
		t.Fatalf("Phase = %q, want running", g.State().Phase)
	}

	g.Reset(testRuntime(42))
	st := g.State()
	if st.Phase != "idle" || st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("state after Reset = %+v", st)
	}
	if g.TickDuration() != tick {
		t.Errorf("TickDuration = %v, want %v", g.TickDuration(), tick)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))
	g.Step(activate())

	if st := g.Step(pause()).State; !st.Paused {
		t.Fatal("expected paused")
	}
	y := g.Stage().Actor().Box().Y
	for i := 0; i < 30; i++ {
		g.Step(activate())
	}
	if got := g.Stage().Actor().Box().Y; got != y {
		t.Errorf("actor moved while paused: %v -> %v", y, got)
	}
	if g.Stage().Actor().Impulses() != 1 {
		t.Errorf("impulses = %d, input must be ignored while paused", g.Stage().Actor().Impulses())
	}
	if g.State().Phase != "running" {
		t.Errorf("Phase = %q, pause must not change the run state", g.State().Phase)
	}

	if st := g.Step(pause()).State; st.Paused {
		t.Fatal("expected unpaused")
	}
	if got := g.Stage().Actor().Box().Y; got == y {
		t.Error("actor should move again after unpausing")
	}
}

func TestGameReportsRunEndedOnce(t *testing.T) {
	store := &recordingStore{}
	g := New(config.DefaultFlappyConfig(), WithHighScores(store))
	g.Reset(testRuntime(3))

	g.Step(activate())
	ended := 0
	for i := 0; i < 400; i++ {
		res := g.Step(core.NewInputFrame())
		if res.RunEnded {
			ended++
			if !res.State.GameOver {
				t.Error("RunEnded reported without GameOver")
			}
		}
	}
	if ended != 1 {
		t.Errorf("RunEnded reported %d times, want 1", ended)
	}
	if g.State().Phase != "idle" {
		t.Errorf("Phase = %q, want idle after the game-over transition", g.State().Phase)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	if g.ID() != "flappy" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title is empty")
	}
}

func TestRenderIdleShowsMessage(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GET READY") {
		t.Errorf("idle frame lacks the start message:\n%s", out)
	}
	if !strings.ContainsRune(out, GroundChar) && !strings.ContainsRune(out, GroundStud) {
		t.Error("ground not drawn")
	}
	if !strings.Contains(screen.Row(0), "0") {
		t.Errorf("score missing from top row: %q", screen.Row(0))
	}
}

func TestRenderGameOverShowsBanner(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), WithHighScores(&recordingStore{high: 9}))
	g.Reset(testRuntime(1))
	g.Step(activate())
	g.Stage().EndRun()
	for i := 0; i < 75; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("game-over frame lacks the banner:\n%s", out)
	}
	if !strings.Contains(out, "High Score: 9") {
		t.Errorf("game-over frame lacks the high score readout:\n%s", out)
	}
	if strings.Contains(out, "GET READY") {
		t.Error("start message should be hidden after a run started")
	}
}

func TestRenderDrawsObstacles(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))
	g.Step(activate())
	hover(g.Stage(), 400)
	o := g.Stage().Spawner().SpawnAt(200)
	o.Top.Box.X, o.Bottom.Box.X, o.Gap.Box.X = 500, 500, 300

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), PipeChar) {
		t.Error("obstacle pieces not drawn")
	}
	// Sentinels stay invisible.
	if r := screen.Get(24, 8); r != ' ' {
		t.Errorf("sentinel drawn as %q", r)
	}
}
