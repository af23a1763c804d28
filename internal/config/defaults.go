package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:     1600,
			Impulse:     -600,
			ScrollSpeed: 200,
		},
		Actor: ActorConfig{
			X:       150,
			Width:   72,
			Height:  48,
			FlapFPS: 10,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval:  1250 * time.Millisecond,
			TopMinHeight:   100,
			TopHeightRange: 300,
			Corridor:       200,
			SentinelOffset: 50,
			SentinelWidth:  32,
			SpawnMargin:    50,
			PipeWidth:      104,
			PipeLength:     640,
		},
		Ground: GroundConfig{
			Y:            700,
			Height:       100,
			SegmentWidth: 504,
			Segments:     []float64{0, 503, 1005},
		},
		Transitions: TransitionConfig{
			MessageFadeOut: 500 * time.Millisecond,
			StageFadeIn:    500 * time.Millisecond,
			GameOverFade:   1000 * time.Millisecond,
			GameOverHold:   1000 * time.Millisecond,
		},
	}
}
