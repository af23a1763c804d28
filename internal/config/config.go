// Package config provides YAML-based game configuration loading for the
// flappy stage: field bounds, physics constants, obstacle generation and
// transition timings.
package config

import "time"

// FlappyConfig contains all configuration for the flappy stage.
type FlappyConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Actor       ActorConfig      `yaml:"actor"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Ground      GroundConfig     `yaml:"ground"`
	Transitions TransitionConfig `yaml:"transitions"`
}

// FieldConfig defines the play-field bounds in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines world physics. Velocities are units per second,
// negative Y is up.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Impulse     float64 `yaml:"impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// ActorConfig defines the player-controlled body.
type ActorConfig struct {
	X       float64 `yaml:"x"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	FlapFPS float64 `yaml:"flap_fps"`
}

// ObstacleConfig defines obstacle-pair generation.
type ObstacleConfig struct {
	SpawnInterval  time.Duration `yaml:"spawn_interval"`
	TopMinHeight   int           `yaml:"top_min_height"`
	TopHeightRange int           `yaml:"top_height_range"`
	Corridor       float64       `yaml:"corridor"`
	SentinelOffset float64       `yaml:"sentinel_offset"`
	SentinelWidth  float64       `yaml:"sentinel_width"`
	SpawnMargin    float64       `yaml:"spawn_margin"`
	PipeWidth      float64       `yaml:"pipe_width"`
	PipeLength     float64       `yaml:"pipe_length"`
}

// GroundConfig defines the tiled scrolling ground.
type GroundConfig struct {
	Y            float64   `yaml:"y"`
	Height       float64   `yaml:"height"`
	SegmentWidth float64   `yaml:"segment_width"`
	Segments     []float64 `yaml:"segments"`
}

// TransitionConfig defines fade timings.
type TransitionConfig struct {
	MessageFadeOut time.Duration `yaml:"message_fade_out"`
	StageFadeIn    time.Duration `yaml:"stage_fade_in"`
	GameOverFade   time.Duration `yaml:"game_over_fade"`
	GameOverHold   time.Duration `yaml:"game_over_hold"`
}
