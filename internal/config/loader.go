package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadFlappy loads the stage configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	var cfg FlappyConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := parse(data); err == nil && parsed.Validate() == nil {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if parsed, err := parse(data); err == nil && parsed.Validate() == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	parsed, err := parse(defaultFlappyYAML)
	if err != nil || parsed.Validate() != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return parsed, nil
}

// parse decodes YAML on top of the hardcoded defaults, so a partial file only
// overrides the keys it names.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// Validate checks that the configuration describes a playable stage.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size", ErrInvalid)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return fmt.Errorf("%w: actor must have positive size", ErrInvalid)
	case c.Physics.Impulse >= 0:
		return fmt.Errorf("%w: impulse must point up (negative)", ErrInvalid)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalid)
	case c.Obstacles.TopHeightRange <= 0 || c.Obstacles.TopMinHeight < 0:
		return fmt.Errorf("%w: top height range must be positive", ErrInvalid)
	case c.Obstacles.Corridor <= 0:
		return fmt.Errorf("%w: corridor must be positive", ErrInvalid)
	case float64(c.Obstacles.TopMinHeight+c.Obstacles.TopHeightRange)+c.Obstacles.Corridor > c.Field.Height:
		return fmt.Errorf("%w: corridor does not fit inside the field", ErrInvalid)
	case len(c.Ground.Segments) == 0 || c.Ground.SegmentWidth <= 0:
		return fmt.Errorf("%w: ground needs at least one segment", ErrInvalid)
	case c.Transitions.GameOverFade < 0 || c.Transitions.GameOverHold < 0:
		return fmt.Errorf("%w: transition durations must not be negative", ErrInvalid)
	}
	return nil
}
