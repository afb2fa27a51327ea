package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in game configuration.
// Kept in sync with defaults/flappy.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.22,
			FlapImpulse:  -1.6,
			MaxFallSpeed: 2.4,
			MaxRiseSpeed: -2.2,
			ScrollSpeed:  0.6,
			FlapTilt:     -30,
			MaxDiveTilt:  90,
			TiltRate:     25,
		},
		Obstacles: Obstacles{
			PipeWidth:       5,
			GapSize:         10,
			MinSegment:      2,
			SpawnIntervalMs: 1800,
		},
		Player: Player{
			X:      12,
			Radius: 1.0,
		},
	}
}
