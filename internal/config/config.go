// Package config provides YAML-based configuration loading for the game.
// All values are fixed per session; there is no difficulty progression.
package config

// Config contains all tunable constants for the game.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
}

// Physics defines the simulation parameters. Speeds and accelerations are
// expressed in screen cells per reference frame (1/60 s); the world
// normalizes them by the actual clamped delta each step.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Cells per frame², downward
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set by a flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Vertical velocity clamp, lower bound of the fall
	MaxRiseSpeed float64 `yaml:"max_rise_speed"` // Vertical velocity clamp, negative = up
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // Obstacle speed, cells per frame
	FlapTilt     float64 `yaml:"flap_tilt"`      // Tilt in degrees set on flap (negative = nose up)
	MaxDiveTilt  float64 `yaml:"max_dive_tilt"`  // Tilt clamp while falling, degrees
	TiltRate     float64 `yaml:"tilt_rate"`      // Degrees of tilt per cell/frame of velocity
}

// Obstacles defines pipe-pair parameters.
type Obstacles struct {
	PipeWidth       float64 `yaml:"pipe_width"`        // Width of a pipe segment, cells
	GapSize         float64 `yaml:"gap_size"`          // Fixed vertical gap between segments, cells
	MinSegment      float64 `yaml:"min_segment"`       // Minimum height of either segment, cells
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"` // Time between pair spawns
}

// Player defines avatar parameters.
type Player struct {
	X      float64 `yaml:"x"`      // Fixed horizontal center of the avatar, cells
	Radius float64 `yaml:"radius"` // Collision circle radius, cells
}
