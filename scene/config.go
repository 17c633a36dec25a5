// Package scene loads curve/follower documents from TOML or YAML and builds
// the runtime objects they describe
package scene

// Document is the top-level scene file structure
type Document struct {
	Curves    []CurveConfig    `toml:"curves" yaml:"curves"`
	Followers []FollowerConfig `toml:"followers" yaml:"followers"`
	Triggers  []TriggerConfig  `toml:"triggers,omitempty" yaml:"triggers,omitempty"`
	Clones    []CloneConfig    `toml:"clones,omitempty" yaml:"clones,omitempty"`
}

// CurveConfig describes one named curve
type CurveConfig struct {
	Name   string      `toml:"name" yaml:"name"`
	Type   string      `toml:"type,omitempty" yaml:"type,omitempty"` // Family name, empty = CatmullRom
	Closed bool        `toml:"closed,omitempty" yaml:"closed,omitempty"`
	Points [][]float64 `toml:"points" yaml:"points"` // [x, y, z] triples
}

// FollowerConfig describes an entity moving along a curve
// Durations are milliseconds
type FollowerConfig struct {
	Name             string   `toml:"name" yaml:"name"`
	Curve            string   `toml:"curve" yaml:"curve"`
	Dur              *float64 `toml:"dur,omitempty" yaml:"dur,omitempty"` // nil = parameter.DefaultDuration
	Delay            float64  `toml:"delay,omitempty" yaml:"delay,omitempty"`
	Loop             bool     `toml:"loop,omitempty" yaml:"loop,omitempty"`
	Reversible       bool     `toml:"reversible,omitempty" yaml:"reversible,omitempty"`
	Rotate           bool     `toml:"rotate,omitempty" yaml:"rotate,omitempty"`
	ConstantSpeed    bool     `toml:"constant_speed,omitempty" yaml:"constant_speed,omitempty"`
	Triggers         []string `toml:"triggers,omitempty" yaml:"triggers,omitempty"` // Trigger labels, checked in order
	TriggerRadius    float64  `toml:"trigger_radius,omitempty" yaml:"trigger_radius,omitempty"`
	PointsAsTriggers bool     `toml:"points_as_triggers,omitempty" yaml:"points_as_triggers,omitempty"`
}

// TriggerConfig is a labeled proximity point
type TriggerConfig struct {
	Label    string    `toml:"label" yaml:"label"`
	Position []float64 `toml:"position" yaml:"position"`
	Radius   float64   `toml:"radius,omitempty" yaml:"radius,omitempty"` // 0 = follower trigger_radius
}

// CloneConfig places markers along a curve at fixed arc-length spacing
type CloneConfig struct {
	Curve   string  `toml:"curve" yaml:"curve"`
	Spacing float64 `toml:"spacing" yaml:"spacing"`
}
