// Package config provides the rule constants and the YAML-based physics and
// layout tuning for Bouncy Bet.
package config

import "fmt"

// Tuning contains every adjustable physics and layout parameter.
// Rule values that affect coins and scoring live in rules.go and are not
// part of the YAML document.
type Tuning struct {
	Scene      SceneConfig      `yaml:"scene"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// SceneConfig defines the play area in scene units (y grows downward).
type SceneConfig struct {
	Width          float64     `yaml:"width"`
	Height         float64     `yaml:"height"`
	LauncherOffset float64     `yaml:"launcher_offset"` // Distance of the launcher above the bottom edge
	Inset          InsetConfig `yaml:"inset"`
}

// InsetConfig shrinks the scene to the rectangle objects may be placed in.
type InsetConfig struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// ProjectileConfig defines the launched body.
type ProjectileConfig struct {
	Radius        float64 `yaml:"radius"`
	Restitution   float64 `yaml:"restitution"`
	LinearDamping float64 `yaml:"linear_damping"` // Fraction of velocity lost per second
}

// BoundaryConfig defines the edge loop around the scene.
type BoundaryConfig struct {
	Restitution float64 `yaml:"restitution"`
}

// ObjectsConfig defines field object sizes (diameters) and bounciness.
type ObjectsConfig struct {
	ObstacleSize        float64 `yaml:"obstacle_size"`
	RewardSize          float64 `yaml:"reward_size"`
	HazardSize          float64 `yaml:"hazard_size"`
	ObstacleRestitution float64 `yaml:"obstacle_restitution"`
}

// SimulationConfig controls integration accuracy.
type SimulationConfig struct {
	MaxSubsteps int `yaml:"max_substeps"` // Upper bound on substeps per tick for fast projectiles
}

// Validate reports the first nonsensical value in the tuning.
func (t Tuning) Validate() error {
	if t.Scene.Width <= 0 || t.Scene.Height <= 0 {
		return fmt.Errorf("config: scene size must be positive, got %vx%v", t.Scene.Width, t.Scene.Height)
	}
	if t.Scene.Inset.Left+t.Scene.Inset.Right >= t.Scene.Width ||
		t.Scene.Inset.Top+t.Scene.Inset.Bottom >= t.Scene.Height {
		return fmt.Errorf("config: scene insets leave no playable area")
	}
	if t.Projectile.Radius <= 0 {
		return fmt.Errorf("config: projectile radius must be positive, got %v", t.Projectile.Radius)
	}
	if t.Objects.ObstacleSize <= 0 || t.Objects.RewardSize <= 0 || t.Objects.HazardSize <= 0 {
		return fmt.Errorf("config: object sizes must be positive")
	}
	return nil
}
