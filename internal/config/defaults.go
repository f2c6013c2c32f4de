package config

import (
	_ "embed"
)

//go:embed defaults/bouncybet.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning, matching a 393x852 portrait scene.
func DefaultTuning() Tuning {
	return Tuning{
		Scene: SceneConfig{
			Width:          393,
			Height:         852,
			LauncherOffset: 100,
			Inset: InsetConfig{
				Top:    150,
				Left:   30,
				Bottom: 250,
				Right:  30,
			},
		},
		Projectile: ProjectileConfig{
			Radius:        6,
			Restitution:   0.95,
			LinearDamping: 0.02,
		},
		Boundary: BoundaryConfig{
			Restitution: 0.8,
		},
		Objects: ObjectsConfig{
			ObstacleSize:        25,
			RewardSize:          30,
			HazardSize:          20,
			ObstacleRestitution: 1.0,
		},
		Simulation: SimulationConfig{
			MaxSubsteps: 64,
		},
	}
}

// DefaultYAML returns the embedded default tuning document.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
