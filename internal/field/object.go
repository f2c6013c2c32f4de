// Package field defines the scoring objects scattered across the play area.
package field

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/bouncybet/internal/config"
)

// ObjectType classifies a field object.
type ObjectType int

const (
	Obstacle ObjectType = iota // Solid, bounces the projectile, scores every hit
	Reward                     // Pass-through, removed on first contact
	Hazard                     // Pass-through, removed on first contact, negative points
)

// String returns the visual tag for the type.
func (t ObjectType) String() string {
	switch t {
	case Obstacle:
		return "obstacle"
	case Reward:
		return "reward"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Points returns the score delta applied when the projectile touches an
// object of this type.
func (t ObjectType) Points() int {
	switch t {
	case Obstacle:
		return config.ObstaclePoints
	case Reward:
		return config.RewardPoints
	case Hazard:
		return config.HazardPoints
	default:
		return 0
	}
}

// Removable reports whether an object of this type disappears after its
// first contact.
func (t ObjectType) Removable() bool {
	return t == Reward || t == Hazard
}

// Object is a single scoring element on the field.
type Object struct {
	ID        uuid.UUID
	Type      ObjectType
	Points    int
	VisualTag string
}

// New creates an object of the given type with its configured points and tag.
func New(id uuid.UUID, t ObjectType) Object {
	return Object{
		ID:        id,
		Type:      t,
		Points:    t.Points(),
		VisualTag: t.String(),
	}
}

// RollRange is the exclusive upper bound of the type roll.
const RollRange = 100

// TypeForRoll maps a roll in [0, RollRange) to an object type:
// 50% obstacle, 30% reward, 20% hazard.
func TypeForRoll(r int) ObjectType {
	switch {
	case r < 50:
		return Obstacle
	case r < 80:
		return Reward
	default:
		return Hazard
	}
}

// FromRoll builds an object for an already drawn roll.
func FromRoll(id uuid.UUID, r int) Object {
	return New(id, TypeForRoll(r))
}

// CreateRandom draws a type from rng and returns a fresh object.
// The ID is derived from the same source so a seeded rng reproduces the field.
func CreateRandom(rng *rand.Rand) Object {
	r := rng.Intn(RollRange)
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return FromRoll(id, r)
}
