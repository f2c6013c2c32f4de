// Package physics is a small 2D rigid-body world for circles inside an
// edge-loop boundary. There is no gravity. Dynamic bodies bounce off static
// ones and off the boundary, and the world reports when a pair starts
// touching.
package physics

import "strings"

// Category is a bit flag identifying what kind of thing a body is.
// Masks are unions of categories.
type Category uint32

const (
	CategoryNone          Category = 0
	CategoryProjectile    Category = 1 << 0
	CategoryObstacle      Category = 1 << 1
	CategoryReward        Category = 1 << 2
	CategoryHazard        Category = 1 << 3
	CategoryWorldBoundary Category = 1 << 4
)

// Has reports whether any bit of other is set in c.
func (c Category) Has(other Category) bool {
	return c&other != 0
}

var categoryNames = []struct {
	c    Category
	name string
}{
	{CategoryProjectile, "projectile"},
	{CategoryObstacle, "obstacle"},
	{CategoryReward, "reward"},
	{CategoryHazard, "hazard"},
	{CategoryWorldBoundary, "boundary"},
}

// String lists the set flags joined by '|'.
func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	var parts []string
	for _, n := range categoryNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
