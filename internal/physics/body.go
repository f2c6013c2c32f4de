package physics

import "github.com/vovakirdan/bouncybet/internal/core"

// BodyID identifies a body within its world.
type BodyID uint64

// Body is a circle. Static bodies never move.
type Body struct {
	ID     BodyID
	Pos    core.Vec
	Vel    core.Vec
	Radius float64

	Category      Category
	CollisionMask Category // Categories this body bounces off
	ContactMask   Category // Categories that produce contact events

	Restitution   float64
	LinearDamping float64 // Fraction of velocity lost per second
	Dynamic       bool

	// UserData lets the owner map a body back to its own objects.
	UserData any

	world *World
}

// InWorld reports whether the body is still part of a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// collidesWith reports whether b bounces off other.
func (b *Body) collidesWith(other Category) bool {
	return b.CollisionMask.Has(other)
}

// notifies reports whether a touch between a and b should be reported.
func notifies(a, b *Body) bool {
	return a.ContactMask.Has(b.Category) || b.ContactMask.Has(a.Category)
}

// Contact is reported when two bodies start touching.
// A is always the dynamic body.
type Contact struct {
	A, B *Body
}

// Other returns the body in the contact that is not b.
func (c Contact) Other(b *Body) *Body {
	if c.A == b {
		return c.B
	}
	return c.A
}
