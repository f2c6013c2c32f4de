package physics

import (
	"math"

	"github.com/vovakirdan/bouncybet/internal/core"
)

// contactSlop keeps a pair touching until it separates by more than this,
// so a resting contact does not begin again every substep.
const contactSlop = 0.01

type pairKey struct {
	a, b BodyID
}

func makePair(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// World holds bodies inside a rectangular edge loop.
type World struct {
	bounds              core.Rect
	boundaryRestitution float64
	maxSubsteps         int

	bodies   []*Body
	nextID   BodyID
	touching map[pairKey]bool
}

// NewWorld creates an empty world bounded by bounds.
func NewWorld(bounds core.Rect, boundaryRestitution float64, maxSubsteps int) *World {
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}
	return &World{
		bounds:              bounds,
		boundaryRestitution: boundaryRestitution,
		maxSubsteps:         maxSubsteps,
		nextID:              1,
		touching:            make(map[pairKey]bool),
	}
}

// Bounds returns the edge loop rectangle.
func (w *World) Bounds() core.Rect {
	return w.bounds
}

// Add inserts b into the world and assigns its ID.
func (w *World) Add(b *Body) *Body {
	b.ID = w.nextID
	w.nextID++
	b.world = w
	w.bodies = append(w.bodies, b)
	return b
}

// Remove takes b out of the world. Removing a body twice is a no-op.
func (w *World) Remove(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for k := range w.touching {
		if k.a == b.ID || k.b == b.ID {
			delete(w.touching, k)
		}
	}
	b.world = nil
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.bodies {
		b.world = nil
	}
	w.bodies = nil
	clear(w.touching)
}

// Bodies returns the live bodies. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances the world by dt seconds and returns the contacts that began
// during the step, in the order they happened.
func (w *World) Step(dt float64) []Contact {
	if dt <= 0 {
		return nil
	}

	var contacts []Contact
	for _, b := range w.bodies {
		if !b.Dynamic {
			continue
		}
		n := w.substeps(b, dt)
		h := dt / float64(n)
		for range n {
			if b.world == nil {
				break
			}
			w.integrate(b, h)
			w.collideBoundary(b)
			contacts = w.collideStatics(b, contacts)
		}
	}
	return contacts
}

// substeps picks enough substeps that b moves at most one radius per substep.
func (w *World) substeps(b *Body, dt float64) int {
	if b.Radius <= 0 {
		return 1
	}
	n := int(math.Ceil(b.Vel.Len() * dt / b.Radius))
	return core.Clamp(n, 1, w.maxSubsteps)
}

func (w *World) integrate(b *Body, h float64) {
	if b.LinearDamping > 0 {
		b.Vel = b.Vel.Mul(math.Max(0, 1-b.LinearDamping*h))
	}
	b.Pos = b.Pos.Add(b.Vel.Mul(h))
}

func (w *World) collideBoundary(b *Body) {
	if !b.collidesWith(CategoryWorldBoundary) {
		return
	}
	e := b.Restitution * w.boundaryRestitution
	r := b.Radius
	x, y := b.Pos.X(), b.Pos.Y()
	vx, vy := b.Vel.X(), b.Vel.Y()

	if x-r < w.bounds.X {
		x = w.bounds.X + r
		if vx < 0 {
			vx = -vx * e
		}
	} else if x+r > w.bounds.Right() {
		x = w.bounds.Right() - r
		if vx > 0 {
			vx = -vx * e
		}
	}

	if y-r < w.bounds.Y {
		y = w.bounds.Y + r
		if vy < 0 {
			vy = -vy * e
		}
	} else if y+r > w.bounds.Bottom() {
		y = w.bounds.Bottom() - r
		if vy > 0 {
			vy = -vy * e
		}
	}

	b.Pos = core.V(x, y)
	b.Vel = core.V(vx, vy)
}

// collideStatics resolves b against every static body and appends contacts
// for pairs that just started touching.
func (w *World) collideStatics(b *Body, contacts []Contact) []Contact {
	for _, s := range w.bodies {
		if s == b || s.Dynamic {
			continue
		}
		key := makePair(b.ID, s.ID)
		d := b.Pos.Sub(s.Pos)
		dist := d.Len()
		rsum := b.Radius + s.Radius

		if dist >= rsum+contactSlop {
			delete(w.touching, key)
			continue
		}
		if dist >= rsum {
			continue
		}

		if notifies(b, s) && !w.touching[key] {
			w.touching[key] = true
			contacts = append(contacts, Contact{A: b, B: s})
		}

		if b.collidesWith(s.Category) {
			resolve(b, s, d, dist, rsum)
		}
	}
	return contacts
}

// resolve pushes b out of static s and reflects its velocity along the normal.
func resolve(b, s *Body, d core.Vec, dist, rsum float64) {
	var n core.Vec
	if dist > 0 {
		n = d.Mul(1 / dist)
	} else if l := b.Vel.Len(); l > 0 {
		n = b.Vel.Mul(-1 / l)
	} else {
		n = core.V(0, -1)
	}

	b.Pos = s.Pos.Add(n.Mul(rsum))

	vn := b.Vel.Dot(n)
	if vn < 0 {
		e := b.Restitution * s.Restitution
		b.Vel = b.Vel.Sub(n.Mul((1 + e) * vn))
	}
}
