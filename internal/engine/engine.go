// Package engine runs a single round of the game: it scatters scoring objects
// across the field, turns a drag gesture into a launch, scores contacts while
// the projectile bounces around, and ends the round when the timer runs out.
//
// The Engine itself is not safe for concurrent use. Loop owns an Engine on a
// single goroutine and exchanges commands and notifications with the UI.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/field"
	"github.com/vovakirdan/bouncybet/internal/physics"
)

// Phase is the round state as seen from the engine.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for a round or for the next gesture
	PhaseAiming                // A drag gesture is in progress
	PhaseInFlight              // Projectile launched, timer running
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAiming:
		return "Aiming"
	case PhaseInFlight:
		return "InFlight"
	default:
		return "Unknown"
	}
}

// Observer receives score and round notifications.
type Observer interface {
	ScoreDidChange(score int)
	RoundDidEnd(finalScore int)
}

type nopObserver struct{}

func (nopObserver) ScoreDidChange(int) {}
func (nopObserver) RoundDidEnd(int)    {}

// placed ties a field object to its physics body.
type placed struct {
	obj  field.Object
	body *physics.Body
}

// Engine is the round simulation.
type Engine struct {
	tuning   config.Tuning
	rng      *rand.Rand
	observer Observer

	world    *physics.World
	scene    core.Rect
	launcher core.Vec

	objects    []*placed
	projectile *physics.Body

	phase       Phase
	armed       bool
	timerActive bool
	remaining   float64
	score       int
	aimPoint    core.Vec
	tick        uint64
}

// New creates an engine with an initial field on display. Aiming stays
// disabled until PrepareNewRound is called. A nil observer is allowed.
func New(tuning config.Tuning, rng *rand.Rand, observer Observer) *Engine {
	if observer == nil {
		observer = nopObserver{}
	}
	scene := core.NewRect(0, 0, tuning.Scene.Width, tuning.Scene.Height)
	e := &Engine{
		tuning:   tuning,
		rng:      rng,
		observer: observer,
		scene:    scene,
		launcher: core.V(scene.W/2, scene.H-tuning.Scene.LauncherOffset),
		world: physics.NewWorld(
			scene,
			tuning.Boundary.Restitution,
			tuning.Simulation.MaxSubsteps,
		),
	}
	e.generateField()
	return e
}

// SetObserver replaces the notification target. A nil observer silences
// notifications.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	e.observer = o
}

// PrepareNewRound clears the field, scatters a fresh set of objects, resets
// the score and enables aiming.
func (e *Engine) PrepareNewRound() {
	e.stopRound()
	e.generateField()
	e.setScore(0)
	e.armed = true
}

// stopRound drops the projectile, the timer and every field body.
func (e *Engine) stopRound() {
	e.world.Clear()
	e.objects = nil
	e.projectile = nil
	e.timerActive = false
	e.remaining = 0
	e.phase = PhaseIdle
}

// Step advances the simulation by dt seconds.
func (e *Engine) Step(dt float64) {
	e.tick++
	if !e.timerActive || dt <= 0 {
		return
	}

	for _, c := range e.world.Step(dt) {
		e.handleContact(c)
	}

	e.remaining -= dt
	if e.remaining <= 0 {
		e.endRound()
	}
}

func (e *Engine) handleContact(c physics.Contact) {
	if e.projectile == nil || c.A != e.projectile {
		return
	}
	p, ok := c.B.UserData.(*placed)
	if !ok || !c.B.InWorld() {
		return
	}

	e.setScore(e.score + p.obj.Points)

	if p.obj.Type.Removable() {
		e.world.Remove(p.body)
		e.removeObject(p)
	}
}

func (e *Engine) removeObject(p *placed) {
	for i, o := range e.objects {
		if o == p {
			e.objects = append(e.objects[:i], e.objects[i+1:]...)
			return
		}
	}
}

func (e *Engine) endRound() {
	e.world.Remove(e.projectile)
	e.projectile = nil
	e.timerActive = false
	e.remaining = 0
	e.phase = PhaseIdle
	e.armed = false
	e.observer.RoundDidEnd(e.score)
}

func (e *Engine) setScore(s int) {
	e.score = s
	e.observer.ScoreDidChange(s)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the live round score.
func (e *Engine) Score() int {
	return e.score
}

// Remaining returns the seconds left on the round timer, 0 when no timer runs.
func (e *Engine) Remaining() float64 {
	return e.remaining
}

// Armed reports whether a new aim gesture may start.
func (e *Engine) Armed() bool {
	return e.armed
}

// Launcher returns the launch position in scene coordinates.
func (e *Engine) Launcher() core.Vec {
	return e.launcher
}

// Scene returns the scene rectangle.
func (e *Engine) Scene() core.Rect {
	return e.scene
}

// ObjectCount returns the number of objects still on the field.
func (e *Engine) ObjectCount() int {
	return len(e.objects)
}

// HasProjectile reports whether a projectile is in flight.
func (e *Engine) HasProjectile() bool {
	return e.projectile != nil
}
