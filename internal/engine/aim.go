package engine

import (
	"math"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/physics"
)

// Aim describes the gesture in progress.
type Aim struct {
	Active     bool
	Point      core.Vec // Current touch point
	Pull       core.Vec // Launcher minus touch point
	Power      float64  // min(|Pull| / PowerDivisor, MaxPower)
	Percent    int      // Power as a percentage of MaxPower, rounded
	PreviewEnd core.Vec // End of the aim preview line
}

// PowerFor returns the launch power for a pull vector.
func PowerFor(pull core.Vec) float64 {
	return math.Min(pull.Len()/config.PowerDivisor, config.MaxPower)
}

// BeginAim starts a gesture at p. It is ignored unless aiming is enabled,
// no round timer runs, and p lies within the capture radius of the launcher.
func (e *Engine) BeginAim(p core.Vec) {
	if !e.armed || e.timerActive || e.phase != PhaseIdle {
		return
	}
	if p.Sub(e.launcher).Len() >= config.CaptureRadius {
		return
	}
	e.phase = PhaseAiming
	e.aimPoint = p
}

// MoveAim updates the gesture point.
func (e *Engine) MoveAim(p core.Vec) {
	if e.phase != PhaseAiming {
		return
	}
	e.aimPoint = p
}

// EndAim finishes the gesture at p and launches when the pull is strong
// enough. A weak pull cancels back to Idle with aiming still enabled.
func (e *Engine) EndAim(p core.Vec) {
	if e.phase != PhaseAiming {
		return
	}
	e.aimPoint = p
	e.phase = PhaseIdle

	pull := e.launcher.Sub(p)
	power := PowerFor(pull)
	if power <= config.MinLaunchPower {
		return
	}
	e.launch(pull.Mul(power))
}

// CancelAim abandons the gesture without launching.
func (e *Engine) CancelAim() {
	if e.phase == PhaseAiming {
		e.phase = PhaseIdle
	}
}

// Aim returns the gesture state. Active is false outside PhaseAiming.
func (e *Engine) Aim() Aim {
	if e.phase != PhaseAiming {
		return Aim{}
	}
	pull := e.launcher.Sub(e.aimPoint)
	power := PowerFor(pull)
	return Aim{
		Active:     true,
		Point:      e.aimPoint,
		Pull:       pull,
		Power:      power,
		Percent:    int(math.Round(power * 100 / config.MaxPower)),
		PreviewEnd: e.launcher.Add(pull.Mul(config.AimPreviewScale)),
	}
}

func (e *Engine) launch(velocity core.Vec) {
	pc := e.tuning.Projectile
	e.projectile = e.world.Add(&physics.Body{
		Pos:           e.launcher,
		Vel:           velocity,
		Radius:        pc.Radius,
		Category:      physics.CategoryProjectile,
		CollisionMask: physics.CategoryObstacle | physics.CategoryWorldBoundary,
		ContactMask:   physics.CategoryObstacle | physics.CategoryReward | physics.CategoryHazard,
		Restitution:   pc.Restitution,
		LinearDamping: pc.LinearDamping,
		Dynamic:       true,
	})
	e.phase = PhaseInFlight
	e.armed = false
	e.timerActive = true
	e.remaining = config.RoundDuration
}
