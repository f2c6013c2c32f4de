package engine

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/field"
)

// ObjectView is a field object as the renderer sees it.
type ObjectView struct {
	Type   field.ObjectType
	Pos    core.Vec
	Radius float64
}

// Snapshot is a copy of everything needed to draw a frame.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Armed     bool
	Score     int
	Remaining float64

	Scene         core.Rect
	Launcher      core.Vec
	CaptureRadius float64

	Objects []ObjectView

	HasProjectile    bool
	ProjectilePos    core.Vec
	ProjectileRadius float64

	Aim Aim
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	objects := make([]ObjectView, len(e.objects))
	for i, p := range e.objects {
		objects[i] = ObjectView{
			Type:   p.obj.Type,
			Pos:    p.body.Pos,
			Radius: p.body.Radius,
		}
	}

	s := Snapshot{
		Tick:          e.tick,
		Phase:         e.phase,
		Armed:         e.armed,
		Score:         e.score,
		Remaining:     e.remaining,
		Scene:         e.scene,
		Launcher:      e.launcher,
		CaptureRadius: config.CaptureRadius,
		Objects:       objects,
		Aim:           e.Aim(),
	}
	if e.projectile != nil {
		s.HasProjectile = true
		s.ProjectilePos = e.projectile.Pos
		s.ProjectileRadius = e.projectile.Radius
	}
	return s
}

// Hash returns a hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF := func(v float64) {
		writeU(math.Float64bits(v))
	}

	writeU(s.Tick)
	writeU(uint64(s.Phase))
	writeU(uint64(int64(s.Score)))
	writeF(s.Remaining)
	for _, o := range s.Objects {
		writeU(uint64(o.Type))
		writeF(o.Pos.X())
		writeF(o.Pos.Y())
	}
	if s.HasProjectile {
		writeF(s.ProjectilePos.X())
		writeF(s.ProjectilePos.Y())
	}
	return h.Sum64()
}
