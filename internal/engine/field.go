package engine

import (
	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/core"
	"github.com/vovakirdan/bouncybet/internal/field"
	"github.com/vovakirdan/bouncybet/internal/physics"
)

// playArea is the region field objects are centered in.
func (e *Engine) playArea() core.Rect {
	in := e.tuning.Scene.Inset
	return e.scene.Inset(in.Top, in.Left, in.Bottom, in.Right)
}

// sizeFor returns the diameter of an object of type t.
func (e *Engine) sizeFor(t field.ObjectType) float64 {
	switch t {
	case field.Reward:
		return e.tuning.Objects.RewardSize
	case field.Hazard:
		return e.tuning.Objects.HazardSize
	default:
		return e.tuning.Objects.ObstacleSize
	}
}

func categoryFor(t field.ObjectType) physics.Category {
	switch t {
	case field.Reward:
		return physics.CategoryReward
	case field.Hazard:
		return physics.CategoryHazard
	default:
		return physics.CategoryObstacle
	}
}

// generateField places exactly FieldObjectCount objects. Each object gets up
// to PlacementAttempts random positions; the first one whose bounding box
// clears every placed object wins, otherwise the last attempt is kept.
func (e *Engine) generateField() {
	area := e.playArea()
	boxes := make([]core.Rect, 0, config.FieldObjectCount)

	for range config.FieldObjectCount {
		obj := field.CreateRandom(e.rng)
		size := e.sizeFor(obj.Type)

		var pos core.Vec
		var box core.Rect
		for range config.PlacementAttempts {
			pos = core.V(
				area.X+e.rng.Float64()*area.W,
				area.Y+e.rng.Float64()*area.H,
			)
			box = core.RectAround(pos, size, size)
			if !overlapsAny(box, boxes) {
				break
			}
		}

		boxes = append(boxes, box)
		e.addObject(obj, pos, size/2)
	}
}

func overlapsAny(box core.Rect, boxes []core.Rect) bool {
	for _, b := range boxes {
		if box.Intersects(b) {
			return true
		}
	}
	return false
}

func (e *Engine) addObject(obj field.Object, pos core.Vec, radius float64) {
	p := &placed{obj: obj}
	p.body = e.world.Add(&physics.Body{
		Pos:         pos,
		Radius:      radius,
		Category:    categoryFor(obj.Type),
		Restitution: e.tuning.Objects.ObstacleRestitution,
		UserData:    p,
	})
	e.objects = append(e.objects, p)
}
