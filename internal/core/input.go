package core

// PointerPhase identifies which part of a drag gesture an event belongs to.
type PointerPhase int

const (
	PointerDown PointerPhase = iota // Gesture starts
	PointerMove                     // Gesture continues
	PointerUp                       // Gesture released
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a drag gesture sample in scene coordinates.
// The platform converts mouse cells or keyboard cursor moves into these.
type PointerEvent struct {
	Phase PointerPhase
	Pos   Vec
}

// Down builds a gesture start event.
func Down(p Vec) PointerEvent {
	return PointerEvent{Phase: PointerDown, Pos: p}
}

// Move builds a gesture move event.
func Move(p Vec) PointerEvent {
	return PointerEvent{Phase: PointerMove, Pos: p}
}

// Up builds a gesture release event.
func Up(p Vec) PointerEvent {
	return PointerEvent{Phase: PointerUp, Pos: p}
}
