package tui

import (
	"math"

	"github.com/vovakirdan/bouncybet/internal/core"
)

// Rows reserved above and below the field box.
const (
	headerRows = 2
	footerRows = 1
)

// Layout maps scene coordinates onto terminal cells. Cells are treated as
// twice as tall as they are wide so circles stay round.
type Layout struct {
	scene            core.Rect
	originX, originY int // First interior cell of the field box
	cols, rows       int
	unitsPerCol      float64
	unitsPerRow      float64
}

// NewLayout fits scene into a screen of the given size.
func NewLayout(scene core.Rect, screenW, screenH int) Layout {
	availW := max(screenW-2, 1)
	availH := max(screenH-headerRows-footerRows-2, 1)

	u := math.Max(scene.W/float64(availW), scene.H/(2*float64(availH)))
	cols := core.Clamp(int(math.Ceil(scene.W/u)), 1, availW)
	rows := core.Clamp(int(math.Ceil(scene.H/(2*u))), 1, availH)

	return Layout{
		scene:       scene,
		originX:     max((screenW-cols)/2, 1),
		originY:     headerRows + 1,
		cols:        cols,
		rows:        rows,
		unitsPerCol: u,
		unitsPerRow: 2 * u,
	}
}

// ToCell returns the cell containing p, clamped to the field interior.
func (l Layout) ToCell(p core.Vec) (x, y int) {
	cx := int(math.Floor((p.X() - l.scene.X) / l.unitsPerCol))
	cy := int(math.Floor((p.Y() - l.scene.Y) / l.unitsPerRow))
	return l.originX + core.Clamp(cx, 0, l.cols-1), l.originY + core.Clamp(cy, 0, l.rows-1)
}

// ToScene returns the scene point at the center of cell (x, y).
func (l Layout) ToScene(x, y int) core.Vec {
	return core.V(
		l.scene.X+(float64(x-l.originX)+0.5)*l.unitsPerCol,
		l.scene.Y+(float64(y-l.originY)+0.5)*l.unitsPerRow,
	)
}

// Contains reports whether cell (x, y) lies inside the field box.
func (l Layout) Contains(x, y int) bool {
	return x >= l.originX && x < l.originX+l.cols && y >= l.originY && y < l.originY+l.rows
}

// Box returns the field border rectangle in cells.
func (l Layout) Box() (x, y, w, h int) {
	return l.originX - 1, l.originY - 1, l.cols + 2, l.rows + 2
}

// CellSize returns the scene size of one cell.
func (l Layout) CellSize() (w, h float64) {
	return l.unitsPerCol, l.unitsPerRow
}
