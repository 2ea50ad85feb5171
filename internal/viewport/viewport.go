// Package viewport maps between window pixels and grid cells. The grid is shown
// letterboxed: scaled uniformly to fit the window and centered.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewport describes a window showing a grid.
type Viewport struct {
	WindowWidth, WindowHeight int
	GridWidth, GridHeight     int
}

// New returns a viewport, raising non-positive sizes to 1.
func New(winW, winH, gridW, gridH int) Viewport {
	return Viewport{
		WindowWidth:  max(winW, 1),
		WindowHeight: max(winH, 1),
		GridWidth:    max(gridW, 1),
		GridHeight:   max(gridH, 1),
	}
}

// Bounds returns the visible region in grid units (left, right, bottom, top).
// The grid occupies [0,GridWidth]x[0,GridHeight]; the surplus on the long axis
// is split evenly on both sides.
func (v Viewport) Bounds() (left, right, bottom, top float32) {
	gw, gh := float32(v.GridWidth), float32(v.GridHeight)
	winAspect := float32(v.WindowWidth) / float32(v.WindowHeight)
	gridAspect := gw / gh

	if winAspect >= gridAspect {
		visW := gh * winAspect
		pad := (visW - gw) / 2
		return -pad, gw + pad, 0, gh
	}
	visH := gw / winAspect
	pad := (visH - gh) / 2
	return 0, gw, -pad, gh + pad
}

// Projection is the orthographic matrix taking grid units to clip space.
func (v Viewport) Projection() mgl32.Mat4 {
	l, r, b, t := v.Bounds()
	return mgl32.Ortho2D(l, r, b, t)
}

// ScreenToGrid converts a cursor position (origin top-left, y down) into the cell
// under it. ok is false when the cursor is over the letterbox margin.
func (v Viewport) ScreenToGrid(cx, cy float64) (x, y int, ok bool) {
	ndc := mgl32.Vec4{
		float32(2*cx/float64(v.WindowWidth) - 1),
		float32(1 - 2*cy/float64(v.WindowHeight)),
		0,
		1,
	}
	world := v.Projection().Inv().Mul4x1(ndc)

	x = int(math.Floor(float64(world.X())))
	y = int(math.Floor(float64(world.Y())))
	ok = x >= 0 && x < v.GridWidth && y >= 0 && y < v.GridHeight
	return x, y, ok
}
