package raster

import (
	"fmt"

	"gridfill/internal/grid"
)

// Demo is one of the scenes shown by the bresenham viewer.
type Demo int

const (
	DemoDiagonal Demo = iota
	DemoCross
	DemoCircle
	DemoEllipse
	demoCount
)

var demoNames = [demoCount]string{"diagonal line", "cross", "circle", "ellipse"}

func (d Demo) String() string {
	if d < 0 || d >= demoCount {
		return fmt.Sprintf("Demo(%d)", int(d))
	}
	return demoNames[d]
}

// Next returns the following scene, wrapping around.
func (d Demo) Next() Demo { return (d + 1) % demoCount }

// Draw clears g and draws the scene on it. Scenes are laid out on a 100x100
// canvas and scaled to the grid size.
func (d Demo) Draw(g *grid.Grid) {
	g.Reset()
	sx := func(v int) int { return v * g.Width() / 100 }
	sy := func(v int) int { return v * g.Height() / 100 }

	switch d {
	case DemoDiagonal:
		Line(g, sx(30), sy(45), sx(90), sy(90), grid.Red)
	case DemoCross:
		Line(g, sx(20), sy(50), sx(80), sy(50), grid.Green)
		Line(g, sx(50), sy(20), sx(50), sy(80), grid.Green)
	case DemoCircle:
		Circle(g, sx(50), sy(50), min(sx(30), sy(30)), grid.Blue)
	case DemoEllipse:
		Ellipse(g, sx(50), sy(50), sx(40), sy(20), grid.Color{1, 0, 1})
	}
}
