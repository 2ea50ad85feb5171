// Package raster draws Bresenham lines, circles and ellipses onto a pixel setter.
package raster

import "gridfill/internal/grid"

// Plotter receives the pixels produced by the rasterizers. Points outside the
// target are passed through; the plotter decides whether to clip them.
type Plotter interface {
	Set(x, y int, c grid.Color)
}

// PlotterFunc adapts a function to Plotter.
type PlotterFunc func(x, y int, c grid.Color)

func (f PlotterFunc) Set(x, y int, c grid.Color) { f(x, y, c) }

// Line draws from (x1,y1) to (x2,y2), both endpoints included.
func Line(p Plotter, x1, y1, x2, y2 int, c grid.Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		p.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Circle draws a circle of radius r centered on (xc,yc) using the midpoint
// decision variable d = 3 - 2r and eight-way symmetry.
func Circle(p Plotter, xc, yc, r int, c grid.Color) {
	if r < 0 {
		return
	}
	octants := func(x, y int) {
		p.Set(xc+x, yc+y, c)
		p.Set(xc-x, yc+y, c)
		p.Set(xc+x, yc-y, c)
		p.Set(xc-x, yc-y, c)
		p.Set(xc+y, yc+x, c)
		p.Set(xc-y, yc+x, c)
		p.Set(xc+y, yc-x, c)
		p.Set(xc-y, yc-x, c)
	}

	x, y := 0, r
	d := 3 - 2*r
	octants(x, y)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		octants(x, y)
	}
}

// Ellipse draws an axis-aligned ellipse with radii rx, ry centered on (xc,yc).
// Region 1 steps in x while the slope is shallower than -1, region 2 steps in y.
func Ellipse(p Plotter, xc, yc, rx, ry int, c grid.Color) {
	if rx < 0 || ry < 0 {
		return
	}
	quadrants := func(x, y int) {
		p.Set(xc+x, yc+y, c)
		p.Set(xc-x, yc+y, c)
		p.Set(xc+x, yc-y, c)
		p.Set(xc-x, yc-y, c)
	}

	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	twoRx2 := 2 * rx2
	twoRy2 := 2 * ry2

	x, y := 0, ry
	p1 := ry2 - rx2*float64(ry) + 0.25*rx2
	for twoRy2*float64(x) < twoRx2*float64(y) {
		quadrants(x, y)
		x++
		if p1 < 0 {
			p1 += twoRy2*float64(x) + ry2
		} else {
			y--
			p1 += twoRy2*float64(x) - twoRx2*float64(y) + ry2
		}
	}

	fx := float64(x) + 0.5
	fy := float64(y - 1)
	p2 := ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y >= 0 {
		quadrants(x, y)
		y--
		if p2 > 0 {
			p2 += -twoRx2*float64(y) + rx2
		} else {
			x++
			p2 += twoRy2*float64(x) - twoRx2*float64(y) + rx2
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
