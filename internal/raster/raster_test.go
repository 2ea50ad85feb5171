package raster

import (
	"image"
	"math"
	"testing"

	"gridfill/internal/fill"
	"gridfill/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect records plotted points.
func collect(draw func(p Plotter)) map[image.Point]bool {
	pts := make(map[image.Point]bool)
	draw(PlotterFunc(func(x, y int, _ grid.Color) { pts[image.Pt(x, y)] = true }))
	return pts
}

func TestLineEndpointsIncluded(t *testing.T) {
	cases := [][4]int{
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{3, 7, -4, 1},
		{30, 45, 90, 90},
		{5, 5, 5, 5},
	}
	for _, c := range cases {
		pts := collect(func(p Plotter) { Line(p, c[0], c[1], c[2], c[3], grid.Red) })
		assert.True(t, pts[image.Pt(c[0], c[1])], "start of %v", c)
		assert.True(t, pts[image.Pt(c[2], c[3])], "end of %v", c)

		// one pixel per step along the major axis
		major := max(abs(c[2]-c[0]), abs(c[3]-c[1]))
		assert.Len(t, pts, major+1, "%v", c)
	}
}

func TestLineIsConnected(t *testing.T) {
	var last image.Point
	first := true
	Line(PlotterFunc(func(x, y int, _ grid.Color) {
		p := image.Pt(x, y)
		if !first {
			assert.LessOrEqual(t, abs(p.X-last.X), 1)
			assert.LessOrEqual(t, abs(p.Y-last.Y), 1)
		}
		first = false
		last = p
	}), 2, 9, 17, 3, grid.Red)
}

func TestCircleSymmetryAndRadius(t *testing.T) {
	for _, r := range []int{3, 10, 30} {
		pts := collect(func(p Plotter) { Circle(p, 50, 50, r, grid.Blue) })
		for p := range pts {
			dx, dy := p.X-50, p.Y-50
			assert.True(t, pts[image.Pt(50-dx, 50+dy)])
			assert.True(t, pts[image.Pt(50+dy, 50+dx)])
			assert.LessOrEqual(t, math.Abs(math.Hypot(float64(dx), float64(dy))-float64(r)), 1.0+1e-9)
		}
		assert.True(t, pts[image.Pt(50+r, 50)])
		assert.True(t, pts[image.Pt(50, 50-r)])
	}
}

func TestEllipseExtremes(t *testing.T) {
	for _, rr := range [][2]int{{40, 20}, {10, 6}, {5, 5}} {
		rx, ry := rr[0], rr[1]
		pts := collect(func(p Plotter) { Ellipse(p, 50, 50, rx, ry, grid.Green) })
		assert.True(t, pts[image.Pt(50+rx, 50)], "%v", rr)
		assert.True(t, pts[image.Pt(50-rx, 50)], "%v", rr)
		assert.True(t, pts[image.Pt(50, 50+ry)], "%v", rr)
		for p := range pts {
			nx := float64(p.X-50) / float64(rx)
			ny := float64(p.Y-50) / float64(ry)
			assert.InDelta(t, 1.0, nx*nx+ny*ny, 0.2)
		}
	}
}

func TestNegativeRadiusDrawsNothing(t *testing.T) {
	assert.Empty(t, collect(func(p Plotter) { Circle(p, 0, 0, -1, grid.Red) }))
	assert.Empty(t, collect(func(p Plotter) { Ellipse(p, 0, 0, 3, -1, grid.Red) }))
}

func TestShapesClipOnGrid(t *testing.T) {
	g := grid.New(20, 20)
	Circle(g, 0, 0, 8, grid.Red)
	Line(g, -5, -5, 30, 30, grid.Red)
	assert.Equal(t, grid.Red, g.Get(19, 19))
	assert.Equal(t, grid.Black, g.Get(-1, -1))
}

func TestCircleBoundsAFill(t *testing.T) {
	for _, alg := range []fill.Algorithm{fill.Recursive, fill.Stack, fill.Scanline} {
		g := grid.New(100, 100)
		Circle(g, 50, 50, 30, grid.Blue)
		_, err := fill.Fill(g, alg, 50, 50, grid.White, grid.Red)
		require.NoError(t, err)
		assert.Equal(t, grid.White, g.Get(0, 0), alg.String())
		assert.Equal(t, grid.Red, g.Get(50, 75), alg.String())
	}
}

func TestDemosDraw(t *testing.T) {
	d := DemoDiagonal
	for i := 0; i < 4; i++ {
		g := grid.New(100, 100)
		d.Draw(g)
		assert.NotZero(t, g.FilledCount(), d.String())
		d = d.Next()
	}
	assert.Equal(t, DemoDiagonal, d)

	g := grid.New(100, 100)
	DemoCross.Draw(g)
	assert.Equal(t, grid.Green, g.Get(50, 50))
	assert.Equal(t, "Demo(9)", Demo(9).String())
}
