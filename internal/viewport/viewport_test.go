package viewport

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSquareWindowMapsCellCenters(t *testing.T) {
	v := New(512, 512, 256, 256)

	x, y, ok := v.ScreenToGrid(1, 511)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, ok = v.ScreenToGrid(511, 1)
	assert.True(t, ok)
	assert.Equal(t, 255, x)
	assert.Equal(t, 255, y)
}

func TestWideWindowLetterboxesHorizontally(t *testing.T) {
	v := New(800, 600, 4, 4)

	l, r, b, top := v.Bounds()
	assert.InDelta(t, -2.0/3, l, 1e-5)
	assert.InDelta(t, 4+2.0/3, r, 1e-5)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(4), top)

	x, y, ok := v.ScreenToGrid(175, 525)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	_, _, ok = v.ScreenToGrid(50, 300)
	assert.False(t, ok, "left margin")
	_, _, ok = v.ScreenToGrid(760, 300)
	assert.False(t, ok, "right margin")
}

func TestTallWindowLetterboxesVertically(t *testing.T) {
	v := New(300, 600, 10, 10)
	_, _, b, top := v.Bounds()
	assert.InDelta(t, -5, b, 1e-5)
	assert.InDelta(t, 15, top, 1e-5)

	// cell rows are 30px tall, the grid starts 150px from the top
	x, y, ok := v.ScreenToGrid(15, 165)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 9, y)

	_, _, ok = v.ScreenToGrid(15, 20)
	assert.False(t, ok)
}

func TestProjectionMapsGridCornersIntoClipSpace(t *testing.T) {
	v := New(512, 512, 64, 32)
	p := v.Projection()
	c := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1, c.X(), 1e-5)
	assert.InDelta(t, -0.5, c.Y(), 1e-5)
	c = p.Mul4x1(mgl32.Vec4{64, 32, 0, 1})
	assert.InDelta(t, 1, c.X(), 1e-5)
	assert.InDelta(t, 0.5, c.Y(), 1e-5)
}

func TestNewClampsSizes(t *testing.T) {
	v := New(0, -1, 0, 0)
	assert.Equal(t, Viewport{1, 1, 1, 1}, v)
}
