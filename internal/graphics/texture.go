package graphics

import (
	"gridfill/internal/grid"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GridTexture mirrors a grid.Grid in an RGB8 texture with nearest filtering so
// every cell stays a crisp square.
type GridTexture struct {
	ID     uint32
	width  int
	height int
	pixels []byte
}

// NewGridTexture allocates texture storage for a width×height grid
func NewGridTexture(width, height int) *GridTexture {
	t := &GridTexture{width: width, height: height}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Upload copies the grid into the texture. Row 0 of the grid is texture row 0,
// which the quad maps to the bottom of the screen.
func (t *GridTexture) Upload(g *grid.Grid) {
	t.pixels = g.Pixels(t.pixels)

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	// RGB rows are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if g.Width() == t.width && g.Height() == t.height {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.width), int32(t.height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(t.pixels))
	} else {
		t.width, t.height = g.Width(), g.Height()
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(t.width), int32(t.height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(t.pixels))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the texture
func (t *GridTexture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
