package grid

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Image renders the grid as an RGBA image with one pixel per cell. Grid row 0 is
// the bottom row of the image, as it is on screen.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := img.Pix[(g.height-1-y)*img.Stride:]
		for x := 0; x < g.width; x++ {
			r, gg, b := g.colors[g.index(x, y)].RGB()
			o := x * 4
			row[o], row[o+1], row[o+2], row[o+3] = r, gg, b, 0xff
		}
	}
	return img
}

// LoadImage samples src onto the grid with nearest-neighbour scaling. The top row
// of src lands on the highest grid row.
func LoadImage(g *Grid, src image.Image) {
	dst := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	g.Load(func(x, y int) Color {
		return FromRGBA(dst.RGBAAt(x, g.height-1-y))
	})
}

// DecodeImage decodes an image from r and loads it into g.
func DecodeImage(g *Grid, r io.Reader) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decode pattern image: %w", err)
	}
	LoadImage(g, src)
	return nil
}

// WritePNG encodes the grid as PNG with every cell drawn as a scale×scale block.
func WritePNG(w io.Writer, g *Grid, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := g.Image()
	dst := image.NewRGBA(image.Rect(0, 0, g.width*scale, g.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
