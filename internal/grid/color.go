package grid

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Color is an RGB triple with components in [0,1].
type Color mgl32.Vec3

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = FromRGBA(colornames.Red)
	Green = FromRGBA(colornames.Lime)
	Blue  = FromRGBA(colornames.Blue)
)

// FromRGBA converts an 8-bit color, dropping alpha. 0 and 255 map exactly to 0 and 1.
func FromRGBA(c color.RGBA) Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// FromColor converts any color.Color, ignoring alpha premultiplication.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{float32(r>>8) / 255, float32(g>>8) / 255, float32(b>>8) / 255}
}

// Vec3 returns the color as a mathgl vector.
func (c Color) Vec3() mgl32.Vec3 { return mgl32.Vec3(c) }

// RGB quantizes each component to a byte by truncation.
func (c Color) RGB() (r, g, b uint8) {
	return quantize(c[0]), quantize(c[1]), quantize(c[2])
}

// RGBA implements color.Color so a Color can be handed to image code directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xff}.RGBA()
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// PaletteEntry is a named selectable fill color.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette lists the fill colors offered by the viewer, in key order R G B Y P C.
var Palette = []PaletteEntry{
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
	{"yellow", FromRGBA(colornames.Yellow)},
	{"magenta", FromRGBA(colornames.Magenta)},
	{"cyan", FromRGBA(colornames.Cyan)},
}

// PaletteColor looks a palette color up by name.
func PaletteColor(name string) (Color, bool) {
	for _, e := range Palette {
		if e.Name == name {
			return e.Color, true
		}
	}
	return Color{}, false
}
