package grid

// Grid is a fixed-size 2D array of colors plus a mask of cells touched by a fill.
// Storage is row-major: index = y*width + x.
type Grid struct {
	width, height int
	colors        []Color
	filled        []bool
}

// New creates a white, unfilled grid. Non-positive dimensions are raised to 1.
func New(width, height int) *Grid {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	g := &Grid{
		width:  width,
		height: height,
		colors: make([]Color, width*height),
		filled: make([]bool, width*height),
	}
	g.Reset()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Get returns the color at (x, y), or black when out of bounds.
func (g *Grid) Get(x, y int) Color {
	if !g.InBounds(x, y) {
		return Black
	}
	return g.colors[g.index(x, y)]
}

// Set writes c at (x, y) and marks the cell filled iff c is not white.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Color) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.colors[i] = c
	g.filled[i] = c != White
}

// Paint writes c at (x, y) and always marks the cell filled. Fill algorithms use
// it. Out-of-bounds writes are ignored.
func (g *Grid) Paint(x, y int, c Color) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.colors[i] = c
	g.filled[i] = true
}

// Filled reports whether the cell was touched by a fill or a non-white write.
func (g *Grid) Filled(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.filled[g.index(x, y)]
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, f := range g.filled {
		if f {
			n++
		}
	}
	return n
}

// Reset clears every cell to white and unfilled.
func (g *Grid) Reset() {
	for i := range g.colors {
		g.colors[i] = White
		g.filled[i] = false
	}
}

// Load bulk-overwrites every cell with fn(x, y) through Set.
func (g *Grid) Load(fn func(x, y int) Color) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, fn(x, y))
		}
	}
}

// Pixels writes the grid into dst as row-major RGB bytes and returns it.
// dst is reallocated when it is too small.
func (g *Grid) Pixels(dst []byte) []byte {
	n := g.width * g.height * 3
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range g.colors {
		dst[i*3], dst[i*3+1], dst[i*3+2] = c.RGB()
	}
	return dst
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		colors: make([]Color, len(g.colors)),
		filled: make([]bool, len(g.filled)),
	}
	copy(out.colors, g.colors)
	copy(out.filled, g.filled)
	return out
}

// Equal reports whether both grids have the same size and colors. The filled mask
// is ignored.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.colors {
		if g.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}
