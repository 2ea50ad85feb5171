package grid

// TestPattern resets g and draws the demo scene: a blue rectangle over the middle
// half of the grid with a red disk of radius min(w,h)/4 on top of it.
func TestPattern(g *Grid) {
	g.Reset()

	w, h := g.width, g.height
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			g.Set(x, y, Blue)
		}
	}

	cx, cy := w/2, h/2
	r := min(w, h) / 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				g.Set(x, y, Red)
			}
		}
	}
}
