package fill

// scanline fills whole horizontal spans and seeds the rows above and below with
// one point per run of matching cells, so the stack grows with the number of
// spans rather than the number of cells.
func (t *traversal) scanline(x0, y0 int) error {
	seeds := []point{{x0, y0}}
	t.stats.push(len(seeds))

	w := t.g.Width()
	for len(seeds) > 0 {
		if err := t.tick(); err != nil {
			return err
		}
		p := seeds[len(seeds)-1]
		seeds = seeds[:len(seeds)-1]

		// A seed may have been covered by another span since it was pushed.
		if t.g.Get(p.x, p.y) != t.target {
			continue
		}

		left := p.x
		for left >= 0 && t.g.Get(left, p.y) == t.target {
			t.paint(left, p.y)
			left--
		}
		left++

		right := p.x + 1
		for right < w && t.g.Get(right, p.y) == t.target {
			t.paint(right, p.y)
			right++
		}
		right--

		for _, ny := range [2]int{p.y - 1, p.y + 1} {
			if ny < 0 || ny >= t.g.Height() {
				continue
			}
			inSpan := false
			for nx := left; nx <= right; nx++ {
				if t.g.Get(nx, ny) != t.target {
					inSpan = false
					continue
				}
				if !inSpan {
					seeds = append(seeds, point{nx, ny})
					t.stats.push(len(seeds))
					inSpan = true
				}
			}
		}
	}
	return nil
}
