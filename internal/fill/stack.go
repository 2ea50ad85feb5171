package fill

// stack is the explicit LIFO, 4-connected fill. Neighbors are pushed +x, -x, +y,
// -y when they still hold the target color; a popped cell that already has the
// new color is skipped.
func (t *traversal) stack(x0, y0 int) error {
	pts := []point{{x0, y0}}
	t.stats.push(len(pts))

	for len(pts) > 0 {
		if err := t.tick(); err != nil {
			return err
		}
		p := pts[len(pts)-1]
		pts = pts[:len(pts)-1]

		if t.g.Get(p.x, p.y) == t.color {
			continue
		}
		t.paint(p.x, p.y)

		for _, n := range [4]point{{p.x + 1, p.y}, {p.x - 1, p.y}, {p.x, p.y + 1}, {p.x, p.y - 1}} {
			if t.matches(n.x, n.y) {
				pts = append(pts, n)
				t.stats.push(len(pts))
			}
		}
	}
	return nil
}
