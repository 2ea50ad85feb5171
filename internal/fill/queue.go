package fill

// queue is the breadth-first, 8-connected fill. The queue does not deduplicate, so
// a dequeued cell is re-checked against the target before painting.
func (t *traversal) queue(x0, y0 int) error {
	q := []point{{x0, y0}}
	head := 0
	t.stats.push(1)

	for head < len(q) {
		if err := t.tick(); err != nil {
			return err
		}
		p := q[head]
		head++

		// Reclaim the consumed prefix once it dominates the backing array.
		if head > 1024 && head*2 > len(q) {
			q = append(q[:0], q[head:]...)
			head = 0
		}

		if t.g.Get(p.x, p.y) != t.target {
			continue
		}
		t.paint(p.x, p.y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if t.matches(nx, ny) {
					q = append(q, point{nx, ny})
					t.stats.push(len(q) - head)
				}
			}
		}
	}
	return nil
}
