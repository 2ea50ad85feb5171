package fill

// recursive emulates the call-per-cell flood fill with an explicit frame stack.
// Neighbors are pushed in reverse so they pop as (x+1,y), (x-1,y), (x,y+1),
// (x,y-1), and each popped frame runs the same base cases the call would, so the
// visitation order is the native recursive order without its stack depth.
func (t *traversal) recursive(x0, y0 int) error {
	frames := []point{{x0, y0}}
	t.stats.push(len(frames))

	for len(frames) > 0 {
		if err := t.tick(); err != nil {
			return err
		}
		p := frames[len(frames)-1]
		frames = frames[:len(frames)-1]

		if !t.g.InBounds(p.x, p.y) {
			continue
		}
		c := t.g.Get(p.x, p.y)
		if c != t.target || c == t.color {
			continue
		}

		t.paint(p.x, p.y)

		frames = append(frames,
			point{p.x, p.y - 1},
			point{p.x, p.y + 1},
			point{p.x - 1, p.y},
			point{p.x + 1, p.y},
		)
		t.stats.Pushes += 3
		t.stats.push(len(frames))
	}
	return nil
}
