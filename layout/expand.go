// SPDX-License-Identifier: Unlicense OR MIT

package layout

// distribute allots main-axis space to a list of children given
// their (min, max) ranges, the available space and the fixed
// spacing between items.
//
// Every child starts at its minimum. Surplus space is handed out in
// lock-step increments: at each round the children that can still
// grow and currently sit at the smallest size tier all receive the
// same increment, capped by the gap to the next tier, by the
// smallest remaining capacity within the tier, and by the surplus
// left. Children with equal ranges therefore end up with equal
// sizes, no child exceeds its own max, and the outcome does not
// depend on child order.
func distribute(children []Range, space, spacing float32) []float32 {
	if len(children) == 0 {
		return []float32{0}
	}

	sizes := make([]float32, len(children))
	minTotal := spacing * float32(len(children)-1)
	for i, c := range children {
		sizes[i] = c.Min
		minTotal += c.Min
	}

	free := max32(space-minTotal, 0)
	for free > 0 {
		// Find the smallest tier among children that can still grow.
		tier := float32(0)
		count := 0
		for i, c := range children {
			if sizes[i] >= c.Max {
				continue
			}
			switch {
			case count == 0 || sizes[i] < tier:
				tier = sizes[i]
				count = 1
			case sizes[i] == tier:
				count++
			}
		}
		if count == 0 {
			break
		}

		// The uniform step is bounded by the gap up to the next
		// tier and by the capacity left within the current one.
		step := free
		for i, c := range children {
			if sizes[i] >= c.Max {
				continue
			}
			if sizes[i] == tier {
				step = min32(step, c.Max-sizes[i])
			} else {
				step = min32(step, sizes[i]-tier)
			}
		}

		grow := min32(step*float32(count), free)
		if grow <= 0 {
			break
		}
		free -= grow
		per := grow / float32(count)
		for i, c := range children {
			if sizes[i] == tier && sizes[i] < c.Max {
				sizes[i] += per
			}
		}
	}
	return sizes
}
