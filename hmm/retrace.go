package hmm

import (
	"fmt"
	"math"
)

// retrace walks the filled lattice backward from the best final cell,
// collecting one tag per word, then reverses the collection into
// chronological order.
func (m *Model) retrace() ([]string, error) {
	last := len(m.words) - 1

	best := math.Inf(-1)
	cur := noPredecessor
	for ti := range m.tags {
		if m.lattice[last][ti].logProb > best {
			best = m.lattice[last][ti].logProb
			cur = ti
		}
	}

	tags := make([]string, 0, len(m.words))
	for i := last; i >= 0; i-- {
		if cur < 0 || cur >= len(m.tags) {
			return nil, fmt.Errorf("%w: back pointer %d out of range at position %d", ErrInternal, cur, i)
		}
		tags = append(tags, m.tags[cur])
		cur = m.lattice[i][cur].backPtr
	}
	if cur != noPredecessor {
		return nil, fmt.Errorf("%w: walk ended on back pointer %d, want sentinel", ErrInternal, cur)
	}

	for l, r := 0, len(tags)-1; l < r; l, r = l+1, r-1 {
		tags[l], tags[r] = tags[r], tags[l]
	}
	return tags, nil
}
