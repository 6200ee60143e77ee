package hmm

import "math"

// node is one lattice cell: the best cumulative log probability of any tag
// path ending at its (position, tag) coordinate, and the previous row's tag
// index that path came from. Cells are written exactly once.
type node struct {
	logProb float64
	backPtr int
}

// noPredecessor marks the cells at position 0, which have no previous row.
const noPredecessor = -1

// viterbi fills the lattice left to right. Row 0 combines a uniform prior
// over tags with the first word's emission; each later cell takes the best
// scoring predecessor in the previous row plus its own emission. All scores
// are sums of logs, never raw-probability products.
func (m *Model) viterbi() error {
	prior := math.Log(1 / float64(len(m.tags)))
	for ti, tag := range m.tags {
		m.lattice[0][ti] = node{
			logProb: prior + m.emissionLogProb(tag, m.words[0]),
			backPtr: noPredecessor,
		}
	}

	for i := 1; i < len(m.words); i++ {
		for ti, tag := range m.tags {
			best := math.Inf(-1)
			bestPrev := noPredecessor
			for si, src := range m.tags {
				tp, err := m.transLogProb(src, tag)
				if err != nil {
					return err
				}
				// Strict > keeps the lowest source index on exact ties.
				score := m.lattice[i-1][si].logProb + tp
				if score > best {
					best = score
					bestPrev = si
				}
			}
			m.lattice[i][ti] = node{
				logProb: best + m.emissionLogProb(tag, m.words[i]),
				backPtr: bestPrev,
			}
		}
	}
	return nil
}
