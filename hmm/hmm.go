package hmm

import (
	"fmt"
	"math"
)

// TransitionTable maps a source tag to the probability of moving to each
// destination tag at the next word position.
type TransitionTable map[string]map[string]float64

// Emitter scores how likely a word is under a given tag. Implementations
// must return a probability in (0,1]; an error means the pair cannot be
// scored, which the decoder treats as a very unlikely (but not impossible)
// emission rather than aborting.
type Emitter interface {
	Prob(tag, word string) (float64, error)
}

// unseenLogProb stands in for (tag, word) pairs the emission model cannot
// score. Low enough to lose against any scored word, finite so a path
// through an unknown word can still win if everything else supports it.
const unseenLogProb = -20.0

// Model holds one decoding run: the word sequence, the tag vocabulary, the
// transition table, the emission source and the probability lattice filled
// by the Viterbi pass. A Model is owned by a single GenTags invocation;
// only the transition table and emitter may be shared across runs.
type Model struct {
	words []string
	tags  []string
	trans TransitionTable
	em    Emitter

	lattice [][]node
	emMemo  map[emKey]float64
}

type emKey struct {
	tag  string
	word string
}

// NewModel validates the configuration and allocates the lattice.
// The transition table must cover the full tags×tags grid with
// probabilities in (0,1].
func NewModel(words, tags []string, trans TransitionTable, em Emitter) (*Model, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty word sequence", ErrConfig)
	}
	if em == nil {
		return nil, fmt.Errorf("%w: nil emitter", ErrConfig)
	}
	if err := ValidateTable(tags, trans); err != nil {
		return nil, err
	}

	lattice := make([][]node, len(words))
	for i := range lattice {
		lattice[i] = make([]node, len(tags))
	}
	return &Model{
		words:   words,
		tags:    tags,
		trans:   trans,
		em:      em,
		lattice: lattice,
		emMemo:  make(map[emKey]float64),
	}, nil
}

// ValidateTable checks that tags is a non-empty duplicate-free vocabulary
// and that trans covers every (source, destination) pair drawn from it.
func ValidateTable(tags []string, trans TransitionTable) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: empty tag set", ErrConfig)
	}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			return fmt.Errorf("%w: duplicate tag %q", ErrConfig, tag)
		}
		seen[tag] = true
	}
	for _, src := range tags {
		row, ok := trans[src]
		if !ok {
			return fmt.Errorf("%w: transition table missing row for tag %q", ErrConfig, src)
		}
		for _, dst := range tags {
			p, ok := row[dst]
			if !ok {
				return fmt.Errorf("%w: transition table missing entry %q -> %q", ErrConfig, src, dst)
			}
			if p <= 0 || p > 1 {
				return fmt.Errorf("%w: transition %q -> %q has probability %v, want (0,1]", ErrConfig, src, dst, p)
			}
		}
	}
	return nil
}

// GenTags decodes the most likely tag sequence for the word sequence,
// one tag per word in original word order.
func (m *Model) GenTags() ([]string, error) {
	if err := m.viterbi(); err != nil {
		return nil, err
	}
	return m.retrace()
}

// transLogProb returns the log of the table entry. A miss here means the
// construction-time validation was bypassed, so it is reported as a lookup
// failure instead of being absorbed.
func (m *Model) transLogProb(src, dst string) (float64, error) {
	row, ok := m.trans[src]
	if !ok {
		return 0, fmt.Errorf("%w: no transition row for tag %q", ErrLookup, src)
	}
	p, ok := row[dst]
	if !ok {
		return 0, fmt.Errorf("%w: no transition entry %q -> %q", ErrLookup, src, dst)
	}
	return math.Log(p), nil
}

// emissionLogProb returns the log emission probability of word under tag,
// substituting a floor value when the emitter cannot score the pair.
// Results are memoized for the lifetime of the run.
func (m *Model) emissionLogProb(tag, word string) float64 {
	key := emKey{tag: tag, word: word}
	if lp, ok := m.emMemo[key]; ok {
		return lp
	}
	lp := unseenLogProb
	if p, err := m.em.Prob(tag, word); err == nil && p > 0 {
		lp = math.Log(p)
	}
	m.emMemo[key] = lp
	return lp
}
