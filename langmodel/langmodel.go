package langmodel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JaskiratSingh23/cstag/util"
)

// DefaultSmoothing is the additive (Laplace) smoothing mass used when the
// caller does not choose one.
const DefaultSmoothing = 1.0

// Model scores words under each candidate language tag using additively
// smoothed unigram frequencies. It implements hmm.Emitter: unseen words get
// a small positive probability, unknown tags are an error.
type Model struct {
	smoothing float64
	langs     map[string]*freqTable
}

type freqTable struct {
	counts map[string]float64
	total  float64
}

// New creates a model covering the given tags. A non-positive smoothing
// falls back to DefaultSmoothing.
func New(tags []string, smoothing float64) *Model {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	langs := make(map[string]*freqTable, len(tags))
	for _, tag := range tags {
		langs[tag] = &freqTable{counts: make(map[string]float64)}
	}
	return &Model{smoothing: smoothing, langs: langs}
}

// Add records freq observations of word under tag. Unknown tags are ignored
// so corpora can carry tags outside the decoding vocabulary.
func (m *Model) Add(tag, word string, freq float64) {
	t, ok := m.langs[tag]
	if !ok || freq <= 0 {
		return
	}
	word = util.Normalize(word)
	t.counts[word] += freq
	t.total += freq
}

// Load reads a word-frequency file into the table for tag.
// File format: word, optionally followed by a count (space separated).
func (m *Model) Load(tag, path string) error {
	if _, ok := m.langs[tag]; !ok {
		return fmt.Errorf("langmodel: unknown tag %q", tag)
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		word := parts[0]
		freq := 1.0
		if len(parts) >= 2 {
			if f, err := strconv.ParseFloat(parts[1], 64); err == nil {
				freq = f
			}
		}
		m.Add(tag, word, freq)
	}
	return scanner.Err()
}

// Prob returns the smoothed relative frequency of word under tag, always in
// (0,1]. Words the table has never seen share one reserved smoothing slot.
func (m *Model) Prob(tag, word string) (float64, error) {
	t, ok := m.langs[tag]
	if !ok {
		return 0, fmt.Errorf("langmodel: unknown tag %q", tag)
	}
	word = util.Normalize(word)
	vocab := float64(len(t.counts))
	return (t.counts[word] + m.smoothing) / (t.total + m.smoothing*(vocab+1)), nil
}

// Vocab returns the number of distinct words recorded for tag.
func (m *Model) Vocab(tag string) int {
	if t, ok := m.langs[tag]; ok {
		return len(t.counts)
	}
	return 0
}
