package corpus

import (
	"github.com/JaskiratSingh23/cstag/hmm"
	"github.com/JaskiratSingh23/cstag/langmodel"
)

// EstimateTransitions counts tag bigrams over the corpus and converts them
// to additively smoothed probabilities. Smoothing keeps every cell of the
// tags×tags grid strictly positive, which the decoder's validation demands.
// A non-positive smoothing falls back to langmodel.DefaultSmoothing.
func EstimateTransitions(sents []Sentence, tags []string, smoothing float64) hmm.TransitionTable {
	if smoothing <= 0 {
		smoothing = langmodel.DefaultSmoothing
	}

	counts := make(map[string]map[string]float64, len(tags))
	totals := make(map[string]float64, len(tags))
	for _, tag := range tags {
		counts[tag] = make(map[string]float64, len(tags))
	}

	known := make(map[string]bool, len(tags))
	for _, tag := range tags {
		known[tag] = true
	}
	for _, sent := range sents {
		for i := 1; i < len(sent.Tags); i++ {
			src, dst := sent.Tags[i-1], sent.Tags[i]
			if !known[src] || !known[dst] {
				continue
			}
			counts[src][dst]++
			totals[src]++
		}
	}

	trans := make(hmm.TransitionTable, len(tags))
	for _, src := range tags {
		trans[src] = make(map[string]float64, len(tags))
		denom := totals[src] + smoothing*float64(len(tags))
		for _, dst := range tags {
			trans[src][dst] = (counts[src][dst] + smoothing) / denom
		}
	}
	return trans
}

// TrainEmissions feeds every tagged word of the corpus into the language
// model. Tags outside the model's vocabulary are ignored by Add.
func TrainEmissions(lm *langmodel.Model, sents []Sentence) {
	for _, sent := range sents {
		for i, word := range sent.Words {
			lm.Add(sent.Tags[i], word, 1)
		}
	}
}
