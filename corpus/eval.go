package corpus

import "sort"

// Labeler assigns one tag per word. *tagger.Tagger satisfies it.
type Labeler interface {
	Tag(words []string) ([]string, error)
}

// TagResult is the per-tag slice of an evaluation.
type TagResult struct {
	Total   int
	Correct int
}

// Accuracy returns the fraction of tokens carrying this gold tag that were
// labeled correctly.
func (r TagResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Result of evaluating a labeler against a gold-tagged corpus.
type Result struct {
	Total   int
	Correct int
	PerTag  map[string]*TagResult
}

// Accuracy returns the overall token accuracy.
func (r *Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Tags returns the gold tags seen during evaluation, sorted.
func (r *Result) Tags() []string {
	tags := make([]string, 0, len(r.PerTag))
	for tag := range r.PerTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Evaluate runs the labeler over every sentence and scores its output
// against the gold tags, token by token.
func Evaluate(lb Labeler, sents []Sentence) (*Result, error) {
	res := &Result{PerTag: make(map[string]*TagResult)}
	for _, sent := range sents {
		got, err := lb.Tag(sent.Words)
		if err != nil {
			return nil, err
		}
		for i, gold := range sent.Tags {
			tr := res.PerTag[gold]
			if tr == nil {
				tr = &TagResult{}
				res.PerTag[gold] = tr
			}
			tr.Total++
			res.Total++
			if i < len(got) && got[i] == gold {
				tr.Correct++
				res.Correct++
			}
		}
	}
	return res, nil
}
