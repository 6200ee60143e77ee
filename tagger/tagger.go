package tagger

import (
	"github.com/JaskiratSingh23/cstag/hmm"
	"github.com/JaskiratSingh23/cstag/util"
)

// Tagger labels each word of a code-switched text with its most likely
// language tag. The tag set, transition table and emitter are fixed at
// construction and treated as read-only, so one Tagger may serve
// concurrent Tag calls; each call owns its own decoding lattice.
type Tagger struct {
	tags    []string
	trans   hmm.TransitionTable
	emitter hmm.Emitter
}

// TaggedWord pairs an input word with its assigned tag.
type TaggedWord struct {
	Word string
	Tag  string
}

// New validates the tag set and transition table up front so a bad
// configuration fails here rather than on the first Tag call.
func New(tags []string, trans hmm.TransitionTable, em hmm.Emitter) (*Tagger, error) {
	if err := hmm.ValidateTable(tags, trans); err != nil {
		return nil, err
	}
	return &Tagger{tags: tags, trans: trans, emitter: em}, nil
}

// Tags returns the tag vocabulary.
func (t *Tagger) Tags() []string {
	return t.tags
}

// Tag decodes one tag per word, in word order.
func (t *Tagger) Tag(words []string) ([]string, error) {
	m, err := hmm.NewModel(words, t.tags, t.trans, t.emitter)
	if err != nil {
		return nil, err
	}
	return m.GenTags()
}

// TagText tokenizes text and tags the resulting words. Returns nil for
// text with no taggable words.
func (t *Tagger) TagText(text string) ([]TaggedWord, error) {
	words := util.Tokenize(text)
	if len(words) == 0 {
		return nil, nil
	}
	tags, err := t.Tag(words)
	if err != nil {
		return nil, err
	}
	tagged := make([]TaggedWord, len(words))
	for i, word := range words {
		tagged[i] = TaggedWord{Word: word, Tag: tags[i]}
	}
	return tagged, nil
}
