package tagger

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JaskiratSingh23/cstag/hmm"
	"github.com/JaskiratSingh23/cstag/langmodel"
)

func newTestTagger(t *testing.T) *Tagger {
	t.Helper()
	tags := []string{"ENG", "SPA"}
	trans := hmm.TransitionTable{
		"ENG": {"ENG": 0.7, "SPA": 0.3},
		"SPA": {"ENG": 0.3, "SPA": 0.7},
	}
	lm := langmodel.New(tags, 0.1)
	for _, w := range []string{"i", "want", "the", "dog", "runs"} {
		lm.Add("ENG", w, 10)
	}
	for _, w := range []string{"quiero", "el", "perro", "corre", "más"} {
		lm.Add("SPA", w, 10)
	}

	tg, err := New(tags, trans, lm)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tg
}

func TestTagger_Tag(t *testing.T) {
	tg := newTestTagger(t)

	got, err := tg.Tag([]string{"I", "want", "el", "perro"})
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	expected := []string{"ENG", "ENG", "SPA", "SPA"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Tag() = %v, want %v", got, expected)
	}
}

func TestTagger_TagText(t *testing.T) {
	tg := newTestTagger(t)

	got, err := tg.TagText("Quiero el dog, I want más!")
	if err != nil {
		t.Fatalf("TagText() error = %v", err)
	}
	expected := []TaggedWord{
		{Word: "Quiero", Tag: "SPA"},
		{Word: "el", Tag: "SPA"},
		{Word: "dog", Tag: "ENG"},
		{Word: "I", Tag: "ENG"},
		{Word: "want", Tag: "ENG"},
		{Word: "más", Tag: "SPA"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("TagText() = %v, want %v", got, expected)
	}

	empty, err := tg.TagText("?!")
	if err != nil {
		t.Fatalf("TagText(punctuation) error = %v", err)
	}
	if empty != nil {
		t.Errorf("TagText(punctuation) = %v, want nil", empty)
	}
}

func TestNew_RejectsBadTable(t *testing.T) {
	lm := langmodel.New([]string{"ENG", "SPA"}, 1.0)
	trans := hmm.TransitionTable{
		"ENG": {"ENG": 0.7, "SPA": 0.3},
		// SPA row omitted
	}
	if _, err := New([]string{"ENG", "SPA"}, trans, lm); !errors.Is(err, hmm.ErrConfig) {
		t.Errorf("New() error = %v, want ErrConfig", err)
	}
}
