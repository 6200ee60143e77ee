package langmodel

import (
	"os"
	"testing"
)

func TestModel_Load(t *testing.T) {
	content := "the 50\ndog 10\ncat\n# comment\n"
	tmpfile, err := os.CreateTemp("", "freq.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	m := New([]string{"ENG", "SPA"}, 1.0)
	if err := m.Load("ENG", tmpfile.Name()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := m.Vocab("ENG"); got != 3 {
		t.Errorf("Vocab(ENG) = %d, want 3", got)
	}
	if err := m.Load("FRA", tmpfile.Name()); err == nil {
		t.Errorf("Load(FRA) error = nil, want unknown tag error")
	}
}

func TestModel_Prob(t *testing.T) {
	m := New([]string{"ENG"}, 1.0)
	m.Add("ENG", "the", 9)

	// (9+1) / (9 + 1*(1+1)) = 10/11
	p, err := m.Prob("ENG", "the")
	if err != nil {
		t.Fatalf("Prob() error = %v", err)
	}
	if p < 0.90 || p > 0.91 {
		t.Errorf("Prob(ENG, the) = %v, want ~0.909", p)
	}

	unseen, err := m.Prob("ENG", "perro")
	if err != nil {
		t.Fatalf("Prob() error = %v", err)
	}
	if unseen <= 0 || unseen >= p {
		t.Errorf("Prob(ENG, perro) = %v, want positive and below a seen word", unseen)
	}

	if _, err := m.Prob("FRA", "chien"); err == nil {
		t.Errorf("Prob(FRA, chien) error = nil, want unknown tag error")
	}
}

func TestModel_ProbEmptyTable(t *testing.T) {
	m := New([]string{"ENG"}, 1.0)
	p, err := m.Prob("ENG", "anything")
	if err != nil {
		t.Fatalf("Prob() error = %v", err)
	}
	if p <= 0 || p > 1 {
		t.Errorf("Prob() on empty table = %v, want within (0,1]", p)
	}
}

func TestModel_NormalizesLookups(t *testing.T) {
	m := New([]string{"SPA"}, 1.0)
	m.Add("SPA", "Más", 10)

	upper, err := m.Prob("SPA", "MÁS")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := m.Prob("SPA", "más")
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Errorf("Prob is case sensitive: %v vs %v", upper, lower)
	}
	if got := m.Vocab("SPA"); got != 1 {
		t.Errorf("Vocab(SPA) = %d, want 1", got)
	}
}
