package tools

import (
	"reflect"
	"testing"

	"github.com/atmoschem/mex/mech"
)

func TestAnalyze(t *testing.T) {
	a, err := Analyze(testMech(t))
	if err != nil {
		t.Fatal(err)
	}
	if a.ReactionCount != 3 {
		t.Fatalf("got %d", a.ReactionCount)
	}
	if !reflect.DeepEqual(a.Photolysis, []string{"RXN_1"}) {
		t.Fatalf("got %v", a.Photolysis)
	}
	// The toy NO cycle consumes and produces everything it
	// touches.
	if len(a.SourceSpecies) != 0 || len(a.TerminalSpecies) != 0 {
		t.Fatalf("got %v / %v", a.SourceSpecies, a.TerminalSpecies)
	}
}

func TestAnalyzeSourcesAndSinks(t *testing.T) {
	def := &mech.Definition{
		SpeciesList: []string{"PAR: IGNORE"},
		ReactionList: map[string]string{
			"RXN_1": "OH + CO -> HO2 + CO2",
		},
	}
	m, err := mech.New(def, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Analyze(m)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.SourceSpecies, []string{"CO", "OH"}) {
		t.Fatalf("got %v", a.SourceSpecies)
	}
	if !reflect.DeepEqual(a.TerminalSpecies, []string{"CO2", "HO2"}) {
		t.Fatalf("got %v", a.TerminalSpecies)
	}
	if !reflect.DeepEqual(a.UnusedSpecies, []string{"PAR"}) {
		t.Fatalf("got %v", a.UnusedSpecies)
	}
}

func TestAnalyzeBalance(t *testing.T) {
	def := &mech.Definition{
		SpeciesList: []string{
			"O: O", "O2: O2", "O3: O3", "VOC: IGNORE", "X: O",
		},
		ReactionList: map[string]string{
			"GOOD":    "O + O2 -> O3",
			"BAD":     "O3 -> X",
			"UNKNOWN": "VOC + O3 -> O2",
		},
	}
	m, err := mech.New(def, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Analyze(m)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Unbalanced, []string{"BAD"}) {
		t.Fatalf("got %v", a.Unbalanced)
	}
}
