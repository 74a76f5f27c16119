package tools

import (
	"os"
	"testing"

	"github.com/atmoschem/mex/mech"
)

func testMech(t *testing.T) *mech.Mechanism {
	t.Helper()
	def := &mech.Definition{
		Name:    "toy",
		Comment: "A *tiny* demonstration mechanism.",
		ReactionList: map[string]string{
			"RXN_1": "NO2 -j> NO + O",
			"RXN_2": "O + O2 -> O3",
			"RXN_3": "O3 + NO -> NO2 + O2",
		},
		SpeciesGroupList: []string{
			"NOx = NO + NO2",
		},
		NetReactionList: map[string]string{
			"NOCYCLE": "RXN_1 + RXN_2 + RXN_3",
		},
	}
	m, err := mech.New(def, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDot(t *testing.T) {
	filename := "g.dot"

	out, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if err := os.Remove(filename); err != nil {
			t.Fatal(err)
		}
	}()

	if err := Dot(testMech(t), out, "NO2"); err != nil {
		t.Fatal(err)
	}
}
