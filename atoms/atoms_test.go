package atoms

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestParseFormula(t *testing.T) {
	counts, err := ParseFormula("2H + O")
	if err != nil {
		t.Fatal(err)
	}
	if counts["H"] != 2 || counts["O"] != 1 {
		t.Fatalf("got %v", counts)
	}
}

func TestParseFormulaAccumulates(t *testing.T) {
	counts, err := ParseFormula("H + H + 0.5O")
	if err != nil {
		t.Fatal(err)
	}
	if counts["H"] != 2 {
		t.Fatalf("H: got %v", counts["H"])
	}
	if counts["O"] != 0.5 {
		t.Fatalf("O: got %v", counts["O"])
	}
}

func TestParseFormulaSigned(t *testing.T) {
	counts, err := ParseFormula("2O + -1O")
	if err != nil {
		t.Fatal(err)
	}
	if counts["O"] != 1 {
		t.Fatalf("got %v", counts)
	}
}

func TestGuessName(t *testing.T) {
	counts := Guess("HO2", Default)
	if counts["H"] != 1 || counts["O"] != 2 {
		t.Fatalf("got %v", counts)
	}
}

func TestGuessLongestSymbolFirst(t *testing.T) {
	// "Cl" must not be read as "C" followed by junk.
	counts := Guess("Cl2", Default)
	if counts["Cl"] != 2 {
		t.Fatalf("got %v", counts)
	}
	if _, have := counts["C"]; have {
		t.Fatalf("got %v", counts)
	}
}

func TestGuessFormulaDelegation(t *testing.T) {
	// A '+' or leading digit means the name is really a formula.
	counts := Guess("2H + O", Default)
	if counts["H"] != 2 || counts["O"] != 1 {
		t.Fatalf("got %v", counts)
	}
}

func TestGuessIgnoresJunk(t *testing.T) {
	counts := Guess("XYLENE", Default)
	// X is unknown and skipped; the rest matches what it matches.
	if _, have := counts["X"]; have {
		t.Fatalf("got %v", counts)
	}
}

func TestLoadTable(t *testing.T) {
	f, err := ioutil.TempFile("", "atoms-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString("H: 1\nO: 8\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tab, err := LoadTable(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !tab.Has("O") || tab["H"] != 1 {
		t.Fatalf("got %v", tab)
	}
}

func TestMassOf(t *testing.T) {
	if _, err := MassOf("Xx"); err == nil {
		t.Fatal("expected an error")
	}
	m, err := MassOf("O")
	if err != nil {
		t.Fatal(err)
	}
	if m < 15 || m > 17 {
		t.Fatalf("got %v", m)
	}
}
