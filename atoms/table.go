package atoms

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Table is a known-atoms table: symbol to atomic number.
type Table map[string]int

// Has reports whether the symbol is a known atom.
func (t Table) Has(sym string) bool {
	_, have := t[sym]
	return have
}

// Symbols returns the table's symbols in no particular order.
func (t Table) Symbols() []string {
	acc := make([]string, 0, len(t))
	for sym := range t {
		acc = append(acc, sym)
	}
	return acc
}

// LoadTable reads a YAML map of symbol to atomic number.
func LoadTable(filename string) (Table, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(bs, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// Default covers the atoms that show up in atmospheric mechanisms.
// Load a bigger table with LoadTable if you need one.
var Default = Table{
	"H":  1,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Br": 35,
	"I":  53,
}

// Masses gives atomic masses (g/mol) for the Default table.
var Masses = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Br": 79.904,
	"I":  126.904,
}

// MassOf looks up an atomic mass.
func MassOf(sym string) (float64, error) {
	m, have := Masses[sym]
	if !have {
		return 0, &UnknownAtom{Sym: sym}
	}
	return m, nil
}

// UnknownAtom occurs when a symbol isn't in the table at hand.
type UnknownAtom struct {
	Sym string
}

func (e *UnknownAtom) Error() string {
	return `atom "` + e.Sym + `" is not a known atom`
}
