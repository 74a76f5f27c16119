package tools

import (
	"math"
	"sort"

	"github.com/atmoschem/mex/mech"
)

// MechAnalysis reports structural properties of a mechanism that
// usually indicate trouble in a hand-written definition.
type MechAnalysis struct {
	ReactionCount int
	SpeciesCount  int

	// Photolysis lists the reactions with a photolysis rate type.
	Photolysis []string

	// SourceSpecies are consumed but never produced; in a
	// complete mechanism these should be emissions or initial
	// conditions only.
	SourceSpecies []string

	// TerminalSpecies are produced but never consumed.
	TerminalSpecies []string

	// UnusedSpecies are declared but appear in no reaction.
	UnusedSpecies []string

	// Unbalanced lists reactions whose atom totals differ between
	// sides.  Reactions with species lacking atom data aren't
	// checked.
	Unbalanced []string
}

// Analyze inspects the mechanism's reaction network.
func Analyze(m *mech.Mechanism) (*MechAnalysis, error) {
	a := MechAnalysis{
		ReactionCount: len(m.Reactions),
		SpeciesCount:  len(m.Species),
	}

	consumed, produced := make(map[string]bool), make(map[string]bool)
	inReaction := make(map[string]bool)

	for _, name := range m.ReactionNames() {
		rxn := m.Reactions[name]
		if rxn.Type == "j" {
			a.Photolysis = append(a.Photolysis, name)
		}
		for sn := range rxn.Reactants {
			consumed[sn] = true
			inReaction[sn] = true
		}
		for sn := range rxn.Products {
			produced[sn] = true
			inReaction[sn] = true
		}
		balanced, known := atomBalance(m, name)
		if known && !balanced {
			a.Unbalanced = append(a.Unbalanced, name)
		}
	}

	a.SourceSpecies = keysToStringSlice(diffKeys(consumed, produced))
	a.TerminalSpecies = keysToStringSlice(diffKeys(produced, consumed))

	unused := make(map[string]bool)
	for name, sp := range m.Species {
		// Groups aggregate other species; only singles count.
		if len(sp.Components) != 1 {
			continue
		}
		if _, have := sp.Components[name]; !have {
			continue
		}
		if !inReaction[name] {
			unused[name] = true
		}
	}
	a.UnusedSpecies = keysToStringSlice(unused)

	return &a, nil
}

// atomBalance compares atom totals across a reaction.  The second
// result is false when any participating species has no atom data.
func atomBalance(m *mech.Mechanism, name string) (balanced, known bool) {
	rxn := m.Reactions[name]

	side := func(stoics map[string]float64) (map[string]float64, bool) {
		acc := map[string]float64{}
		for sn, stoic := range stoics {
			sp, have := m.Species[sn]
			if !have {
				return nil, false
			}
			c, have := sp.Components[sn]
			if !have || len(c.Atoms) == 0 {
				return nil, false
			}
			for atom, count := range c.Atoms {
				acc[atom] += stoic * count
			}
		}
		return acc, true
	}

	lhs, ok := side(rxn.Reactants)
	if !ok {
		return false, false
	}
	rhs, ok := side(rxn.Products)
	if !ok {
		return false, false
	}

	for atom, n := range lhs {
		if math.Abs(rhs[atom]-n) > 1e-9 {
			return false, true
		}
	}
	for atom, n := range rhs {
		if math.Abs(lhs[atom]-n) > 1e-9 {
			return false, true
		}
	}
	return true, true
}

func keysToStringSlice(m map[string]bool) []string {
	list := make([]string, 0, len(m))
	for key := range m {
		list = append(list, key)
	}
	sort.Strings(list)
	return list
}

func diffKeys(all, used map[string]bool) map[string]bool {
	diff := make(map[string]bool)
	for key := range all {
		if !used[key] {
			diff[key] = true
		}
	}
	return diff
}
