package mech

import (
	"sort"

	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/species"
)

// hasAllReactants reports whether every reactant-role component of
// the species participates in the reaction as a reactant.  Injection
// wants all components present, unlike the any-member matching of
// queries.
func hasAllReactants(rxn *reaction.Reaction, sp *species.Species) bool {
	some := false
	for cn, c := range sp.Components {
		if !c.Roles.Has(species.Reactant) {
			continue
		}
		some = true
		if _, have := rxn.Reactants[cn]; !have {
			return false
		}
	}
	return some
}

func hasAllProducts(rxn *reaction.Reaction, sp *species.Species) bool {
	some := false
	for cn, c := range sp.Components {
		if !c.Roles.Has(species.Product) {
			continue
		}
		some = true
		if _, have := rxn.Products[cn]; !have {
			return false
		}
	}
	return some
}

// inject replaces every selected reaction with reaction + spc and
// registers the species if it's new.  Returns the number of
// reactions modified.
func (m *Mechanism) inject(sp *species.Species, selected []string) int {
	if _, have := m.Species[sp.Name]; !have {
		m.Species[sp.Name] = sp
	}
	for _, name := range selected {
		m.Reactions[name] = m.Reactions[name].AddSpecies(sp)
	}
	if len(selected) > 0 {
		m.invalidate()
	}
	return len(selected)
}

func (m *Mechanism) selectReactions(sp *species.Species, pred func(*reaction.Reaction, *species.Species) bool) []string {
	acc := make([]string, 0, len(m.Reactions))
	for name, rxn := range m.Reactions {
		if pred(rxn, sp) {
			acc = append(acc, name)
		}
	}
	sort.Strings(acc)
	return acc
}

// InjectAsReactant adds spc to every reaction where all of its
// components participate as reactants.  The argument may be a
// *species.Species or a known name.  Returns the number of reactions
// modified.
func (m *Mechanism) InjectAsReactant(spc interface{}) (int, error) {
	sp, err := m.ensureSpecies(spc)
	if err != nil {
		return 0, err
	}
	return m.inject(sp, m.selectReactions(sp, hasAllReactants)), nil
}

// InjectAsProduct adds spc to every reaction where all of its
// components participate as products.
func (m *Mechanism) InjectAsProduct(spc interface{}) (int, error) {
	sp, err := m.ensureSpecies(spc)
	if err != nil {
		return 0, err
	}
	return m.inject(sp, m.selectReactions(sp, hasAllProducts)), nil
}

// Inject runs InjectAsReactant and InjectAsProduct and returns the
// total count.  A reaction matching both ways counts twice.
func (m *Mechanism) Inject(spc interface{}) (int, error) {
	nrct, err := m.InjectAsReactant(spc)
	if err != nil {
		return 0, err
	}
	nprd, err := m.InjectAsProduct(spc)
	if err != nil {
		return nrct, err
	}
	return nrct + nprd, nil
}

// InjectWhere adds spc to every reaction the condition selects.
func (m *Mechanism) InjectWhere(spc interface{}, condition func(*reaction.Reaction) bool) (int, error) {
	sp, err := m.ensureSpecies(spc)
	if err != nil {
		return 0, err
	}
	selected := make([]string, 0, len(m.Reactions))
	for name, rxn := range m.Reactions {
		if condition(rxn) {
			selected = append(selected, name)
		}
	}
	sort.Strings(selected)
	return m.inject(sp, selected), nil
}
