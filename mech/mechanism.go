// Package mech owns the mechanism registry: the species, reactions,
// species groups, and net-reaction definitions of one chemical
// mechanism, plus the query and synthesis operations over them.
package mech

import (
	"sort"
	"strings"

	"github.com/atmoschem/mex/atoms"
	"github.com/atmoschem/mex/expr"
	"github.com/atmoschem/mex/rates"
	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/species"
)

// Mechanism is the central repository for information about a
// chemical model: species, reactions, species groups (NOy and
// friends), and net reactions.
//
// A Mechanism is built once from a Definition.  Species and Reaction
// objects are value-like; the registry maps themselves are mutated
// only by the Inject operations and by rate attachment.  A Mechanism
// is not safe for concurrent mutation.
type Mechanism struct {
	Def   *Definition
	Atoms atoms.Table

	// Species maps names to species and species groups.
	Species map[string]*species.Species

	// Reactions maps names to parsed reactions.
	Reactions map[string]*reaction.Reaction

	// NetReactionDefs holds net-reaction expressions, evaluated on
	// demand and never written back into Reactions.
	NetReactionDefs map[string]string

	// Rated maps reaction and net-reaction names to rate-carrying
	// reactions once AttachIRR has run.
	Rated map[string]*reaction.Reaction

	// Processes maps process and process-group names to rate
	// series once AttachIPR has run.
	Processes map[string]*rates.Process

	env expr.MapEnv
}

// New builds a Mechanism from a definition.
//
// Declared species become single-component species; reaction strings
// are parsed; species referenced by reactions but not declared are
// registered automatically; species-group expressions are evaluated
// in order; net-reaction expressions are stored unevaluated.
//
// A nil table means atoms.Default.  The definition's own atoms
// extend the table.
func New(def *Definition, tab atoms.Table) (*Mechanism, error) {
	if tab == nil {
		tab = atoms.Default
	}
	if len(def.Atoms) > 0 {
		extended := make(atoms.Table, len(tab)+len(def.Atoms))
		for sym, n := range tab {
			extended[sym] = n
		}
		for sym, n := range def.Atoms {
			extended[sym] = n
		}
		tab = extended
	}

	m := &Mechanism{
		Def:             def,
		Atoms:           tab,
		Species:         make(map[string]*species.Species, len(def.SpeciesList)),
		Reactions:       make(map[string]*reaction.Reaction, len(def.ReactionList)),
		NetReactionDefs: make(map[string]string, len(def.NetReactionList)),
	}

	for _, spcDef := range def.SpeciesList {
		sp, err := species.FromDef(spcDef, tab)
		if err != nil {
			return nil, &DefinitionError{What: "species " + spcDef, Err: err}
		}
		m.Species[sp.Name] = sp
	}

	for name, text := range def.ReactionList {
		rxn, err := reaction.Parse(text)
		if err != nil {
			return nil, &DefinitionError{What: "reaction " + name, Err: err}
		}
		m.Reactions[name] = rxn
		for _, cn := range rxn.Species() {
			if _, have := m.Species[cn]; !have {
				m.Species[cn] = species.Single(cn, tab)
			}
		}
	}

	for _, grpDef := range def.SpeciesGroupList {
		if err := m.addSpeciesGroup(grpDef); err != nil {
			return nil, err
		}
	}

	for name, src := range def.NetReactionList {
		m.NetReactionDefs[name] = src
	}

	return m, nil
}

// addSpeciesGroup evaluates one "NAME = expression" group definition
// against the species known so far and stores the result under the
// group name.
func (m *Mechanism) addSpeciesGroup(grpDef string) error {
	i := strings.Index(grpDef, "=")
	if i < 0 {
		return &DefinitionError{What: "species group " + grpDef, Err: errNoEquals}
	}
	name := strings.TrimSpace(grpDef[:i])
	src := strings.TrimSpace(grpDef[i+1:])
	if name == "" || src == "" {
		return &DefinitionError{What: "species group " + grpDef, Err: errNoEquals}
	}

	env := make(expr.MapEnv, len(m.Species))
	for cn, sp := range m.Species {
		env[cn] = sp
	}
	v, err := expr.Eval(src, env)
	if err != nil {
		return &DefinitionError{What: "species group " + name, Err: err}
	}
	sp, is := v.(*species.Species)
	if !is {
		return &DefinitionError{What: "species group " + name, Err: errNotSpecies}
	}
	sp = sp.Copy()
	sp.Name = name
	m.Species[name] = sp
	m.invalidate()
	return nil
}

// AddReaction parses and registers one more reaction, auto-declaring
// any new species.
func (m *Mechanism) AddReaction(name, text string) error {
	rxn, err := reaction.Parse(text)
	if err != nil {
		return &DefinitionError{What: "reaction " + name, Err: err}
	}
	m.Reactions[name] = rxn
	for _, cn := range rxn.Species() {
		if _, have := m.Species[cn]; !have {
			m.Species[cn] = species.Single(cn, m.Atoms)
		}
	}
	m.invalidate()
	return nil
}

// ReactionNames returns the sorted reaction names.
func (m *Mechanism) ReactionNames() []string {
	acc := make([]string, 0, len(m.Reactions))
	for name := range m.Reactions {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}

// SpeciesNames returns the sorted species and species-group names.
func (m *Mechanism) SpeciesNames() []string {
	acc := make([]string, 0, len(m.Species))
	for name := range m.Species {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}

// invalidate throws the expression environment away; it's rebuilt on
// the next use.
func (m *Mechanism) invalidate() {
	m.env = nil
}

// environment maps every species, reaction, net-reaction, and
// process name to its current object.  When rates are attached,
// reaction names resolve to rate-carrying reactions and net-reaction
// names to their materialized sums.
func (m *Mechanism) environment() expr.MapEnv {
	if m.env != nil {
		return m.env
	}
	env := make(expr.MapEnv, len(m.Species)+len(m.Reactions)+len(m.Processes))
	for name, sp := range m.Species {
		env[name] = sp
	}
	for name, p := range m.Processes {
		env[name] = p
	}
	if m.Rated != nil {
		for name, rxn := range m.Rated {
			env[name] = rxn
		}
	} else {
		for name, rxn := range m.Reactions {
			env[name] = rxn
		}
	}
	m.env = env
	return env
}

// Eval evaluates an expression ("NOx - NO2", "RXN_1 + RXN_2") in the
// context of the mechanism.
func (m *Mechanism) Eval(src string) (interface{}, error) {
	return expr.Eval(src, m.environment())
}

// Get resolves a single name to its current object.
func (m *Mechanism) Get(name string) (interface{}, error) {
	v, have := m.environment().Lookup(name)
	if !have {
		return nil, &UnknownName{Name: name}
	}
	return v, nil
}

// ensureSpecies resolves a query argument: a *species.Species passes
// through; a string must name a known species.
func (m *Mechanism) ensureSpecies(x interface{}) (*species.Species, error) {
	switch v := x.(type) {
	case *species.Species:
		return v, nil
	case string:
		sp, have := m.Species[v]
		if !have {
			return nil, &UnknownName{Name: v}
		}
		return sp, nil
	}
	return nil, &UnknownName{Name: "non-species query argument"}
}

// NetReaction evaluates a declared net-reaction expression on
// demand.  The result is not cached.
func (m *Mechanism) NetReaction(name string) (*reaction.Reaction, error) {
	src, have := m.NetReactionDefs[name]
	if !have {
		return nil, &UnknownName{Name: name}
	}
	v, err := m.Eval(src)
	if err != nil {
		return nil, &DefinitionError{What: "net reaction " + name, Err: err}
	}
	rxn, is := v.(*reaction.Reaction)
	if !is {
		return nil, &DefinitionError{What: "net reaction " + name, Err: errNotReaction}
	}
	return rxn, nil
}
