package mech

import (
	"sort"
	"strings"

	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/species"
)

// FindReactions returns the sorted names of reactions matching the
// criteria.
//
// Arguments in reactants and products may be *species.Species or bare
// names.  A reaction matches the reactant side when HasReactant holds
// for every listed species (conjunctive within the list); the product
// side works the same way through HasProduct.  The two partial
// results combine by intersection when and is true, union otherwise.
// An unlisted side matches every reaction, so omitting one side under
// OR also matches everything.
func (m *Mechanism) FindReactions(reactants, products []interface{}, and bool) ([]string, error) {
	rcts, err := m.resolve(reactants)
	if err != nil {
		return nil, err
	}
	prds, err := m.resolve(products)
	if err != nil {
		return nil, err
	}

	rctResult := m.filter(rcts, (*reaction.Reaction).HasReactant)
	prdResult := m.filter(prds, (*reaction.Reaction).HasProduct)

	var result []string
	if and {
		set := make(map[string]bool, len(rctResult))
		for _, name := range rctResult {
			set[name] = true
		}
		for _, name := range prdResult {
			if set[name] {
				result = append(result, name)
			}
		}
	} else {
		set := make(map[string]bool, len(rctResult)+len(prdResult))
		for _, name := range rctResult {
			set[name] = true
		}
		for _, name := range prdResult {
			set[name] = true
		}
		result = make([]string, 0, len(set))
		for name := range set {
			result = append(result, name)
		}
	}

	sort.Strings(result)
	return result, nil
}

func (m *Mechanism) resolve(args []interface{}) ([]*species.Species, error) {
	acc := make([]*species.Species, 0, len(args))
	for _, arg := range args {
		sp, err := m.ensureSpecies(arg)
		if err != nil {
			return nil, err
		}
		acc = append(acc, sp)
	}
	return acc, nil
}

// filter returns the reaction names for which the predicate holds for
// every listed species.  An empty list matches all reactions.
func (m *Mechanism) filter(spcs []*species.Species, pred func(*reaction.Reaction, *species.Species) bool) []string {
	acc := make([]string, 0, len(m.Reactions))
NAMES:
	for name, rxn := range m.Reactions {
		for _, sp := range spcs {
			if !pred(rxn, sp) {
				continue NAMES
			}
		}
		acc = append(acc, name)
	}
	return acc
}

// MakeNetReaction sums every reaction matching the query into one net
// reaction, evaluated through the expression environment (so rated
// reactions sum rates too).  Fails with EmptyResult when the query
// matches nothing.
func (m *Mechanism) MakeNetReaction(reactants, products []interface{}, and bool) (*reaction.Reaction, error) {
	names, err := m.FindReactions(reactants, products, and)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &EmptyResult{Query: queryString(reactants, products, and)}
	}
	v, err := m.Eval(strings.Join(names, " + "))
	if err != nil {
		return nil, err
	}
	return v.(*reaction.Reaction), nil
}

func queryString(reactants, products []interface{}, and bool) string {
	part := func(args []interface{}) string {
		terms := make([]string, 0, len(args))
		for _, arg := range args {
			switch v := arg.(type) {
			case string:
				terms = append(terms, v)
			case *species.Species:
				terms = append(terms, v.Name)
			}
		}
		return strings.Join(terms, ",")
	}
	op := " OR "
	if and {
		op = " AND "
	}
	return "reactants(" + part(reactants) + ")" + op + "products(" + part(products) + ")"
}
