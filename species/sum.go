package species

// Sum merges a list of species into one.
//
// Component names from non-excluding operands form the include set;
// names from excluding operands form the exclude set.  Membership of
// the result is include minus exclude when that's non-empty,
// otherwise exclude minus include.  When both are empty the sum is
// nothing and Sum fails with EmptySum.
//
// For every surviving name, stoics sum, roles union, and atom counts
// sum across all operands that carry the name, regardless of each
// operand's own exclude flag.
//
// Note that a surviving pure-exclusion set still yields a
// non-excluding result.  That mirrors the sum's historical behavior;
// see TestSumExclusionCollapse.
func Sum(list []*Species) (*Species, error) {
	include := make(map[string]bool)
	exclude := make(map[string]bool)
	for _, sp := range list {
		names := exclude
		if !sp.Exclude {
			names = include
		}
		for cn := range sp.Components {
			names[cn] = true
		}
	}

	out := make(map[string]bool, len(include))
	for cn := range include {
		if !exclude[cn] {
			out[cn] = true
		}
	}
	if len(out) == 0 {
		for cn := range exclude {
			if !include[cn] {
				out[cn] = true
			}
		}
	}
	if len(out) == 0 {
		return nil, EmptySum
	}

	comps := make(map[string]Component, len(out))
	for _, sp := range list {
		for cn, c := range sp.Components {
			if !out[cn] {
				continue
			}
			acc, have := comps[cn]
			if !have {
				acc = Component{Atoms: make(map[string]float64, len(c.Atoms))}
			}
			acc.Stoic += c.Stoic
			acc.Roles |= c.Roles
			for sym, n := range c.Atoms {
				acc.Atoms[sym] += n
			}
			comps[cn] = acc
		}
	}

	return New(comps, "", false), nil
}
