// Package reaction implements reactions over the species algebra:
// parsed stoichiometric reactions, reaction addition (net reactions),
// species injection, and rate attachment.
package reaction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atmoschem/mex/species"
)

// Reaction is a stoichiometric reaction, optionally carrying an
// attached rate time series.
//
// A Reaction is value-like: every operator returns a new Reaction.
type Reaction struct {
	Reactants map[string]float64
	Products  map[string]float64

	// Type is the rate-type tag from the reaction arrow ("k" for
	// thermal, "j" for photolysis, "net" for synthesized
	// reactions).
	Type string

	// Rate is the attached time series (nil until attached via
	// Mul).
	Rate []float64
}

// New makes an empty reaction of the given type.
func New(typ string) *Reaction {
	return &Reaction{
		Reactants: make(map[string]float64),
		Products:  make(map[string]float64),
		Type:      typ,
	}
}

// Copy makes a deep copy.
func (r *Reaction) Copy() *Reaction {
	acc := New(r.Type)
	for cn, st := range r.Reactants {
		acc.Reactants[cn] = st
	}
	for cn, st := range r.Products {
		acc.Products[cn] = st
	}
	if r.Rate != nil {
		acc.Rate = append([]float64{}, r.Rate...)
	}
	return acc
}

// Species returns the sorted names of everything involved.
func (r *Reaction) Species() []string {
	seen := make(map[string]bool, len(r.Reactants)+len(r.Products))
	for cn := range r.Reactants {
		seen[cn] = true
	}
	for cn := range r.Products {
		seen[cn] = true
	}
	acc := make([]string, 0, len(seen))
	for cn := range seen {
		acc = append(acc, cn)
	}
	sort.Strings(acc)
	return acc
}

// HasReactant reports whether any of the species' reactant-role
// components is a reactant here.
func (r *Reaction) HasReactant(sp *species.Species) bool {
	for cn, c := range sp.Components {
		if !c.Roles.Has(species.Reactant) {
			continue
		}
		if _, have := r.Reactants[cn]; have {
			return true
		}
	}
	return false
}

// HasProduct reports whether any of the species' product-role
// components is a product here.
func (r *Reaction) HasProduct(sp *species.Species) bool {
	for cn, c := range sp.Components {
		if !c.Roles.Has(species.Product) {
			continue
		}
		if _, have := r.Products[cn]; have {
			return true
		}
	}
	return false
}

// Add sums two reactions into a net reaction.  Stoichiometries sum
// per side; rates sum elementwise when both reactions carry one.
func (r *Reaction) Add(o *Reaction) *Reaction {
	acc := r.Copy()
	if acc.Type != o.Type {
		acc.Type = "net"
	}
	for cn, st := range o.Reactants {
		acc.Reactants[cn] += st
	}
	for cn, st := range o.Products {
		acc.Products[cn] += st
	}
	switch {
	case acc.Rate == nil || o.Rate == nil:
		acc.Rate = nil
	default:
		n := len(acc.Rate)
		if len(o.Rate) < n {
			n = len(o.Rate)
		}
		rate := make([]float64, n)
		for i := 0; i < n; i++ {
			rate[i] = acc.Rate[i] + o.Rate[i]
		}
		acc.Rate = rate
	}
	return acc
}

// AddSpecies injects an aggregate species into the reaction.
//
// For each side, the species' components already on that side (with
// the matching role) are summed, weighted by their stoics, and the
// species' own name is added to that side with the total.  So for
// RXN = A -> B + C and S = B + C, RXN.AddSpecies(S) is
// A -> B + C + 2*S.
func (r *Reaction) AddSpecies(sp *species.Species) *Reaction {
	acc := r.Copy()
	rsum, psum := 0.0, 0.0
	for cn, c := range sp.Components {
		if c.Roles.Has(species.Reactant) {
			if st, have := r.Reactants[cn]; have {
				rsum += st * c.Stoic
			}
		}
		if c.Roles.Has(species.Product) {
			if st, have := r.Products[cn]; have {
				psum += st * c.Stoic
			}
		}
	}
	if rsum != 0 {
		acc.Reactants[sp.Name] += rsum
	}
	if psum != 0 {
		acc.Products[sp.Name] += psum
	}
	return acc
}

// Mul attaches a rate time series, multiplying elementwise into any
// rate already attached.
func (r *Reaction) Mul(rate []float64) *Reaction {
	acc := r.Copy()
	if acc.Rate == nil {
		acc.Rate = append([]float64{}, rate...)
		return acc
	}
	n := len(acc.Rate)
	if len(rate) < n {
		n = len(rate)
	}
	acc.Rate = acc.Rate[:n]
	for i := 0; i < n; i++ {
		acc.Rate[i] *= rate[i]
	}
	return acc
}

// Scale multiplies stoichiometries and any attached rate by k.
func (r *Reaction) Scale(k float64) *Reaction {
	acc := r.Copy()
	for cn := range acc.Reactants {
		acc.Reactants[cn] *= k
	}
	for cn := range acc.Products {
		acc.Products[cn] *= k
	}
	for i := range acc.Rate {
		acc.Rate[i] *= k
	}
	return acc
}

// NetStoic is the net production (products minus reactants) of the
// species' components, weighted by the species' stoics.
func (r *Reaction) NetStoic(sp *species.Species) float64 {
	net := 0.0
	for cn, c := range sp.Components {
		if c.Roles.Has(species.Product) {
			net += r.Products[cn] * c.Stoic
		}
		if c.Roles.Has(species.Reactant) {
			net -= r.Reactants[cn] * c.Stoic
		}
	}
	return net
}

// RateOf attributes the attached rate to a species: the rate series
// scaled by the species' net stoichiometry in this reaction.  Returns
// nil when no rate is attached.
func (r *Reaction) RateOf(sp *species.Species) []float64 {
	if r.Rate == nil {
		return nil
	}
	net := r.NetStoic(sp)
	acc := make([]float64, len(r.Rate))
	for i, v := range r.Rate {
		acc[i] = v * net
	}
	return acc
}

// SumRate totals the attached rate series.
func (r *Reaction) SumRate() float64 {
	total := 0.0
	for _, v := range r.Rate {
		total += v
	}
	return total
}

func side(m map[string]float64) string {
	names := make([]string, 0, len(m))
	for cn := range m {
		names = append(names, cn)
	}
	sort.Strings(names)
	terms := make([]string, 0, len(names))
	for _, cn := range names {
		if st := m[cn]; st != 1 {
			terms = append(terms, fmt.Sprintf("%g*%s", st, cn))
		} else {
			terms = append(terms, cn)
		}
	}
	return strings.Join(terms, " + ")
}

func (r *Reaction) String() string {
	arrow := "->"
	if r.Type != "" && r.Type != "k" {
		arrow = "-" + r.Type + ">"
	}
	return side(r.Reactants) + " " + arrow + " " + side(r.Products)
}
