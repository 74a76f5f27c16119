// Package species implements the species algebra: named aggregates of
// components with stoichiometries, role tags, and atom counts, which
// combine under addition, subtraction, scaling, and subset extraction.
//
// A Species is value-like.  Every operator returns a new Species; the
// only in-place normalization happens once, at construction.
package species

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atmoschem/mex/atoms"
)

// RoleSet says how a component participates: as a reactant, a
// product, or unspecified.  A component can carry several roles.
type RoleSet uint8

const (
	Reactant RoleSet = 1 << iota
	Product
	Unspecified

	// AllRoles is the default for a component whose role wasn't
	// given at construction.
	AllRoles = Reactant | Product | Unspecified
)

// Has reports whether every role in r is in rs.
func (rs RoleSet) Has(r RoleSet) bool {
	return rs&r == r
}

// SubsetOf reports whether rs is a subset of o.
func (rs RoleSet) SubsetOf(o RoleSet) bool {
	return rs&^o == 0
}

func (rs RoleSet) String() string {
	var b strings.Builder
	if rs.Has(Product) {
		b.WriteByte('p')
	}
	if rs.Has(Reactant) {
		b.WriteByte('r')
	}
	if rs.Has(Unspecified) {
		b.WriteByte('u')
	}
	return b.String()
}

// Component is one entry within a Species.
//
// The zero Component means stoic 1, all roles, no atoms: construction
// fills those defaults in.
type Component struct {
	Stoic float64
	Roles RoleSet
	Atoms map[string]float64
}

func (c Component) copy() Component {
	as := make(map[string]float64, len(c.Atoms))
	for sym, n := range c.Atoms {
		as[sym] = n
	}
	c.Atoms = as
	return c
}

// Species is a named algebraic aggregate over components.
//
// When Exclude is true, the Species denotes "everything except these
// components" for later combination; it is a complement marker, not a
// computed set.
type Species struct {
	Name       string
	Exclude    bool
	Components map[string]Component
}

// New builds a Species from a component mapping.
//
// The components are copied.  A wholly zero Component gets stoic 1; a
// zero RoleSet becomes AllRoles; nil atoms become an empty map.  An
// empty name is synthesized from the sorted component keys.
func New(components map[string]Component, name string, exclude bool) *Species {
	comps := make(map[string]Component, len(components))
	for cn, c := range components {
		if c.Stoic == 0 && c.Roles == 0 && c.Atoms == nil {
			c.Stoic = 1
		}
		if c.Roles == 0 {
			c.Roles = AllRoles
		}
		c = c.copy()
		comps[cn] = c
	}
	s := &Species{
		Name:       name,
		Exclude:    exclude,
		Components: comps,
	}
	if name == "" {
		sep, prefix := "+", ""
		if exclude {
			sep, prefix = "-", "-"
		}
		s.Name = prefix + strings.Join(s.Names(), sep)
	}
	return s
}

// FromDef builds a single-component Species from a "name: formula"
// definition.  The colon and formula are optional.
//
// An empty or "GUESS" formula derives atoms from the name; "IGNORE"
// leaves the atoms empty; anything else derives atoms from the
// formula text.
func FromDef(def string, tab atoms.Table) (*Species, error) {
	name, formula := def, ""
	if i := strings.Index(def, ":"); 0 <= i {
		name, formula = def[:i], def[i+1:]
	}
	name = strings.TrimSpace(name)
	formula = strings.TrimSpace(formula)
	if name == "" {
		return nil, fmt.Errorf("species definition %q has no name", def)
	}

	var counts map[string]float64
	switch formula {
	case "", "GUESS":
		counts = atoms.Guess(name, tab)
	case "IGNORE":
		counts = map[string]float64{}
	default:
		counts = atoms.Guess(formula, tab)
	}

	return New(map[string]Component{
		name: {Stoic: 1, Roles: AllRoles, Atoms: counts},
	}, name, false), nil
}

// Single builds a declared species: one self-named component with
// stoic 1 and guessed atoms.
func Single(name string, tab atoms.Table) *Species {
	return New(map[string]Component{
		name: {Stoic: 1, Roles: AllRoles, Atoms: atoms.Guess(name, tab)},
	}, name, false)
}

// Names returns the sorted component names.
func (s *Species) Names() []string {
	acc := make([]string, 0, len(s.Components))
	for cn := range s.Components {
		acc = append(acc, cn)
	}
	sort.Strings(acc)
	return acc
}

// Neg flips the exclude flag: "NOT this set" for later combination.
func (s *Species) Neg() *Species {
	return New(s.Components, "-("+s.Name+")", !s.Exclude)
}

// Scale multiplies every component's stoic by k.  The result is
// excluding when k <= 0.
func (s *Species) Scale(k float64) *Species {
	comps := make(map[string]Component, len(s.Components))
	for cn, c := range s.Components {
		c = c.copy()
		c.Stoic *= k
		comps[cn] = c
	}
	return New(comps, fmt.Sprintf("%s * %f", s.Name, k), k <= 0)
}

// Add combines two species under the merge rules of Sum.
func (s *Species) Add(o *Species) (*Species, error) {
	return Sum([]*Species{s, o})
}

// Sub is s + (-o).
func (s *Species) Sub(o *Species) (*Species, error) {
	return Sum([]*Species{s, o.Neg()})
}

// Get extracts the subset of s that the probe names, with the probe's
// roles.  A probe component qualifies when s has a component of the
// same name whose stored roles cover the probe's roles.
//
// In the output, stoics multiply (probe x s) and s's atom data wins
// on symbol collision.  When nothing qualifies, Get fails with a
// NotFound error.
func (s *Species) Get(probe *Species) (*Species, error) {
	out := make(map[string]Component, len(probe.Components))
	for cn, pc := range probe.Components {
		sc, have := s.Components[cn]
		if !have || !pc.Roles.SubsetOf(sc.Roles) {
			continue
		}
		as := make(map[string]float64, len(pc.Atoms)+len(sc.Atoms))
		for sym, n := range pc.Atoms {
			as[sym] = n
		}
		for sym, n := range sc.Atoms {
			as[sym] = n
		}
		out[cn] = Component{
			Stoic: pc.Stoic * sc.Stoic,
			Roles: pc.Roles,
			Atoms: as,
		}
	}
	if len(out) == 0 {
		return nil, &NotFound{Probe: probe.Name, In: s.Name}
	}
	return New(out, "", probe.Exclude), nil
}

// GetName is Get with a bare name treated as a full-role probe.
func (s *Species) GetName(name string) (*Species, error) {
	probe := New(map[string]Component{name: {Stoic: 1}}, name, false)
	return s.Get(probe)
}

// Contains reports whether the two species share a component name.
func (s *Species) Contains(o *Species) bool {
	for cn := range o.Components {
		if _, have := s.Components[cn]; have {
			return true
		}
	}
	return false
}

// ContainsName reports whether name is one of s's components.
func (s *Species) ContainsName(name string) bool {
	_, have := s.Components[name]
	return have
}

// ContainsRole reports whether component name participates in s with
// the given role.
func (s *Species) ContainsRole(name string, r RoleSet) (bool, error) {
	c, have := s.Components[name]
	if !have {
		return false, &NotFound{Probe: name, In: s.Name}
	}
	return c.Roles.Has(r), nil
}

// Stoic sums the stoics of all components.
func (s *Species) Stoic() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.Stoic
	}
	return total
}

// StoicOf projects through Get first, then sums.
func (s *Species) StoicOf(probe *Species) (float64, error) {
	sub, err := s.Get(probe)
	if err != nil {
		return 0, err
	}
	return sub.Stoic(), nil
}

// StoicOfName is StoicOf with a bare name.
func (s *Species) StoicOfName(name string) (float64, error) {
	sub, err := s.GetName(name)
	if err != nil {
		return 0, err
	}
	return sub.Stoic(), nil
}

// Roles returns the role set shared by every component, or
// Unspecified when the components disagree.
func (s *Species) Roles() RoleSet {
	var first RoleSet
	got := false
	for _, c := range s.Components {
		if !got {
			first, got = c.Roles, true
			continue
		}
		if c.Roles != first {
			return Unspecified
		}
	}
	return first
}

// RolesOf projects through Get first.
func (s *Species) RolesOf(probe *Species) (RoleSet, error) {
	sub, err := s.Get(probe)
	if err != nil {
		return 0, err
	}
	return sub.Roles(), nil
}

// HasAtom reports whether any component contains the atom.  The
// symbol must be in the table.
func (s *Species) HasAtom(sym string, tab atoms.Table) (bool, error) {
	if !tab.Has(sym) {
		return false, &atoms.UnknownAtom{Sym: sym}
	}
	for _, c := range s.Components {
		if c.Atoms[sym] != 0 {
			return true, nil
		}
	}
	return false, nil
}

// Atoms extracts the sub-Species of components containing the atom,
// with each stoic scaled by that component's atom count.
func (s *Species) Atoms(sym string, tab atoms.Table) (*Species, error) {
	if !tab.Has(sym) {
		return nil, &atoms.UnknownAtom{Sym: sym}
	}
	out := make(map[string]Component, len(s.Components))
	for cn, c := range s.Components {
		n := c.Atoms[sym]
		if n <= 0 {
			continue
		}
		c = c.copy()
		c.Stoic *= n
		out[cn] = c
	}
	if len(out) == 0 {
		return nil, &NotFound{Probe: sym, In: s.Name}
	}
	return New(out, s.Name+":"+sym, s.Exclude), nil
}

// Mass sums atomic masses over all components, weighted by stoics and
// atom counts.
func (s *Species) Mass(masses map[string]float64) (float64, error) {
	total := 0.0
	for _, c := range s.Components {
		for sym, n := range c.Atoms {
			m, have := masses[sym]
			if !have {
				return 0, &atoms.UnknownAtom{Sym: sym}
			}
			total += c.Stoic * n * m
		}
	}
	return total, nil
}

func (s *Species) withRoles(r RoleSet) *Species {
	comps := make(map[string]Component, len(s.Components))
	for cn, c := range s.Components {
		c = c.copy()
		c.Roles = r
		comps[cn] = c
	}
	return New(comps, s.Name, s.Exclude)
}

// Reactant returns a copy with every component's role forced to
// reactant.
func (s *Species) Reactant() *Species { return s.withRoles(Reactant) }

// Product returns a copy with every component's role forced to
// product.
func (s *Species) Product() *Species { return s.withRoles(Product) }

// Unspec returns a copy with every component's role forced to
// unspecified.
func (s *Species) Unspec() *Species { return s.withRoles(Unspecified) }

// Copy makes a deep copy.
func (s *Species) Copy() *Species {
	return New(s.Components, s.Name, s.Exclude)
}

// Equal compares components and the exclude flag.  Names don't
// matter.
func (s *Species) Equal(o *Species) bool {
	if s.Exclude != o.Exclude || len(s.Components) != len(o.Components) {
		return false
	}
	for cn, c := range s.Components {
		oc, have := o.Components[cn]
		if !have || c.Stoic != oc.Stoic || c.Roles != oc.Roles {
			return false
		}
		if len(c.Atoms) != len(oc.Atoms) {
			return false
		}
		for sym, n := range c.Atoms {
			if oc.Atoms[sym] != n {
				return false
			}
		}
	}
	return true
}

func (s *Species) String() string {
	if len(s.Components) == 1 {
		for cn, c := range s.Components {
			if cn == s.Name && c.Stoic == 1 {
				roles := c.Roles.String()
				if roles == "pru" {
					return s.Name
				}
				return s.Name + "(" + roles + ")"
			}
		}
	}
	op := " = "
	if s.Exclude {
		op = " != "
	}
	terms := make([]string, 0, len(s.Components))
	for _, cn := range s.Names() {
		c := s.Components[cn]
		term := fmt.Sprintf("%.3f*%s", c.Stoic, cn)
		if roles := c.Roles.String(); roles != "pru" {
			term += "(" + roles + ")"
		}
		terms = append(terms, term)
	}
	return s.Name + op + strings.Join(terms, " + ")
}
