package mech

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Definition is the declarative form of a mechanism, usually loaded
// from YAML.
//
// Example:
//
//	name: toy
//	comment: A *tiny* demonstration mechanism.
//	species_list:
//	  - O3
//	  - "PAR: IGNORE"
//	reaction_list:
//	  RXN_1: NO2 -j> NO + O
//	  RXN_2: O + O2 -> O3
//	species_group_list:
//	  - NOx = NO + NO2
//	net_reaction_list:
//	  O3_PROD: RXN_1 + RXN_2
//	process_group_list:
//	  VertAdv: Top_Adv + Bottom_Adv
type Definition struct {
	Name    string `yaml:"name,omitempty"`
	Comment string `yaml:"comment,omitempty"`

	// SpeciesList declares species, each "NAME" or "NAME: formula"
	// (see species.FromDef).  Species that appear only in
	// reactions don't need declaring.
	SpeciesList []string `yaml:"species_list,omitempty"`

	// ReactionList maps reaction names to reaction strings (see
	// reaction.Parse).
	ReactionList map[string]string `yaml:"reaction_list"`

	// SpeciesGroupList is an ordered list of "NAME = expression"
	// group definitions, evaluated in order, so later groups can
	// use earlier ones.
	SpeciesGroupList []string `yaml:"species_group_list,omitempty"`

	// NetReactionList maps net-reaction names to expressions over
	// reaction names, evaluated on demand.
	NetReactionList map[string]string `yaml:"net_reaction_list,omitempty"`

	// ProcessGroupList maps process-group names to expressions
	// over process names, evaluated when IPR data is attached.
	ProcessGroupList map[string]string `yaml:"process_group_list,omitempty"`

	// Atoms optionally extends the known-atoms table.
	Atoms map[string]int `yaml:"atoms,omitempty"`
}

// ParseDefinition reads a YAML mechanism definition.
func ParseDefinition(bs []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(bs, &def); err != nil {
		return nil, &DefinitionError{What: "definition YAML", Err: err}
	}
	if len(def.ReactionList) == 0 {
		return nil, &DefinitionError{What: "definition", Err: errNoReactions}
	}
	return &def, nil
}

// LoadDefinition reads a YAML mechanism definition from a file.
func LoadDefinition(filename string) (*Definition, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseDefinition(bs)
}
