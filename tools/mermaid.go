package tools

import (
	"fmt"
	"io"

	"github.com/atmoschem/mex/mech"
)

type MermaidOpts struct {
	// ShowStoics will label edges with non-unit stoichiometric
	// coefficients.
	ShowStoics bool `json:"showStoics"`

	// ReactionFill is the fill color for reaction nodes.
	ReactionFill string `json:"reactionFill,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the mechanism's reaction network.  Species render as rounded
// nodes and reactions as boxes.
func Mermaid(m *mech.Mechanism, w io.WriteCloser, opts *MermaidOpts) error {
	if opts == nil {
		opts = &MermaidOpts{
			ShowStoics:   true,
			ReactionFill: "#bcf2db",
		}
	}

	fmt.Fprintf(w, "graph LR\n")

	nids := make(map[string]string)
	num := 0

	species := func(name string) string {
		if nid, already := nids[name]; already {
			return nid
		}
		num++
		nid := fmt.Sprintf("n%d", num)
		nids[name] = nid
		fmt.Fprintf(w, "  %s(\"%s\")\n", nid, name)
		return nid
	}

	edge := func(from, to string, stoic float64) {
		label := ""
		if opts.ShowStoics && stoic != 1 {
			label = fmt.Sprintf(`-- "%g"`, stoic)
		}
		fmt.Fprintf(w, "  %s %s --> %s\n", from, label, to)
	}

	for _, name := range m.ReactionNames() {
		rxn := m.Reactions[name]

		num++
		nid := fmt.Sprintf("n%d", num)
		fmt.Fprintf(w, "  %s[\"%s\"]\n", nid, name)
		if opts.ReactionFill != "" {
			fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.ReactionFill)
		}

		for _, sn := range sorted(rxn.Reactants) {
			edge(species(sn), nid, rxn.Reactants[sn])
		}
		for _, sn := range sorted(rxn.Products) {
			edge(nid, species(sn), rxn.Products[sn])
		}
	}

	fmt.Fprintf(w, "\n")
	return w.Close()
}
