package tools

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/atmoschem/mex/mech"
)

// Dot writes a Graphviz dot file for the mechanism's reaction
// network.  Species become rounded nodes, reactions become small
// boxes, and edges run reactant -> reaction -> product with
// stoichiometry labels on non-unit coefficients.
//
// The optional highlight can name a species to color red, handy when
// chasing one species through a big mechanism.
func Dot(m *mech.Mechanism, w io.WriteCloser, highlight string) error {
	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [ordering=out,rankdir=LR,nodesep=0.3,ranksep=0.6]
  node [shape="record" style="rounded,filled"]
  edge [fontsize = "12"]
`)

	seen := make(map[string]bool)
	species := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		fillcolor := "#99ddc8"
		color := "black"
		if name == highlight {
			color = "red"
			fillcolor = "#f98b8b"
		}
		fmt.Fprintf(w, "  \"%s\" [shape=\"record\", style=\"rounded,filled\", color=\"%s\", fillcolor=\"%s\", label=<%s> ]\n",
			escape(name), color, fillcolor, name)
	}

	edge := func(from, to string, stoic float64) {
		label := ""
		if stoic != 1 {
			label = fmt.Sprintf("%g", stoic)
		}
		fmt.Fprintf(w, "  \"%s\" -> \"%s\" [ label = <%s> ]\n",
			escape(from), escape(to), label)
	}

	for _, name := range m.ReactionNames() {
		rxn := m.Reactions[name]
		fillcolor := "#52aa5e"
		if rxn.Type == "j" {
			fillcolor = "#2d93ad"
		}
		fmt.Fprintf(w, "  \"%s\" [shape=\"box\", style=\"filled\", fillcolor=\"%s\", fontsize=\"10\", label=<%s> ]\n",
			escape(name), fillcolor, name)

		for _, sn := range sorted(rxn.Reactants) {
			species(sn)
			edge(sn, name, rxn.Reactants[sn])
		}
		for _, sn := range sorted(rxn.Products) {
			species(sn)
			edge(name, sn, rxn.Products[sn])
		}
	}

	fmt.Fprintf(w, "}\n")
	return w.Close()
}

// PNG generates a PNG image based on output from Dot.
//
// This function will write two files: basename.dot and basename.png,
// where the basename is the given string.
func PNG(m *mech.Mechanism, basename, highlight string) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	// ToDo: Use mktemp
	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(m, dotfile, highlight); err != nil {
		return pngname, err
	}
	cmd := "dot -Tpng " + dotname + " > " + pngname
	if err := exec.Command("bash", "-c", cmd).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

func sorted(side map[string]float64) []string {
	acc := make([]string, 0, len(side))
	for name := range side {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}

func escape(s string) string {
	return strings.Replace(s, `"`, `\"`, -1)
}
