// Package main is a command-line utility to query chemical
// mechanisms.
//
//	mexq -f mech.yaml -r O3,NO -and
//	mexq -f mech.yaml -p NO2 -net
//	mexq -f mech.yaml -e 'NOx - NO2'
//	mexq -f mech.yaml -c 'return _.type == "j";'
//	mexq -f mech.yaml -irr rates.db -e 'NOCYCLE'
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atmoschem/mex/mech"
	"github.com/atmoschem/mex/rates"
	"github.com/atmoschem/mex/script"
	"github.com/atmoschem/mex/tools"
	"github.com/atmoschem/mex/util"

	"github.com/jsccast/yaml"
)

func main() {
	var (
		defFile = flag.String("f", "", "mechanism definition in YAML")

		reactantsCSV = flag.String("r", "", "comma-separated reactant names to query")
		productsCSV  = flag.String("p", "", "comma-separated product names to query")
		conjunction  = flag.Bool("and", false, "require every query term to match")
		makeNet      = flag.Bool("net", false, "combine the matching reactions into a net reaction")

		exprSrc = flag.String("e", "", "expression to evaluate")
		condSrc = flag.String("c", "", "Javascript condition to filter reactions")

		irrFile = flag.String("irr", "", "attach integrated reaction rates from this bbolt file")
		iprFile = flag.String("ipr", "", "attach integrated process rates from this bbolt file")

		dotOut  = flag.Bool("dot", false, "write a Graphviz rendering to stdout")
		htmlOut = flag.Bool("html", false, "write an HTML report to stdout")
		analyze = flag.Bool("analyze", false, "report structural problems")

		yamlOut = flag.Bool("yaml", false, "print results as YAML instead of JSON")
		verbose = flag.Bool("v", false, "verbosity")
	)

	flag.Parse()

	util.Logging = *verbose

	if *defFile == "" {
		fmt.Fprintf(os.Stderr, "-f is required\n")
		os.Exit(1)
	}

	def, err := mech.LoadDefinition(*defFile)
	if err != nil {
		panic(err)
	}
	m, err := mech.New(def, nil)
	if err != nil {
		panic(err)
	}

	attach := func(filename string, do func(rates.Store) error) {
		store := rates.NewBoltStore(filename)
		if err := store.Open(); err != nil {
			panic(err)
		}
		defer store.Close()
		if err := do(store); err != nil {
			panic(err)
		}
	}
	if *irrFile != "" {
		attach(*irrFile, m.AttachIRR)
	}
	if *iprFile != "" {
		attach(*iprFile, m.AttachIPR)
	}

	render := func(x interface{}) {
		var bs []byte
		var err error
		if *yamlOut {
			bs, err = yaml.Marshal(x)
		} else {
			bs, err = json.MarshalIndent(x, "", "  ")
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s\n", bs)
	}

	switch {
	case *dotOut:
		if err := tools.Dot(m, os.Stdout, ""); err != nil {
			panic(err)
		}
		return
	case *htmlOut:
		if err := tools.RenderMechanismPage(m, os.Stdout, nil); err != nil {
			panic(err)
		}
		return
	case *analyze:
		a, err := tools.Analyze(m)
		if err != nil {
			panic(err)
		}
		render(a)
		return
	case *exprSrc != "":
		v, err := m.Eval(*exprSrc)
		if err != nil {
			panic(err)
		}
		render(v)
		return
	case *condSrc != "":
		cond, err := script.Condition(context.Background(), *condSrc)
		if err != nil {
			panic(err)
		}
		names := make([]string, 0, len(m.Reactions))
		for _, name := range m.ReactionNames() {
			if cond(m.Reactions[name]) {
				names = append(names, name)
			}
		}
		render(names)
		return
	}

	names, err := m.FindReactions(terms(*reactantsCSV), terms(*productsCSV), *conjunction)
	if err != nil {
		panic(err)
	}

	if *makeNet {
		net, err := m.MakeNetReaction(terms(*reactantsCSV), terms(*productsCSV), *conjunction)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s\n", net)
		if *verbose {
			render(net)
		}
		return
	}

	render(names)
}

// terms splits a comma-separated flag value into query terms.
func terms(csv string) []interface{} {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	acc := make([]interface{}, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			acc = append(acc, part)
		}
	}
	return acc
}
