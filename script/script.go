// Package script evaluates small Javascript predicates against
// reactions.
//
// A condition source sees an environment "_" with the reaction's
// data:
//
//	_.type                     reaction type ("j", "k", "net", ...)
//	_.reactants                map of reactant name to stoichiometry
//	_.products                 map of product name to stoichiometry
//	_.hasReactant("NO")        membership tests
//	_.hasProduct("NO2")
//
// The source is the body of a function, so use "return":
//
//	return _.type == "j" && _.hasProduct("O");
package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/util"

	"github.com/dop251/goja"
)

var (
	// InterruptedMessage is the string value of Interrupted.
	InterruptedMessage = "RuntimeError: timeout"

	// Interrupted is returned when a condition is canceled mid-run.
	Interrupted = errors.New(InterruptedMessage)
)

func wrapSrc(src string) string {
	return fmt.Sprintf("(function() {\n%s\n}());\n", src)
}

// Compile checks a condition source without running it.
func Compile(src string) (*goja.Program, error) {
	return goja.Compile("", wrapSrc(src), true)
}

// env is what a condition sees as "_".
func env(rxn *reaction.Reaction) map[string]interface{} {
	reactants := make(map[string]interface{}, len(rxn.Reactants))
	for name, stoic := range rxn.Reactants {
		reactants[name] = stoic
	}
	products := make(map[string]interface{}, len(rxn.Products))
	for name, stoic := range rxn.Products {
		products[name] = stoic
	}

	has := func(side map[string]float64) func(interface{}) interface{} {
		return func(x interface{}) interface{} {
			switch vv := x.(type) {
			case goja.Value:
				x = vv.Export()
			}
			name, is := x.(string)
			if !is {
				panic("not a species name")
			}
			_, have := side[name]
			return have
		}
	}

	return map[string]interface{}{
		"type":        rxn.Type,
		"reactants":   reactants,
		"products":    products,
		"hasReactant": has(rxn.Reactants),
		"hasProduct":  has(rxn.Products),
	}
}

// run executes the compiled condition against one reaction.
func run(ctx context.Context, p *goja.Program, rxn *reaction.Reaction) (bool, error) {
	o := goja.New()
	o.Set("_", env(rxn))

	// We want to make sure that the following goroutine is
	// terminated as soon as possible.
	ictx, cancel := context.WithCancel(ctx)
	go func() {
		<-ictx.Done()
		o.Interrupt(InterruptedMessage)
	}()

	v, err := o.RunProgram(p)
	cancel()

	if err != nil {
		if _, is := err.(*goja.InterruptedError); is {
			return false, Interrupted
		}
		return false, err
	}

	x := v.Export()
	switch vv := x.(type) {
	case bool:
		return vv, nil
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("%#v (%T) isn't a boolean", x, x)
	}
}

// Condition compiles src into a reaction predicate.
//
// A condition that fails at runtime counts as false; the error is
// logged, not returned, so one bad reaction doesn't abort a sweep
// over a whole mechanism.
func Condition(ctx context.Context, src string) (func(*reaction.Reaction) bool, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return func(rxn *reaction.Reaction) bool {
		ok, err := run(ctx, p, rxn)
		if err != nil {
			util.Logf("script: condition failed on %s: %s", rxn, err)
			return false
		}
		return ok
	}, nil
}
