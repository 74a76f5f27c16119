package main

import (
	"context"
	"fmt"

	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/script"
	"github.com/atmoschem/mex/tools"
	. "github.com/atmoschem/mex/util/testutil"
)

// SOp is a Service Operation.
//
// Only one of Find, Eval, Inject, or Analyze should have a value.
type SOp struct {
	// Find queries reactions by reactants and products.
	Find *OpFind `json:"find,omitempty" yaml:",omitempty"`

	// Eval evaluates an expression against the mechanism.
	Eval *OpEval `json:"eval,omitempty" yaml:",omitempty"`

	// Inject adds an aggregate species to matching reactions.
	Inject *OpInject `json:"inject,omitempty" yaml:",omitempty"`

	// Analyze reports structural problems in the mechanism.
	Analyze *OpAnalyze `json:"analyze,omitempty" yaml:",omitempty"`

	// Error will hold an error (if any) that results from
	// processing this operation.
	Error error `json:"-" yaml:"-"`

	// Err will hold a string representation of an error (if any)
	// that results from processing this operation.
	Err string `json:"err,omitempty" yaml:",omitempty"`
}

// erred is a utility function to return values to assign to operation
// Error and Err fields.
func erred(err error) (error, string) {
	if err == nil {
		return nil, ""
	}
	return err, err.Error()
}

func (o *SOp) Do(ctx context.Context, s *Service) error {
	s.op(ctx, map[string]interface{}{
		"do": o,
	})

	var err error
	if o.Find != nil {
		err = o.Find.Do(ctx, s)
	} else if o.Eval != nil {
		err = o.Eval.Do(ctx, s)
	} else if o.Inject != nil {
		err = o.Inject.Do(ctx, s)
	} else if o.Analyze != nil {
		err = o.Analyze.Do(ctx, s)
	} else {
		err = fmt.Errorf("not implemented: %s", JS(o))
	}

	if err != nil && o.Error == nil {
		o.Error, o.Err = erred(err)
	}

	s.op(ctx, map[string]interface{}{
		"did": o,
	})

	return o.Error
}

type OpFind struct {
	Reactants []string `json:"reactants,omitempty" yaml:",omitempty"`
	Products  []string `json:"products,omitempty" yaml:",omitempty"`

	// And requires every query term to match.
	And bool `json:"and,omitempty" yaml:",omitempty"`

	// Net asks for the matching reactions combined into a net
	// reaction.
	Net bool `json:"net,omitempty" yaml:",omitempty"`

	Names       []string           `json:"names,omitempty" yaml:",omitempty"`
	NetReaction *reaction.Reaction `json:"netReaction,omitempty" yaml:",omitempty"`

	Error error  `json:"-" yaml:"-"`
	Err   string `json:"err,omitempty" yaml:",omitempty"`
}

func anys(names []string) []interface{} {
	acc := make([]interface{}, 0, len(names))
	for _, name := range names {
		acc = append(acc, name)
	}
	return acc
}

func (o *OpFind) Do(ctx context.Context, s *Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	o.Names, err = s.m.FindReactions(anys(o.Reactants), anys(o.Products), o.And)
	if err == nil && o.Net {
		o.NetReaction, err = s.m.MakeNetReaction(anys(o.Reactants), anys(o.Products), o.And)
	}
	o.Error, o.Err = erred(err)
	return o.Error
}

type OpEval struct {
	Src string `json:"src"`

	Result interface{} `json:"result,omitempty" yaml:",omitempty"`

	Error error  `json:"-" yaml:"-"`
	Err   string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpEval) Do(ctx context.Context, s *Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.m.Eval(o.Src)
	if err == nil {
		o.Result = v
	}
	o.Error, o.Err = erred(err)
	return o.Error
}

type OpInject struct {
	Species string `json:"species"`

	// As says which side to match: "reactant", "product", or
	// "both".
	As string `json:"as,omitempty" yaml:",omitempty"`

	// Condition optionally gives a Javascript predicate selecting
	// the reactions to modify.
	Condition string `json:"condition,omitempty" yaml:",omitempty"`

	Count int `json:"count"`

	Error error  `json:"-" yaml:"-"`
	Err   string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpInject) Do(ctx context.Context, s *Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch {
	case o.Condition != "":
		var cond func(*reaction.Reaction) bool
		if cond, err = script.Condition(ctx, o.Condition); err == nil {
			o.Count, err = s.m.InjectWhere(o.Species, cond)
		}
	case o.As == "reactant":
		o.Count, err = s.m.InjectAsReactant(o.Species)
	case o.As == "product":
		o.Count, err = s.m.InjectAsProduct(o.Species)
	case o.As == "both", o.As == "":
		o.Count, err = s.m.Inject(o.Species)
	default:
		err = fmt.Errorf("bad injection side %q", o.As)
	}
	o.Error, o.Err = erred(err)
	return o.Error
}

type OpAnalyze struct {
	Analysis *tools.MechAnalysis `json:"analysis,omitempty" yaml:",omitempty"`

	Error error  `json:"-" yaml:"-"`
	Err   string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpAnalyze) Do(ctx context.Context, s *Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	o.Analysis, err = tools.Analyze(s.m)
	o.Error, o.Err = erred(err)
	return o.Error
}
