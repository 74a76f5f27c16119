package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/atmoschem/mex/mech"
)

func testService(t *testing.T) *Service {
	t.Helper()
	def := &mech.Definition{
		Name: "toy",
		ReactionList: map[string]string{
			"RXN_1": "NO2 -j> NO + O",
			"RXN_2": "O + O2 -> O3",
			"RXN_3": "O3 + NO -> NO2 + O2",
		},
		SpeciesGroupList: []string{
			"NOx = NO + NO2",
		},
	}
	s, err := NewService(context.Background(), def)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestOpFind(t *testing.T) {
	s := testService(t)
	op := SOp{
		Find: &OpFind{
			Reactants: []string{"NO"},
			Net:       true,
		},
	}
	if err := op.Do(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if len(op.Find.Names) != 1 || op.Find.Names[0] != "RXN_3" {
		t.Fatalf("got %v", op.Find.Names)
	}
	if op.Find.NetReaction == nil {
		t.Fatal("no net reaction")
	}
	if op.Find.NetReaction.Reactants["NO"] != 1 {
		t.Fatalf("got %s", op.Find.NetReaction)
	}
}

func TestOpEval(t *testing.T) {
	s := testService(t)
	op := SOp{
		Eval: &OpEval{Src: "NOx - NO2"},
	}
	if err := op.Do(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if op.Eval.Result == nil {
		t.Fatal("no result")
	}

	op = SOp{Eval: &OpEval{Src: "NOPE"}}
	if err := op.Do(context.Background(), s); err == nil {
		t.Fatal("expected an error")
	}
	if op.Err == "" {
		t.Fatal("Err not set")
	}
}

func TestOpInject(t *testing.T) {
	s := testService(t)
	op := SOp{
		Inject: &OpInject{Species: "NOx", As: "product"},
	}
	if err := op.Do(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	// No single reaction produces both NO and NO2.
	if op.Inject.Count != 0 {
		t.Fatalf("got %d", op.Inject.Count)
	}

	op = SOp{
		Inject: &OpInject{
			Species:   "NOx",
			Condition: `return _.hasReactant("NO");`,
		},
	}
	if err := op.Do(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if op.Inject.Count != 1 {
		t.Fatalf("got %d", op.Inject.Count)
	}
}

func TestOpAnalyze(t *testing.T) {
	s := testService(t)
	op := SOp{Analyze: &OpAnalyze{}}
	if err := op.Do(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if op.Analyze.Analysis == nil {
		t.Fatal("no analysis")
	}
	if op.Analyze.Analysis.ReactionCount != 3 {
		t.Fatalf("got %d", op.Analyze.Analysis.ReactionCount)
	}
}

func TestListener(t *testing.T) {
	s := testService(t)

	in := strings.NewReader(`# a comment
{"find":{"reactants":["NO"]}}
{"eval":{"src":"NOx"}}
`)
	var out bytes.Buffer
	if err := s.Listener(context.Background(), bufio.NewReader(in), &out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "RXN_3") {
		t.Fatalf("got %s", lines[0])
	}
}
