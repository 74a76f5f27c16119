package expr

import (
	"testing"

	"github.com/atmoschem/mex/atoms"
	"github.com/atmoschem/mex/rates"
	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/species"
)

func testEnv(t *testing.T) MapEnv {
	t.Helper()
	oh := species.Single("OH", atoms.Default)
	ho2 := species.Single("HO2", atoms.Default)
	no2 := species.Single("NO2", atoms.Default)

	r1, err := reaction.Parse("NO2 -j> NO + O")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := reaction.Parse("O + O2 -> O3")
	if err != nil {
		t.Fatal(err)
	}

	return MapEnv{
		"OH":    oh,
		"HO2":   ho2,
		"NO2":   no2,
		"RXN_1": r1,
		"RXN_2": r2,
		"Adv":   rates.NewProcess("Adv", []float64{1, 2}),
		"Dif":   rates.NewProcess("Dif", []float64{3, 4}),
	}
}

func TestEvalNumbers(t *testing.T) {
	env := testEnv(t)
	for src, want := range map[string]float64{
		"1 + 2 * 3":   7,
		"(1 + 2) * 3": 9,
		"-2 + 1":      -1,
		"0.5 * 4":     2,
	} {
		got, err := Eval(src, env)
		if err != nil {
			t.Fatal(err)
		}
		if got.(float64) != want {
			t.Fatalf("%s: got %v", src, got)
		}
	}
}

func TestEvalSpecies(t *testing.T) {
	env := testEnv(t)

	got, err := Eval("OH + HO2", env)
	if err != nil {
		t.Fatal(err)
	}
	sp := got.(*species.Species)
	if !sp.ContainsName("OH") || !sp.ContainsName("HO2") {
		t.Fatalf("got %s", sp)
	}

	got, err = Eval("OH + HO2 - HO2", env)
	if err != nil {
		t.Fatal(err)
	}
	sp = got.(*species.Species)
	if !sp.Equal(env["OH"].(*species.Species)) {
		t.Fatalf("got %s", sp)
	}

	got, err = Eval("2 * OH", env)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*species.Species).Components["OH"].Stoic != 2 {
		t.Fatalf("got %s", got)
	}
}

func TestEvalReactions(t *testing.T) {
	env := testEnv(t)

	got, err := Eval("RXN_1 + RXN_2", env)
	if err != nil {
		t.Fatal(err)
	}
	net := got.(*reaction.Reaction)
	if net.Reactants["NO2"] != 1 || net.Products["O3"] != 1 {
		t.Fatalf("got %s", net)
	}

	// Reaction + species is injection; injecting a name already
	// present accumulates onto it.
	got, err = Eval("RXN_1 + NO2", env)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*reaction.Reaction).Reactants["NO2"] != 2 {
		t.Fatalf("got %s", got)
	}
}

func TestEvalProcesses(t *testing.T) {
	env := testEnv(t)
	got, err := Eval("Adv + Dif", env)
	if err != nil {
		t.Fatal(err)
	}
	p := got.(*rates.Process)
	if p.Data[0] != 4 || p.Data[1] != 6 {
		t.Fatalf("got %v", p.Data)
	}

	got, err = Eval("Adv - Dif", env)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*rates.Process).Data[0] != -2 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalInvalidOperands(t *testing.T) {
	env := testEnv(t)
	for _, src := range []string{
		"OH * HO2",
		"OH * RXN_1",
		"RXN_1 - RXN_2",
		"OH + RXN_1",
	} {
		_, err := Eval(src, env)
		if err == nil {
			t.Fatalf("%s: expected an error", src)
		}
		if _, is := err.(*InvalidOperand); !is {
			t.Fatalf("%s: got %T %v", src, err, err)
		}
	}
}

func TestEvalUnbound(t *testing.T) {
	env := testEnv(t)
	_, err := Eval("OH + NOPE", env)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, is := err.(*Unbound); !is {
		t.Fatalf("got %T", err)
	}
}

func TestEvalSyntax(t *testing.T) {
	env := testEnv(t)
	for _, src := range []string{
		"",
		"OH +",
		"(OH",
		"OH OH",
		"OH $ HO2",
	} {
		_, err := Eval(src, env)
		if err == nil {
			t.Fatalf("%s: expected an error", src)
		}
	}
}
