package mech

import (
	"reflect"
	"testing"
)

func find(t *testing.T, m *Mechanism, rcts, prds []interface{}, and bool) []string {
	t.Helper()
	names, err := m.FindReactions(rcts, prds, and)
	if err != nil {
		t.Fatal(err)
	}
	return names
}

func TestFindByReactant(t *testing.T) {
	m := testMech(t)

	got := find(t, m, []interface{}{"OH"}, nil, true)
	want := []string{"RXN_4", "RXN_6"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}

	// Idempotent and deterministic.
	if again := find(t, m, []interface{}{"OH"}, nil, true); !reflect.DeepEqual(again, got) {
		t.Fatalf("got %v then %v", got, again)
	}
}

func TestFindByProduct(t *testing.T) {
	m := testMech(t)
	got := find(t, m, nil, []interface{}{"NO2"}, true)
	want := []string{"RXN_3", "RXN_5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestFindOneSidedOr(t *testing.T) {
	m := testMech(t)
	// An omitted side matches everything, and OR unions that in.
	got := find(t, m, nil, []interface{}{"NO2"}, false)
	if len(got) != len(m.Reactions) {
		t.Fatalf("got %v", got)
	}
}

func TestFindConjunctiveList(t *testing.T) {
	m := testMech(t)
	got := find(t, m, []interface{}{"O3", "NO"}, nil, true)
	want := []string{"RXN_3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestFindAndOr(t *testing.T) {
	m := testMech(t)

	// AND: reactions consuming NO and producing NO2.
	got := find(t, m, []interface{}{"NO"}, []interface{}{"NO2"}, true)
	want := []string{"RXN_3", "RXN_5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}

	// OR: reactions consuming O3 or producing O3.
	got = find(t, m, []interface{}{"O3"}, []interface{}{"O3"}, false)
	want = []string{"RXN_2", "RXN_3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestFindMatchAll(t *testing.T) {
	m := testMech(t)
	got := find(t, m, nil, nil, true)
	if len(got) != len(m.Reactions) {
		t.Fatalf("got %v", got)
	}
}

func TestFindByGroup(t *testing.T) {
	m := testMech(t)
	// Any NOx member as reactant.
	got := find(t, m, []interface{}{"NOx"}, nil, true)
	want := []string{"RXN_1", "RXN_3", "RXN_5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestFindRoleRestricted(t *testing.T) {
	m := testMech(t)
	// A product-only species never matches the reactant side.
	nox := m.Species["NOx"].Product()
	got := find(t, m, []interface{}{nox}, nil, true)
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestFindUnknown(t *testing.T) {
	m := testMech(t)
	if _, err := m.FindReactions([]interface{}{"NOPE"}, nil, true); err == nil {
		t.Fatal("expected an error")
	}
}

func TestMakeNetReaction(t *testing.T) {
	m := testMech(t)

	net, err := m.MakeNetReaction([]interface{}{"NO"}, []interface{}{"NO2"}, true)
	if err != nil {
		t.Fatal(err)
	}
	// RXN_3 + RXN_5.
	if net.Reactants["O3"] != 1 || net.Reactants["HO2"] != 1 {
		t.Fatalf("got %s", net)
	}
	if net.Products["NO2"] != 2 {
		t.Fatalf("got %s", net)
	}
}

func TestMakeNetReactionEmpty(t *testing.T) {
	m := testMech(t)
	_, err := m.MakeNetReaction([]interface{}{"PAR"}, nil, true)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, is := err.(*EmptyResult); !is {
		t.Fatalf("got %T %v", err, err)
	}
}
