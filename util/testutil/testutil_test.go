package testutil

import (
	"reflect"
	"testing"
)

func TestJS(t *testing.T) {
	type record struct {
		Name  string
		Stoic float64
	}

	if got, want := JS(record{"NO2", 1}), `{"Name":"NO2","Stoic":1}`; got != want {
		t.Errorf("JS() = %v, want %v", got, want)
	}
	if got, want := JS([]string{"RXN_1"}), `["RXN_1"]`; got != want {
		t.Errorf("JS() = %v, want %v", got, want)
	}
}

func TestDwimjs(t *testing.T) {
	got := Dwimjs(`{"species":"O3","stoic":3}`)
	want := map[string]interface{}{"species": "O3", "stoic": float64(3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dwimjs() = %v, want %v", got, want)
	}

	if got := Dwimjs([]byte(`[1,2]`)); !reflect.DeepEqual(got, []interface{}{float64(1), float64(2)}) {
		t.Errorf("Dwimjs() = %v", got)
	}

	if got := Dwimjs(42); got != 42 {
		t.Errorf("Dwimjs() = %v", got)
	}
}
