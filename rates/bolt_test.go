package rates

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestBoltStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "mex-rates")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	s := NewBoltStore(filepath.Join(dir, "irr.db"))
	if err := s.Open(); err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Set("RXN_1", []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("RXN_2", []float64{4, 5, 6}); err != nil {
		t.Fatal(err)
	}

	data, err := s.Series("RXN_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3 || data[1] != 2 {
		t.Fatalf("got %v", data)
	}

	names, err := s.Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "RXN_1" || names[1] != "RXN_2" {
		t.Fatalf("got %v", names)
	}

	if _, err := s.Series("nope"); err == nil {
		t.Fatal("expected an error")
	}
}
