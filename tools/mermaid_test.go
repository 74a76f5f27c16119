package tools

import (
	"os"
	"testing"
)

func TestMermaid(t *testing.T) {
	filename := "g.mermaid"

	out, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if err := os.Remove(filename); err != nil {
			t.Fatal(err)
		}
	}()

	if err := Mermaid(testMech(t), out, nil); err != nil {
		t.Fatal(err)
	}
}
