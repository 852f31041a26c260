package main

import (
	"bytes"
	"testing"

	"nepalilang/pkg/nepali"
)

func TestWriteVars(t *testing.T) {
	in := nepali.New(nepali.WithOutput(&bytes.Buffer{}))
	if err := in.Run("Kolagi (anka i = 0; i < 3; i = i + 1) { anka total = i * 2; }"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeVars(&buf, in.Vars()); err != nil {
		t.Fatalf("writeVars: %v", err)
	}
	if want := "i: 3\ntotal: 4\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteVarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVars(&buf, nepali.NewVars()); err != nil {
		t.Fatalf("writeVars: %v", err)
	}
	if buf.String() != "{}\n" {
		t.Errorf("got %q", buf.String())
	}
}
