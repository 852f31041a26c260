package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sum.np")
	src := "anka a = 1;\nDekhau(a);\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	full, got, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if got != src {
		t.Errorf("source = %q, want %q", got, src)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("path %q is not absolute", full)
	}

	_, dirOf, err := GetPathInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Clean(dirOf) != filepath.Clean(filepath.Dir(full)) {
		t.Errorf("parent dir = %q, want %q", dirOf, filepath.Dir(full))
	}
}

func TestReadSource_Missing(t *testing.T) {
	_, _, err := ReadSource(filepath.Join(t.TempDir(), "nope.np"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "nope.np") {
		t.Errorf("error %q does not name the file", err)
	}
}
