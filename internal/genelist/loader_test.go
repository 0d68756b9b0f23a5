package genelist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/errs"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"newlines", "COX4I2\nND1\nATP6\n", []string{"COX4I2", "ND1", "ATP6"}},
		{"blank lines and whitespace", "  COX4I2 \n\nND1\n\tATP6\n\n", []string{"COX4I2", "ND1", "ATP6"}},
		{"commas", "COX4I2, ND1, ATP6", []string{"COX4I2", "ND1", "ATP6"}},
		{"duplicates keep first", "ND1\nATP6\nND1\nND1\n", []string{"ND1", "ATP6"}},
		{"empty", "\n\n  \n", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Parse(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genes.txt")
	if err := os.WriteFile(path, []byte("COX4I2\nND1\nATP6\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	genes, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"COX4I2", "ND1", "ATP6"}
	if !reflect.DeepEqual(genes, want) {
		t.Fatalf("Load = %v, want %v", genes, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
