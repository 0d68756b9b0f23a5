package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("funcenrich")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parse(t, "-i", "genes.txt", "-o", "results.tsv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Input != "genes.txt" || opts.Output != "results.tsv" {
		t.Fatalf("paths not captured: %+v", opts)
	}
	if opts.Organism != "hsapiens" {
		t.Errorf("Organism = %q", opts.Organism)
	}
	if opts.Top != 10 || opts.Demo || opts.Quiet {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseArgsLongFlags(t *testing.T) {
	opts, err := parse(t,
		"--input", "genes.txt", "--output", "out.tsv",
		"--organism", "mmusculus", "--demo", "--top", "5", "--quiet")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Organism != "mmusculus" || !opts.Demo || opts.Top != 5 || !opts.Quiet {
		t.Fatalf("long flags not applied: %+v", opts)
	}
}

func TestParseArgsValidation(t *testing.T) {
	cases := [][]string{
		{},
		{"-i", "genes.txt"},
		{"-o", "out.tsv"},
		{"-i", "genes.txt", "-o", "out.tsv", "--top", "0"},
		{"-i", "genes.txt", "-o", "out.tsv", "--organism", ""},
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("expected error for %v", argv)
		}
	}
}

func TestParseArgsVersionSkipsValidation(t *testing.T) {
	opts, err := parse(t, "--version")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.Version {
		t.Fatal("Version not set")
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
