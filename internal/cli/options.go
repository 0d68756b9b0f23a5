// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	Input  string
	Output string

	// Analysis
	Organism string
	Demo     bool

	// Console summary
	Top int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the sectioned
// usage handler installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input / output
	fs.StringVar(&opt.Input, "input", "", "gene list file (one symbol per line, or comma-separated) [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "TSV results file [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")

	// Analysis
	fs.StringVar(&opt.Organism, "organism", "hsapiens", "organism code (hsapiens, mmusculus, ...) [hsapiens]")
	fs.BoolVar(&opt.Demo, "demo", false, "use canned offline results instead of querying the service [false]")

	// Summary
	fs.IntVar(&opt.Top, "top", 10, "number of top terms in the console summary [10]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.Input == "":
		return opt, errors.New("--input is required")
	case opt.Output == "":
		return opt, errors.New("--output is required")
	case opt.Organism == "":
		return opt, errors.New("--organism must not be empty")
	case opt.Top <= 0:
		return opt, errors.New("--top must be ≥ 1")
	}
	return opt, nil
}
