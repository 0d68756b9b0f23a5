// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()

		fmt.Fprintf(out, "%s – functional enrichment of gene lists via g:Profiler\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage:\n  %s -i genes.txt -o results.tsv [--organism hsapiens] [--demo]\n", name)

		fmt.Fprintln(out, "\nInput / output:")
		fmt.Fprintln(out, "  -i, --input string     Gene list file (one symbol per line, or comma-separated) [*]")
		fmt.Fprintln(out, "  -o, --output string    TSV results file [*]")

		fmt.Fprintln(out, "\nAnalysis:")
		fmt.Fprintln(out, "      --organism string  Organism code: hsapiens | mmusculus | rnorvegicus | ... [hsapiens]")
		fmt.Fprintln(out, "      --demo             Use canned offline results (no network) [false]")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      --top int          Number of top terms in the console summary [10]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet            Suppress progress logging")
		fmt.Fprintln(out, "  -v, --version          Print version and exit")
		fmt.Fprintln(out, "  -h, --help             Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment (.env honoured):")
		fmt.Fprintln(out, "  FUNCENRICH_BASE_URL, FUNCENRICH_TIMEOUT, FUNCENRICH_RETRIES, FUNCENRICH_RATE")

		fmt.Fprintln(out, "\nExit codes:")
		fmt.Fprintln(out, "  0 ok · 2 configuration · 3 cannot write results · 4 service unavailable · 5 malformed response")
	}
}
