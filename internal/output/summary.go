// internal/output/summary.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
)

// WriteSummary prints per-source counts and the top n terms by ascending
// p-value (ties keep service order) to w.
func WriteSummary(w io.Writer, terms []enrich.Term, n int) error {
	if len(terms) == 0 {
		_, err := fmt.Fprintln(w, "No enriched terms found.")
		return err
	}

	counts := enrich.CountBySource(terms)
	sources := make([]string, 0, len(counts))
	for s := range counts {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	if _, err := fmt.Fprintln(w, "Enriched terms by source:"); err != nil {
		return err
	}
	for _, s := range sources {
		if _, err := fmt.Fprintf(w, "  %-6s %d\n", s, counts[s]); err != nil {
			return err
		}
	}

	top := enrich.TopN(terms, n)
	if _, err := fmt.Fprintf(w, "\nTop %d enriched terms:\n", len(top)); err != nil {
		return err
	}
	for i, t := range top {
		_, err := fmt.Fprintf(w, "%2d. %s (%s %s)  p=%.2e  genes %d/%d: %s\n",
			i+1, t.Name, t.Source, t.Native, t.PValue,
			t.IntersectionSize, t.TermSize,
			strings.Join(t.Intersections, ","),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
