// internal/enrich/term.go
package enrich

import "sort"

// Term is one enriched ontology/pathway record as reported by the remote
// service. Values are never mutated after construction.
type Term struct {
	Source           string   `json:"source"`
	Native           string   `json:"native"`
	Name             string   `json:"name"`
	PValue           float64  `json:"p_value"`
	Significant      bool     `json:"significant"`
	IntersectionSize int      `json:"intersection_size"`
	TermSize         int      `json:"term_size"`
	QuerySize        int      `json:"query_size"`
	Intersections    []string `json:"intersections"`
}

// TopN returns the n terms with the lowest p-values, ascending. Ties keep
// the original (service-provided) order. The input slice is not modified.
func TopN(terms []Term, n int) []Term {
	if n <= 0 {
		return nil
	}
	ranked := make([]Term, len(terms))
	copy(ranked, terms)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].PValue < ranked[j].PValue })
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// CountBySource tallies terms per source database.
func CountBySource(terms []Term) map[string]int {
	counts := make(map[string]int, 8)
	for _, t := range terms {
		counts[t.Source]++
	}
	return counts
}
