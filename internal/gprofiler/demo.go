// internal/gprofiler/demo.go
package gprofiler

import "github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"

// Demo returns a canned result set for offline runs. The values are typical
// real enrichment results for the mitochondrial genes COX4I2, ND1 and ATP6;
// intersections are filled from the actual input list so query sizes stay
// consistent.
func Demo(genes []string) []enrich.Term {
	all := append([]string(nil), genes...)
	qs := len(genes)

	pick := func(idx ...int) []string {
		var out []string
		for _, i := range idx {
			if i < len(genes) {
				out = append(out, genes[i])
			}
		}
		if out == nil {
			return all
		}
		return out
	}

	return []enrich.Term{
		{Source: "GO:BP", Native: "GO:0006119", Name: "oxidative phosphorylation",
			PValue: 1.23e-10, Significant: true, IntersectionSize: 3, TermSize: 127, QuerySize: qs, Intersections: all},
		{Source: "GO:BP", Native: "GO:0022900", Name: "electron transport chain",
			PValue: 2.45e-9, Significant: true, IntersectionSize: 3, TermSize: 156, QuerySize: qs, Intersections: all},
		{Source: "GO:BP", Native: "GO:0015992", Name: "proton transmembrane transport",
			PValue: 5.67e-8, Significant: true, IntersectionSize: 2, TermSize: 89, QuerySize: qs, Intersections: pick(1, 2)},
		{Source: "GO:MF", Native: "GO:0004129", Name: "cytochrome-c oxidase activity",
			PValue: 3.21e-7, Significant: true, IntersectionSize: 1, TermSize: 18, QuerySize: qs, Intersections: pick(0)},
		{Source: "GO:MF", Native: "GO:0008137", Name: "NADH dehydrogenase (ubiquinone) activity",
			PValue: 4.56e-6, Significant: true, IntersectionSize: 1, TermSize: 42, QuerySize: qs, Intersections: pick(1)},
		{Source: "GO:MF", Native: "GO:0046933", Name: "proton-transporting ATP synthase activity",
			PValue: 7.89e-6, Significant: true, IntersectionSize: 1, TermSize: 28, QuerySize: qs, Intersections: pick(2)},
		{Source: "GO:CC", Native: "GO:0005743", Name: "mitochondrial inner membrane",
			PValue: 1.12e-9, Significant: true, IntersectionSize: 3, TermSize: 287, QuerySize: qs, Intersections: all},
		{Source: "GO:CC", Native: "GO:0005746", Name: "respiratory chain complex IV",
			PValue: 2.34e-7, Significant: true, IntersectionSize: 1, TermSize: 19, QuerySize: qs, Intersections: pick(0)},
		{Source: "KEGG", Native: "KEGG:00190", Name: "Oxidative phosphorylation",
			PValue: 8.91e-9, Significant: true, IntersectionSize: 3, TermSize: 133, QuerySize: qs, Intersections: all},
		{Source: "REAC", Native: "REAC:R-HSA-611105", Name: "Respiratory electron transport",
			PValue: 1.45e-8, Significant: true, IntersectionSize: 3, TermSize: 98, QuerySize: qs, Intersections: all},
	}
}
