package output

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
)

func TestWriteSummaryZeroTerms(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, nil, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No enriched terms found.") {
		t.Fatalf("summary = %q", buf.String())
	}
}

func TestWriteSummaryTopTen(t *testing.T) {
	var terms []enrich.Term
	for i := 14; i >= 0; i-- {
		terms = append(terms, enrich.Term{
			Source: "GO:BP",
			Native: fmt.Sprintf("GO:%07d", i),
			Name:   fmt.Sprintf("term %d", i),
			PValue: float64(i+1) * 1e-8,
		})
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, terms, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "Top 10 enriched terms:") {
		t.Fatalf("missing top header:\n%s", out)
	}
	// The ten lowest p-values, ascending.
	for i := 0; i < 10; i++ {
		if !strings.Contains(out, fmt.Sprintf("%2d. term %d ", i+1, i)) {
			t.Errorf("rank %d should be term %d:\n%s", i+1, i, out)
		}
	}
	if strings.Contains(out, "term 10 ") {
		t.Errorf("term 10 should not appear:\n%s", out)
	}
}

func TestWriteSummaryCountsBySource(t *testing.T) {
	terms := []enrich.Term{
		{Source: "KEGG", Name: "a", Native: "K:1", PValue: 0.01},
		{Source: "GO:BP", Name: "b", Native: "GO:1", PValue: 0.02},
		{Source: "GO:BP", Name: "c", Native: "GO:2", PValue: 0.03},
	}
	var buf bytes.Buffer
	if err := WriteSummary(&buf, terms, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// Sources sorted alphabetically, with counts.
	bp := strings.Index(out, "GO:BP")
	kegg := strings.Index(out, "KEGG")
	if bp < 0 || kegg < 0 || bp > kegg {
		t.Fatalf("source counts missing or unsorted:\n%s", out)
	}
	if !strings.Contains(out, "GO:BP  2") {
		t.Fatalf("GO:BP count wrong:\n%s", out)
	}
}
