// internal/genelist/loader.go
package genelist

import (
	"fmt"
	"os"
	"strings"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/errs"
)

// Load reads a gene list from path: one symbol per line, or comma-separated
// on a single line. The result preserves first-occurrence order and contains
// no blanks or duplicates. An unreadable or empty list is a configuration
// error.
func Load(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrConfiguration, fmt.Errorf("read gene list: %w", err))
	}
	genes := Parse(string(raw))
	if len(genes) == 0 {
		return nil, errs.Configurationf("gene list %s contains no genes", path)
	}
	return genes, nil
}

// Parse splits content into gene symbols. Comma-separated content takes
// precedence over newline-separated; entries are trimmed, blanks dropped and
// duplicates removed keeping the first occurrence.
func Parse(content string) []string {
	sep := "\n"
	if strings.Contains(content, ",") {
		sep = ","
	}

	seen := make(map[string]struct{})
	var genes []string
	for _, field := range strings.Split(content, sep) {
		g := strings.TrimSpace(field)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		genes = append(genes, g)
	}
	return genes
}
