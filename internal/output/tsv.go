// internal/output/tsv.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/errs"
)

// TSVHeader is the canonical header row for the results file.
// Keep this as the single source of truth; writers and tests use it.
const TSVHeader = "source\tnative\tname\tp_value\tsignificant\tintersection_size\tterm_size\tquery_size\tintersections"

// FormatPValue renders a p-value without trailing zero noise.
func FormatPValue(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// FormatRowTSV returns the 9 columns for one term (no trailing newline).
// The intersections column joins the gene set with commas.
func FormatRowTSV(t enrich.Term) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%t\t%d\t%d\t%d\t%s",
		t.Source, t.Native, t.Name,
		FormatPValue(t.PValue), t.Significant,
		t.IntersectionSize, t.TermSize, t.QuerySize,
		strings.Join(t.Intersections, ","),
	)
}

// WriteTSV writes the header and one row per term, in the order given.
// The header is written even for zero terms.
func WriteTSV(w io.Writer, terms []enrich.Term) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, t := range terms {
		if _, err := fmt.Fprintln(w, FormatRowTSV(t)); err != nil {
			return err
		}
	}
	return nil
}

// SaveTSV persists terms to path atomically: the rows are written to a
// uuid-suffixed temp file in the target directory, synced, then renamed over
// the destination. A failed run never leaves a partial file behind.
func SaveTSV(path string, terms []enrich.Term) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	fh, err := os.Create(tmp)
	if err != nil {
		return errs.Wrap(errs.ErrPersistence, fmt.Errorf("create %s: %w", tmp, err))
	}

	fail := func(err error) error {
		_ = fh.Close()
		_ = os.Remove(tmp)
		return errs.Wrap(errs.ErrPersistence, err)
	}

	bw := bufio.NewWriter(fh)
	if err := WriteTSV(bw, terms); err != nil {
		return fail(fmt.Errorf("write %s: %w", tmp, err))
	}
	if err := bw.Flush(); err != nil {
		return fail(fmt.Errorf("write %s: %w", tmp, err))
	}
	if err := fh.Sync(); err != nil {
		return fail(fmt.Errorf("sync %s: %w", tmp, err))
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(tmp)
		return errs.Wrap(errs.ErrPersistence, fmt.Errorf("close %s: %w", tmp, err))
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errs.Wrap(errs.ErrPersistence, fmt.Errorf("rename to %s: %w", path, err))
	}
	return nil
}
