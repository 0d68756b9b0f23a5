// internal/gprofiler/types.go
package gprofiler

import (
	"errors"
	"fmt"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
)

// profileRequest is the g:GOSt query payload.
type profileRequest struct {
	Organism                    string   `json:"organism"`
	Query                       []string `json:"query"`
	Sources                     []string `json:"sources"`
	UserThreshold               float64  `json:"user_threshold"`
	SignificanceThresholdMethod string   `json:"significance_threshold_method"`
	NoEvidences                 bool     `json:"no_evidences"`
}

// termRecord mirrors one element of the service's "result" array. Required
// fields are pointers so a missing key is distinguishable from a zero value;
// the service response is otherwise loosely typed and carries extra keys we
// ignore.
type termRecord struct {
	Source           *string  `json:"source"`
	Native           *string  `json:"native"`
	Name             *string  `json:"name"`
	PValue           *float64 `json:"p_value"`
	Significant      *bool    `json:"significant"`
	IntersectionSize *int     `json:"intersection_size"`
	TermSize         *int     `json:"term_size"`
	QuerySize        *int     `json:"query_size"`
	Intersections    []string `json:"intersections"`
}

// toTerm validates presence and ranges, then converts to the domain record.
func (r termRecord) toTerm() (enrich.Term, error) {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"source", r.Source != nil},
		{"native", r.Native != nil},
		{"name", r.Name != nil},
		{"p_value", r.PValue != nil},
		{"significant", r.Significant != nil},
		{"intersection_size", r.IntersectionSize != nil},
		{"term_size", r.TermSize != nil},
		{"query_size", r.QuerySize != nil},
	} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return enrich.Term{}, fmt.Errorf("missing field(s) %v", missing)
	}

	switch {
	case *r.PValue < 0 || *r.PValue > 1:
		return enrich.Term{}, fmt.Errorf("term %s: p_value %g outside [0,1]", *r.Native, *r.PValue)
	case *r.TermSize <= 0:
		return enrich.Term{}, fmt.Errorf("term %s: term_size %d not positive", *r.Native, *r.TermSize)
	case *r.QuerySize <= 0:
		return enrich.Term{}, fmt.Errorf("term %s: query_size %d not positive", *r.Native, *r.QuerySize)
	case *r.IntersectionSize < 0 || *r.IntersectionSize > *r.TermSize:
		return enrich.Term{}, fmt.Errorf("term %s: intersection_size %d outside [0,%d]",
			*r.Native, *r.IntersectionSize, *r.TermSize)
	}

	return enrich.Term{
		Source:           *r.Source,
		Native:           *r.Native,
		Name:             *r.Name,
		PValue:           *r.PValue,
		Significant:      *r.Significant,
		IntersectionSize: *r.IntersectionSize,
		TermSize:         *r.TermSize,
		QuerySize:        *r.QuerySize,
		Intersections:    append([]string(nil), r.Intersections...),
	}, nil
}

var errNoResultKey = errors.New(`response has no "result" array`)
