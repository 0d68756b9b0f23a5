// internal/gprofiler/client.go
package gprofiler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/config"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/enrich"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/errs"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/logger"
	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/version"
)

// Fixed analysis parameters. The service owns the statistics; these select
// Fisher's exact test over the listed databases with FDR correction at 0.05.
const (
	userThreshold      = 0.05
	significanceMethod = "fdr"

	initialBackoff = 500 * time.Millisecond
)

// Sources queried on every run, in the service's own source codes.
var Sources = []string{"GO:BP", "GO:MF", "GO:CC", "KEGG", "REAC", "WP"}

// Client submits gene lists to the g:GOSt profile endpoint.
type Client struct {
	base     string
	organism string
	retries  int
	hc       *http.Client
	limiter  *rate.Limiter
}

// New builds a client from transport config and an organism code
// (e.g. "hsapiens").
func New(cfg config.Config, organism string) *Client {
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	return &Client{
		base:     cfg.BaseURL,
		organism: organism,
		retries:  retries,
		hc:       &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.Rate), 1),
	}
}

// Profile runs one enrichment query and returns the term records in the
// order the service reported them. Transport failures and non-2xx statuses
// surface as ServiceUnavailable (5xx and dial errors are retried with
// doubling backoff); an undecodable or invalid body is a ResponseFormat
// error and is not retried.
func (c *Client) Profile(ctx context.Context, genes []string) ([]enrich.Term, error) {
	payload, err := json.Marshal(profileRequest{
		Organism:                    c.organism,
		Query:                       genes,
		Sources:                     Sources,
		UserThreshold:               userThreshold,
		SignificanceThresholdMethod: significanceMethod,
		NoEvidences:                 false,
	})
	if err != nil {
		return nil, errs.ServiceUnavailablef("encode query: %v", err)
	}

	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			logger.Warn("retrying enrichment query",
				zap.Int("attempt", attempt), zap.Error(lastErr))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		terms, retryable, err := c.profileOnce(ctx, payload)
		if err == nil {
			return terms, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// profileOnce performs a single request/response exchange. retryable is
// true only for transport errors and 5xx statuses.
func (c *Client) profileOnce(ctx context.Context, payload []byte) (terms []enrich.Term, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, bytes.NewReader(payload))
	if err != nil {
		return nil, false, errs.ServiceUnavailablef("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "funcenrich/"+version.Version)

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, errs.ServiceUnavailablef("query %s: %v", c.base, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		err := errs.ServiceUnavailablef("query %s: status %s: %s",
			c.base, resp.Status, bytes.TrimSpace(snippet))
		return nil, resp.StatusCode >= 500, err
	}

	terms, err = decodeResult(resp.Body)
	if err != nil {
		return nil, false, errs.Wrap(errs.ErrResponseFormat, err)
	}
	return terms, false, nil
}

// decodeResult streams the "result" array out of the response object without
// buffering the whole record list through an intermediate structure. Record
// counts are unbounded on the service side.
func decodeResult(r io.Reader) ([]enrich.Term, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode response: expected object, got %v", tok)
	}

	var terms []enrich.Term
	found := false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		key, _ := keyTok.(string)
		if key != "result" {
			// Skip meta and any other top-level values.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("decode response: %w", err)
			}
			continue
		}

		found = true
		open, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		if d, ok := open.(json.Delim); !ok || d != '[' {
			return nil, fmt.Errorf(`decode result: "result" is not an array`)
		}
		for dec.More() {
			var rec termRecord
			if err := dec.Decode(&rec); err != nil {
				return nil, fmt.Errorf("decode result[%d]: %w", len(terms), err)
			}
			term, err := rec.toTerm()
			if err != nil {
				return nil, fmt.Errorf("result[%d]: %w", len(terms), err)
			}
			terms = append(terms, term)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, fmt.Errorf("decode result: %w", err)
		}
	}
	if !found {
		return nil, errNoResultKey
	}
	return terms, nil
}
