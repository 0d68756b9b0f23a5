// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aissaomar1204-dev/HAB-tarea-1/internal/logger"
)

// Defaults for the g:Profiler g:GOSt endpoint.
const (
	DefaultBaseURL = "https://biit.cs.ut.ee/gprofiler/api/gost/profile/"
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3
	DefaultRate    = 1.0 // requests per second
)

// Config holds the transport knobs for the enrichment client. Analysis
// parameters (threshold, sources, correction method) are fixed and live in
// the gprofiler package.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	Rate    float64
}

// FromEnv loads .env (if present) and applies FUNCENRICH_* overrides on top
// of the defaults.
func FromEnv() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env found, using local environment")
	}

	cfg := Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
		Rate:    DefaultRate,
	}
	if v := os.Getenv("FUNCENRICH_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FUNCENRICH_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		} else {
			logger.Warn("ignoring invalid FUNCENRICH_TIMEOUT: " + v)
		}
	}
	if v := os.Getenv("FUNCENRICH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retries = n
		} else {
			logger.Warn("ignoring invalid FUNCENRICH_RETRIES: " + v)
		}
	}
	if v := os.Getenv("FUNCENRICH_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.Rate = r
		} else {
			logger.Warn("ignoring invalid FUNCENRICH_RATE: " + v)
		}
	}
	return cfg
}
