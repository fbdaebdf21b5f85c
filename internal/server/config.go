package server

import (
	"os"
	"strings"
	"time"
)

// Config holds HTTP server settings.
type Config struct {
	Addr        string
	CORSOrigins []string

	// Per-client request limits on /generate. Zero disables a limit.
	PerMinute int
	PerDay    int

	// GenerateTimeout bounds a single batch. Default: 5m.
	GenerateTimeout time.Duration
}

// DefaultConfig returns the defaults: all origins, 5 requests per minute
// and 80 per day for each client.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		CORSOrigins:     []string{"*"},
		PerMinute:       5,
		PerDay:          80,
		GenerateTimeout: 5 * time.Minute,
	}
}

// ConfigFromEnv reads PORT and CORS_ORIGINS (comma-separated, "*" for any)
// over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Addr = ":" + p
	}
	if origins := ParseOrigins(os.Getenv("CORS_ORIGINS")); origins != nil {
		cfg.CORSOrigins = origins
	}
	return cfg
}

// ParseOrigins splits a comma-separated origin list. An empty list yields
// nil; "*" yields the wildcard alone.
func ParseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if raw == "*" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
