// Package config loads the optional config file and overlays it on the
// environment-derived defaults of the other packages.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/abhisek/olympiad/internal/llm"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/server"
)

// FileConfig is the config file schema. Zero values leave the
// corresponding default untouched.
type FileConfig struct {
	DB string `yaml:"db" json:"db"`

	LLM struct {
		Provider string `yaml:"provider" json:"provider"`
		Model    string `yaml:"model" json:"model"`
		BaseURL  string `yaml:"base" json:"base"`
		APIKey   string `yaml:"key" json:"key"`
		Timeout  string `yaml:"timeout" json:"timeout"`

		Retry struct {
			MaxAttempts int    `yaml:"maxAttempts" json:"maxAttempts"`
			InitialWait string `yaml:"initialWait" json:"initialWait"`
			MaxWait     string `yaml:"maxWait" json:"maxWait"`
		} `yaml:"retry" json:"retry"`
	} `yaml:"llm" json:"llm"`

	Generation struct {
		Retries           *int     `yaml:"retries" json:"retries"`
		RepairTemperature *float64 `yaml:"repairTemperature" json:"repairTemperature"`
		Concurrency       int      `yaml:"concurrency" json:"concurrency"`
	} `yaml:"generation" json:"generation"`

	Cache struct {
		Dir      string `yaml:"dir" json:"dir"`
		RedisURL string `yaml:"redis" json:"redis"`
		TTL      string `yaml:"ttl" json:"ttl"`
	} `yaml:"cache" json:"cache"`

	Server struct {
		Addr        string   `yaml:"addr" json:"addr"`
		CORSOrigins []string `yaml:"corsOrigins" json:"corsOrigins"`
		PerMinute   int      `yaml:"perMinute" json:"perMinute"`
		PerDay      int      `yaml:"perDay" json:"perDay"`
	} `yaml:"server" json:"server"`
}

// Load reads YAML or JSON into FileConfig, choosing by extension.
// Unknown extensions are tried as YAML, then JSON.
func Load(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	if err := fc.validate(); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

func (fc FileConfig) validate() error {
	for name, v := range map[string]string{
		"llm.timeout":           fc.LLM.Timeout,
		"llm.retry.initialWait": fc.LLM.Retry.InitialWait,
		"llm.retry.maxWait":     fc.LLM.Retry.MaxWait,
		"cache.ttl":             fc.Cache.TTL,
	} {
		if _, err := parseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if r := fc.Generation.Retries; r != nil && *r < 0 {
		return fmt.Errorf("generation.retries must not be negative, got %d", *r)
	}
	if t := fc.Generation.RepairTemperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("generation.repairTemperature must be within [0,2], got %v", *t)
	}
	if fc.Generation.Concurrency < 0 {
		return fmt.Errorf("generation.concurrency must not be negative, got %d", fc.Generation.Concurrency)
	}
	if fc.Server.PerMinute < 0 || fc.Server.PerDay < 0 {
		return fmt.Errorf("server rate limits must not be negative")
	}
	return nil
}

// parseDuration treats "" as unset.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// ApplyLLM overlays the llm section on cfg. Model, base URL and key go to
// the provider selected after the overlay.
func (fc FileConfig) ApplyLLM(cfg *llm.Config) {
	if fc.LLM.Provider != "" {
		cfg.Provider = fc.LLM.Provider
	}
	if d, _ := parseDuration(fc.LLM.Timeout); d > 0 {
		cfg.Timeout = d
	}
	if n := fc.LLM.Retry.MaxAttempts; n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if d, _ := parseDuration(fc.LLM.Retry.InitialWait); d > 0 {
		cfg.Retry.InitialWait = d
	}
	if d, _ := parseDuration(fc.LLM.Retry.MaxWait); d > 0 {
		cfg.Retry.MaxWait = d
	}

	if fc.Cache.Dir != "" {
		cfg.Cache.Dir = fc.Cache.Dir
	}
	if fc.Cache.RedisURL != "" {
		cfg.Cache.RedisURL = fc.Cache.RedisURL
	}
	if d, _ := parseDuration(fc.Cache.TTL); d > 0 {
		cfg.Cache.TTL = d
	}

	model, base, key := fc.LLM.Model, fc.LLM.BaseURL, fc.LLM.APIKey
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	switch cfg.Provider {
	case "huggingface":
		set(&cfg.HuggingFace.Model, model)
		set(&cfg.HuggingFace.BaseURL, base)
		set(&cfg.HuggingFace.Token, key)
	case "anthropic":
		set(&cfg.Anthropic.Model, model)
		set(&cfg.Anthropic.APIKey, key)
	case "openai":
		set(&cfg.OpenAI.Model, model)
		set(&cfg.OpenAI.BaseURL, base)
		set(&cfg.OpenAI.APIKey, key)
	case "gemini":
		set(&cfg.Gemini.Model, model)
		set(&cfg.Gemini.APIKey, key)
	case "openrouter":
		set(&cfg.OpenRouter.Model, model)
		set(&cfg.OpenRouter.BaseURL, base)
		set(&cfg.OpenRouter.APIKey, key)
	}
}

// ApplyGeneration overlays the generation section on cfg.
func (fc FileConfig) ApplyGeneration(cfg *problemgen.Config) {
	if r := fc.Generation.Retries; r != nil {
		cfg.Retries = *r
	}
	if t := fc.Generation.RepairTemperature; t != nil {
		cfg.RepairTemperature = *t
	}
	if c := fc.Generation.Concurrency; c > 0 {
		cfg.Concurrency = c
	}
}

// ApplyServer overlays the server section on cfg.
func (fc FileConfig) ApplyServer(cfg *server.Config) {
	if fc.Server.Addr != "" {
		cfg.Addr = fc.Server.Addr
	}
	if len(fc.Server.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.Server.CORSOrigins
	}
	if fc.Server.PerMinute > 0 {
		cfg.PerMinute = fc.Server.PerMinute
	}
	if fc.Server.PerDay > 0 {
		cfg.PerDay = fc.Server.PerDay
	}
}
