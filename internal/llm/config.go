package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "huggingface", "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	HuggingFace HuggingFaceConfig
	Anthropic   AnthropicConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	OpenRouter  OpenRouterConfig
	Retry       RetryConfig
	Cache       CacheConfig

	// Timeout bounds a single Generate call including retries. Default: 60s.
	Timeout time.Duration
}

// HuggingFaceConfig targets the Hugging Face inference router, which speaks
// the OpenAI chat-completions protocol.
type HuggingFaceConfig struct {
	Token   string
	Model   string // Default: "meta-llama/Meta-Llama-3.1-8B-Instruct"
	BaseURL string // Default: "https://router.huggingface.co/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "meta-llama/llama-3.1-8b-instruct"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// CacheConfig enables the replay cache. Dir selects the on-disk store,
// RedisURL the shared one; RedisURL wins when both are set.
type CacheConfig struct {
	Dir      string
	RedisURL string
	TTL      time.Duration
}

// Enabled reports whether any cache backend is configured.
func (c CacheConfig) Enabled() bool {
	return c.Dir != "" || c.RedisURL != ""
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "huggingface",
		HuggingFace: HuggingFaceConfig{
			Model:   defaultHuggingFaceModel,
			BaseURL: defaultHuggingFaceBaseURL,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "meta-llama/llama-3.1-8b-instruct",
		},
		Retry: RetryConfig{
			MaxAttempts: 4,
			InitialWait: 700 * time.Millisecond,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Cache: CacheConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("OLYMPIAD_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	// The bare Hugging Face variable names are what the hub tooling uses.
	cfg.HuggingFace.Token = firstEnv("OLYMPIAD_HF_TOKEN", "HF_TOKEN", "HUGGINGFACEHUB_API_TOKEN")
	if m := os.Getenv("OLYMPIAD_HF_MODEL"); m != "" {
		cfg.HuggingFace.Model = m
	}
	if u := os.Getenv("OLYMPIAD_HF_BASE_URL"); u != "" {
		cfg.HuggingFace.BaseURL = u
	}

	if k := os.Getenv("OLYMPIAD_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("OLYMPIAD_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("OLYMPIAD_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("OLYMPIAD_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("OLYMPIAD_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("OLYMPIAD_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("OLYMPIAD_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("OLYMPIAD_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("OLYMPIAD_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if d := os.Getenv("OLYMPIAD_CACHE_DIR"); d != "" {
		cfg.Cache.Dir = d
	}
	if u := os.Getenv("OLYMPIAD_CACHE_REDIS_URL"); u != "" {
		cfg.Cache.RedisURL = u
	}

	if t := os.Getenv("OLYMPIAD_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Hugging Face → Gemini → OpenAI → Anthropic → OpenRouter) and returns a
// Config for the first provider whose key is found. Returns (Config{}, false)
// if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := firstEnv("HF_TOKEN", "HUGGINGFACEHUB_API_TOKEN"); k != "" {
		cfg.Provider = "huggingface"
		cfg.HuggingFace.Token = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "huggingface":
		if c.HuggingFace.Token == "" {
			return fmt.Errorf("HF_TOKEN (or OLYMPIAD_HF_TOKEN) is required for the huggingface provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("OLYMPIAD_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OLYMPIAD_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("OLYMPIAD_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OLYMPIAD_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
