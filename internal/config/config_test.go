package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/olympiad/internal/llm"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/server"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

const yamlConfig = `
db: /tmp/olympiad.db
llm:
  provider: openai
  model: gpt-4o
  key: sk-test
  timeout: 90s
  retry:
    maxAttempts: 2
cache:
  dir: /tmp/cache
  ttl: 1h
generation:
  retries: 1
  repairTemperature: 0.1
  concurrency: 3
server:
  addr: ":9000"
  corsOrigins: ["https://example.org"]
  perMinute: 10
`

func TestLoad_YAML(t *testing.T) {
	fc, err := Load(writeFile(t, "olympiad.yaml", yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/olympiad.db", fc.DB)

	cfg := llm.DefaultConfig()
	fc.ApplyLLM(&cfg)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.Retry.MaxAttempts)
	assert.Equal(t, "/tmp/cache", cfg.Cache.Dir)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, llm.DefaultConfig().HuggingFace, cfg.HuggingFace, "other providers stay untouched")

	gen := problemgen.DefaultConfig()
	fc.ApplyGeneration(&gen)
	assert.Equal(t, 1, gen.Retries)
	assert.InDelta(t, 0.1, gen.RepairTemperature, 1e-9)
	assert.Equal(t, 3, gen.Concurrency)

	srv := server.DefaultConfig()
	fc.ApplyServer(&srv)
	assert.Equal(t, ":9000", srv.Addr)
	assert.Equal(t, []string{"https://example.org"}, srv.CORSOrigins)
	assert.Equal(t, 10, srv.PerMinute)
	assert.Equal(t, server.DefaultConfig().PerDay, srv.PerDay)
}

func TestLoad_JSON(t *testing.T) {
	fc, err := Load(writeFile(t, "olympiad.json", `{"llm":{"provider":"mock"},"generation":{"retries":0}}`))
	require.NoError(t, err)

	gen := problemgen.DefaultConfig()
	fc.ApplyGeneration(&gen)
	assert.Equal(t, 0, gen.Retries, "explicit zero retries must override the default")

	cfg := llm.DefaultConfig()
	fc.ApplyLLM(&cfg)
	assert.Equal(t, "mock", cfg.Provider)
}

func TestLoad_UnknownExtension(t *testing.T) {
	fc, err := Load(writeFile(t, "olympiad.conf", "llm:\n  provider: gemini\n"))
	require.NoError(t, err)
	assert.Equal(t, "gemini", fc.LLM.Provider)
}

func TestLoad_EmptyKeepsDefaults(t *testing.T) {
	fc, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)

	cfg := llm.DefaultConfig()
	fc.ApplyLLM(&cfg)
	assert.Equal(t, llm.DefaultConfig(), cfg)

	gen := problemgen.DefaultConfig()
	fc.ApplyGeneration(&gen)
	assert.Equal(t, problemgen.DefaultConfig().Retries, gen.Retries)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad duration":     "llm:\n  timeout: soon\n",
		"negative retries": "generation:\n  retries: -1\n",
		"hot repair":       "generation:\n  repairTemperature: 3\n",
		"bad yaml":         "llm: [provider\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.yaml", body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
