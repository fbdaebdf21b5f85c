package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/olympiad/internal/config"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/store"
)

// clearProviderEnv unsets every variable llmConfig looks at.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OLYMPIAD_LLM_PROVIDER", "OLYMPIAD_HF_TOKEN", "HF_TOKEN", "HUGGINGFACEHUB_API_TOKEN",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"OLYMPIAD_ANTHROPIC_API_KEY", "OLYMPIAD_OPENAI_API_KEY", "OLYMPIAD_GEMINI_API_KEY",
		"OLYMPIAD_OPENROUTER_API_KEY", "OLYMPIAD_CACHE_DIR", "OLYMPIAD_CACHE_REDIS_URL",
	} {
		t.Setenv(k, "")
	}
}

func withFileConfig(t *testing.T, fc config.FileConfig) {
	t.Helper()
	prev := fileCfg
	fileCfg = fc
	t.Cleanup(func() { fileCfg = prev })
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "x"}
		c.Flags().String("db", "", "")
		return c
	}

	t.Run("flag wins", func(t *testing.T) {
		withFileConfig(t, config.FileConfig{DB: filepath.Join(dir, "file.db")})
		c := newCmd()
		require.NoError(t, c.Flags().Set("db", filepath.Join(dir, "flag.db")))
		got, err := resolveDBPath(c)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "flag.db"), got)
	})

	t.Run("config file", func(t *testing.T) {
		withFileConfig(t, config.FileConfig{DB: filepath.Join(dir, "file.db")})
		got, err := resolveDBPath(newCmd())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "file.db"), got)
	})

	t.Run("env", func(t *testing.T) {
		withFileConfig(t, config.FileConfig{})
		t.Setenv("OLYMPIAD_DB", filepath.Join(dir, "env.db"))
		got, err := resolveDBPath(newCmd())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "env.db"), got)
	})
}

func TestLLMConfig(t *testing.T) {
	t.Run("offline needs no key", func(t *testing.T) {
		clearProviderEnv(t)
		withFileConfig(t, config.FileConfig{})
		cfg, err := llmConfig(true)
		require.NoError(t, err)
		assert.Equal(t, "mock", cfg.Provider)
	})

	t.Run("missing key", func(t *testing.T) {
		clearProviderEnv(t)
		withFileConfig(t, config.FileConfig{})
		_, err := llmConfig(false)
		assert.Error(t, err)
	})

	t.Run("discovers key and keeps cache settings", func(t *testing.T) {
		clearProviderEnv(t)
		withFileConfig(t, config.FileConfig{})
		t.Setenv("GEMINI_API_KEY", "g-key")
		t.Setenv("OLYMPIAD_CACHE_DIR", t.TempDir())
		cfg, err := llmConfig(false)
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Provider)
		assert.Equal(t, "g-key", cfg.Gemini.APIKey)
		assert.NotEmpty(t, cfg.Cache.Dir)
	})

	t.Run("explicit provider is not replaced", func(t *testing.T) {
		clearProviderEnv(t)
		withFileConfig(t, config.FileConfig{})
		t.Setenv("OLYMPIAD_LLM_PROVIDER", "anthropic")
		t.Setenv("GEMINI_API_KEY", "g-key")
		_, err := llmConfig(false)
		assert.ErrorContains(t, err, "anthropic")
	})

	t.Run("config file selects provider", func(t *testing.T) {
		clearProviderEnv(t)
		fc := config.FileConfig{}
		fc.LLM.Provider = "openai"
		fc.LLM.APIKey = "o-key"
		fc.LLM.Model = "gpt-4o"
		withFileConfig(t, fc)
		cfg, err := llmConfig(false)
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "o-key", cfg.OpenAI.APIKey)
		assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	})
}

func TestGenerateOffline(t *testing.T) {
	clearProviderEnv(t)
	withFileConfig(t, config.FileConfig{})
	db := filepath.Join(t.TempDir(), "olympiad.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"generate", "--db", db, "--offline", "--json",
		"-b", "Ułamki", "-l", "SP-1-5", "-s", "inżynieria", "--seed", "42", "-n", "3",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var batch problemgen.Batch
	require.NoError(t, json.Unmarshal(out.Bytes(), &batch))
	require.Len(t, batch.Items, 3)
	for i, it := range batch.Items {
		assert.Equal(t, i+1, it.ID)
		assert.Equal(t, problemgen.SourceFallback, it.Source)
		assert.True(t, strings.Contains(it.Problem, "inżynieria"), it.Problem)
	}

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.BatchRepo().Get(t.Context(), batch.ID.String())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.ItemCount)
}

func TestGenerateOfflineWithoutTemplates(t *testing.T) {
	clearProviderEnv(t)
	withFileConfig(t, config.FileConfig{})
	db := filepath.Join(t.TempDir(), "olympiad.db")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"generate", "--db", db, "--offline",
		"-b", "Trygonometria", "-l", "liceum", "-s", "sport",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no offline templates for Trigonometry")
}
