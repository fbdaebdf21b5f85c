package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiConfig(t *testing.T) {
	cfg := buildGeminiConfig(Request{
		System:      "Jesteś autorem zadań.",
		MaxTokens:   700,
		Temperature: 0.4,
	})
	if cfg.MaxOutputTokens != 700 {
		t.Fatalf("expected 700 max tokens, got %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.4) {
		t.Fatalf("expected temperature 0.4, got %v", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "Jesteś autorem zadań." {
		t.Fatal("expected system instruction to carry the system prompt")
	}

	bare := buildGeminiConfig(Request{MaxTokens: 10})
	if bare.Temperature != nil {
		t.Fatal("zero temperature should leave the provider default")
	}
	if bare.SystemInstruction != nil {
		t.Fatal("empty system prompt should not set an instruction")
	}
}

func TestBuildGeminiContents_MapsAssistantToModel(t *testing.T) {
	got := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleAssistant, Content: "b"},
	})
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Fatalf("unexpected roles: %q, %q", got[0].Role, got[1].Role)
	}
}
