package llm

import "fmt"

const (
	defaultHuggingFaceBaseURL = "https://router.huggingface.co/v1"
	defaultHuggingFaceModel   = "meta-llama/Meta-Llama-3.1-8B-Instruct"
)

// HuggingFaceProvider talks to the Hugging Face inference router through
// its OpenAI-compatible chat-completions endpoint.
type HuggingFaceProvider struct {
	*OpenAIProvider
}

// NewHuggingFaceProvider creates a provider for the Hugging Face router.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) (*HuggingFaceProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("hugging face token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultHuggingFaceModel
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.Token,
		Model:   model,
		BaseURL: baseURL,
	}, nil, nil)

	return &HuggingFaceProvider{OpenAIProvider: inner}, nil
}
