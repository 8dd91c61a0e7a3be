package factory

import (
	"fmt"
	"strings"

	"srs-intake-be/internal/config"
	"srs-intake-be/pkg/llm"
	"srs-intake-be/pkg/llm/huggingface"
	"srs-intake-be/pkg/llm/ollama"
)

// NewLLMProvider picks the backend named by cfg.LLMProvider.
func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.LLMModel), nil
	case "huggingface":
		if cfg.HuggingFaceAPIKey == "" {
			return nil, fmt.Errorf("missing HUGGINGFACE_API_KEY for huggingface provider")
		}
		return huggingface.NewHuggingFaceProvider(cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
