package llm

import (
	"fmt"

	"docqa/internal/config"
)

// New returns the Completer selected by cfg.Provider.
func New(cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case "", config.ProviderOpenAI:
		return NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		return NewGeminiCompleter(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
