// Package answer sends general-knowledge questions to an LLM provider and
// returns a short plain-text answer.
package answer

import (
	"context"
	"fmt"
)

// Provider is the interface the pipeline's general path talks to.
type Provider interface {
	// Answer returns a concise answer to a single free-text question.
	Answer(ctx context.Context, question string) (string, error)
}

// ProviderConfig holds the configuration needed to create a provider.
type ProviderConfig struct {
	Provider string // "anthropic" | "openai"
	APIKey   string
	Model    string
}

// systemPrompt caps response length and asks the model to flag uncertainty
// rather than guess.
const systemPrompt = "Answer concisely (at most 120 words). If a claim is uncertain, say so briefly."

// New creates the appropriate provider based on config.
func New(cfg ProviderConfig) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported answer provider: %s", cfg.Provider)
	}
}
