package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface is the generative-text backend: prompt in, free text out.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// NewTextGenerator Factory function to create either an OpenAI or a Gemini client
func NewTextGenerator(ctx context.Context, provider, apiKey, model, baseURL string) (TextGeneratorInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredential, provider)
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model, baseURL), nil
	case "gemini":
		return NewGeminiTextClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
