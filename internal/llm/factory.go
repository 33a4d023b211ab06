package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. When the selected provider has no API key the
// returned Provider is a stub that fails every call with an auth error
// without touching the network, so the server can start unconfigured
// and report the problem per request.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Provider != "mock" && cfg.apiKey() == "" {
		return &unconfiguredProvider{provider: cfg.Provider}, nil
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware chain: caller → retry → logging → base.
	return WithRetry(WithLogging(base), cfg.Retry), nil
}

// unconfiguredProvider rejects every request with an auth error.
type unconfiguredProvider struct {
	provider string
}

func (u *unconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrAuth{
		Err: fmt.Errorf("no API key configured for provider %q", u.provider),
	}
}

func (u *unconfiguredProvider) ModelID() string {
	return "unconfigured"
}
