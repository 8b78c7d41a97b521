package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/kavitha/econ101/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with logging and timeout middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → logging → base
	logged := WithLogging(base, eventRepo)
	bounded := WithTimeout(logged, cfg.Timeout)

	return bounded, nil
}

// ResolveProvider builds a Provider from whatever credential is available,
// in priority order: explicit ECON101_* configuration, standard API key
// env vars, then the key stored in settings. Returns nil when no
// credential is found; a nil provider means every feature runs on its
// local fallback.
func ResolveProvider(ctx context.Context, storedKey string, eventRepo store.EventRepo) Provider {
	try := func(cfg Config) Provider {
		if err := cfg.Validate(); err != nil {
			return nil
		}
		p, err := NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s provider unavailable: %v\n", cfg.Provider, err)
			return nil
		}
		return p
	}

	if os.Getenv("ECON101_LLM_PROVIDER") != "" {
		if p := try(ConfigFromEnv()); p != nil {
			return p
		}
	}
	if cfg, ok := DiscoverConfig(); ok {
		if p := try(cfg); p != nil {
			return p
		}
	}
	if storedKey != "" {
		if p := try(ConfigForKey(storedKey)); p != nil {
			return p
		}
	}

	return nil
}
