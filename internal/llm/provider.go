package llm

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds provider configuration.
type Config struct {
	Provider string // "gemini", "groq", or "" for rule-only operation
	Model    string // provider-specific model name (empty = provider default)
	APIKey   string // empty = read from the provider's env var
	BaseURL  string // optional URL override
	Timeout  time.Duration
}

// NewProvider creates a candidate provider from config. An empty provider
// name returns (nil, nil): the pipeline then runs rule-only, which is the
// normal mode when no key is configured.
func NewProvider(cfg Config, logger *slog.Logger) (CandidateProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "":
		logger.Info("llm.provider.none", "hint", "set LLM_PROVIDER to 'gemini' or 'groq' to enable the LLM pass")
		return nil, nil

	case "gemini":
		key := cfg.APIKey
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		if key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("gemini provider requires GEMINI_API_KEY or GOOGLE_API_KEY")
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.5-flash"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com/v1beta"
		}
		return newGeminiClient(key, model, baseURL, cfg.Timeout, logger), nil

	case "groq":
		key := cfg.APIKey
		if key == "" {
			key = os.Getenv("GROQ_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("groq provider requires GROQ_API_KEY")
		}
		model := cfg.Model
		if model == "" {
			model = "llama-3.3-70b-versatile"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.groq.com/openai/v1"
		}
		return newGroqClient(key, model, baseURL, cfg.Timeout, logger), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: gemini, groq)", cfg.Provider)
	}
}
