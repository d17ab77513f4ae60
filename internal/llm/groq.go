package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// groqClient implements CandidateProvider against Groq's OpenAI-compatible
// chat completions endpoint.
type groqClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func newGroqClient(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *groqClient {
	return &groqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *groqClient) Name() string {
	return "groq/" + c.model
}

func (c *groqClient) ProduceCandidate(ctx context.Context, docText string) (map[string]any, error) {
	body := map[string]any{
		"model":           c.model,
		"temperature":     0.0,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "user", "content": BuildPrompt(docText)},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	url := strings.TrimRight(c.baseURL, "/") + "/chat/completions"
	raw, _, err := SendJSON(ctx, c.http, url, body, headers, c.log)
	if err != nil {
		return nil, fmt.Errorf("groq call: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode groq response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in groq response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	m, ok := DecodeCandidate(content, c.log)
	if !ok {
		c.log.Warn("llm.groq.unusable_output", "bytes", len(content))
		return nil, nil
	}
	return m, nil
}
