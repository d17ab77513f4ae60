package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// geminiClient implements CandidateProvider against the Google AI Studio
// (Gemini) REST API.
type geminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func newGeminiClient(apiKey, model, baseURL string, timeout time.Duration, logger *slog.Logger) *geminiClient {
	return &geminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (c *geminiClient) Name() string {
	return "gemini/" + c.model
}

func (c *geminiClient) ProduceCandidate(ctx context.Context, docText string) (map[string]any, error) {
	body := map[string]any{
		"contents": []geminiContent{
			{Parts: []geminiPart{{Text: BuildPrompt(docText)}}, Role: "user"},
		},
		"generationConfig": map[string]any{
			"temperature":      0.0,
			"responseMimeType": "application/json",
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	raw, _, err := SendJSON(ctx, c.http, url, body, nil, c.log)
	if err != nil {
		return nil, fmt.Errorf("gemini call: %w", err)
	}

	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("gemini error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in gemini response")
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	m, ok := DecodeCandidate(text, c.log)
	if !ok {
		c.log.Warn("llm.gemini.unusable_output", "bytes", len(text))
		return nil, nil
	}
	return m, nil
}
