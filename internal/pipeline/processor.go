// Package pipeline wires text acquisition, rule extraction, the optional
// LLM pass, merge, and cleanup into per-document and batch processing.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/osuji-k/rfp-extractor/internal/fields"
	"github.com/osuji-k/rfp-extractor/internal/llm"
	"github.com/osuji-k/rfp-extractor/internal/record"
	"github.com/osuji-k/rfp-extractor/internal/textsource"
)

// Processor runs the full extraction pipeline for one document.
type Processor struct {
	Logger   *slog.Logger
	Texts    *textsource.Acquirer
	Provider llm.CandidateProvider // nil disables the LLM pass
}

func NewProcessor(logger *slog.Logger, texts *textsource.Acquirer, provider llm.CandidateProvider) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if texts == nil {
		texts = textsource.NewAcquirer(logger)
	}
	return &Processor{Logger: logger, Texts: texts, Provider: provider}
}

// ProcessFile acquires the document's text and extracts a final record.
// Text acquisition is best-effort: an unreadable or empty document still
// produces a record, with every field null.
func (p *Processor) ProcessFile(ctx context.Context, path string) record.Final {
	text := p.Texts.Text(path)
	return p.ProcessText(ctx, filepath.Base(path), text)
}

// ProcessText runs rules, the optional LLM pass, merge, and cleanup over
// already-acquired text. An LLM failure of any kind degrades to the
// rule-only record; it never propagates to the caller.
func (p *Processor) ProcessText(ctx context.Context, sourceName, text string) record.Final {
	start := time.Now()

	rule := fields.Extract(text, p.Logger)

	var external map[string]any
	if p.Provider != nil {
		cand, err := p.Provider.ProduceCandidate(ctx, text)
		if err != nil {
			p.Logger.Warn("pipeline.llm_failed",
				"source", sourceName, "provider", p.Provider.Name(), "error", err)
		} else {
			external = cand
		}
	}

	merged, llmUsed := record.Merge(rule, external)
	cleaned := record.Clean(merged, text)

	p.Logger.Info("pipeline.document_done",
		"source", sourceName,
		"text_bytes", len(text),
		"llm_used", llmUsed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return record.Final{
		Fields:     cleaned,
		SourceFile: sourceName,
		RuleRecord: rule,
		LLMUsed:    llmUsed,
	}
}
