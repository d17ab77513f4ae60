// Package llm implements the optional external candidate-record pass: a
// provider-agnostic client that asks a model for the same field mapping the
// rule engine produces. The core pipeline only depends on the
// CandidateProvider interface; provider wire formats stay in this package.
package llm

import "context"

// CandidateProvider produces a candidate field mapping for one document's
// text. A nil mapping with a nil error means the provider had nothing
// usable; an error means the call itself failed. Either way the caller
// falls back to the rule-only record.
type CandidateProvider interface {
	ProduceCandidate(ctx context.Context, docText string) (map[string]any, error)
	// Name returns a human-readable provider name (e.g. "gemini/gemini-2.5-flash").
	Name() string
}
