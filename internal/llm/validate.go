package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateCandidate validates a recovered candidate mapping against the
// record schema. A failure means the mapping is structurally unusable and
// must be treated as absent, not repaired.
func ValidateCandidate(schemaMap map[string]any, candidate map[string]any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("candidate.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// Round-trip so numbers and nested maps carry JSON-native types.
	cb, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("marshal candidate: %w", err)
	}
	var v any
	if err := json.Unmarshal(cb, &v); err != nil {
		return fmt.Errorf("unmarshal candidate: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("candidate does not match schema: %w", err)
	}
	return nil
}

// DecodeCandidate turns a raw model response into a sanitized, validated
// candidate mapping. Returns (nil, false) for anything unusable.
func DecodeCandidate(raw string, logger *slog.Logger) (map[string]any, bool) {
	m, ok := RecoverJSONObject(raw)
	if !ok {
		return nil, false
	}
	SanitizeCandidate(m, logger)
	if err := ValidateCandidate(BuildCandidateJSONSchema(), m); err != nil {
		if logger != nil {
			logger.Warn("llm.candidate.invalid", "error", err)
		}
		return nil, false
	}
	return m, true
}
