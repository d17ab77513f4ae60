package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate(t *testing.T) {
	schema := BuildCandidateJSONSchema()

	good := map[string]any{
		"title":    "Student Chromebooks",
		"due_date": nil,
		"contact_info": map[string]any{
			"contact_name": nil,
			"email":        "a@b.org",
		},
		"additional_documentation_required": []any{"Form 1295"},
	}
	assert.NoError(t, ValidateCandidate(schema, good))

	assert.Error(t, ValidateCandidate(schema, map[string]any{"unexpected": "x"}))
	assert.Error(t, ValidateCandidate(schema, map[string]any{"contact_info": "flat string"}))
	assert.Error(t, ValidateCandidate(schema, map[string]any{
		"additional_documentation_required": []any{1, 2},
	}))
}

func TestDecodeCandidate(t *testing.T) {
	m, ok := DecodeCandidate(`{"title": "Student Chromebooks", "reasoning": "found in header"}`, nil)
	require.True(t, ok)
	assert.Equal(t, "Student Chromebooks", m["title"])
	_, has := m["reasoning"]
	assert.False(t, has, "non-schema keys sanitized away")

	// Garbage in, absent out.
	m, ok = DecodeCandidate("the model refused to answer", nil)
	assert.False(t, ok)
	assert.Nil(t, m)

	// Structurally unusable after sanitizing: list of numbers.
	m, ok = DecodeCandidate(`{"additional_documentation_required": [1, 2]}`, nil)
	assert.False(t, ok)
	assert.Nil(t, m)
}
