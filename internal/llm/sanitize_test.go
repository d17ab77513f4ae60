package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCandidateUnknownKeys(t *testing.T) {
	m := map[string]any{
		"title":       "Student Chromebooks",
		"explanation": "I found these fields",
		"confidence":  0.95,
	}
	dropped := SanitizeCandidate(m, nil)
	assert.Len(t, dropped, 2)
	_, hasExplanation := m["explanation"]
	assert.False(t, hasExplanation)
	assert.Equal(t, "Student Chromebooks", m["title"])
}

func TestSanitizeCandidateStrings(t *testing.T) {
	m := map[string]any{
		"title":      "  padded  ",
		"bid_number": "null",
		"due_date":   "",
		"product":    nil,
	}
	SanitizeCandidate(m, nil)
	assert.Equal(t, "padded", m["title"])
	_, has := m["bid_number"]
	assert.False(t, has, "literal null string dropped")
	_, has = m["due_date"]
	assert.False(t, has)
	_, has = m["product"]
	assert.False(t, has, "explicit null dropped")
}

func TestSanitizeCandidateNumberCoercion(t *testing.T) {
	m := map[string]any{"value": float64(1200000)}
	SanitizeCandidate(m, nil)
	assert.Equal(t, "1200000", m["value"])

	m = map[string]any{"value": 12.5}
	SanitizeCandidate(m, nil)
	assert.Equal(t, "12.5", m["value"])
}

func TestSanitizeCandidateContactAndList(t *testing.T) {
	m := map[string]any{
		"contact_info":                      "John Smith, 555-0100",
		"additional_documentation_required": []any{"Form 1295"},
	}
	SanitizeCandidate(m, nil)
	_, has := m["contact_info"]
	assert.False(t, has, "non-object contact dropped")
	assert.Equal(t, []any{"Form 1295"}, m["additional_documentation_required"])

	m = map[string]any{
		"contact_info":                      map[string]any{"email": "a@b.org"},
		"additional_documentation_required": "Form 1295",
	}
	SanitizeCandidate(m, nil)
	require.Contains(t, m, "contact_info")
	assert.Equal(t, "Form 1295", m["additional_documentation_required"], "single string allowed for the list field")

	m = map[string]any{"additional_documentation_required": 42.0}
	SanitizeCandidate(m, nil)
	_, has = m["additional_documentation_required"]
	assert.False(t, has)
}
