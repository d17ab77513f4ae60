package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuji-k/rfp-extractor/constants"
)

func TestMergeNilExternal(t *testing.T) {
	rule := New()
	rule["title"] = "Fallback Title"

	merged, used := Merge(rule, nil)
	assert.False(t, used)
	assert.Equal(t, "Fallback Title", merged["title"])
	require.Len(t, merged, len(constants.SchemaFields))

	// The merge returns a copy, not the rule map itself.
	merged["title"] = "mutated"
	assert.Equal(t, "Fallback Title", rule["title"])
}

func TestMergeExternalWins(t *testing.T) {
	rule := New()
	rule["title"] = "Fallback Title"
	rule["bid_number"] = "TX-2025-114"

	external := Candidate{
		"title":    "Official Title",
		"due_date": "2025-03-05",
	}
	merged, used := Merge(rule, external)
	assert.True(t, used)
	assert.Equal(t, "Official Title", merged["title"])
	assert.Equal(t, "2025-03-05", merged["due_date"])
	// Fields the external source is silent on keep the rule value.
	assert.Equal(t, "TX-2025-114", merged["bid_number"])
}

func TestMergeExternalNullDoesNotOverwrite(t *testing.T) {
	rule := New()
	rule["title"] = "Fallback Title"

	external := Candidate{"title": nil}
	merged, used := Merge(rule, external)
	// All-null external contributed nothing.
	assert.False(t, used)
	assert.Equal(t, "Fallback Title", merged["title"])
}

func TestMergeEmptyExternalNotCounted(t *testing.T) {
	rule := New()
	merged, used := Merge(rule, Candidate{})
	assert.False(t, used)
	require.Len(t, merged, len(constants.SchemaFields))
}

func TestMergeIgnoresNonSchemaKeys(t *testing.T) {
	rule := New()
	external := Candidate{"hallucinated_field": "x", "title": "Official Title"}
	merged, _ := Merge(rule, external)
	_, present := merged["hallucinated_field"]
	assert.False(t, present)
	assert.Equal(t, "Official Title", merged["title"])
}
