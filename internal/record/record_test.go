package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuji-k/rfp-extractor/constants"
)

func TestNewCandidateAllNull(t *testing.T) {
	c := New()
	require.Len(t, c, len(constants.SchemaFields))
	for _, f := range constants.SchemaFields {
		v, present := c[f]
		assert.True(t, present)
		assert.Nil(t, v)
	}
}

func TestFinalMarshalKeyOrder(t *testing.T) {
	f := Final{
		Fields:     New(),
		SourceFile: "addendum_01.pdf",
		RuleRecord: New(),
		LLMUsed:    true,
	}
	f.Fields["bid_number"] = "TX-2025-114"
	f.Fields["contact_info"] = map[string]any{
		"company_name": "Dallas ISD",
		"email":        "bids@dallasisd.org",
		"phone":        nil,
		"contact_name": nil,
	}

	b, err := json.Marshal(f)
	require.NoError(t, err)
	s := string(b)

	// Schema keys appear in canonical order, bookkeeping last.
	prev := -1
	for _, k := range constants.SchemaFields {
		idx := strings.Index(s, `"`+k+`"`)
		require.GreaterOrEqual(t, idx, 0, "key %s missing", k)
		assert.Greater(t, idx, prev, "key %s out of order", k)
		prev = idx
	}
	assert.Greater(t, strings.Index(s, `"_source_file"`), prev)
	assert.Greater(t, strings.Index(s, `"_rule_extracted"`), strings.Index(s, `"_source_file"`))
	assert.Greater(t, strings.Index(s, `"_llm_used"`), strings.Index(s, `"_rule_extracted"`))

	// Contact sub-keys in their fixed order.
	assert.Less(t, strings.Index(s, `"contact_name"`), strings.Index(s, `"email"`))
	assert.Less(t, strings.Index(s, `"email"`), strings.Index(s, `"phone"`))

	// Still valid JSON with the expected values.
	var round map[string]any
	require.NoError(t, json.Unmarshal(b, &round))
	assert.Equal(t, "TX-2025-114", round["bid_number"])
	assert.Equal(t, "addendum_01.pdf", round["_source_file"])
	assert.Equal(t, true, round["_llm_used"])
}

func TestFinalMarshalNilRuleRecord(t *testing.T) {
	f := Final{Fields: New(), SourceFile: "doc.txt"}
	b, err := json.Marshal(f)
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(b, &round))
	assert.Nil(t, round["_rule_extracted"])
	assert.Equal(t, false, round["_llm_used"])
}

func TestFinalMarshalStableAcrossRuns(t *testing.T) {
	f := Final{Fields: New(), RuleRecord: New(), SourceFile: "doc.txt"}
	a, err := json.Marshal(f)
	require.NoError(t, err)
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
