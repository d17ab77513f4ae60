package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
		key  string
		val  any
	}{
		{
			name: "bare object",
			raw:  `{"title": "Student Chromebooks"}`,
			ok:   true, key: "title", val: "Student Chromebooks",
		},
		{
			name: "code fence",
			raw:  "```json\n{\"title\": \"Student Chromebooks\"}\n```",
			ok:   true, key: "title", val: "Student Chromebooks",
		},
		{
			name: "surrounding prose",
			raw:  `Here is the extraction you asked for: {"bid_number": "TX-114"} Let me know!`,
			ok:   true, key: "bid_number", val: "TX-114",
		},
		{
			name: "nested contact object",
			raw:  `{"contact_info": {"email": "a@b.org"}}`,
			ok:   true, key: "contact_info", val: map[string]any{"email": "a@b.org"},
		},
		{name: "empty", raw: "", ok: false},
		{name: "whitespace", raw: "   \n ", ok: false},
		{name: "no object", raw: "I could not find any fields.", ok: false},
		{name: "broken braces", raw: `{"title": "unterminated`, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := RecoverJSONObject(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, m)
				assert.Equal(t, tt.val, m[tt.key])
			}
		})
	}
}

func TestRecoverJSONObjectSkipsNonObjectFragments(t *testing.T) {
	// The first brace-matched fragment fails to parse; the second is valid.
	raw := "{not json} and then {\"title\": \"ok\"}"
	m, ok := RecoverJSONObject(raw)
	require.True(t, ok)
	assert.Equal(t, "ok", m["title"])
}
