package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuji-k/rfp-extractor/constants"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Bid No: TX-114\nDue Date: March 5, 2025")

	for _, f := range constants.SchemaFields {
		assert.Contains(t, p, `"`+f+`"`, "schema key %s missing from prompt", f)
	}
	assert.Contains(t, p, "---START---")
	assert.Contains(t, p, "---END---")
	assert.Contains(t, p, "Bid No: TX-114")
	assert.Contains(t, p, "Return ONLY the JSON object")

	start := strings.Index(p, "---START---")
	end := strings.Index(p, "---END---")
	assert.Greater(t, end, start)
}

func TestBuildPromptTruncatesLongDocuments(t *testing.T) {
	doc := strings.Repeat("x", MaxPromptDocChars+500)
	p := BuildPrompt(doc)
	assert.Contains(t, p, "---END---")

	start := strings.Index(p, "---START---") + len("---START---") + 1
	end := strings.Index(p, "\n---END---")
	assert.Equal(t, MaxPromptDocChars, end-start)
}
