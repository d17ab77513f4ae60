package llm

import (
	"encoding/json"
	"strings"

	"github.com/osuji-k/rfp-extractor/constants"
)

// MaxPromptDocChars caps how much document text goes into the prompt.
const MaxPromptDocChars = 50000

// BuildPrompt composes the extraction instruction for one document. The
// schema block and numbered constraints keep the model on the exact field
// mapping the merge stage expects: JSON only, null for missing, ISO dates,
// short identifiers, a four-key contact object, no invented values.
func BuildPrompt(docText string) string {
	schema := make(map[string]string, len(constants.SchemaFields))
	for _, k := range constants.SchemaFields {
		schema[k] = "string or null (or list for additional_documentation_required or object for contact_info)"
	}
	schemaJSON, _ := json.MarshalIndent(schema, "", "  ")

	var b strings.Builder
	b.WriteString("You are a strict data extraction assistant. Given the provided RFP/addendum text, ")
	b.WriteString("return only a single JSON object with the following EXACT keys (use null for missing values):\n\n")
	b.Write(schemaJSON)
	b.WriteString("\n\nConstraints:\n" +
		"1) Return ONLY the JSON object, nothing else (no commentary, no backticks).\n" +
		"2) model_no and part_no must be short identifiers (e.g., 'XJ-200', 'PN-54321') — do NOT return long sentences. If not present, set null.\n" +
		"3) additional_documentation_required must be a list of short strings or null.\n" +
		"4) contact_info must be an object with keys: contact_name, email, phone, company_name (use null for missing subfields).\n" +
		"5) product_specification: if present, return a concise summary (max ~300 words). Do NOT copy the entire document.\n" +
		"6) company_name: prefer organization names (e.g., 'Dallas ISD', 'ACME Corp').\n" +
		"7) For dates return ISO format YYYY-MM-DD when possible, else return a short understandable string.\n" +
		"8) Do NOT invent values. If uncertain, use null.\n\n" +
		"Now extract from the document text between the markers below.\n\n" +
		"DOCUMENT BEGIN\n---START---\n")
	if len(docText) > MaxPromptDocChars {
		b.WriteString(docText[:MaxPromptDocChars])
	} else {
		b.WriteString(docText)
	}
	b.WriteString("\n---END---\nDOCUMENT END\n\nReturn only the JSON object.")
	return b.String()
}
