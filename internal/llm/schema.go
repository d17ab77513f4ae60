package llm

import "github.com/osuji-k/rfp-extractor/constants"

// BuildCandidateJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// a candidate record, as a generic map. Deliberately permissive: every field
// is nullable and none is required, because a partial mapping is a valid
// contribution. What it does reject is structural nonsense: a contact_info
// that is not an object, a documentation list that is not a list.
func BuildCandidateJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.SchemaFields))
	for _, f := range constants.SchemaFields {
		switch constants.FieldKinds[f] {
		case constants.KindContact:
			contactProps := map[string]any{}
			for _, ck := range constants.ContactKeys {
				contactProps[ck] = map[string]any{"type": []string{"string", "null"}}
			}
			props[f] = map[string]any{
				"type":                 []string{"object", "null"},
				"properties":           contactProps,
				"additionalProperties": false,
			}
		case constants.KindList:
			props[f] = map[string]any{
				"type":  []string{"array", "string", "null"},
				"items": map[string]any{"type": "string"},
			}
		default:
			props[f] = map[string]any{"type": []string{"string", "null"}}
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}
