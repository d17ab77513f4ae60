package record

import "github.com/osuji-k/rfp-extractor/constants"

// Merge combines the rule candidate with an optional external (LLM)
// candidate, field by field. A non-null external value wins; anything else
// falls back to the rule value. The returned flag records whether the
// external source actually contributed: true only when at least one
// non-null schema field was taken from it. A nil or empty external record
// leaves the rule record unchanged and the flag false.
func Merge(rule, external Candidate) (Candidate, bool) {
	merged := make(Candidate, len(constants.SchemaFields))
	for _, f := range constants.SchemaFields {
		merged[f] = rule[f]
	}
	used := false
	for _, f := range constants.SchemaFields {
		if v, ok := external[f]; ok && v != nil {
			merged[f] = v
			used = true
		}
	}
	return merged, used
}
