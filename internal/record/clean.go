package record

import (
	"regexp"
	"strings"

	"github.com/osuji-k/rfp-extractor/constants"
	"github.com/osuji-k/rfp-extractor/internal/fields"
	"github.com/osuji-k/rfp-extractor/internal/patterns"
)

var (
	reQuestionVerbs = regexp.MustCompile(`\b(does|do|is|are|will|can|relating|relate|regarding)\b`)
	reAffidavit     = regexp.MustCompile(`\b(i am|i possess|authorized representative|thereby affirm|submitter|submitter’s|i hereby)\b`)
	reAffidavitCI   = regexp.MustCompile(`\b(i possess|i am|authorized representative|thereby affirm)\b`)
)

const specMaxRunes = 1500

// Clean post-processes a merged candidate into the final schema fields.
// It normalizes whitespace, rejects junk identifiers and values, enforces
// cross-field consistency (product must not duplicate title, company_name
// must not be a question fragment), repairs the contact object from the
// original text, and re-emits exactly the schema keys in order. Running
// Clean on an already-clean record changes nothing.
func Clean(merged Candidate, originalText string) Candidate {
	out := make(Candidate, len(constants.SchemaFields))
	for k, v := range merged {
		if s, ok := v.(string); ok {
			n := patterns.NormalizeSpace(s)
			if n == "" {
				out[k] = nil
			} else {
				out[k] = n
			}
		} else {
			out[k] = v
		}
	}

	for _, fld := range []string{"model_no", "part_no"} {
		val, _ := out[fld].(string)
		if val == "" {
			out[fld] = nil
			continue
		}
		low := strings.ToLower(strings.TrimSpace(val))
		if patterns.IsJunkToken(val) || low == "of" || low == "here" || low == "above" {
			out[fld] = nil
		} else if !patterns.LooksLikeIdentifier(val) {
			out[fld] = nil
		}
	}

	if prod, ok := out["product"].(string); ok {
		if title, ok := out["title"].(string); ok {
			p := strings.ToLower(strings.TrimSpace(prod))
			t := strings.ToLower(strings.TrimSpace(title))
			if p == t || strings.HasPrefix(p, t) {
				out["product"] = nil
			}
		}
	}

	if cn, ok := out["company_name"].(string); ok && cn != "" {
		if strings.Contains(cn, "?") || reQuestionVerbs.MatchString(strings.ToLower(cn)) {
			if redone := fields.RederiveCompany(originalText); redone != "" {
				out["company_name"] = redone
			} else {
				out["company_name"] = nil
			}
		}
		if cn2, ok := out["company_name"].(string); ok && reAffidavit.MatchString(strings.ToLower(cn2)) {
			out["company_name"] = nil
		}
	}

	out["contact_info"] = cleanContact(out["contact_info"], out["company_name"], originalText)

	if v := out["value"]; v != nil {
		if s, ok := v.(string); !ok || !patterns.LooksLikeValue(s) {
			out["value"] = nil
		}
	}

	if ps, ok := out["product_specification"].(string); ok {
		ps = collapseRepeats(ps)
		out["product_specification"] = truncateAtWord(ps, specMaxRunes)
	}

	if docs := out["additional_documentation_required"]; docs != nil {
		out["additional_documentation_required"] = normalizeDocList(docs)
	}

	ordered := make(Candidate, len(constants.SchemaFields))
	for _, k := range constants.SchemaFields {
		ordered[k] = out[k]
	}
	return ordered
}

// cleanContact repairs the contact object: anything that is not a mapping
// is rebuilt from scratch, missing sub-fields are re-derived from the
// original text, and a company name carrying first-person affidavit
// language is dropped.
func cleanContact(v any, topCompany any, originalText string) map[string]any {
	ci, ok := v.(map[string]any)
	if !ok {
		ci = map[string]any{}
	}
	for _, k := range constants.ContactKeys {
		if _, present := ci[k]; !present {
			ci[k] = nil
		}
	}
	if isEmptyString(ci["company_name"]) {
		if cn, ok := topCompany.(string); ok && cn != "" {
			ci["company_name"] = cn
		}
	}
	if isEmptyString(ci["email"]) {
		if em := fields.RederiveEmail(originalText); em != "" {
			ci["email"] = em
		}
	}
	if isEmptyString(ci["phone"]) {
		if ph := fields.RederivePhone(originalText); ph != "" {
			ci["phone"] = ph
		}
	}
	if cn, ok := ci["company_name"].(string); ok && reAffidavitCI.MatchString(strings.ToLower(cn)) {
		ci["company_name"] = nil
	}
	return ci
}

func isEmptyString(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// normalizeDocList coerces a documentation list (possibly []any from JSON)
// into []string, dropping empties; an empty result becomes null.
func normalizeDocList(v any) any {
	var items []string
	switch t := v.(type) {
	case []string:
		items = t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = []string{t}
	default:
		return nil
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if n := patterns.NormalizeSpace(s); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// collapseRepeats collapses immediately-repeated word-or-phrase runs of
// three or more occurrences into single occurrences. Collapsing one run can
// expose a new run (nested repeats), so the pass re-runs until nothing
// changes; each pass strictly shrinks the text, so the loop terminates.
func collapseRepeats(s string) string {
	for {
		out := collapseRepeatsOnce(s)
		if out == s {
			return out
		}
		s = out
	}
}

func collapseRepeatsOnce(s string) string {
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	i := 0
	for i < len(words) {
		collapsed := false
		for l := 1; l <= 10 && i+l <= len(words); l++ {
			reps := 1
			for j := i + l; j+l <= len(words) && phraseEqual(words[i:i+l], words[j:j+l]); j += l {
				reps++
			}
			if reps >= 3 {
				out = append(out, words[i:i+l]...)
				i += reps * l
				collapsed = true
				break
			}
		}
		if !collapsed {
			out = append(out, words[i])
			i++
		}
	}
	return strings.Join(out, " ")
}

func phraseEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// truncateAtWord caps s at max runes, cutting at a word boundary and
// appending an ellipsis. The ellipsis counts against the cap so a second
// pass leaves the result alone.
func truncateAtWord(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	cut := string(r[:max-3])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "..."
}
