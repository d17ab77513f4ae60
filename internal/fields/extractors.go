// Package fields implements the per-field rule extractors and the
// orchestrator that runs them over one document's text in schema order.
// Extractors are pure functions of the text plus, where cross-field
// suppression applies, the already-extracted fields (product needs title).
package fields

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/osuji-k/rfp-extractor/constants"
	"github.com/osuji-k/rfp-extractor/internal/patterns"
)

var bidNumberExprs = []string{
	`\b(?:Bid|RFP|Tender|RFQ)\s*(?:No\.?|Number|#)?\s*[:\-]?\s*([A-Za-z0-9\-/]+)`,
	`\bRef\.\s*([A-Za-z0-9\-/]+)`,
	`\bRFP\s*[:\-]?\s*([A-Za-z0-9\-/]+)`,
}

var titleExprs = []string{
	`Title[:\s\-]{1,}\s*(.+?)\r?\n`,
	`Subject[:\s\-]{1,}\s*(.+?)\r?\n`,
	`RFP\s+[A-Za-z0-9\-/]+\s*[:\-]\s*(.+?)\r?\n`,
}

var dueDateExprs = []string{
	`Due Date[:\s\-]{1,}\s*([A-Za-z0-9,\/\-\s:]+)`,
	`Closing Date[:\s\-]{1,}\s*([A-Za-z0-9,\/\-\s:]+)`,
	`Submission Deadline[:\s\-]{1,}\s*([A-Za-z0-9,\/\-\s:]+)`,
	`Deadline[:\s\-]{1,}\s*([A-Za-z0-9,\/\-\s:]+)`,
}

var deliveryDateExprs = []string{
	`Delivery Date[:\s\-]{1,}\s*([A-Za-z0-9,\/\-\s:]+)`,
	`Anticipated requests.*starting in\s+([A-Za-z0-9,\/\-\s]+)`,
}

var (
	reLegalTitle = regexp.MustCompile(`\b(applicable laws|pursuant to|thereof|hereby|affidavit)\b`)
	reDocsNeeded = regexp.MustCompile(`(?i)(Form 1295|Warranty information|deployment service options|Supporting documentation|Company profile|Warranty certificate|Additional warranty information|Signed Addendum No\.\s*\d+)`)
)

// extractBidNumber accepts a candidate only when it has identifier shape
// and carries at least one digit; a stray word matched after "Bid" is noise.
func extractBidNumber(text string) string {
	cand := patterns.MatchFirst(bidNumberExprs, text)
	if cand == "" || !patterns.LooksLikeIdentifier(cand) || !patterns.HasDigit(cand) {
		return ""
	}
	return cand
}

// extractTitle rejects candidates longer than 20 words that read like legal
// boilerplate, so a disclaimer paragraph never becomes the title.
func extractTitle(text string) string {
	t := patterns.MatchFirst(titleExprs, text)
	if t == "" {
		return ""
	}
	t = patterns.NormalizeSpace(t)
	if len(strings.Fields(t)) > 20 && reLegalTitle.MatchString(strings.ToLower(t)) {
		return ""
	}
	return t
}

// extractDueDate returns an ISO date or ""; an unparsable capture is
// dropped entirely.
func extractDueDate(text string) string {
	cand := patterns.MatchFirst(dueDateExprs, text)
	if cand == "" {
		return ""
	}
	iso, ok := patterns.NormalizeDate(cand)
	if !ok {
		return ""
	}
	return iso
}

// extractDeliveryDate keeps the raw captured text when normalization fails.
// Delivery dates are often non-ISO prose ("starting in September"); the
// asymmetry with due_date is deliberate.
func extractDeliveryDate(text string) string {
	cand := patterns.MatchFirst(deliveryDateExprs, text)
	if cand == "" {
		return ""
	}
	if iso, ok := patterns.NormalizeDate(cand); ok {
		return iso
	}
	return cand
}

func extractSpecification(text string) string {
	spec := patterns.MatchFirst([]string{
		`(?s)(?:Specifications|Product Specification|Product Specifications)[:\s\-]{1,}\s*(.+?)(?:\r?\n\r?\n|\z)`,
		`(?:Minimum|Requires|Requirement|Warranty|Autopilot|Chromebooks|Battery life).*`,
	}, text)
	return strings.TrimSpace(spec)
}

// extractRequiredDocs collects every match of the known required-document
// phrases in document order; nil when none appear.
func extractRequiredDocs(text string) []string {
	ms := reDocsNeeded.FindAllString(text, -1)
	if ms == nil {
		return nil
	}
	docs := make([]string, 0, len(ms))
	for _, m := range ms {
		docs = append(docs, strings.TrimSpace(m))
	}
	return docs
}

// extractSummary joins the first 10 non-empty lines, capped at 800 chars
// with a trailing ellipsis. A placeholder header digest, not a semantic
// summary.
func extractSummary(text string) string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			lines = append(lines, s)
			if len(lines) == 10 {
				break
			}
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return truncateRunes(strings.Join(lines, "\n"), 800) + "..."
}

// Extract runs every field extractor against text in the fixed schema
// order, threading already-extracted fields so later extractors can apply
// cross-field suppression. A panicking extractor degrades to null for that
// field only; one bad heuristic must not lose the rest of the record.
func Extract(text string, logger *slog.Logger) map[string]any {
	if logger == nil {
		logger = slog.Default()
	}
	out := make(map[string]any, len(constants.SchemaFields))
	for _, f := range constants.SchemaFields {
		out[f] = nil
	}

	set := func(field string, fn func() string) {
		defer func() {
			if r := recover(); r != nil {
				logger.Warn("fields.extract.panic", "field", field, "panic", r)
				out[field] = nil
			}
		}()
		if v := fn(); v != "" {
			out[field] = v
		}
	}

	set("bid_number", func() string { return extractBidNumber(text) })
	set("title", func() string { return extractTitle(text) })
	set("due_date", func() string { return extractDueDate(text) })
	set("bid_submission_type", func() string {
		return patterns.MatchFirst([]string{
			`Submission Type[:\s\-]{1,}\s*(.+)`,
			`Bid Submission Type[:\s\-]{1,}\s*(.+)`,
			`Submission Instructions[:\s\-]{1,}\s*(.+)`,
		}, text)
	})
	set("term_of_bid", func() string {
		return patterns.MatchFirst([]string{
			`Term of Bid[:\s\-]{1,}\s*(.+)`,
			`Contract Term[:\s\-]{1,}\s*(.+)`,
			`Term[:\s\-]{1,}\s*(.+ years)`,
		}, text)
	})
	set("pre_bid_meeting", func() string {
		return patterns.MatchFirst([]string{
			`Pre[-\s]?Bid Meeting[:\s\-]{1,}\s*(.+)`,
			`Pre[-\s]?Bid Conference[:\s\-]{1,}\s*(.+)`,
		}, text)
	})
	set("installation", func() string {
		return patterns.MatchFirst([]string{
			`Installation[:\s\-]{1,}\s*(.+)`,
			`Installation Requirements[:\s\-]{1,}\s*(.+)`,
		}, text)
	})
	set("bid_bond_requirement", func() string {
		return patterns.MatchFirst([]string{
			`Bid Bond[:\s\-]{1,}\s*(.+)`,
			`Bid Security[:\s\-]{1,}\s*(.+)`,
		}, text)
	})
	set("delivery_date", func() string { return extractDeliveryDate(text) })
	set("payment_terms", func() string {
		return patterns.MatchFirst([]string{
			`Payment Terms[:\s\-]{1,}\s*(.+)`,
			`Payment[:\s\-]{1,}\s*(\d+\s*days|Net \d+)`,
		}, text)
	})
	set("value", func() string {
		return patterns.MatchFirst([]string{
			`Estimated Value[:\s\-]{1,}\s*([A-Z\$\d,\. ]+)`,
			`Total Value[:\s\-]{1,}\s*([A-Z\$\d,\. ]+)`,
		}, text)
	})

	title, _ := out["title"].(string)
	set("product", func() string {
		if cand := extractProduct(text, title); cand != "" {
			if !patterns.IsJunkPhrase(cand) && !patterns.IsJunkToken(cand) {
				return cand
			}
			return ""
		}
		return extractProductFallback(text, title)
	})

	set("model_no", func() string {
		return patterns.MatchFirst([]string{
			`Model(?:\s*No\.?| number)?[:\s\-]{1,}\s*([A-Za-z0-9\-\._\/]{2,60})`,
			`Make and Model[:\s\-]{1,}\s*([A-Za-z0-9\-\._\/]{2,60})`,
		}, text)
	})
	set("part_no", func() string {
		return patterns.MatchFirst([]string{
			`Part(?:\s*No\.?| number)?[:\s\-]{1,}\s*([A-Za-z0-9\-\._\/]{2,60})`,
		}, text)
	})
	set("product_specification", func() string { return extractSpecification(text) })

	if docs := extractRequiredDocs(text); docs != nil {
		out["additional_documentation_required"] = docs
	}
	set("bid_summary", func() string { return extractSummary(text) })

	contact := ExtractContact(text)
	out["contact_info"] = contact
	if cn, ok := contact["company_name"].(string); ok && cn != "" {
		out["company_name"] = cn
	}

	return out
}
