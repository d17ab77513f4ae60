package fields

import (
	"regexp"
	"sort"
	"strings"

	"github.com/osuji-k/rfp-extractor/internal/patterns"
)

const emailExpr = `([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`

const phoneExpr = `(?:\+?\d{1,3}[-\s\.])?(?:\(\d{2,4}\)|\d{2,4})[-\s\.]?\d{3,4}[-\s\.]?\d{3,4}`

// Organization-name patterns, highest priority first. The first entry is a
// hard-coded known entity; the second is the generic suffix pattern.
var orgPriority = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Dallas\s+Independent\s+School\s+District|Dallas\s+ISD)\b`),
	regexp.MustCompile(`(?i)\b([A-Z][A-Za-z0-9&,\.\- ]{2,120}\b(?:Independent School District|ISD|District|Inc|LLC|Ltd|Co\.|Company|Corporation|Corp|University|College|Authority))\b`),
}

// orgGeneric is the case-sensitive whole-text sweep used as the last resort.
var orgGeneric = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&,\.\- ]{2,100}\b(?:Inc|LLC|Ltd|Co\.|Company|Corporation|Corp|District|ISD|University|College|Authority))\b`)

var (
	reModalQuestion = regexp.MustCompile(`\b(does|do|is|are|will|can)\b`)
	reOrgLineKw     = regexp.MustCompile(`\b(ISD|DISTRICT|SCHOOL|INC|LLC|UNIVERSITY|COLLEGE|COMPANY|AUTHORITY)\b`)
	reAffidavitLine = regexp.MustCompile(`\b(i am|i possess|i hereby|authorized representative|thereby affirm|submitter|submitter’s)\b`)
	reFirstPerson   = regexp.MustCompile(`\b(i |we |i am|i possess|authorized representative|thereby affirm)\b`)
)

// ExtractContact runs the contact/company sub-procedure over document text.
// Each slot is filled by the first attempt that succeeds:
//  1. email via the standard email pattern
//  2. phone via a loose international/local pattern
//  3. company name via, in order: the high-priority org pattern, an all-caps
//     organizational line in the first 40 non-empty lines, and a whole-text
//     sweep of generic org-suffix matches preferring the shortest candidate.
//
// A company candidate that reads like a question or first-person affidavit
// language is never accepted.
func ExtractContact(text string) map[string]any {
	contact := map[string]any{
		"contact_name": nil,
		"email":        nil,
		"phone":        nil,
		"company_name": nil,
	}
	if text == "" {
		return contact
	}

	if email := patterns.MatchFirst([]string{emailExpr}, text); email != "" && !patterns.IsJunkToken(email) {
		contact["email"] = email
	}
	if phone := patterns.MatchFirst([]string{phoneExpr}, text); phone != "" && !patterns.IsJunkToken(phone) {
		contact["phone"] = phone
	}

	var company string
	for _, re := range orgPriority {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		cand := strings.TrimSpace(m)
		low := strings.ToLower(cand)
		if len(strings.Fields(cand)) <= 10 && !strings.Contains(cand, "?") && !reModalQuestion.MatchString(low) {
			company = cand
			break
		}
	}

	if company == "" {
		company = companyFromCapsLines(text)
	}
	if company == "" {
		company = shortestGenericOrg(text)
	}
	if company != "" && patterns.IsJunkPhrase(company) {
		company = ""
	}
	if company != "" {
		contact["company_name"] = company
	}
	return contact
}

// companyFromCapsLines scans the first 40 non-empty lines for a short
// all-caps line that carries an organizational keyword and is neither a
// noise heading nor affidavit language.
func companyFromCapsLines(text string) string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) > 40 {
		lines = lines[:40]
	}
	for _, ln := range lines {
		if len(ln) <= 3 || ln != strings.ToUpper(ln) || len(strings.Fields(ln)) > 7 || len(ln) >= 90 {
			continue
		}
		if patterns.IsNoiseHeading(ln) {
			continue
		}
		if !reOrgLineKw.MatchString(strings.ToUpper(ln)) {
			continue
		}
		if reAffidavitLine.MatchString(strings.ToLower(ln)) {
			continue
		}
		return ln
	}
	return ""
}

// shortestGenericOrg collects every generic org-suffix match in the text and
// returns the shortest one passing the question/first-person filters. The
// shortest match is preferred as the most specific; a stable sort keeps
// tie-breaking deterministic.
func shortestGenericOrg(text string) string {
	ms := orgGeneric.FindAllStringSubmatch(text, -1)
	if ms == nil {
		return ""
	}
	cands := make([]string, 0, len(ms))
	for _, m := range ms {
		cands = append(cands, m[1])
	}
	sort.SliceStable(cands, func(i, j int) bool { return len(cands[i]) < len(cands[j]) })
	for _, cand := range cands {
		low := strings.ToLower(cand)
		if len(strings.Fields(cand)) > 8 || strings.Contains(cand, "?") || reModalQuestion.MatchString(low) {
			continue
		}
		if reFirstPerson.MatchString(low) {
			continue
		}
		return strings.TrimSpace(cand)
	}
	return ""
}

// RederiveCompany re-scans the original text for a valid organization name.
// The cleanup stage calls this when a merged company_name candidate turns
// out to be a question fragment.
var reRederiveOrg = regexp.MustCompile(`(?i)\b(Dallas\s+Independent\s+School\s+District|Dallas\s+ISD|[A-Z][A-Za-z0-9&,\.\- ]{2,80}\b(?:Inc|LLC|Ltd|Co\.|Company|Corporation|Corp|District|ISD|University|College))\b`)

func RederiveCompany(text string) string {
	return strings.TrimSpace(reRederiveOrg.FindString(text))
}

// Email and Phone re-derivation used by cleanup to fill missing contact
// sub-fields from the original text.
func RederiveEmail(text string) string {
	email := patterns.MatchFirst([]string{emailExpr}, text)
	if email == "" || patterns.IsJunkToken(email) {
		return ""
	}
	return email
}

func RederivePhone(text string) string {
	phone := patterns.MatchFirst([]string{phoneExpr}, text)
	if phone == "" || patterns.IsJunkToken(phone) {
		return ""
	}
	return phone
}
