// Package patterns holds the shared matchers and junk predicates used by
// every field extractor. Centralizing them keeps noise filtering consistent
// across the 21 independently-evolving extractors: an extractor must consult
// these predicates before accepting a candidate value.
package patterns

import (
	"regexp"
	"strings"
)

// JunkWords are standalone tokens that can never be a real field value.
var JunkWords = map[string]struct{}{
	"of": {}, "here": {}, "above": {}, "proposed": {}, "the": {}, "this": {},
	"is": {}, "are": {}, "for": {}, "as": {}, "value": {}, "table": {},
	"pricing": {}, "pricing table": {}, "input": {}, "tool": {},
	"end of addendum": {}, "addendum": {}, "page": {}, "confidential": {},
	"attachment": {}, "or": {}, "and": {},
}

// headingNoiseWords flag structural boilerplate lines (page markers, section
// dividers) that must never be read as content.
var headingNoiseWords = []string{
	"ADDENDUM", "END OF ADDENDUM", "PAGE", "TABLE OF CONTENTS", "CONTENTS",
	"ATTACHMENT", "EXHIBIT", "SCOPE", "SPECIFICATIONS", "CONFIDENTIAL",
	"NOTICE", "DISCLAIMER",
}

// junkPhraseIndicators are boilerplate substrings (legal affidavit language,
// pricing-table references) checked case-insensitively against candidates.
var junkPhraseIndicators = []string{
	"proposed make", "to be included", "for the 'value' field",
	"for the value field", "proposed make and model",
	"as pricing is noted", "see pricing table", "as pricing is noted above",
	"does dallas isd", "under the scope", "product(s) offered",
	"i possess the legal authority", "authorized representative",
}

var (
	reWhitespace     = regexp.MustCompile(`\s+`)
	reOrgKeywordLine = regexp.MustCompile(`\b(ISD|DISTRICT|SCHOOL|UNIVERSITY|COLLEGE)\b`)
	reDigit          = regexp.MustCompile(`\d`)
	reIdentShape     = regexp.MustCompile(`^[A-Za-z0-9\-\._\/\s]{1,80}$`)
	reShortAlphaCode = regexp.MustCompile(`^[A-Za-z\-\._]{2,40}$`)
	reCurrency       = regexp.MustCompile(`[\$£€]|usd|inr|rs\.|\busd\b|\binr\b`)
	reBigNumber      = regexp.MustCompile(`\b\d{3,}\b`)
	reNumericString  = regexp.MustCompile(`^[\d,\. ]{2,20}$`)
)

// MatchFirst tries each pattern in order against text (case-insensitive,
// multiline) and returns the first non-empty captured group of the first
// pattern that matches, falling back to the whole match when no group
// captured anything. A pattern that fails to compile is skipped, never fatal.
// Returns "" when nothing matches.
func MatchFirst(exprs []string, text string) string {
	if text == "" {
		return ""
	}
	for _, expr := range exprs {
		re, err := regexp.Compile("(?im)" + expr)
		if err != nil {
			continue
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if g != "" {
				return strings.TrimSpace(g)
			}
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

// NormalizeSpace collapses whitespace runs to single spaces and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// IsNoiseHeading reports whether a line is structural boilerplate: it
// contains a known noise keyword, or is a short all-caps line without an
// organizational keyword.
func IsNoiseHeading(line string) bool {
	s := NormalizeSpace(line)
	if s == "" {
		return true
	}
	up := strings.ToUpper(s)
	for _, kw := range headingNoiseWords {
		if strings.Contains(up, kw) {
			return true
		}
	}
	if len(s) <= 12 && s == strings.ToUpper(s) {
		if reOrgKeywordLine.MatchString(up) {
			return false
		}
		return true
	}
	return false
}

// IsJunkToken reports whether val is empty, pure punctuation, a stop-word,
// or too short to be a field value.
func IsJunkToken(val string) bool {
	s := strings.ToLower(strings.TrimSpace(val))
	if s == "" {
		return true
	}
	if strings.Trim(s, ".,;:-()[]{}") == "" {
		return true
	}
	if _, ok := JunkWords[s]; ok {
		return true
	}
	if len(s) <= 2 {
		return true
	}
	switch s {
	case "or", "and", "the", "a", "an", "to", "of", "for":
		return true
	}
	return false
}

// IsJunkPhrase reports whether val contains any known boilerplate substring.
func IsJunkPhrase(val string) bool {
	s := strings.ToLower(strings.TrimSpace(val))
	if s == "" {
		return true
	}
	for _, ind := range junkPhraseIndicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}

// LooksLikeIdentifier reports whether val has the shape of a short
// identifier: 2-80 chars, not junk, alphanumeric plus -._/ and spaces when
// it carries a digit, or a short alphabetic code otherwise.
func LooksLikeIdentifier(val string) bool {
	s := strings.TrimSpace(val)
	if len(s) < 2 || len(s) > 80 {
		return false
	}
	if _, ok := JunkWords[strings.ToLower(s)]; ok {
		return false
	}
	if IsJunkPhrase(s) {
		return false
	}
	if reDigit.MatchString(s) {
		return reIdentShape.MatchString(s)
	}
	return reShortAlphaCode.MatchString(s)
}

// LooksLikeValue reports whether val plausibly denotes a monetary or
// numeric value: a currency marker, a 3+ digit number, or a pure
// numeric/decimal/comma string.
func LooksLikeValue(val string) bool {
	s := strings.TrimSpace(val)
	if IsJunkToken(s) || IsJunkPhrase(s) {
		return false
	}
	if reCurrency.MatchString(strings.ToLower(s)) {
		return true
	}
	if reBigNumber.MatchString(strings.ReplaceAll(s, ",", "")) {
		return true
	}
	return reNumericString.MatchString(s)
}

// HasDigit reports whether s contains at least one decimal digit.
func HasDigit(s string) bool {
	return reDigit.MatchString(s)
}
