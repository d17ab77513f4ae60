package patterns

import (
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

// Date-looking substrings, tried in order when the full captured text does
// not parse on its own. Month-first convention throughout.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?\s*,?\s+\d{4}`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*,?\s+\d{4}`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`),
}

// NormalizeDate parses fuzzy natural-language date text and returns it as
// ISO YYYY-MM-DD. The whole string is tried first; failing that, the first
// date-looking substring is tried. Returns ("", false) when nothing parses.
// The caller decides what a parse failure means: due_date degrades to null
// while delivery_date keeps the raw captured text.
func NormalizeDate(text string) (string, bool) {
	s := NormalizeSpace(text)
	if s == "" {
		return "", false
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format("2006-01-02"), true
	}
	for _, shape := range dateShapes {
		frag := shape.FindString(s)
		if frag == "" {
			continue
		}
		if t, err := dateparse.ParseAny(strings.TrimSpace(frag)); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
