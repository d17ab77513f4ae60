package fields

import (
	"regexp"
	"strings"

	"github.com/osuji-k/rfp-extractor/internal/patterns"
)

var (
	reIncludesDevice = regexp.MustCompile(`(?is)(including|includes)\s+([A-Za-z0-9 \-,\(\)\/&]+?(?:\b(laptops|desktops|tablet|chromebook|monitor|AIO|device|accessor|display)\b)[A-Za-z0-9 \-,\(\)\/&]*)`)
	reEtcSuffix      = regexp.MustCompile(`(?i)(,?\s*(etc|and so on|and others)\.?)$`)
	reParenDevices   = regexp.MustCompile(`(?i)\b(display monitors|monitors|accessories)\s*\(([^)]+)\)`)
	reBulletDevice   = regexp.MustCompile(`(?im)^(?:-|•|\*)\s*(.+(?:laptop|tablet|monitor|desktop|chromebook|windows|AIO|display|device|accessor).+)$`)
	reDeviceSentence = regexp.MustCompile(`(?is)([A-Z][^.\n]{10,250}\b(?:device|devices|laptop|tablet|monitor|chromebook|desktop|accessor|display).{0,200})`)
	reAffidavitWords = regexp.MustCompile(`\b(affidavit|thereby affirm|i possess|mercury|does not contain|do contain)\b`)
	reIncludingTail  = regexp.MustCompile(`(?is)(including|includes)\s+(.{5,200})`)
)

// extractProduct pulls a product description out of document text, trying
// four heuristics in order: an "including <devices>" phrase, a device-word
// parenthetical, bulleted device list items, and a generic device sentence.
// Any candidate that duplicates the already-extracted title is suppressed;
// when the candidate merely contains the title, the title substring is
// stripped and the remainder kept if non-empty.
func extractProduct(text, title string) string {
	if text == "" {
		return ""
	}

	if m := reIncludesDevice.FindStringSubmatch(text); m != nil {
		cand := patterns.NormalizeSpace(m[2])
		cand = strings.TrimSpace(reEtcSuffix.ReplaceAllString(cand, ""))
		if patterns.IsJunkPhrase(cand) {
			return ""
		}
		if containsTitle(cand, title) {
			return truncateRunes(stripTitle(cand, title), 1000)
		}
		return truncateRunes(cand, 1000)
	}

	if m := reParenDevices.FindString(text); m != "" {
		cand := strings.TrimSpace(m)
		if patterns.IsJunkPhrase(cand) || containsTitle(cand, title) {
			return ""
		}
		return cand
	}

	if ms := reBulletDevice.FindAllStringSubmatch(text, -1); ms != nil {
		items := make([]string, 0, len(ms))
		for _, m := range ms {
			items = append(items, strings.TrimSpace(m[1]))
		}
		joined := strings.Join(items, "; ")
		if patterns.IsJunkPhrase(joined) {
			return ""
		}
		if containsTitle(joined, title) {
			return stripTitle(joined, title)
		}
		return truncateRunes(joined, 1000)
	}

	if m := reDeviceSentence.FindStringSubmatch(text); m != nil {
		cand := strings.TrimSpace(m[1])
		if reAffidavitWords.MatchString(strings.ToLower(cand)) {
			return ""
		}
		if containsTitle(cand, title) {
			// Salvage the "including ..." tail when the sentence swallowed
			// the title; discard the sentence otherwise.
			if im := reIncludingTail.FindStringSubmatch(cand); im != nil {
				tail := strings.TrimSpace(im[2])
				if i := strings.Index(tail, "."); i >= 0 {
					tail = tail[:i]
				}
				return truncateRunes(tail, 1000)
			}
			return ""
		}
		return truncateRunes(cand, 1000)
	}

	return ""
}

// extractProductFallback is the labeled-line fallback applied when all four
// smart heuristics miss.
func extractProductFallback(text, title string) string {
	cand := patterns.MatchFirst([]string{
		`Product[:\s\-]{1,}\s*(.+?)\r?\n`,
		`Items include[:\s\-]{1,}\s*(.+?)\r?\n`,
	}, text)
	if cand == "" || patterns.IsJunkPhrase(cand) || patterns.IsJunkToken(cand) {
		return ""
	}
	if containsTitle(cand, title) {
		return ""
	}
	return cand
}

func containsTitle(cand, title string) bool {
	t := strings.TrimSpace(title)
	if t == "" {
		return false
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(cand)), strings.ToLower(t))
}

// stripTitle removes the title substring (case-insensitive) from cand and
// trims leftover separators; returns "" when nothing informative remains.
func stripTitle(cand, title string) string {
	t := strings.TrimSpace(title)
	if t == "" {
		return cand
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(t))
	if err != nil {
		return cand
	}
	out := strings.Trim(re.ReplaceAllString(cand, ""), " ,;-:")
	return out
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
