package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Matches a JSON object with one level of brace nesting; enough to dig a
// record out of surrounding prose or code fences.
var reJSONObject = regexp.MustCompile(`(?s)\{(?:[^{}]|\{[^{}]*\})*\}`)

// RecoverJSONObject parses a model response into a field mapping. The whole
// response is tried first; failing that, every brace-matched object
// substring is tried in order. Complete garbage yields (nil, false), never
// an error: a malformed external response is simply treated as absent.
func RecoverJSONObject(raw string) (map[string]any, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err == nil {
		return m, true
	}
	for _, frag := range reJSONObject.FindAllString(s, -1) {
		var m map[string]any
		if err := json.Unmarshal([]byte(frag), &m); err == nil {
			return m, true
		}
	}
	return nil, false
}
