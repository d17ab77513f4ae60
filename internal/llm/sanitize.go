package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/osuji-k/rfp-extractor/constants"
)

// SanitizeCandidate normalizes a recovered field mapping in place:
//   - removes keys outside the schema (models love inventing them)
//   - trims strings; "" and the literal "null" count as absent
//   - coerces stray numbers to strings for string-typed fields
//   - drops a contact_info that is not an object, and a documentation list
//     that is not a list or string
//
// Returns the list of dropped/renormalized keys for the log line.
func SanitizeCandidate(m map[string]any, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}
	var dropped []string

	for k := range m {
		if !constants.IsSchemaField(k) {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	for k, v := range m {
		switch constants.FieldKinds[k] {
		case constants.KindContact:
			if _, ok := v.(map[string]any); v != nil && !ok {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		case constants.KindList:
			switch v.(type) {
			case nil, []any, []string, string:
			default:
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		default:
			switch t := v.(type) {
			case nil:
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			case string:
				s := strings.TrimSpace(t)
				if s == "" || strings.EqualFold(s, "null") {
					delete(m, k)
					dropped = append(dropped, k+"(empty)")
				} else {
					m[k] = s
				}
			case float64:
				m[k] = trimFloat(t)
				dropped = append(dropped, k+"(number)")
			default:
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		}
	}

	if len(dropped) > 0 {
		logger.Warn("llm.candidate.sanitized", "dropped", dropped)
	}
	return dropped
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
