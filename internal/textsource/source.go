// Package textsource acquires normalized document text from source files.
// It is a best-effort collaborator: on any failure it logs and returns an
// empty string, never an error; extractors downstream handle empty text by
// producing null fields.
package textsource

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuji-k/rfp-extractor/constants"
)

// Acquirer reads source files and hands back a single normalized text
// string per document: newline-joined, whitespace-stripped lines.
type Acquirer struct {
	logger *slog.Logger
}

func NewAcquirer(logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Acquirer{logger: logger}
}

// Text returns the normalized text of the file at path, dispatching on
// extension: PDF and HTML get dedicated extraction, everything else is read
// as plain text.
func (a *Acquirer) Text(path string) string {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		return normalizeLines(a.pdfText(path))
	case constants.HTML:
		return normalizeLines(a.htmlText(path))
	default:
		return normalizeLines(a.plainText(path))
	}
}

func (a *Acquirer) plainText(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("textsource.read_failed", "path", path, "error", err)
		return ""
	}
	return string(b)
}

// normalizeLines strips each line and drops empties, joining with single
// newlines. All extractors assume this shape.
func normalizeLines(s string) string {
	if s == "" {
		return ""
	}
	var lines []string
	for _, ln := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}
