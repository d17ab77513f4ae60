package constants

import "strings"

// DocumentFormat identifies how a source file's text gets acquired.
type DocumentFormat string

const (
	PDF  DocumentFormat = "PDF"
	HTML DocumentFormat = "HTML"
	TXT  DocumentFormat = "TXT"
)

// AllowedExtensions holds the file extensions the batch runner picks up.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"html": {},
	"htm":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its acquisition format.
// Unknown extensions are treated as plain text.
func MapExtToFormat(ext string) DocumentFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "html", "htm":
		return HTML
	default:
		return TXT
	}
}
