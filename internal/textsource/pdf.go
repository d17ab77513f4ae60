package textsource

import (
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText pulls plain text out of every page of a PDF. Pages that fail to
// decode are skipped; a document with no extractable text (e.g. a pure
// image scan) yields "".
func (a *Acquirer) pdfText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		a.logger.Warn("textsource.pdf.open_failed", "path", path, "error", err)
		return ""
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			a.logger.Warn("textsource.pdf.close_failed", "path", path, "error", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		a.logger.Warn("textsource.pdf.stat_failed", "path", path, "error", err)
		return ""
	}
	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		a.logger.Warn("textsource.pdf.reader_failed", "path", path, "error", err)
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			a.logger.Warn("textsource.pdf.page_failed", "path", path, "page", i, "error", err)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		a.logger.Warn("textsource.pdf.no_text", "path", path, "hint", "document may be a scanned image; OCR is out of scope here")
	}
	return b.String()
}
