package textsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTextPlainFile(t *testing.T) {
	a := NewAcquirer(nil)
	path := writeTemp(t, "doc.txt", "  Bid No: TX-114  \n\n\n  Title: Chromebooks\t\n")
	assert.Equal(t, "Bid No: TX-114\nTitle: Chromebooks", a.Text(path))
}

func TestTextUnknownExtensionReadAsPlain(t *testing.T) {
	a := NewAcquirer(nil)
	path := writeTemp(t, "doc.dat", "line one\nline two\n")
	assert.Equal(t, "line one\nline two", a.Text(path))
}

func TestTextMissingFile(t *testing.T) {
	a := NewAcquirer(nil)
	assert.Equal(t, "", a.Text(filepath.Join(t.TempDir(), "absent.txt")))
}

func TestTextHTMLStripsMarkup(t *testing.T) {
	a := NewAcquirer(nil)
	doc := `<html><head>
<title>RFP Portal</title>
<style>body { color: red; }</style>
<script>alert("hi");</script>
</head><body>
<h1>Bid No: TX-114</h1>
<p>Due Date: <b>March 5, 2025</b></p>
<noscript>enable javascript</noscript>
</body></html>`
	path := writeTemp(t, "doc.html", doc)

	got := a.Text(path)
	assert.Contains(t, got, "Bid No: TX-114")
	assert.Contains(t, got, "Due Date:")
	assert.Contains(t, got, "March 5, 2025")
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "enable javascript")
}

func TestTextHTMLMissingFile(t *testing.T) {
	a := NewAcquirer(nil)
	assert.Equal(t, "", a.Text(filepath.Join(t.TempDir(), "absent.htm")))
}

func TestNormalizeLines(t *testing.T) {
	assert.Equal(t, "", normalizeLines(""))
	assert.Equal(t, "a\nb", normalizeLines("  a  \r\n\n  b \n"))
}
