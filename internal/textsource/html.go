package textsource

import (
	"os"
	"strings"

	"golang.org/x/net/html"
)

// htmlText strips markup from an HTML file, dropping script/style/noscript
// subtrees and joining the remaining text nodes with newlines.
func (a *Acquirer) htmlText(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("textsource.html.read_failed", "path", path, "error", err)
		return ""
	}
	doc, err := html.Parse(strings.NewReader(string(b)))
	if err != nil {
		a.logger.Warn("textsource.html.parse_failed", "path", path, "error", err)
		return ""
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out.WriteString(t)
				out.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out.String()
}
