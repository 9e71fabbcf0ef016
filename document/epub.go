package document

import (
	"archive/zip"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Structural elements stripped from chapters before text extraction.
var skippedElements = map[string]struct{}{
	"script": {},
	"style":  {},
	"header": {},
	"footer": {},
	"nav":    {},
	"head":   {},
}

// readEPUB extracts the natural-language text of an EPUB container.
//
// EPUB is a zip archive; chapters are XHTML documents. Chapters are visited
// in archive order, which is stable for a given file, and their markup is
// stripped. Script, style, and structural navigation elements are dropped.
func readEPUB(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", &Error{Path: path, Op: "open", Err: err}
	}
	defer r.Close()

	var chapters []string
	for _, f := range r.File {
		if !isChapterFile(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &Error{Path: path, Op: "open", Err: err}
		}
		doc, err := html.Parse(rc)
		rc.Close()
		if err != nil {
			return "", &Error{Path: path, Op: "parse", Err: err}
		}
		if text := extractText(doc); text != "" {
			chapters = append(chapters, text)
		}
	}

	if len(chapters) == 0 {
		return "", &Error{Path: path, Op: "parse", Err: ErrNoContent}
	}
	return strings.Join(chapters, "\n"), nil
}

func isChapterFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xhtml", ".html", ".htm":
		return true
	}
	return false
}

// extractText walks an HTML tree collecting text nodes, separated by spaces.
func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
