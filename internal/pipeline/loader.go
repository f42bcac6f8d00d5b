package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Document is cleaned source text ready for normalization
type Document struct {
	Path string
	Text string
}

var (
	pageNumberRe = regexp.MustCompile(`^\d+$`)
	pageLabelRe  = regexp.MustCompile(`(?i)^Page\s+\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// LoadDocument reads a plain-text, Markdown or HTML file and cleans it for
// the preprocessor: tags stripped, header/footer noise dropped, whitespace
// collapsed. Binary formats (PDF, DOCX) belong to upstream extractors.
func LoadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = stripHTML(text)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
	}

	text = stripHeaderFooterLines(text)
	text = normalizeWhitespace(text)

	return &Document{Path: path, Text: text}, nil
}

// stripHTML extracts visible text, skipping script/style subtrees
func stripHTML(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String(), nil
}

// stripHeaderFooterLines drops bare page numbers and "Page N" lines left
// over from upstream extraction.
func stripHeaderFooterLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if pageNumberRe.MatchString(trimmed) || pageLabelRe.MatchString(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// normalizeWhitespace collapses runs of whitespace to single spaces
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
