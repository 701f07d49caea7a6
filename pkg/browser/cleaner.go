package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// cleanedContent is the readable rendering of a page: title, visible text
// with block structure collapsed to newlines, and a truncation marker.
type cleanedContent struct {
	Title     string
	Text      string
	Truncated bool
}

// skippedElements are removed entirely, including their text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
	"head":     true,
}

// blockElements get a line break before their text so the output keeps
// the page's visual grouping.
var blockElements = map[string]bool{
	"div": true, "p": true, "section": true, "article": true,
	"header": true, "footer": true, "nav": true, "main": true,
	"aside": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true,
	"table": true, "tr": true, "td": true, "th": true,
	"form": true, "fieldset": true, "blockquote": true, "pre": true,
	"br": true,
}

// cleanHTML strips scripts, styles and other noise from raw HTML and
// returns the visible text, capped at maxLength characters.
func cleanHTML(rawHTML string, maxLength int) (*cleanedContent, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &cleanedContent{
		Title: documentTitle(doc),
	}

	var builder strings.Builder
	result.Truncated = collectText(doc, &builder, maxLength)
	result.Text = strings.TrimSpace(builder.String())
	return result, nil
}

// collectText walks the node tree appending visible text. Returns true
// once the length cap is hit.
func collectText(n *html.Node, builder *strings.Builder, maxLength int) bool {
	if builder.Len() >= maxLength {
		return true
	}

	switch n.Type {
	case html.CommentNode:
		return false
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if skippedElements[name] {
			return false
		}
		if blockElements[name] && builder.Len() > 0 {
			builder.WriteString("\n")
		}
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return false
		}
		if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
			builder.WriteString(" ")
		}
		if builder.Len()+len(text) > maxLength {
			builder.WriteString(text[:maxLength-builder.Len()])
			return true
		}
		builder.WriteString(text)
		return false
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if collectText(c, builder, maxLength) {
			return true
		}
	}
	return false
}

// documentTitle returns the contents of the first <title> element, if any.
func documentTitle(n *html.Node) string {
	if n.Type == html.ElementNode && strings.ToLower(n.Data) == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := documentTitle(c); title != "" {
			return title
		}
	}
	return ""
}
