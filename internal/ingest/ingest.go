// Package ingest normalizes raw inputs before analysis: plain-text cleanup
// and HTML-to-text conversion for job postings copied from the web.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseError reports input that could not be converted to analyzable text.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest: %s: %v", e.Message, e.Cause)
	}
	return "ingest: " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while preserving the
// line structure section heuristics depend on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)
		normalized := multiSpaceRe.ReplaceAllString(trimmed, " ")
		if indent > 0 {
			normalized = strings.Repeat(" ", indent) + normalized
		}
		cleaned = append(cleaned, normalized)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// Tags whose content is never posting text.
var skipSelectors = "script, style, noscript, head"

// Block-level tags that imply a line break around their content.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"li": true, "ul": true, "ol": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// HTMLToText extracts readable text from an HTML document, inserting line
// breaks at block boundaries so section headings stay on their own lines.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ParseError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find(skipSelectors).Remove()

	var sb strings.Builder
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				sb.WriteString(node.Text())
				return
			}
			block := blockTags[goquery.NodeName(node)]
			if block {
				sb.WriteString("\n")
			}
			walk(node)
			if block {
				sb.WriteString("\n")
			}
		})
	}
	walk(doc.Selection)

	text := CleanText(sb.String())
	if text == "" {
		return "", &ParseError{Message: "no text content in HTML"}
	}
	return text, nil
}

// NormalizeInput cleans raw input, converting from HTML first when the
// content looks like markup. Plain text that merely mentions a tag is left
// alone; only documents starting with markup are treated as HTML.
func NormalizeInput(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if looksLikeHTML(trimmed) {
		return HTMLToText(trimmed)
	}
	return CleanText(content), nil
}

func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	for _, prefix := range []string{"<!doctype", "<html", "<body", "<div", "<p>", "<section"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
