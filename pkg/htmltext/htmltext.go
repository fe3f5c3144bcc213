// Package htmltext turns HTML-sourced documents (web RFP portals, emailed
// HTML exports) into plain-text units ready for classification. Readability
// strips chrome and boilerplate first; the distilled content is then split
// into one unit per top-level heading.
package htmltext

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Units extracts the main content of an HTML document and splits it into
// plain-text units, one per h1/h2/h3 section. The heading text becomes the
// unit's first line. Documents with no headings yield a single unit of the
// whole distilled text. pageURL may be empty for local files.
func Units(html, pageURL string) ([]string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, err
	}

	var units []string
	doc.Find("h1,h2,h3").Each(func(_ int, heading *goquery.Selection) {
		var b strings.Builder
		b.WriteString(normalizeText(heading.Text()))

		// Body of the section runs until the next heading of any level.
		heading.NextUntil("h1,h2,h3").Each(func(_ int, s *goquery.Selection) {
			text := normalizeText(s.Text())
			if text != "" {
				b.WriteString("\n")
				b.WriteString(text)
			}
		})

		if unit := strings.TrimSpace(b.String()); unit != "" {
			units = append(units, unit)
		}
	})

	if len(units) == 0 {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			units = append(units, text)
		}
	}

	return units, nil
}

// normalizeText collapses a selection's text into single-space-separated
// lines with surrounding whitespace trimmed.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
