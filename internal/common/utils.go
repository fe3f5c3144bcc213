package common

import (
	"regexp"
	"strings"
)

// pageMarkerPattern matches explicit unit boundaries emitted by upstream
// document converters: a line of the form "--- PAGE 3 ---", "--- SLIDE 12
// ---", or "--- SHEET 2 ---".
var pageMarkerPattern = regexp.MustCompile(`(?mi)^---\s*(?:PAGE|SLIDE|SHEET)\s+\d+\s*---\s*$`)

// SplitUnits breaks raw extracted text into classification units. Explicit
// page markers win; form feeds are the fallback boundary. Text with neither
// is one unit. Empty units are dropped.
func SplitUnits(text string) []string {
	var parts []string
	if pageMarkerPattern.MatchString(text) {
		parts = pageMarkerPattern.Split(text, -1)
	} else {
		parts = strings.Split(text, "\f")
	}

	units := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			units = append(units, part)
		}
	}
	return units
}

// TruncateRunes shortens a string to at most n runes for log and report
// output.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
