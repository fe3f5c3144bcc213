// Package analytics computes term frequencies over classified documents.
// The top terms surface what a document actually talks about, independent of
// the keyword taxonomy, and feed taxonomy calibration reviews.
package analytics

import (
	"sort"
	"strings"

	"github.com/proposalworks/rfp-triage/models"
)

// stopwords are skipped during frequency analysis: common English function
// words plus procurement boilerplate that appears in nearly every document
// and carries no signal.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "all": {},
	"also": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "before": {}, "being": {}, "below": {}, "between": {},
	"both": {}, "but": {}, "by": {}, "can": {}, "could": {}, "did": {},
	"do": {}, "does": {}, "down": {}, "during": {}, "each": {}, "few": {},
	"for": {}, "from": {}, "further": {}, "had": {}, "has": {}, "have": {},
	"having": {}, "he": {}, "her": {}, "here": {}, "hers": {}, "him": {},
	"his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "just": {}, "may": {}, "me": {}, "more": {},
	"most": {}, "must": {}, "my": {}, "no": {}, "nor": {}, "not": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "out": {}, "over": {}, "own": {},
	"per": {}, "please": {}, "same": {}, "shall": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"to": {}, "too": {}, "under": {}, "until": {}, "up": {}, "upon": {},
	"us": {}, "very": {}, "was": {}, "we": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {}, "you": {}, "your": {}, "yours": {},

	// Procurement boilerplate
	"proposal": {}, "proposals": {}, "vendor": {}, "vendors": {},
	"respondent": {}, "respondents": {}, "response": {}, "responses": {},
	"section": {}, "sections": {}, "appendix": {}, "attachment": {},
	"exhibit": {}, "table": {}, "figure": {}, "page": {}, "pages": {},
	"document": {}, "documents": {}, "confidential": {}, "draft": {},
	"herein": {}, "hereby": {}, "thereof": {},
}

// IsStopword reports whether a word is filtered from frequency analysis.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts content words in one unit of text. Words are
// lowercased and stripped of surrounding punctuation; stopwords and tokens
// shorter than three characters are dropped.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if len(word) < 3 {
			continue
		}
		if _, exists := stopwords[word]; exists {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

// Merge aggregates per-unit frequency maps into one document-level map.
func Merge(frequencies []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, counts := range frequencies {
		for word, count := range counts {
			merged[word] += count
		}
	}
	return merged
}

// TopTerms returns the n most frequent terms, highest count first. Ties
// break alphabetically so output is deterministic.
func TopTerms(frequencies map[string]int, n int) []models.TermCount {
	if n <= 0 {
		return nil
	}

	terms := make([]models.TermCount, 0, len(frequencies))
	for term, count := range frequencies {
		terms = append(terms, models.TermCount{Term: term, Count: count})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
