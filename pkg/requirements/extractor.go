// Package requirements scans classified RFP/RFI section text for discrete,
// independently addressable client requirements: numbered clauses, lettered
// clauses, and question-style prompts. Each requirement is routed to a
// single backend section via passage-level refinement.
package requirements

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/router"
)

// Section is one classified text unit handed to the extractor: the unit's
// primary label plus its raw text.
type Section struct {
	Label models.PrimaryLabel
	Text  string
}

// minClauseLen is the shortest body a lettered or question clause may have.
// Numbered clauses carry their own structure and have no length floor.
const minClauseLen = 20

var (
	// dottedClauseRe matches multi-part numeric prefixes: "3.2.1 text",
	// "3.2.1. text", "4.1) text". The captured id is the bare numeric
	// prefix without the trailing separator.
	dottedClauseRe = regexp.MustCompile(`^(\d+(?:\.\d+)+)[.)]?\s+(\S.*)$`)

	// numberClauseRe matches single-number prefixes, which must carry a
	// separator ("1. text", "2) text") so a line opening with a bare year
	// is not mistaken for a clause.
	numberClauseRe = regexp.MustCompile(`^(\d+)[.)]\s+(\S.*)$`)

	// letteredClauseRe matches a single leading letter plus separator:
	// "a) text", "B. text".
	letteredClauseRe = regexp.MustCompile(`^[A-Za-z][.)]\s+(\S.*)$`)

	// questionRe matches an optional "Q7:"/"Q7." prefix followed by an
	// imperative or interrogative opener.
	questionRe = regexp.MustCompile(`(?i)^(?:q\d+\s*[:.]\s*)?((?:please|describe|provide|explain|how|what|where|when)\b.*)$`)
)

// Extract scans every section line by line for requirement clauses. Each
// line is tested against the numbered, lettered, and question patterns in
// that fixed order and may match at most one of them. Synthesized Q-<n> ids
// share a single running counter across all sections of the document, so
// ids are unique and monotonically increasing within one call.
func Extract(sections []Section) []models.ExtractedRequirement {
	var reqs []models.ExtractedRequirement
	counter := 0

	for _, sec := range sections {
		for _, line := range strings.Split(sec.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			sourceID, body := matchClause(line, &counter)
			if sourceID == "" {
				continue
			}

			reqs = append(reqs, models.ExtractedRequirement{
				SourceID:      sourceID,
				Text:          body,
				TargetSection: router.Refine(sec.Label, body),
				Priority:      models.PriorityUnknown,
				Status:        models.StatusParsed,
			})
		}
	}

	return reqs
}

// matchClause tests a line against the three clause patterns in priority
// order. Returns an empty source id when the line is not a requirement.
func matchClause(line string, counter *int) (sourceID, body string) {
	if m := dottedClauseRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2]
	}
	if m := numberClauseRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2]
	}
	if m := letteredClauseRe.FindStringSubmatch(line); m != nil && len(m[1]) >= minClauseLen {
		*counter++
		return fmt.Sprintf("Q-%d", *counter), m[1]
	}
	if m := questionRe.FindStringSubmatch(line); m != nil && len(m[1]) >= minClauseLen {
		*counter++
		return fmt.Sprintf("Q-%d", *counter), m[1]
	}
	return "", ""
}
