// Package router maps primary labels to canonical backend proposal
// sections. Resolve gives the coarse fan-out for a label; Refine narrows a
// label to a single best section using keyword evidence from the passage.
package router

import (
	"strings"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// Resolve returns a label's backend destinations: its primary section
// followed by any secondaries, order preserved.
func Resolve(label models.PrimaryLabel) []models.BackendSection {
	route := taxonomy.RouteFor(label)
	sections := make([]models.BackendSection, 0, 1+len(route.Secondary))
	sections = append(sections, route.Primary)
	sections = append(sections, route.Secondary...)
	return sections
}

// Refine returns the single best backend section for a specific passage.
//
// Only two labels carry refinement logic: operational_details walks its
// ordered keyword-group chain, and solution_overview is redirected to
// technology on strong tech evidence. Pricing is refinement-invariant:
// whatever the passage says, commercial content only ever reaches the
// executive summary. Every other label simply takes its primary mapping.
func Refine(label models.PrimaryLabel, text string) models.BackendSection {
	primary := taxonomy.RouteFor(label).Primary

	switch label {
	case models.LabelOperationalDetails:
		lower := strings.ToLower(text)
		for _, group := range taxonomy.OperationalRefinement() {
			if countHits(lower, group.Keywords) >= taxonomy.RefineHitThreshold {
				return group.Section
			}
		}
		return primary

	case models.LabelSolutionOverview:
		lower := strings.ToLower(text)
		if countHits(lower, taxonomy.StrongTechKeywords()) >= taxonomy.RefineHitThreshold {
			return models.SectionTechnology
		}
		return primary

	default:
		return primary
	}
}

// countHits counts how many distinct keywords occur in the text. Repeated
// occurrences of one keyword count once.
func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}
