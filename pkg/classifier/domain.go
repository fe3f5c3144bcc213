package classifier

import (
	"strings"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// DetectDomain picks the industry overlay with the strictly highest keyword
// hit count. Ties keep the first domain in declaration order; no hits at all
// means general. Expects already-lowercased text.
func DetectDomain(lower string) models.DomainOverlay {
	best := models.DomainGeneral
	bestHits := 0

	for _, def := range taxonomy.Domains() {
		hits := 0
		for _, kw := range def.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = def.Domain
			bestHits = hits
		}
	}

	return best
}
