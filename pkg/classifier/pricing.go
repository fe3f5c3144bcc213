package classifier

import (
	"strings"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// DetectPricing computes the tri-state pricing flag. Strong phrases
// short-circuit to has_pricing; otherwise at least WeakPricingThreshold
// distinct weak signals mark the unit pricing_adjacent. Expects
// already-lowercased text.
func DetectPricing(lower string) models.PricingFlag {
	for _, phrase := range taxonomy.StrongPricingPhrases() {
		if strings.Contains(lower, phrase) {
			return models.HasPricing
		}
	}

	weak := 0
	for _, signal := range taxonomy.WeakPricingSignals() {
		if strings.Contains(lower, signal) {
			weak++
			if weak >= taxonomy.WeakPricingThreshold {
				return models.PricingAdjacent
			}
		}
	}

	return models.NoPricing
}
