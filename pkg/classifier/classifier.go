// Package classifier scores a single text unit against the primary label
// taxonomy using keyword density, and derives confidence, secondary labels,
// a domain overlay, and a pricing flag. It never fails: malformed or empty
// input degrades to an unclassified sentinel result.
package classifier

import (
	"math"
	"sort"
	"strings"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/router"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// labelScore pairs a label with its keyword-density score for one unit.
type labelScore struct {
	label models.PrimaryLabel
	score float64
}

// Classify assigns a primary label, intent group, domain overlay, pricing
// flag, confidence, secondary labels, and routed backend sections to one
// unit of text. Deterministic: the same input always yields the same result.
func Classify(text string) models.ClassificationResult {
	lower := strings.ToLower(text)

	scores := scoreLabels(lower)
	domain := DetectDomain(lower)
	pricing := DetectPricing(lower)

	top := scores[0]
	if top.score == 0 {
		return models.ClassificationResult{
			PrimaryLabel:    models.LabelUnclassified,
			IntentGroup:     taxonomy.GroupFor(models.LabelUnclassified),
			Domain:          domain,
			Pricing:         pricing,
			Confidence:      0,
			ConfidenceLevel: models.ConfidenceLow,
		}
	}

	runnerUp := 0.0
	if len(scores) > 1 {
		runnerUp = scores[1].score
	}

	// A high absolute score and a wide margin over the next contender both
	// raise confidence. Bucket before rounding: an unrounded 0.59999 is
	// medium even though it prints as 0.60.
	confidence := math.Min(1, (top.score-runnerUp)+top.score*0.5)
	level := Level(confidence)

	var secondary []models.PrimaryLabel
	for _, s := range scores[1:] {
		if s.score > 0 && s.score > top.score/2 {
			secondary = append(secondary, s.label)
		}
	}

	return models.ClassificationResult{
		PrimaryLabel:    top.label,
		IntentGroup:     taxonomy.GroupFor(top.label),
		Domain:          domain,
		Pricing:         pricing,
		Confidence:      round2(confidence),
		ConfidenceLevel: level,
		Sections:        router.Resolve(top.label),
		SecondaryLabels: secondary,
	}
}

// scoreLabels computes the per-label keyword density scores, sorted
// descending. The sort is stable over taxonomy declaration order so score
// ties resolve to the earlier-declared label. Density divides matched count
// by sqrt of the keyword list length: labels with short lists need fewer
// hits to score competitively, so large buckets cannot win on volume alone.
func scoreLabels(lower string) []labelScore {
	defs := taxonomy.Labels()
	scores := make([]labelScore, 0, len(defs))

	for _, def := range defs {
		score := 0.0
		if len(def.Keywords) > 0 {
			matched := 0
			for _, kw := range def.Keywords {
				if strings.Contains(lower, kw) {
					matched++
				}
			}
			score = float64(matched) / math.Sqrt(float64(len(def.Keywords)))
		}
		scores = append(scores, labelScore{label: def.Label, score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	return scores
}

// Level buckets an unrounded confidence score. Boundaries are exact:
// 0.6 is high, anything below it down to 0.3 is medium.
func Level(confidence float64) models.ConfidenceLevel {
	switch {
	case confidence >= 0.6:
		return models.ConfidenceHigh
	case confidence >= 0.3:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
