// Package refine accepts label overrides from an external reviewer, human
// or model, and folds them back into a classification result. The override
// carries only a label, a confidence, and a rationale; everything derived
// from the label is recomputed here so the result stays internally
// consistent.
package refine

import (
	"math"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/classifier"
	"github.com/proposalworks/rfp-triage/pkg/router"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// MaxSnippetLen caps the text excerpt sent out for review, in runes.
const MaxSnippetLen = 4000

// Override is a reviewer's verdict on one unit.
type Override struct {
	Label      models.PrimaryLabel `json:"label" yaml:"label"`
	Confidence float64             `json:"confidence" yaml:"confidence"`
	Rationale  string              `json:"rationale,omitempty" yaml:"rationale,omitempty"`
}

// Snippet returns the leading excerpt of a unit for external review,
// truncated to MaxSnippetLen runes so multibyte text is never cut
// mid-character.
func Snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxSnippetLen {
		return text
	}
	return string(runes[:MaxSnippetLen])
}

// Apply merges an override into a keyword-based result. A nil override or
// one naming an unknown label leaves the result untouched. Otherwise the
// label, confidence, and rationale come from the override and the intent
// group, confidence level, and section routing are re-derived from the new
// label. Secondary labels are dropped: they were evidence for the keyword
// verdict, not the overridden one.
func Apply(result models.ClassificationResult, ov *Override) models.ClassificationResult {
	if ov == nil || taxonomy.Definition(ov.Label) == nil {
		return result
	}

	confidence := math.Min(1, math.Max(0, ov.Confidence))

	out := result
	out.PrimaryLabel = ov.Label
	out.IntentGroup = taxonomy.GroupFor(ov.Label)
	out.Confidence = confidence
	out.ConfidenceLevel = classifier.Level(confidence)
	out.Rationale = ov.Rationale
	out.SecondaryLabels = nil
	if ov.Label == models.LabelUnclassified {
		// Matches the keyword path: unclassified units route nowhere.
		out.Sections = nil
	} else {
		out.Sections = router.Resolve(ov.Label)
	}
	return out
}
