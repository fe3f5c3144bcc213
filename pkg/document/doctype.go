package document

import (
	"strings"

	"github.com/proposalworks/rfp-triage/models"
)

// caseStudyFraction is the last-resort content heuristic: above this share
// of case_study pages a document reads like a past proposal. Heuristic
// default, not a guarantee on out-of-corpus documents.
const caseStudyFraction = 0.3

// filenameRule maps filename substrings to a document type. All substrings
// must be present for the rule to fire.
type filenameRule struct {
	substrings []string
	docType    models.DocumentType
}

// filenameRules is an ordered cascade: the first match wins and later rules
// never override it.
var filenameRules = []filenameRule{
	{[]string{"rfp"}, models.DocTypeRFP},
	{[]string{"rfi"}, models.DocTypeRFI},
	{[]string{"oral"}, models.DocTypeOrals},
	{[]string{"presentation"}, models.DocTypeOrals},
	{[]string{"addend"}, models.DocTypeAddendum},
	{[]string{"score"}, models.DocTypeScoreSheet},
	{[]string{"evaluation"}, models.DocTypeScoreSheet},
	{[]string{"compliance", "matrix"}, models.DocTypeComplianceMatrix},
	{[]string{"past"}, models.DocTypePastProposal},
	{[]string{"previous"}, models.DocTypePastProposal},
	{[]string{"prior"}, models.DocTypePastProposal},
}

// InferType infers the overall document type from filename, file format,
// and the classified content, in that strict order.
func InferType(fileName string, format models.FileFormat, pages []models.PageClassification) models.DocumentType {
	lowerName := strings.ToLower(fileName)
	for _, rule := range filenameRules {
		if containsAll(lowerName, rule.substrings) {
			return rule.docType
		}
	}

	switch format {
	case models.FormatPPTX:
		return models.DocTypeOrals
	case models.FormatXLSX:
		// Spreadsheets with pricing content are score sheets; plain
		// question sheets default to rfp.
		if containsPricing(pages) {
			return models.DocTypeScoreSheet
		}
		return models.DocTypeRFP
	}

	if len(pages) > 0 {
		caseStudies := 0
		for _, p := range pages {
			if p.PrimaryLabel == models.LabelCaseStudy {
				caseStudies++
			}
		}
		if float64(caseStudies)/float64(len(pages)) > caseStudyFraction {
			return models.DocTypePastProposal
		}
		return models.DocTypeRFP
	}

	return models.DocTypeUnknown
}

func containsAll(s string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
