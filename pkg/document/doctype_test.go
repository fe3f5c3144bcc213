package document

import (
	"testing"

	"github.com/proposalworks/rfp-triage/models"
)

func page(label models.PrimaryLabel, pricing models.PricingFlag) models.PageClassification {
	return models.PageClassification{
		ClassificationResult: models.ClassificationResult{
			PrimaryLabel: label,
			Pricing:      pricing,
		},
	}
}

func TestInferTypeFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     models.DocumentType
	}{
		{name: "rfp in name", fileName: "ClientCo_RFP_2026.docx", want: models.DocTypeRFP},
		{name: "rfi in name", fileName: "vendor-rfi-final.pdf", want: models.DocTypeRFI},
		{name: "orals deck", fileName: "Oral_Presentation_Round2.pptx", want: models.DocTypeOrals},
		{name: "presentation keyword", fileName: "finalist presentation.pdf", want: models.DocTypeOrals},
		{name: "addendum", fileName: "Addendum_3_QA.pdf", want: models.DocTypeAddendum},
		{name: "score sheet", fileName: "score_template.xlsx", want: models.DocTypeScoreSheet},
		{name: "evaluation sheet", fileName: "evaluation criteria.xlsx", want: models.DocTypeScoreSheet},
		{name: "compliance matrix needs both words", fileName: "compliance_matrix_v2.xlsx", want: models.DocTypeComplianceMatrix},
		{name: "past proposal", fileName: "past_submission_acme.docx", want: models.DocTypePastProposal},
		{name: "prior proposal", fileName: "prior response draft.docx", want: models.DocTypePastProposal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferType(tt.fileName, models.FormatFromName(tt.fileName), nil)
			if got != tt.want {
				t.Errorf("InferType(%q) = %s, want %s", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestInferTypeFromFormat(t *testing.T) {
	content := []models.PageClassification{
		page(models.LabelOperationalDetails, models.NoPricing),
	}
	pricingContent := []models.PageClassification{
		page(models.LabelPricing, models.HasPricing),
	}

	tests := []struct {
		name     string
		fileName string
		format   models.FileFormat
		pages    []models.PageClassification
		want     models.DocumentType
	}{
		{
			name:     "pptx without filename hint is orals",
			fileName: "deck_final.pptx",
			format:   models.FormatPPTX,
			pages:    content,
			want:     models.DocTypeOrals,
		},
		{
			name:     "xlsx with pricing is a score sheet",
			fileName: "workbook.xlsx",
			format:   models.FormatXLSX,
			pages:    pricingContent,
			want:     models.DocTypeScoreSheet,
		},
		{
			name:     "xlsx without pricing is a question sheet",
			fileName: "workbook.xlsx",
			format:   models.FormatXLSX,
			pages:    content,
			want:     models.DocTypeRFP,
		},
		{
			name:     "filename beats format",
			fileName: "rfp_questions.pptx",
			format:   models.FormatPPTX,
			pages:    content,
			want:     models.DocTypeRFP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferType(tt.fileName, tt.format, tt.pages); got != tt.want {
				t.Errorf("InferType(%q, %s) = %s, want %s", tt.fileName, tt.format, got, tt.want)
			}
		})
	}
}

func TestInferTypeFromContent(t *testing.T) {
	mostlyCases := []models.PageClassification{
		page(models.LabelCaseStudy, models.NoPricing),
		page(models.LabelCaseStudy, models.NoPricing),
		page(models.LabelOperationalDetails, models.NoPricing),
	}
	fewCases := []models.PageClassification{
		page(models.LabelCaseStudy, models.NoPricing),
		page(models.LabelOperationalDetails, models.NoPricing),
		page(models.LabelOperationalDetails, models.NoPricing),
		page(models.LabelSolutionOverview, models.NoPricing),
	}

	tests := []struct {
		name  string
		pages []models.PageClassification
		want  models.DocumentType
	}{
		{name: "case study heavy reads as past proposal", pages: mostlyCases, want: models.DocTypePastProposal},
		{name: "below the threshold stays rfp", pages: fewCases, want: models.DocTypeRFP},
		{name: "no pages at all is unknown", pages: nil, want: models.DocTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferType("document.docx", models.FormatDOCX, tt.pages); got != tt.want {
				t.Errorf("InferType() = %s, want %s", got, tt.want)
			}
		})
	}
}
