package models

import (
	"strings"
	"time"
)

// FileFormat is the container format the document arrived in. The core never
// reads raw bytes; the format only feeds document-type inference.
type FileFormat string

const (
	FormatPDF  FileFormat = "pdf"
	FormatDOCX FileFormat = "docx"
	FormatXLSX FileFormat = "xlsx"
	FormatPPTX FileFormat = "pptx"
	FormatHTML FileFormat = "html"
	FormatTXT  FileFormat = "txt"
)

// FormatFromName maps a file name's extension to a FileFormat. Unrecognized
// extensions fall back to txt, the format with no special inference rules.
func FormatFromName(fileName string) FileFormat {
	dot := strings.LastIndex(fileName, ".")
	if dot < 0 {
		return FormatTXT
	}
	switch strings.ToLower(fileName[dot+1:]) {
	case "pdf":
		return FormatPDF
	case "docx", "doc":
		return FormatDOCX
	case "xlsx", "xls":
		return FormatXLSX
	case "pptx", "ppt":
		return FormatPPTX
	case "html", "htm":
		return FormatHTML
	default:
		return FormatTXT
	}
}

// DocumentType is the inferred overall type of an uploaded document.
type DocumentType string

const (
	DocTypeRFP              DocumentType = "rfp"
	DocTypeRFI              DocumentType = "rfi"
	DocTypeOrals            DocumentType = "orals"
	DocTypeAddendum         DocumentType = "addendum"
	DocTypeScoreSheet       DocumentType = "score_sheet"
	DocTypeComplianceMatrix DocumentType = "compliance_matrix"
	DocTypePastProposal     DocumentType = "past_proposal"
	DocTypeUnknown          DocumentType = "unknown"
)

// TermCount is one entry of a document's term-frequency ranking.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// ClassifiedDocument is the rolled-up result of classifying every unit of a
// document, in original page/slide order.
type ClassifiedDocument struct {
	ID                string               `json:"id" yaml:"id"`
	FileName          string               `json:"file_name" yaml:"file_name"`
	Format            FileFormat           `json:"file_format" yaml:"file_format"`
	Type              DocumentType         `json:"document_type" yaml:"document_type"`
	UploadedAt        time.Time            `json:"uploaded_at" yaml:"uploaded_at"`
	Language          string               `json:"language,omitempty" yaml:"language,omitempty"`
	Pages             []PageClassification `json:"pages" yaml:"pages"`
	LabelDistribution map[PrimaryLabel]int `json:"label_distribution" yaml:"label_distribution"`
	DominantDomain    DomainOverlay        `json:"dominant_domain" yaml:"dominant_domain"`
	ContainsPricing   bool                 `json:"contains_pricing" yaml:"contains_pricing"`
	TopTerms          []TermCount          `json:"top_terms,omitempty" yaml:"top_terms,omitempty"`
}
