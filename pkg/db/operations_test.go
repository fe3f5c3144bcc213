package db

import (
	"testing"
	"time"

	"github.com/proposalworks/rfp-triage/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testDocument(id string) *models.ClassifiedDocument {
	return &models.ClassifiedDocument{
		ID:         id,
		FileName:   "ClientCo_RFP_2026.docx",
		Format:     models.FormatDOCX,
		Type:       models.DocTypeRFP,
		UploadedAt: time.Now().UTC(),
		Language:   "en",
		Pages: []models.PageClassification{
			{
				Index:   0,
				Heading: "Delivery Model",
				ClassificationResult: models.ClassificationResult{
					PrimaryLabel:    models.LabelOperationalDetails,
					IntentGroup:     models.GroupExecutionDelivery,
					Domain:          models.DomainBanking,
					Pricing:         models.NoPricing,
					Confidence:      0.72,
					ConfidenceLevel: models.ConfidenceHigh,
					Sections: []models.BackendSection{
						models.SectionDeliveryModel, models.SectionTeamLeadership,
					},
				},
			},
			{
				Index:   1,
				Heading: "Commercials",
				ClassificationResult: models.ClassificationResult{
					PrimaryLabel:    models.LabelPricing,
					IntentGroup:     models.GroupCommercialMechanics,
					Domain:          models.DomainGeneral,
					Pricing:         models.HasPricing,
					Confidence:      0.9,
					ConfidenceLevel: models.ConfidenceHigh,
					Sections:        []models.BackendSection{models.SectionExecutiveSummary},
				},
			},
		},
		DominantDomain:  models.DomainBanking,
		ContainsPricing: true,
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	doc := testDocument("doc-1")
	if err := db.SaveDocument(doc); err != nil {
		t.Fatalf("SaveDocument() error: %v", err)
	}

	rec, err := db.GetDocument("doc-1")
	if err != nil {
		t.Fatalf("GetDocument() error: %v", err)
	}
	if rec == nil {
		t.Fatal("GetDocument() returned nil for saved document")
	}

	if rec.FileName != doc.FileName {
		t.Errorf("file name = %q, want %q", rec.FileName, doc.FileName)
	}
	if rec.DocType != string(models.DocTypeRFP) {
		t.Errorf("doc type = %q, want rfp", rec.DocType)
	}
	if rec.PageCount != 2 {
		t.Errorf("page count = %d, want 2", rec.PageCount)
	}
	if !rec.ContainsPricing {
		t.Error("contains pricing not persisted")
	}
	if rec.TaxonomyVersion == "" {
		t.Error("taxonomy version not persisted")
	}
}

func TestGetDocumentMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rec, err := db.GetDocument("nope")
	if err != nil {
		t.Fatalf("GetDocument() error: %v", err)
	}
	if rec != nil {
		t.Errorf("GetDocument() = %+v, want nil for unknown id", rec)
	}
}

func TestSaveDocumentDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveDocument(testDocument("doc-1")); err != nil {
		t.Fatalf("first SaveDocument() error: %v", err)
	}
	if err := db.SaveDocument(testDocument("doc-1")); err == nil {
		t.Error("duplicate document id did not error")
	}
}

func TestSaveRequirementsAndDistributions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveDocument(testDocument("doc-1")); err != nil {
		t.Fatalf("SaveDocument() error: %v", err)
	}

	reqs := []models.ExtractedRequirement{
		{
			SourceID:      "3.2.1",
			Text:          "Describe your disaster recovery plan.",
			TargetSection: models.SectionDeliveryModel,
			Priority:      models.PriorityUnknown,
			Status:        models.StatusParsed,
		},
		{
			SourceID:      "Q-1",
			Text:          "Explain how quality is monitored across sites.",
			TargetSection: models.SectionDeliveryModel,
			Priority:      models.PriorityUnknown,
			Status:        models.StatusParsed,
		},
		{
			SourceID:      "Q-2",
			Text:          "Provide your leadership org chart.",
			TargetSection: models.SectionTeamLeadership,
			Priority:      models.PriorityUnknown,
			Status:        models.StatusParsed,
		},
	}
	if err := db.SaveRequirements("doc-1", reqs); err != nil {
		t.Fatalf("SaveRequirements() error: %v", err)
	}

	// Saving again upserts instead of failing.
	if err := db.SaveRequirements("doc-1", reqs); err != nil {
		t.Fatalf("second SaveRequirements() error: %v", err)
	}

	sections, err := db.SectionDistribution()
	if err != nil {
		t.Fatalf("SectionDistribution() error: %v", err)
	}
	if sections[models.SectionDeliveryModel] != 2 {
		t.Errorf("delivery_model count = %d, want 2", sections[models.SectionDeliveryModel])
	}
	if sections[models.SectionTeamLeadership] != 1 {
		t.Errorf("team_leadership count = %d, want 1", sections[models.SectionTeamLeadership])
	}

	labels, err := db.LabelDistribution()
	if err != nil {
		t.Fatalf("LabelDistribution() error: %v", err)
	}
	if labels[models.LabelOperationalDetails] != 1 {
		t.Errorf("operational_details count = %d, want 1", labels[models.LabelOperationalDetails])
	}
	if labels[models.LabelPricing] != 1 {
		t.Errorf("pricing count = %d, want 1", labels[models.LabelPricing])
	}
}

func TestSaveRequirementsRepeatedSourceID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveDocument(testDocument("doc-1")); err != nil {
		t.Fatalf("SaveDocument() error: %v", err)
	}

	// Client numbering restarts per section, so two distinct requirements
	// can carry the same source id. Both rows must persist.
	reqs := []models.ExtractedRequirement{
		{
			SourceID:      "1.",
			Text:          "Describe your transition methodology.",
			TargetSection: models.SectionDeliveryModel,
			Priority:      models.PriorityUnknown,
			Status:        models.StatusParsed,
		},
		{
			SourceID:      "1.",
			Text:          "Provide three client references from banking.",
			TargetSection: models.SectionProofPoints,
			Priority:      models.PriorityUnknown,
			Status:        models.StatusParsed,
		},
	}
	if err := db.SaveRequirements("doc-1", reqs); err != nil {
		t.Fatalf("SaveRequirements() error: %v", err)
	}

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM requirements WHERE document_id = ?`, "doc-1").Scan(&count)
	if err != nil {
		t.Fatalf("count query error: %v", err)
	}
	if count != 2 {
		t.Errorf("stored %d requirements, want 2", count)
	}

	sections, err := db.SectionDistribution()
	if err != nil {
		t.Fatalf("SectionDistribution() error: %v", err)
	}
	if sections[models.SectionDeliveryModel] != 1 {
		t.Errorf("delivery_model count = %d, want 1", sections[models.SectionDeliveryModel])
	}
	if sections[models.SectionProofPoints] != 1 {
		t.Errorf("proof_points count = %d, want 1", sections[models.SectionProofPoints])
	}
}

func TestListDocuments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, id := range []string{"doc-1", "doc-2", "doc-3"} {
		doc := testDocument(id)
		if err := db.SaveDocument(doc); err != nil {
			t.Fatalf("SaveDocument(%s) error: %v", id, err)
		}
	}

	docs, err := db.ListDocuments(2)
	if err != nil {
		t.Fatalf("ListDocuments() error: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2 (limit)", len(docs))
	}

	all, err := db.ListDocuments(0)
	if err != nil {
		t.Fatalf("ListDocuments(0) error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d documents, want 3", len(all))
	}
}
