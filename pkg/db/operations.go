package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

// SaveDocument persists a classified document and all of its page
// classifications in one transaction.
func (db *DB) SaveDocument(doc *models.ClassifiedDocument) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO documents (document_id, file_name, format, doc_type, language,
			dominant_domain, contains_pricing, page_count, taxonomy_version, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.FileName, string(doc.Format), string(doc.Type), doc.Language,
		string(doc.DominantDomain), doc.ContainsPricing, len(doc.Pages), taxonomy.Version, doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	for _, page := range doc.Pages {
		sections, err := json.Marshal(page.Sections)
		if err != nil {
			return fmt.Errorf("failed to encode sections: %w", err)
		}
		secondary, err := json.Marshal(page.SecondaryLabels)
		if err != nil {
			return fmt.Errorf("failed to encode secondary labels: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO page_classifications (document_id, page_index, heading,
				primary_label, intent_group, domain, pricing, confidence,
				confidence_level, sections, secondary_labels, rationale)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, page.Index, page.Heading, string(page.PrimaryLabel),
			string(page.IntentGroup), string(page.Domain), string(page.Pricing),
			page.Confidence, string(page.ConfidenceLevel),
			string(sections), string(secondary), page.Rationale)
		if err != nil {
			return fmt.Errorf("failed to insert page %d: %w", page.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}
	return nil
}

// SaveRequirements persists extracted requirements for a stored document.
// Rows are keyed by extraction position, not source id: client numbering
// restarts per section, so distinct requirements can share a source id and
// must never collapse into one row. Re-saving the same document replaces
// rows position by position.
func (db *DB) SaveRequirements(documentID string, reqs []models.ExtractedRequirement) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for seq, req := range reqs {
		_, err = tx.Exec(`
			INSERT INTO requirements (document_id, seq, source_id, text, target_section, priority, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(document_id, seq) DO UPDATE SET
				source_id = excluded.source_id,
				text = excluded.text,
				target_section = excluded.target_section,
				priority = excluded.priority,
				status = excluded.status
		`, documentID, seq, req.SourceID, req.Text, string(req.TargetSection),
			string(req.Priority), string(req.Status))
		if err != nil {
			return fmt.Errorf("failed to insert requirement %s: %w", req.SourceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit requirements: %w", err)
	}
	return nil
}

// DocumentRecord is the stored form of a classified document.
type DocumentRecord struct {
	ID              string
	FileName        string
	Format          string
	DocType         string
	Language        sql.NullString
	DominantDomain  string
	ContainsPricing bool
	PageCount       int
	TaxonomyVersion string
}

// GetDocument returns the stored record for a document id, or nil when the
// id is unknown.
func (db *DB) GetDocument(documentID string) (*DocumentRecord, error) {
	var rec DocumentRecord
	err := db.QueryRow(`
		SELECT document_id, file_name, format, doc_type, language,
			dominant_domain, contains_pricing, page_count, taxonomy_version
		FROM documents
		WHERE document_id = ?
	`, documentID).Scan(&rec.ID, &rec.FileName, &rec.Format, &rec.DocType,
		&rec.Language, &rec.DominantDomain, &rec.ContainsPricing,
		&rec.PageCount, &rec.TaxonomyVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &rec, nil
}

// ListDocuments returns stored documents, most recent first.
func (db *DB) ListDocuments(limit int) ([]DocumentRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT document_id, file_name, format, doc_type, language,
			dominant_domain, contains_pricing, page_count, taxonomy_version
		FROM documents
		ORDER BY uploaded_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRecord
	for rows.Next() {
		var rec DocumentRecord
		err := rows.Scan(&rec.ID, &rec.FileName, &rec.Format, &rec.DocType,
			&rec.Language, &rec.DominantDomain, &rec.ContainsPricing,
			&rec.PageCount, &rec.TaxonomyVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, rec)
	}

	return docs, rows.Err()
}

// LabelDistribution counts stored page classifications per primary label
// across all documents.
func (db *DB) LabelDistribution() (map[models.PrimaryLabel]int, error) {
	rows, err := db.Query(`
		SELECT primary_label, COUNT(*)
		FROM page_classifications
		GROUP BY primary_label
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query label distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[models.PrimaryLabel]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan label count: %w", err)
		}
		dist[models.PrimaryLabel(label)] = count
	}

	return dist, rows.Err()
}

// SectionDistribution counts stored requirements per target section.
func (db *DB) SectionDistribution() (map[models.BackendSection]int, error) {
	rows, err := db.Query(`
		SELECT target_section, COUNT(*)
		FROM requirements
		GROUP BY target_section
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query section distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[models.BackendSection]int)
	for rows.Next() {
		var section string
		var count int
		if err := rows.Scan(&section, &count); err != nil {
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		dist[models.BackendSection(section)] = count
	}

	return dist, rows.Err()
}
