// Package stats holds the CLI actions for reporting over the run store.
package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/db"
)

// StatsAction reports label and section distributions across all stored
// classification runs, plus the most recent documents.
func StatsAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := openStore(c)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer store.Close()

	labels, err := store.LabelDistribution()
	if err != nil {
		return fmt.Errorf("failed to load label distribution: %w", err)
	}
	sections, err := store.SectionDistribution()
	if err != nil {
		return fmt.Errorf("failed to load section distribution: %w", err)
	}
	docs, err := store.ListDocuments(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	recent := make([]documentSummary, len(docs))
	for i, d := range docs {
		recent[i] = documentSummary{
			ID:             d.ID,
			FileName:       d.FileName,
			DocType:        d.DocType,
			DominantDomain: d.DominantDomain,
			PageCount:      d.PageCount,
		}
	}

	output := struct {
		Labels    map[models.PrimaryLabel]int   `json:"label_distribution" yaml:"label_distribution"`
		Sections  map[models.BackendSection]int `json:"section_distribution" yaml:"section_distribution"`
		Documents []documentSummary             `json:"recent_documents" yaml:"recent_documents"`
	}{
		Labels:    labels,
		Sections:  sections,
		Documents: recent,
	}

	var data []byte
	if c.String("format") == "yaml" {
		data, err = yaml.Marshal(output)
	} else {
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

type documentSummary struct {
	ID             string `json:"id" yaml:"id"`
	FileName       string `json:"file_name" yaml:"file_name"`
	DocType        string `json:"document_type" yaml:"document_type"`
	DominantDomain string `json:"dominant_domain" yaml:"dominant_domain"`
	PageCount      int    `json:"page_count" yaml:"page_count"`
}

func openStore(c *cli.Context) (*db.DB, error) {
	if path := c.String("db"); path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}
