// Package classify holds the CLI actions for the classification pipeline:
// classify a document end to end, or extract routed requirements from it.
package classify

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/proposalworks/rfp-triage/internal/common"
	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/db"
	"github.com/proposalworks/rfp-triage/pkg/document"
	"github.com/proposalworks/rfp-triage/pkg/htmltext"
	"github.com/proposalworks/rfp-triage/pkg/langdetect"
	"github.com/proposalworks/rfp-triage/pkg/requirements"
)

// newLogger builds the shared JSON logger. Quiet mode drops everything below
// error so stdout stays machine-readable.
func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ClassifyAction classifies a document and prints the full result.
func ClassifyAction(c *cli.Context) error {
	logger := newLogger(c)
	start := time.Now()

	doc, _, err := runPipeline(c, logger)
	if err != nil {
		return err
	}

	logger.Info("document classified",
		"document_id", doc.ID,
		"document_type", doc.Type,
		"pages", len(doc.Pages),
		"elapsed_ms", time.Since(start).Milliseconds())

	if c.Bool("save") {
		if err := saveDocument(c, logger, doc, nil); err != nil {
			return err
		}
	}

	return printResult(c, doc)
}

// RequirementsAction classifies a document, extracts requirement clauses
// from it, and prints the requirements list.
func RequirementsAction(c *cli.Context) error {
	logger := newLogger(c)

	doc, units, err := runPipeline(c, logger)
	if err != nil {
		return err
	}

	// Extraction only applies to question-bearing documents.
	var reqs []models.ExtractedRequirement
	if doc.Type == models.DocTypeRFP || doc.Type == models.DocTypeRFI {
		sections := make([]requirements.Section, len(doc.Pages))
		for i, page := range doc.Pages {
			sections[i] = requirements.Section{
				Label: page.PrimaryLabel,
				Text:  units[i],
			}
		}
		reqs = requirements.Extract(sections)
	} else {
		logger.Warn("document is not an rfp or rfi, skipping extraction", "document_type", doc.Type)
	}

	logger.Info("requirements extracted",
		"document_id", doc.ID,
		"document_type", doc.Type,
		"count", len(reqs))

	if c.Bool("save") {
		if err := saveDocument(c, logger, doc, reqs); err != nil {
			return err
		}
	}

	output := struct {
		DocumentID   string                        `json:"document_id" yaml:"document_id"`
		FileName     string                        `json:"file_name" yaml:"file_name"`
		DocumentType models.DocumentType           `json:"document_type" yaml:"document_type"`
		Requirements []models.ExtractedRequirement `json:"requirements" yaml:"requirements"`
	}{
		DocumentID:   doc.ID,
		FileName:     doc.FileName,
		DocumentType: doc.Type,
		Requirements: reqs,
	}
	return printResult(c, output)
}

// runPipeline reads the input, splits it into units, and classifies them.
// The raw units are returned alongside the document so callers can feed them
// to requirement extraction.
func runPipeline(c *cli.Context, logger *slog.Logger) (*models.ClassifiedDocument, []string, error) {
	input := c.Args().First()
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: No input file provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  rfp-triage classify ClientCo_RFP_2026.txt`)
		fmt.Fprintln(os.Stderr, `  cat extracted.txt | rfp-triage classify - --name ClientCo_RFP_2026.docx`)
		os.Exit(1)
	}

	text, fileName, err := readInput(c, input)
	if err != nil {
		logger.Error("failed to read input", "error", err, "input", input)
		os.Exit(2)
	}

	var units []string
	if c.Bool("html") {
		units, err = htmltext.Units(text, c.String("url"))
		if err != nil {
			logger.Error("failed to extract html content", "error", err)
			os.Exit(2)
		}
	} else {
		units = common.SplitUnits(text)
	}
	logger.Info("input split", "file_name", fileName, "units", len(units))

	format := models.FormatFromName(fileName)
	if c.Bool("html") {
		format = models.FormatHTML
	}

	doc := document.ClassifyWithWorkers(fileName, format, units, c.Int("workers"))
	doc.Language = langdetect.DocumentLanguage(units)

	return doc, units, nil
}

// readInput loads the document text from a file or stdin ("-"). The display
// name comes from --name when set, otherwise from the file path.
func readInput(c *cli.Context, input string) (text, fileName string, err error) {
	fileName = c.String("name")

	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), fileName, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	if fileName == "" {
		fileName = filepath.Base(input)
	}
	return string(data), fileName, nil
}

// saveDocument persists the run and any extracted requirements.
func saveDocument(c *cli.Context, logger *slog.Logger, doc *models.ClassifiedDocument, reqs []models.ExtractedRequirement) error {
	store, err := openStore(c)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer store.Close()

	if err := store.SaveDocument(doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	if len(reqs) > 0 {
		if err := store.SaveRequirements(doc.ID, reqs); err != nil {
			return fmt.Errorf("failed to save requirements: %w", err)
		}
	}
	logger.Info("run saved", "document_id", doc.ID, "db", store.Path())
	return nil
}

// openStore opens the run store at --db when set, else next to the binary.
func openStore(c *cli.Context) (*db.DB, error) {
	if path := c.String("db"); path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}

// printResult writes the result to stdout as JSON or YAML.
func printResult(c *cli.Context, v interface{}) error {
	var data []byte
	var err error
	if c.String("format") == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
