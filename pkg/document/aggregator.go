// Package document classifies every unit of a document and rolls the
// results up into a ClassifiedDocument: label distribution, dominant
// domain, pricing presence, and an inferred document type.
package document

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/analytics"
	"github.com/proposalworks/rfp-triage/pkg/classifier"
)

// DefaultWorkers bounds the per-unit classification fan-out.
const DefaultWorkers = 4

// maxHeadingLen caps how long a first line may be to count as a heading.
const maxHeadingLen = 120

// topTermCount is how many document-level terms the rollup keeps.
const topTermCount = 10

// Classify classifies every page of a document with the default worker
// count. An empty page list is legal and yields a document with zero pages
// and type unknown.
func Classify(fileName string, format models.FileFormat, pages []string) *models.ClassifiedDocument {
	return ClassifyWithWorkers(fileName, format, pages, DefaultWorkers)
}

// ClassifyWithWorkers classifies pages across the given number of workers.
// Each unit's classification depends only on its own text and the static
// taxonomy, so units are processed in parallel and written back into their
// index slot, so original page order is preserved before any rollup runs.
func ClassifyWithWorkers(fileName string, format models.FileFormat, pages []string, workers int) *models.ClassifiedDocument {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]models.PageClassification, len(pages))
	frequencies := make([]map[string]int, len(pages))

	if len(pages) > 0 {
		jobs := make(chan int, len(pages))
		var wg sync.WaitGroup

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = models.PageClassification{
						Index:                i,
						Heading:              detectHeading(pages[i]),
						ClassificationResult: classifier.Classify(pages[i]),
					}
					frequencies[i] = analytics.WordFrequency(pages[i])
				}
			}()
		}

		for i := range pages {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	doc := &models.ClassifiedDocument{
		ID:                uuid.NewString(),
		FileName:          fileName,
		Format:            format,
		UploadedAt:        time.Now().UTC(),
		Pages:             results,
		LabelDistribution: labelDistribution(results),
		DominantDomain:    dominantDomain(results),
		ContainsPricing:   containsPricing(results),
		TopTerms:          analytics.TopTerms(analytics.Merge(frequencies), topTermCount),
	}
	doc.Type = InferType(fileName, format, results)
	return doc
}

// detectHeading returns the first non-empty line if it is short enough to
// plausibly be a heading, else the empty string.
func detectHeading(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) <= maxHeadingLen {
			return line
		}
		return ""
	}
	return ""
}

func labelDistribution(pages []models.PageClassification) map[models.PrimaryLabel]int {
	dist := make(map[models.PrimaryLabel]int)
	for _, p := range pages {
		dist[p.PrimaryLabel]++
	}
	return dist
}

// dominantDomain picks the non-general domain assigned to the most units;
// general when no unit carries a domain overlay. Ties keep the domain that
// appears first in the document.
func dominantDomain(pages []models.PageClassification) models.DomainOverlay {
	counts := make(map[models.DomainOverlay]int)
	var order []models.DomainOverlay

	for _, p := range pages {
		if p.Domain == models.DomainGeneral {
			continue
		}
		if _, seen := counts[p.Domain]; !seen {
			order = append(order, p.Domain)
		}
		counts[p.Domain]++
	}

	best := models.DomainGeneral
	bestCount := 0
	for _, d := range order {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	return best
}

func containsPricing(pages []models.PageClassification) bool {
	for _, p := range pages {
		if p.Pricing == models.HasPricing {
			return true
		}
	}
	return false
}
