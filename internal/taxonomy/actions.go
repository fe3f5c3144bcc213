// Package taxonomy holds the CLI action that dumps the active taxonomy so
// operators can see exactly which keywords drive classification.
package taxonomy

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

type labelDump struct {
	Label       models.PrimaryLabel `json:"label" yaml:"label"`
	DisplayName string              `json:"display_name" yaml:"display_name"`
	Description string              `json:"description" yaml:"description"`
	IntentGroup models.IntentGroup  `json:"intent_group" yaml:"intent_group"`
	Keywords    []string            `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type domainDump struct {
	Domain   models.DomainOverlay `json:"domain" yaml:"domain"`
	Keywords []string             `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// DumpAction prints the full active taxonomy: labels with keywords and
// intent groups, domain overlays, and the canonical backend section list.
func DumpAction(c *cli.Context) error {
	labels := make([]labelDump, 0, len(taxonomy.Labels()))
	for _, def := range taxonomy.Labels() {
		labels = append(labels, labelDump{
			Label:       def.Label,
			DisplayName: def.DisplayName,
			Description: def.Description,
			IntentGroup: taxonomy.GroupFor(def.Label),
			Keywords:    def.Keywords,
		})
	}

	domains := make([]domainDump, 0, len(taxonomy.Domains()))
	for _, def := range taxonomy.Domains() {
		domains = append(domains, domainDump{Domain: def.Domain, Keywords: def.Keywords})
	}

	output := struct {
		Version  string                  `json:"version" yaml:"version"`
		Labels   []labelDump             `json:"labels" yaml:"labels"`
		Domains  []domainDump            `json:"domains" yaml:"domains"`
		Sections []models.BackendSection `json:"backend_sections" yaml:"backend_sections"`
	}{
		Version:  taxonomy.Version,
		Labels:   labels,
		Domains:  domains,
		Sections: taxonomy.BackendSections(),
	}

	var data []byte
	var err error
	if c.String("format") == "yaml" {
		data, err = yaml.Marshal(output)
	} else {
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal taxonomy: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
