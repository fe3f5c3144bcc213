package taxonomy

import (
	"testing"

	"github.com/proposalworks/rfp-triage/models"
)

func TestGroupFor(t *testing.T) {
	tests := []struct {
		name  string
		label models.PrimaryLabel
		want  models.IntentGroup
	}{
		{
			name:  "executive summary is narrative positioning",
			label: models.LabelExecutiveSummary,
			want:  models.GroupNarrativePositioning,
		},
		{
			name:  "solution overview takes its first group, not execution delivery",
			label: models.LabelSolutionOverview,
			want:  models.GroupSolutionDefinition,
		},
		{
			name:  "project plan takes execution delivery, not risk assurance",
			label: models.LabelProjectPlan,
			want:  models.GroupExecutionDelivery,
		},
		{
			name:  "pricing is commercial mechanics",
			label: models.LabelPricing,
			want:  models.GroupCommercialMechanics,
		},
		{
			name:  "unclassified is structural",
			label: models.LabelUnclassified,
			want:  models.GroupStructural,
		},
		{
			name:  "unknown label falls back to structural",
			label: models.PrimaryLabel("not_a_label"),
			want:  models.GroupStructural,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupFor(tt.label); got != tt.want {
				t.Errorf("GroupFor(%s) = %s, want %s", tt.label, got, tt.want)
			}
		})
	}
}

func TestEveryLabelHasRoute(t *testing.T) {
	for _, def := range Labels() {
		route := RouteFor(def.Label)
		if route.Primary == "" {
			t.Errorf("label %s has no primary section", def.Label)
		}
	}
}

func TestRouteForUnknownLabel(t *testing.T) {
	route := RouteFor(models.PrimaryLabel("bogus"))
	if route.Primary != models.SectionExecutiveSummary {
		t.Errorf("unknown label routed to %s, want %s", route.Primary, models.SectionExecutiveSummary)
	}
	if len(route.Secondary) != 0 {
		t.Errorf("unknown label has %d secondaries, want 0", len(route.Secondary))
	}
}

func TestPricingRouteHasNoSecondaries(t *testing.T) {
	route := RouteFor(models.LabelPricing)
	if route.Primary != models.SectionExecutiveSummary {
		t.Errorf("pricing primary = %s, want %s", route.Primary, models.SectionExecutiveSummary)
	}
	if len(route.Secondary) != 0 {
		t.Errorf("pricing has %d secondaries, want 0", len(route.Secondary))
	}
}

func TestBackendSectionsComplete(t *testing.T) {
	sections := BackendSections()
	if len(sections) != 9 {
		t.Fatalf("got %d backend sections, want 9", len(sections))
	}

	seen := make(map[models.BackendSection]bool)
	for _, s := range sections {
		if seen[s] {
			t.Errorf("duplicate backend section %s", s)
		}
		seen[s] = true
	}

	// Every routed section must be in the canonical list.
	for _, def := range Labels() {
		route := RouteFor(def.Label)
		if !seen[route.Primary] {
			t.Errorf("label %s routes to unknown section %s", def.Label, route.Primary)
		}
		for _, sec := range route.Secondary {
			if !seen[sec] {
				t.Errorf("label %s has unknown secondary section %s", def.Label, sec)
			}
		}
	}
}

func TestDefinition(t *testing.T) {
	def := Definition(models.LabelOperationalDetails)
	if def == nil {
		t.Fatal("Definition(operational_details) returned nil")
	}
	if len(def.Keywords) == 0 {
		t.Error("operational_details has no keywords")
	}

	if Definition(models.PrimaryLabel("bogus")) != nil {
		t.Error("Definition returned non-nil for unknown label")
	}
}
