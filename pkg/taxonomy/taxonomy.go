// Package taxonomy holds the static, versioned classification taxonomy:
// primary labels with their signal keywords, intent groups, domain overlays,
// and the canonical backend section list. Pure data plus lookup helpers;
// everything here is defined once at process start and never mutated.
package taxonomy

import (
	"sync"

	"github.com/proposalworks/rfp-triage/models"
)

// Version identifies the taxonomy revision persisted alongside results.
const Version = "2025.2"

// LabelDefinition describes one primary label. Frequency is calibration
// metadata from the training corpus; it is not used at runtime.
type LabelDefinition struct {
	Label       models.PrimaryLabel
	DisplayName string
	Description string
	Frequency   float64
	Keywords    []string
}

// labels is the ordered list of primary label definitions. Declaration order
// is load-bearing: score ties resolve to the earlier entry.
var labels = []LabelDefinition{
	{
		Label:       models.LabelExecutiveSummary,
		DisplayName: "Executive Summary",
		Description: "Opening narrative: who we are, why us, strategic framing of the partnership.",
		Frequency:   0.08,
		Keywords: []string{
			"executive summary", "overview", "strategic", "partnership",
			"why us", "at a glance", "introduction",
		},
	},
	{
		Label:       models.LabelSolutionOverview,
		DisplayName: "Solution Overview",
		Description: "What is being proposed: the service model, capabilities, and approach.",
		Frequency:   0.15,
		Keywords: []string{
			"solution", "approach", "capability", "platform", "ecosystem",
			"offering", "service model", "our approach",
		},
	},
	{
		Label:       models.LabelOperationalDetails,
		DisplayName: "Operational Details",
		Description: "How delivery actually runs: staffing, sites, workflows, quality, training.",
		Frequency:   0.31,
		Keywords: []string{
			"process", "workflow", "staffing", "fte", "headcount", "shift",
			"scorecard", "quality", "site", "facility", "roster", "sop",
			"workforce", "scheduling", "training", "ramp", "attrition",
			"org chart", "leadership", "account manager",
		},
	},
	{
		Label:       models.LabelCaseStudy,
		DisplayName: "Case Study",
		Description: "Client examples with measured outcomes; proof the model works.",
		Frequency:   0.12,
		Keywords: []string{
			"case study", "client example", "success story", "outcome",
			"result", "before and after", "proof point", "testimonial",
		},
	},
	{
		Label:       models.LabelComplianceSecurity,
		DisplayName: "Compliance & Security",
		Description: "Certifications, regulatory posture, audit and risk controls.",
		Frequency:   0.10,
		Keywords: []string{
			"compliance", "security", "certification", "soc", "pci",
			"hipaa", "gdpr", "regulatory", "audit", "risk", "governance",
			"iso", "nist",
		},
	},
	{
		Label:       models.LabelProjectPlan,
		DisplayName: "Project Plan",
		Description: "Transition and implementation: phases, milestones, go-live.",
		Frequency:   0.08,
		Keywords: []string{
			"implementation", "transition", "timeline", "milestone",
			"go-live", "phase", "migration", "ramp plan", "project plan",
		},
	},
	{
		Label:       models.LabelPricing,
		DisplayName: "Pricing",
		Description: "Commercial figures: rates, fees, budgets. Never routed into the proposal body.",
		Frequency:   0.06,
		Keywords: []string{
			"pricing", "cost", "rate", "commercial", "fee",
			"investment", "budget",
		},
	},
	{
		Label:       models.LabelOther,
		DisplayName: "Other",
		Description: "Recognizable content that fits no canonical bucket.",
		Frequency:   0.07,
		Keywords:    nil,
	},
	{
		Label:       models.LabelUnclassified,
		DisplayName: "Unclassified",
		Description: "Sentinel for text with no keyword signal at all.",
		Frequency:   0.03,
		Keywords:    nil,
	},
}

// intentGroupEntry pairs a group with its ordered member labels.
type intentGroupEntry struct {
	Group   models.IntentGroup
	Members []models.PrimaryLabel
}

// intentGroups is an ordered list, not a map: a label's group is the FIRST
// group that lists it as a member, and some labels appear in more than one
// group. Map iteration order would not preserve this.
var intentGroups = []intentGroupEntry{
	{models.GroupNarrativePositioning, []models.PrimaryLabel{models.LabelExecutiveSummary}},
	{models.GroupSolutionDefinition, []models.PrimaryLabel{models.LabelSolutionOverview}},
	{models.GroupExecutionDelivery, []models.PrimaryLabel{
		models.LabelOperationalDetails, models.LabelProjectPlan, models.LabelSolutionOverview,
	}},
	{models.GroupRiskAssurance, []models.PrimaryLabel{
		models.LabelComplianceSecurity, models.LabelProjectPlan,
	}},
	{models.GroupProofValidation, []models.PrimaryLabel{models.LabelCaseStudy}},
	{models.GroupCommercialMechanics, []models.PrimaryLabel{models.LabelPricing}},
	{models.GroupStructural, []models.PrimaryLabel{models.LabelOther, models.LabelUnclassified}},
}

// backendSections is the canonical ordered section list of an assembled
// proposal.
var backendSections = []models.BackendSection{
	models.SectionExecutiveSummary,
	models.SectionClientUnderstanding,
	models.SectionSolutionOverview,
	models.SectionDeliveryModel,
	models.SectionTechnology,
	models.SectionGovernanceCompliance,
	models.SectionImplementation,
	models.SectionTeamLeadership,
	models.SectionProofPoints,
}

// Route maps a primary label to its backend destinations: exactly one
// primary section and zero or more secondaries, order preserved.
type Route struct {
	Primary   models.BackendSection
	Secondary []models.BackendSection
}

// routes is the static label → section table. Pricing intentionally has no
// secondaries: commercial content may only surface in the executive summary
// as a commercial-model concept, never as figures in the proposal body.
var routes = map[models.PrimaryLabel]Route{
	models.LabelExecutiveSummary:   {Primary: models.SectionExecutiveSummary},
	models.LabelSolutionOverview:   {Primary: models.SectionSolutionOverview, Secondary: []models.BackendSection{models.SectionTechnology}},
	models.LabelOperationalDetails: {Primary: models.SectionDeliveryModel, Secondary: []models.BackendSection{models.SectionTeamLeadership, models.SectionSolutionOverview, models.SectionTechnology}},
	models.LabelCaseStudy:          {Primary: models.SectionProofPoints, Secondary: []models.BackendSection{models.SectionClientUnderstanding}},
	models.LabelComplianceSecurity: {Primary: models.SectionGovernanceCompliance},
	models.LabelProjectPlan:        {Primary: models.SectionImplementation},
	models.LabelPricing:            {Primary: models.SectionExecutiveSummary},
	models.LabelOther:              {Primary: models.SectionExecutiveSummary},
	models.LabelUnclassified:       {Primary: models.SectionExecutiveSummary},
}

var (
	groupIndexOnce sync.Once
	groupIndex     map[models.PrimaryLabel]models.IntentGroup

	labelIndexOnce sync.Once
	labelIndex     map[models.PrimaryLabel]*LabelDefinition
)

// Labels returns the ordered primary label definitions.
func Labels() []LabelDefinition {
	return labels
}

// Definition returns the definition for a label, or nil for an unknown label.
func Definition(label models.PrimaryLabel) *LabelDefinition {
	labelIndexOnce.Do(func() {
		labelIndex = make(map[models.PrimaryLabel]*LabelDefinition, len(labels))
		for i := range labels {
			labelIndex[labels[i].Label] = &labels[i]
		}
	})
	return labelIndex[label]
}

// GroupFor returns the intent group of a label: the first group in
// declaration order that lists it. Unknown labels fall back to structural.
func GroupFor(label models.PrimaryLabel) models.IntentGroup {
	groupIndexOnce.Do(func() {
		groupIndex = make(map[models.PrimaryLabel]models.IntentGroup)
		for _, entry := range intentGroups {
			for _, member := range entry.Members {
				if _, seen := groupIndex[member]; !seen {
					groupIndex[member] = entry.Group
				}
			}
		}
	})
	if g, ok := groupIndex[label]; ok {
		return g
	}
	return models.GroupStructural
}

// BackendSections returns the canonical ordered section list.
func BackendSections() []models.BackendSection {
	return backendSections
}

// RouteFor returns the routing entry for a label. Unknown labels route like
// unclassified content.
func RouteFor(label models.PrimaryLabel) Route {
	if r, ok := routes[label]; ok {
		return r
	}
	return routes[models.LabelUnclassified]
}
