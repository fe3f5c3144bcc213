// Package models defines the shared value types for classification,
// aggregation, and requirement extraction.
package models

// PrimaryLabel is the authoritative, mutually exclusive content category
// assigned to one text unit (a page, slide, or sheet).
type PrimaryLabel string

const (
	LabelExecutiveSummary   PrimaryLabel = "executive_summary"
	LabelSolutionOverview   PrimaryLabel = "solution_overview"
	LabelOperationalDetails PrimaryLabel = "operational_details"
	LabelCaseStudy          PrimaryLabel = "case_study"
	LabelComplianceSecurity PrimaryLabel = "compliance_security"
	LabelProjectPlan        PrimaryLabel = "project_plan"
	LabelPricing            PrimaryLabel = "pricing"
	LabelOther              PrimaryLabel = "other"
	LabelUnclassified       PrimaryLabel = "unclassified"
)

// IntentGroup is a coarser bucket of primary labels used for high-level
// routing decisions.
type IntentGroup string

const (
	GroupNarrativePositioning IntentGroup = "narrative_positioning"
	GroupSolutionDefinition   IntentGroup = "solution_definition"
	GroupExecutionDelivery    IntentGroup = "execution_delivery"
	GroupRiskAssurance        IntentGroup = "risk_assurance"
	GroupProofValidation      IntentGroup = "proof_validation"
	GroupCommercialMechanics  IntentGroup = "commercial_mechanics"
	GroupStructural           IntentGroup = "structural"
)

// DomainOverlay is an industry-vertical tag, orthogonal to the primary label.
type DomainOverlay string

const (
	DomainFinancialServices DomainOverlay = "financial_services"
	DomainBanking           DomainOverlay = "banking"
	DomainFintech           DomainOverlay = "fintech"
	DomainPayments          DomainOverlay = "payments"
	DomainFraudAmlKyc       DomainOverlay = "fraud_aml_kyc"
	DomainCollections       DomainOverlay = "collections"
	DomainInsurance         DomainOverlay = "insurance"
	DomainHealthcare        DomainOverlay = "healthcare"
	DomainGeneral           DomainOverlay = "general"
)

// PricingFlag is a tri-state indicator of commercial/cost content.
type PricingFlag string

const (
	HasPricing      PricingFlag = "has_pricing"
	PricingAdjacent PricingFlag = "pricing_adjacent"
	NoPricing       PricingFlag = "no_pricing"
)

// ConfidenceLevel buckets the numeric confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// BackendSection is one of the nine canonical sections of an assembled
// proposal, the terminal target of all routing.
type BackendSection string

const (
	SectionExecutiveSummary     BackendSection = "executive_summary"
	SectionClientUnderstanding  BackendSection = "client_understanding"
	SectionSolutionOverview     BackendSection = "solution_overview"
	SectionDeliveryModel        BackendSection = "delivery_model"
	SectionTechnology           BackendSection = "technology"
	SectionGovernanceCompliance BackendSection = "governance_compliance"
	SectionImplementation       BackendSection = "implementation"
	SectionTeamLeadership       BackendSection = "team_leadership"
	SectionProofPoints          BackendSection = "proof_points"
)

// ClassificationResult is the outcome of classifying a single text unit.
// Results are immutable value objects; a re-classification produces a new
// result rather than mutating an existing one.
type ClassificationResult struct {
	PrimaryLabel    PrimaryLabel     `json:"primary_label" yaml:"primary_label"`
	IntentGroup     IntentGroup      `json:"intent_group" yaml:"intent_group"`
	Domain          DomainOverlay    `json:"domain" yaml:"domain"`
	Pricing         PricingFlag      `json:"pricing_flag" yaml:"pricing_flag"`
	Confidence      float64          `json:"confidence" yaml:"confidence"`
	ConfidenceLevel ConfidenceLevel  `json:"confidence_level" yaml:"confidence_level"`
	Sections        []BackendSection `json:"sections" yaml:"sections"`
	SecondaryLabels []PrimaryLabel   `json:"secondary_labels,omitempty" yaml:"secondary_labels,omitempty"`
	Rationale       string           `json:"rationale,omitempty" yaml:"rationale,omitempty"`
}

// PageClassification is a ClassificationResult anchored to its position in
// the source document, with an optional detected heading.
type PageClassification struct {
	Index   int    `json:"index" yaml:"index"`
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	ClassificationResult
}
