package taxonomy

import "github.com/proposalworks/rfp-triage/models"

// DomainDefinition describes one industry overlay and its signal keywords.
type DomainDefinition struct {
	Domain   models.DomainOverlay
	Keywords []string
}

// domains is ordered: overlay detection keeps the first domain encountered
// when hit counts tie. The general overlay carries no keywords; it is the
// default when nothing else scores.
var domains = []DomainDefinition{
	{models.DomainFinancialServices, []string{
		"financial services", "wealth", "investment bank", "securities",
		"portfolio", "brokerage", "trading",
	}},
	{models.DomainBanking, []string{
		"banking", "retail bank", "deposits", "mortgage", "credit card",
		"checking", "savings", "loan servicing",
	}},
	{models.DomainFintech, []string{
		"fintech", "digital-first", "bnpl", "origination",
		"lending platform", "neobank", "digital lender",
	}},
	{models.DomainPayments, []string{
		"payments", "merchant", "digital wallet", "transaction",
		"acquirer", "interchange", "chargeback",
	}},
	{models.DomainFraudAmlKyc, []string{
		"fraud", "aml", "kyc", "sar filing", "sanctions",
		"money laundering", "ofac", "due diligence",
	}},
	{models.DomainCollections, []string{
		"collections", "debt recovery", "skip tracing", "payment plan",
		"settlement", "delinquency", "charge-off",
	}},
	{models.DomainInsurance, []string{
		"insurance", "claims", "fnol", "policyholder", "underwriting",
		"premium", "coverage",
	}},
	{models.DomainHealthcare, []string{
		"healthcare", "patient", "payer", "provider network",
		"clinical", "member services", "care management",
	}},
	{models.DomainGeneral, nil},
}

// strongPricingPhrases short-circuit the pricing flag: any single hit marks
// the unit has_pricing regardless of other signals.
var strongPricingPhrases = []string{
	"rate card", "cost per", "pricing model", "price per",
	"fee schedule", "commercial terms", "per fte", "hourly rate",
}

// weakPricingSignals only flag pricing_adjacent when at least
// WeakPricingThreshold distinct signals appear.
var weakPricingSignals = []string{
	"cost", "budget", "roi", "pricing", "rate", "fee",
	"investment", "savings",
}

// WeakPricingThreshold is empirically chosen; tune with care, downstream
// compatibility depends on it.
const WeakPricingThreshold = 2

// RefinementGroup is one keyword-group check in the operational_details
// fan-out chain. Groups are evaluated in order; the first to reach
// RefineHitThreshold distinct hits wins.
type RefinementGroup struct {
	Section  models.BackendSection
	Keywords []string
}

// operationalRefinement disambiguates the operational_details label, which
// fans out to four backend sections. The technology group deliberately
// omits "api", "integration", and "ai": those are strong-tech terms
// reserved for the solution_overview rule, and a single platform mention
// next to them must not redirect an otherwise staffing-heavy passage.
var operationalRefinement = []RefinementGroup{
	{models.SectionTeamLeadership, []string{
		"org chart", "leadership", "escalation", "account manager",
		"director", "management structure",
	}},
	{models.SectionTechnology, []string{
		"platform", "tool", "software", "crm", "telephony", "ivr",
		"automation", "dashboard",
	}},
	{models.SectionDeliveryModel, []string{
		"fte", "staffing", "site", "headcount", "shift", "roster",
		"capacity", "facility", "location", "onshore", "offshore",
		"nearshore",
	}},
	{models.SectionSolutionOverview, []string{
		"process", "workflow", "sop", "procedure", "methodology",
	}},
}

// strongTechKeywords refine solution_overview passages to technology when
// RefineHitThreshold of them appear.
var strongTechKeywords = []string{
	"platform", "integration", "api", "ai", "analytics",
}

// RefineHitThreshold is the minimum distinct keyword hits a refinement
// group needs to fire. Single incidental mentions must not redirect
// routing. Empirically chosen; preserved for compatibility.
const RefineHitThreshold = 2

// Domains returns the ordered domain overlay definitions.
func Domains() []DomainDefinition {
	return domains
}

// StrongPricingPhrases returns the short-circuit pricing phrase list.
func StrongPricingPhrases() []string {
	return strongPricingPhrases
}

// WeakPricingSignals returns the weak pricing signal list.
func WeakPricingSignals() []string {
	return weakPricingSignals
}

// OperationalRefinement returns the ordered operational_details refinement
// chain.
func OperationalRefinement() []RefinementGroup {
	return operationalRefinement
}

// StrongTechKeywords returns the solution_overview → technology keyword list.
func StrongTechKeywords() []string {
	return strongTechKeywords
}
