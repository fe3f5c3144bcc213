package models

// RequirementPriority ranks how hard a client requirement is.
type RequirementPriority string

const (
	PriorityMustHave   RequirementPriority = "must_have"
	PriorityShouldHave RequirementPriority = "should_have"
	PriorityNiceToHave RequirementPriority = "nice_to_have"
	PriorityUnknown    RequirementPriority = "unknown"
)

// RequirementStatus tracks a requirement through the drafting lifecycle.
// Extraction always produces StatusParsed; later pipeline stages move it
// forward.
type RequirementStatus string

const (
	StatusParsed       RequirementStatus = "parsed"
	StatusMapped       RequirementStatus = "mapped"
	StatusDraftStarted RequirementStatus = "draft_started"
	StatusInReview     RequirementStatus = "in_review"
	StatusApproved     RequirementStatus = "approved"
)

// ExtractedRequirement is one discrete, independently addressable client
// requirement found in an RFP/RFI, routed to a single backend section.
type ExtractedRequirement struct {
	SourceID      string              `json:"source_id" yaml:"source_id"`
	Text          string              `json:"text" yaml:"text"`
	TargetSection BackendSection      `json:"target_section" yaml:"target_section"`
	Priority      RequirementPriority `json:"priority" yaml:"priority"`
	Status        RequirementStatus   `json:"status" yaml:"status"`
}
