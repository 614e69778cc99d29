package yep

// Proposal types.
const (
	TypeStandards = "Standards Track"
	TypeInfo      = "Informational"
	TypeProcess   = "Process"
)

// Proposal statuses.
const (
	StatusAccepted    = "Accepted"
	StatusActive      = "Active"
	StatusDeferred    = "Deferred"
	StatusDraft       = "Draft"
	StatusFinal       = "Final"
	StatusProvisional = "Provisional"
	StatusRejected    = "Rejected"
	StatusSuperseded  = "Superseded"
	StatusWithdrawn   = "Withdrawn"
)

// TypeValues is the closed set of valid Type header values.
var TypeValues = map[string]bool{
	TypeStandards: true,
	TypeInfo:      true,
	TypeProcess:   true,
}

// StatusValues is the closed set of valid canonical Status header values.
var StatusValues = map[string]bool{
	StatusAccepted:    true,
	StatusActive:      true,
	StatusDeferred:    true,
	StatusDraft:       true,
	StatusFinal:       true,
	StatusProvisional: true,
	StatusRejected:    true,
	StatusSuperseded:  true,
	StatusWithdrawn:   true,
}

// SpecialStatuses maps historical status strings to canonical values. The
// mapping is applied before status validation.
var SpecialStatuses = map[string]string{
	"April Fool!": StatusRejected,
}

// ActiveAllowed lists the types for which an Active status is legal.
var ActiveAllowed = map[string]bool{
	TypeProcess: true,
	TypeInfo:    true,
}

// DeadStatuses are statuses that land a proposal in the Dead category
// regardless of most other considerations.
var DeadStatuses = map[string]bool{
	StatusRejected:   true,
	StatusSuperseded: true,
	StatusWithdrawn:  true,
}

// HideStatus lists statuses whose letter is omitted from the shorthand glyph.
var HideStatus = map[string]bool{
	StatusDraft:  true,
	StatusActive: true,
}

// AbbreviatedTypes describes each type for the "YEP Types Key" legend.
var AbbreviatedTypes = map[string]string{
	TypeStandards: "Normative YEP with a new feature or implementation for Yocto Project",
	TypeInfo:      "Non-normative YEP containing background, guidelines or other information",
	TypeProcess:   "Normative YEP describing or proposing a change to a Yocto Project community process, workflow or governance",
}

// AbbreviatedStatuses describes each status for the "YEP Status Key" legend.
var AbbreviatedStatuses = map[string]string{
	StatusAccepted:    "Normative proposal accepted for implementation",
	StatusActive:      "Currently valid informational guidance, or an in-use process",
	StatusDeferred:    "Inactive draft that may be taken up again at a later time",
	StatusDraft:       "Proposal under active discussion and revision",
	StatusFinal:       "Accepted and implementation complete, or no longer active",
	StatusProvisional: "Provisionally accepted but additional feedback needed",
	StatusRejected:    "Formally declined and will not be accepted",
	StatusSuperseded:  "Replaced by another succeeding YEP",
	StatusWithdrawn:   "Removed from consideration by sponsor or authors",
}

// RequiredHeaders is the fixed set of headers every YEP must declare.
var RequiredHeaders = []string{"YEP", "Title", "Author", "Status", "Type", "Created"}

// CreatedFormat is the fixed textual layout of the Created header.
const CreatedFormat = "02-Jan-2006"
