package model

// CheckStatus is the outcome of a single heuristic check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// Impact is the severity bucket for a check, independent of its outcome.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Check is one discrete heuristic evaluation result. Checks are immutable
// once produced; the scorer emits them in display order.
type Check struct {
	// Name is a short, stable identifier for the check (e.g. "HTTPS Protocol").
	Name string `json:"name"`

	// Status is the pass/warning/fail outcome.
	Status CheckStatus `json:"status"`

	// Description is a human-readable explanation of the outcome.
	Description string `json:"description"`

	// Impact is the severity bucket: "low", "medium" or "high".
	Impact Impact `json:"impact"`
}
