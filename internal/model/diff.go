package model

// CheckTransition records how a single named check changed between two scans.
type CheckTransition struct {
	Name string `json:"name"`

	// From is the status in the base result; empty when the check only
	// exists in the head result.
	From CheckStatus `json:"from,omitempty"`

	// To is the status in the head result; empty when the check only
	// exists in the base result.
	To CheckStatus `json:"to,omitempty"`
}

// ScanDiff summarizes the differences between two scan results.
type ScanDiff struct {
	BaseID string `json:"base_id,omitempty"`
	HeadID string `json:"head_id,omitempty"`

	ScoreBase  int `json:"score_base"`
	ScoreHead  int `json:"score_head"`
	ScoreDelta int `json:"score_delta"`

	// Transitions lists checks whose status differs between base and head.
	Transitions []CheckTransition `json:"transitions,omitempty"`
}
