package model

// InsightType identifies the analyzer rule that produced an insight.
type InsightType string

const (
	InsightLookalikeDomain InsightType = "LOOKALIKE_DOMAIN"
	InsightTokenLeak       InsightType = "TOKEN_LEAK"
	InsightUserinfo        InsightType = "USERINFO_SMUGGLING"
)

// Insight is a non-scoring advisory finding produced by the analyzer.
// Insights never change the score or status of a scan.
type Insight struct {
	Type InsightType `json:"type"`

	// Severity uses the low/medium/high scale for quick triage.
	Severity Impact `json:"severity"`

	// Detail is a short human-readable description of what was observed.
	Detail string `json:"detail"`
}
