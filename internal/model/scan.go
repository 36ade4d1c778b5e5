package model

import "time"

// ScanStatus is the coarse three-level classification derived from the score.
type ScanStatus string

const (
	StatusSafe       ScanStatus = "safe"
	StatusSuspicious ScanStatus = "suspicious"
	StatusUnsafe     ScanStatus = "unsafe"
)

// Metadata carries descriptive fields extracted from a successfully parsed URL.
// ResponseTimeMs and RedirectCount are simulated fillers derived
// deterministically from the URL string; they never influence score or status.
type Metadata struct {
	// Domain is the URL host (without port).
	Domain string `json:"domain"`

	// Protocol is the lowercase URL scheme.
	Protocol string `json:"protocol"`

	// Port is the explicit port when one is present in the URL.
	Port *int `json:"port,omitempty"`

	// ResponseTimeMs is a simulated response time in milliseconds.
	ResponseTimeMs int `json:"responseTimeMs"`

	// RedirectCount is a simulated redirect hop count.
	RedirectCount int `json:"redirectCount"`
}

// ScanResult is the full outcome of evaluating one URL. It is created once
// per scan invocation and never mutated afterwards.
type ScanResult struct {
	// ID is an opaque identifier assigned by the orchestrator, not the scorer.
	ID string `json:"id,omitempty"`

	// URL is the raw input string that was evaluated.
	URL string `json:"url"`

	// Status is "safe", "suspicious" or "unsafe".
	Status ScanStatus `json:"status"`

	// Score is the threat confidence proxy in [0,100]; higher is safer.
	Score int `json:"score"`

	// Checks holds every evaluated check in display order. It contains
	// exactly one failing entry when the URL did not parse.
	Checks []Check `json:"checks"`

	// Metadata is nil when the URL failed to parse.
	Metadata *Metadata `json:"metadata,omitempty"`

	// Timestamp is when the scan was evaluated.
	Timestamp time.Time `json:"timestamp"`
}

// FailedParse reports whether this result came from an unparseable input.
func (r *ScanResult) FailedParse() bool {
	return r != nil && r.Metadata == nil
}
