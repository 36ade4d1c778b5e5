package model

import "time"

// ExportFormatVersion is the version string stamped into every export envelope.
const ExportFormatVersion = "1.0"

// ExportEnvelope wraps a single ScanResult for serialization to an external
// JSON document.
type ExportEnvelope struct {
	FormatVersion string      `json:"format_version"`
	ExportedAt    time.Time   `json:"exported_at"`
	Result        *ScanResult `json:"result"`
}
