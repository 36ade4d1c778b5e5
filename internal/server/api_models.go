package server

import "github.com/raysh454/linkscope/internal/model"

// ScanRequest represents the payload required to submit a URL for scanning.
type ScanRequest struct {
	URL string `json:"url" example:"https://example.com"`
}

// ScanResponse bundles the scored result with any advisory insights.
type ScanResponse struct {
	Result   *model.ScanResult `json:"result"`
	Insights []model.Insight   `json:"insights,omitempty"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}
