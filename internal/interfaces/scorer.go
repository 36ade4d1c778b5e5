package interfaces

import (
	"github.com/raysh454/linkscope/internal/model"
)

// Scorer is the minimal cross-package contract for heuristic URL evaluation.
// Scan is total: it never returns an error and never panics for any input
// string; a URL that fails to parse is reported as a failing check inside
// the result rather than propagated.
//
// Implementations hold no per-scan mutable state and are safe for
// concurrent use.
type Scorer interface {
	// Scan evaluates the raw input string and returns a complete result.
	Scan(input string) *model.ScanResult

	// Compare computes a delta between two previously produced results.
	Compare(base, head *model.ScanResult) *model.ScanDiff
}
