package interfaces

import (
	"github.com/raysh454/linkscope/internal/model"
)

// Historian is the minimal cross-package contract for the bounded scan log.
// Implementations keep entries most-recent-first and must be safe for
// concurrent use; entries are never mutated after Append.
type Historian interface {
	// Append records a result at the head of the log, evicting the oldest
	// entry when the configured cap is exceeded.
	Append(r *model.ScanResult)

	// Entries returns a copy of the log, most-recent-first.
	Entries() []*model.ScanResult

	// Filter returns entries whose URL contains substr, case-insensitively.
	Filter(substr string) []*model.ScanResult

	// Get returns the entry with the given scan ID, or nil when absent.
	Get(id string) *model.ScanResult

	// Len reports the current number of entries.
	Len() int

	// Clear removes all entries.
	Clear()
}
