// Package history keeps the bounded, most-recent-first log of scan results.
// The log is append-only with truncation: entries are never mutated, and
// once the cap is reached the oldest entry is evicted on every append.
// Storage is purely in-memory session state.
package history

import (
	"errors"
	"strings"
	"sync"

	"github.com/raysh454/linkscope/internal/interfaces"
	"github.com/raysh454/linkscope/internal/model"
)

// DefaultLimit is the canonical history cap. CompactLimit is the smaller
// variant used by space-constrained frontends.
const (
	DefaultLimit = 20
	CompactLimit = 10
)

// Config controls the log size.
type Config struct {
	// Limit is the maximum number of retained entries; values < 1 fall
	// back to DefaultLimit.
	Limit int
}

// Log is a bounded in-memory scan log, safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	limit   int
	entries []*model.ScanResult
	logger  interfaces.Logger
}

// NewLog constructs a Log. A nil cfg gets the default limit; the logger is
// required.
func NewLog(cfg *Config, logger interfaces.Logger) (*Log, error) {
	if logger == nil {
		return nil, errors.New("history: nil logger")
	}
	limit := DefaultLimit
	if cfg != nil && cfg.Limit > 0 {
		limit = cfg.Limit
	}
	l := logger.With(interfaces.Field{Key: "component", Value: "history"})
	return &Log{limit: limit, logger: l}, nil
}

var _ interfaces.Historian = (*Log)(nil)

// Append records r at the head of the log, evicting the oldest entry when
// the cap is exceeded. Nil results are ignored.
func (l *Log) Append(r *model.ScanResult) {
	if r == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]*model.ScanResult{r}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	l.logger.Debug("appended scan", interfaces.Field{Key: "id", Value: r.ID}, interfaces.Field{Key: "size", Value: len(l.entries)})
}

// Entries returns a copy of the log, most-recent-first.
func (l *Log) Entries() []*model.ScanResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*model.ScanResult, len(l.entries))
	copy(out, l.entries)
	return out
}

// Filter returns entries whose URL contains substr, case-insensitively,
// preserving most-recent-first order. An empty filter returns everything.
func (l *Log) Filter(substr string) []*model.ScanResult {
	if substr == "" {
		return l.Entries()
	}
	needle := strings.ToLower(substr)

	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*model.ScanResult
	for _, e := range l.entries {
		if strings.Contains(strings.ToLower(e.URL), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the entry with the given scan ID, or nil when absent.
func (l *Log) Get(id string) *model.ScanResult {
	if id == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Len reports the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear removes all entries.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.logger.Debug("history cleared")
}
