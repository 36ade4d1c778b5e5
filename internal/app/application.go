// Package app wires the scorer, analyzer and history log into one
// orchestrator. The session state the surrounding shells need (last result,
// scan log) lives here explicitly; the scorer itself stays pure.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/linkscope/internal/analyzer"
	"github.com/raysh454/linkscope/internal/export"
	"github.com/raysh454/linkscope/internal/history"
	"github.com/raysh454/linkscope/internal/interfaces"
	"github.com/raysh454/linkscope/internal/model"
	"github.com/raysh454/linkscope/internal/scorer"
	"github.com/raysh454/linkscope/internal/urlutil"
)

var (
	// ErrEmptyInput is returned when the caller submits an empty or
	// whitespace-only string. Rejecting those is the caller-side
	// precondition; everything else is scanned.
	ErrEmptyInput = errors.New("app: empty input")

	// ErrNotFound is returned when a scan ID is not in the history log.
	ErrNotFound = errors.New("app: scan not found")
)

// App owns the wired components and the per-session mutable state.
type App struct {
	cfg      *Config
	scorer   *scorer.HeuristicScorer
	analyzer *analyzer.Analyzer
	log      *history.Log
	logger   interfaces.Logger

	mu   sync.Mutex
	last *model.ScanResult
}

// New constructs an App from cfg, falling back to DefaultConfig when nil.
func New(cfg *Config, logger interfaces.Logger) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("app: nil logger")
	}

	sc, err := scorer.New(cfg.ScorerCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating scorer: %w", err)
	}
	an, err := analyzer.New(cfg.AnalyzerCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating analyzer: %w", err)
	}
	log, err := history.NewLog(cfg.HistoryCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating history log: %w", err)
	}

	return &App{
		cfg:      cfg,
		scorer:   sc,
		analyzer: an,
		log:      log,
		logger:   logger.With(interfaces.Field{Key: "component", Value: "app"}),
	}, nil
}

// Scan evaluates input, appends the result to the history log and returns
// it with any advisory insights. Empty input is rejected before scoring.
// The optional simulated latency honors ctx cancellation.
func (a *App) Scan(ctx context.Context, input string) (*model.ScanResult, []model.Insight, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, ErrEmptyInput
	}

	if d := a.cfg.SimulatedLatency; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	result := a.scorer.Scan(input)
	result.ID = uuid.New().String()

	var insights []model.Insight
	if !result.FailedParse() {
		// Re-parse is cheap and keeps the scorer's contract string-only.
		if u, err := urlutil.Parse(input); err == nil {
			insights = a.analyzer.Analyze(u)
		}
	}

	a.log.Append(result)
	a.mu.Lock()
	a.last = result
	a.mu.Unlock()

	a.logger.Info("scan completed",
		interfaces.Field{Key: "id", Value: result.ID},
		interfaces.Field{Key: "url", Value: input},
		interfaces.Field{Key: "score", Value: result.Score},
		interfaces.Field{Key: "status", Value: string(result.Status)},
		interfaces.Field{Key: "insights", Value: len(insights)})

	return result, insights, nil
}

// History returns the scan log, most-recent-first.
func (a *App) History() []*model.ScanResult {
	return a.log.Entries()
}

// FilterHistory returns history entries whose URL contains q,
// case-insensitively.
func (a *App) FilterHistory(q string) []*model.ScanResult {
	return a.log.Filter(q)
}

// GetScan returns the history entry with the given ID.
func (a *App) GetScan(id string) (*model.ScanResult, error) {
	if r := a.log.Get(id); r != nil {
		return r, nil
	}
	return nil, ErrNotFound
}

// LastResult returns the most recent result of this session, or nil.
func (a *App) LastResult() *model.ScanResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// ClearHistory drops all history entries. The last result survives as
// session state until the next scan.
func (a *App) ClearHistory() {
	a.log.Clear()
}

// Compare diffs two scans already in the history log.
func (a *App) Compare(baseID, headID string) (*model.ScanDiff, error) {
	base, err := a.GetScan(baseID)
	if err != nil {
		return nil, fmt.Errorf("base %s: %w", baseID, err)
	}
	head, err := a.GetScan(headID)
	if err != nil {
		return nil, fmt.Errorf("head %s: %w", headID, err)
	}
	return a.scorer.Compare(base, head), nil
}

// Export renders the identified scan as an export envelope.
func (a *App) Export(id string) (*model.ExportEnvelope, error) {
	r, err := a.GetScan(id)
	if err != nil {
		return nil, err
	}
	return export.Envelope(r)
}
