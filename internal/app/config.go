package app

import (
	"time"

	"github.com/raysh454/linkscope/internal/analyzer"
	"github.com/raysh454/linkscope/internal/history"
	"github.com/raysh454/linkscope/internal/scorer"
)

// Config carries the runtime configuration for the orchestrator and the
// components it wires together.
type Config struct {
	// ScorerCfg is the heuristic rule set.
	ScorerCfg *scorer.Config

	// AnalyzerCfg is the advisory rule set.
	AnalyzerCfg *analyzer.Config

	// HistoryCfg bounds the in-memory scan log.
	HistoryCfg *history.Config

	// SimulatedLatency optionally delays each scan before evaluation to
	// mimic a remote inspection round-trip. Purely presentational; zero
	// disables it.
	SimulatedLatency time.Duration
}

// DefaultConfig returns a Config populated with the canonical rule sets and
// history bounds.
func DefaultConfig() *Config {
	return &Config{
		ScorerCfg:   scorer.DefaultConfig(),
		AnalyzerCfg: analyzer.DefaultConfig(),
		HistoryCfg:  &history.Config{Limit: history.DefaultLimit},
	}
}
