// Package scorer implements the heuristic URL threat scorer. Scan is a
// total, pure evaluation: a URL string goes in, a complete ScanResult
// comes out, and nothing else happens. All rule weights and match lists
// live on Config so callers can tighten or relax the rule set without
// touching the engine.
package scorer

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"time"

	"github.com/raysh454/linkscope/internal/interfaces"
	"github.com/raysh454/linkscope/internal/model"
	"github.com/raysh454/linkscope/internal/urlutil"
)

const startScore = 100

// Status thresholds: score >= safeThreshold is safe, score >=
// suspiciousThreshold is suspicious, anything below is unsafe.
const (
	safeThreshold       = 80
	suspiciousThreshold = 50
)

// HeuristicScorer evaluates URLs against the configured rule set. It holds
// no per-scan state and is safe for concurrent use.
type HeuristicScorer struct {
	cfg    *Config
	logger interfaces.Logger
}

// New constructs a HeuristicScorer. A nil cfg gets DefaultConfig; the
// logger is required.
func New(cfg *Config, logger interfaces.Logger) (*HeuristicScorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("scorer: nil logger")
	}

	l := logger.With(interfaces.Field{Key: "component", Value: "scorer"})
	return &HeuristicScorer{cfg: cfg, logger: l}, nil
}

var _ interfaces.Scorer = (*HeuristicScorer)(nil)

// Scan evaluates input and returns a complete result. It never returns an
// error: an input that does not parse as an absolute URL with a scheme and
// host produces a single failing "URL Format" check, score 0 and status
// unsafe.
func (s *HeuristicScorer) Scan(input string) *model.ScanResult {
	now := time.Now().UTC()

	u, err := urlutil.Parse(input)
	if err != nil {
		s.logger.Warn("input did not parse", interfaces.Field{Key: "input", Value: input}, interfaces.Field{Key: "error", Value: err.Error()})
		return &model.ScanResult{
			URL:    input,
			Status: model.StatusUnsafe,
			Score:  0,
			Checks: []model.Check{{
				Name:        checkURLFormat,
				Status:      model.CheckFail,
				Description: "Input is not an absolute URL with a scheme and host",
				Impact:      model.ImpactHigh,
			}},
			Timestamp: now,
		}
	}

	score := startScore
	checks := make([]model.Check, 0, len(rules)+1)
	checks = append(checks, model.Check{
		Name:        checkURLFormat,
		Status:      model.CheckPass,
		Description: "URL parses as an absolute URL",
		Impact:      model.ImpactHigh,
	})

	for _, rule := range rules {
		check, deduction := rule(s.cfg, input, u)
		checks = append(checks, check)
		score -= deduction
	}

	if score < 0 {
		score = 0
	}

	result := &model.ScanResult{
		URL:       input,
		Status:    statusFor(score),
		Score:     score,
		Checks:    checks,
		Metadata:  buildMetadata(input, u),
		Timestamp: now,
	}

	s.logger.Debug("scan evaluated",
		interfaces.Field{Key: "url", Value: input},
		interfaces.Field{Key: "score", Value: score},
		interfaces.Field{Key: "status", Value: string(result.Status)})

	return result
}

func statusFor(score int) model.ScanStatus {
	switch {
	case score >= safeThreshold:
		return model.StatusSafe
	case score >= suspiciousThreshold:
		return model.StatusSuspicious
	default:
		return model.StatusUnsafe
	}
}

// buildMetadata populates the descriptive fields for a parsed URL. The
// simulated timing fields are hash-derived from the input so repeated scans
// of the same URL report the same decoration.
func buildMetadata(input string, u *url.URL) *model.Metadata {
	return &model.Metadata{
		Domain:         u.Hostname(),
		Protocol:       u.Scheme,
		Port:           urlutil.ExplicitPort(u),
		ResponseTimeMs: 50 + int(hashOf(input)%450),
		RedirectCount:  int(hashOf(input+"#redirects") % 4),
	}
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	_, _ = fmt.Fprint(h, s)
	return h.Sum32()
}
