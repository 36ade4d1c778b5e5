// Package analyzer produces advisory insights about a parsed URL. Insights
// are informational only: they ride alongside the scored checks but never
// move the score or the status.
package analyzer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/raysh454/linkscope/internal/interfaces"
	"github.com/raysh454/linkscope/internal/model"
)

// tokenKeys are parameter names that suggest a credential or session
// artifact is being passed through the URL.
var tokenKeys = map[string]bool{
	"token":        true,
	"access_token": true,
	"id_token":     true,
	"code":         true,
	"session":      true,
	"bearer":       true,
}

// Config controls the advisory rules.
type Config struct {
	// Brands are frequently-imitated domains checked for lookalikes.
	Brands []string

	// LookalikeThreshold is the minimum similarity ratio (0..1] at which
	// a host counts as imitating a brand. Zero means DefaultThreshold.
	LookalikeThreshold float64
}

// DefaultThreshold is the canonical lookalike similarity cutoff.
const DefaultThreshold = 0.8

// DefaultConfig returns the canonical advisory rule set.
func DefaultConfig() *Config {
	return &Config{
		Brands: []string{
			"paypal.com", "google.com", "apple.com", "microsoft.com", "amazon.com",
		},
		LookalikeThreshold: DefaultThreshold,
	}
}

// Analyzer runs the advisory rules. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	cfg    *Config
	logger interfaces.Logger
}

// New constructs an Analyzer. A nil cfg gets DefaultConfig; the logger is
// required.
func New(cfg *Config, logger interfaces.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.LookalikeThreshold <= 0 {
		cfg.LookalikeThreshold = DefaultThreshold
	}
	if logger == nil {
		return nil, errors.New("analyzer: nil logger")
	}
	l := logger.With(interfaces.Field{Key: "component", Value: "analyzer"})
	return &Analyzer{cfg: cfg, logger: l}, nil
}

// Analyze inspects a successfully parsed URL and returns zero or more
// insights.
func (a *Analyzer) Analyze(u *url.URL) []model.Insight {
	if u == nil {
		return nil
	}

	var insights []model.Insight
	if in := a.lookalike(u); in != nil {
		insights = append(insights, *in)
	}
	insights = append(insights, tokenLeaks(u)...)
	if u.User != nil {
		insights = append(insights, model.Insight{
			Type:     model.InsightUserinfo,
			Severity: model.ImpactHigh,
			Detail:   fmt.Sprintf("URL carries userinfo before host %q", u.Hostname()),
		})
	}

	if len(insights) > 0 {
		a.logger.Debug("advisory insights", interfaces.Field{Key: "host", Value: u.Hostname()}, interfaces.Field{Key: "count", Value: len(insights)})
	}
	return insights
}

// tokenLeaks flags sensitive-looking parameter names in the query or
// fragment. Fragment leaks rank higher since fragments frequently end up in
// referrer logs and crash reports verbatim.
func tokenLeaks(u *url.URL) []model.Insight {
	var out []model.Insight
	for k := range u.Query() {
		if tokenKeys[strings.ToLower(k)] {
			out = append(out, model.Insight{
				Type:     model.InsightTokenLeak,
				Severity: model.ImpactMedium,
				Detail:   fmt.Sprintf("%s in query", k),
			})
		}
	}
	if frag := u.Fragment; frag != "" {
		for _, part := range strings.Split(frag, "&") {
			kv := strings.SplitN(part, "=", 2)
			if tokenKeys[strings.ToLower(kv[0])] {
				out = append(out, model.Insight{
					Type:     model.InsightTokenLeak,
					Severity: model.ImpactHigh,
					Detail:   fmt.Sprintf("%s in fragment", kv[0]),
				})
			}
		}
	}
	return out
}
