package scorer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/raysh454/linkscope/internal/model"
)

// Check names, in display order. The names are part of the API surface:
// exports and diffs reference checks by name.
const (
	checkURLFormat  = "URL Format"
	checkScheme     = "HTTPS Protocol"
	checkReputation = "Domain Reputation"
	checkLength     = "URL Length"
	checkKeywords   = "Phishing Keywords"
	checkExtensions = "Dangerous Extensions"
	checkSSL        = "SSL Certificate"
	checkHeaders    = "Security Headers"
)

// ruleFunc evaluates one heuristic against the raw input and parsed URL,
// returning the check plus the score deduction (0 on pass).
type ruleFunc func(cfg *Config, input string, u *url.URL) (model.Check, int)

// rules lists every post-parse heuristic in display order. Order matters
// only for display; the final score is order-independent since rules never
// interact.
var rules = []ruleFunc{
	schemeRule,
	reputationRule,
	lengthRule,
	keywordRule,
	extensionRule,
	sslRule,
	headersRule,
}

func schemeRule(cfg *Config, _ string, u *url.URL) (model.Check, int) {
	if u.Scheme == "https" {
		return model.Check{
			Name:        checkScheme,
			Status:      model.CheckPass,
			Description: "Connection uses HTTPS",
			Impact:      model.ImpactHigh,
		}, 0
	}
	return model.Check{
		Name:        checkScheme,
		Status:      model.CheckFail,
		Description: fmt.Sprintf("Connection uses %s instead of HTTPS", u.Scheme),
		Impact:      model.ImpactHigh,
	}, cfg.Weights.Scheme
}

func reputationRule(cfg *Config, _ string, u *url.URL) (model.Check, int) {
	host := u.Host
	for _, entry := range cfg.Denylist {
		if strings.Contains(host, entry) {
			return model.Check{
				Name:        checkReputation,
				Status:      model.CheckWarning,
				Description: fmt.Sprintf("Host matches denylist entry %q", entry),
				Impact:      model.ImpactMedium,
			}, cfg.Weights.Denylist
		}
	}
	for _, prefix := range cfg.PrivatePrefixes {
		if strings.HasPrefix(host, prefix) {
			return model.Check{
				Name:        checkReputation,
				Status:      model.CheckWarning,
				Description: fmt.Sprintf("Host is in a private address range (%s)", prefix),
				Impact:      model.ImpactMedium,
			}, cfg.Weights.Denylist
		}
	}
	return model.Check{
		Name:        checkReputation,
		Status:      model.CheckPass,
		Description: "Host is not on the denylist",
		Impact:      model.ImpactMedium,
	}, 0
}

func lengthRule(cfg *Config, input string, _ *url.URL) (model.Check, int) {
	if len(input) > cfg.MaxLength {
		return model.Check{
			Name:        checkLength,
			Status:      model.CheckWarning,
			Description: fmt.Sprintf("URL is unusually long (%d characters)", len(input)),
			Impact:      model.ImpactLow,
		}, cfg.Weights.Length
	}
	return model.Check{
		Name:        checkLength,
		Status:      model.CheckPass,
		Description: "URL length is within normal bounds",
		Impact:      model.ImpactLow,
	}, 0
}

func keywordRule(cfg *Config, input string, _ *url.URL) (model.Check, int) {
	lower := strings.ToLower(input)
	for _, kw := range cfg.Keywords {
		if strings.Contains(lower, kw) {
			return model.Check{
				Name:        checkKeywords,
				Status:      model.CheckFail,
				Description: fmt.Sprintf("URL contains phishing keyword %q", kw),
				Impact:      model.ImpactHigh,
			}, cfg.Weights.Keyword
		}
	}
	return model.Check{
		Name:        checkKeywords,
		Status:      model.CheckPass,
		Description: "No phishing keywords detected",
		Impact:      model.ImpactHigh,
	}, 0
}

func extensionRule(cfg *Config, input string, _ *url.URL) (model.Check, int) {
	lower := strings.ToLower(input)
	for _, ext := range cfg.Extensions {
		if strings.Contains(lower, ext) {
			return model.Check{
				Name:        checkExtensions,
				Status:      model.CheckFail,
				Description: fmt.Sprintf("URL references a dangerous file type (%s)", ext),
				Impact:      model.ImpactHigh,
			}, cfg.Weights.Extension
		}
	}
	return model.Check{
		Name:        checkExtensions,
		Status:      model.CheckPass,
		Description: "No dangerous file extensions detected",
		Impact:      model.ImpactHigh,
	}, 0
}

// sslRule mirrors the scheme rule for display purposes but never deducts;
// the scheme rule already charged for a missing TLS transport.
func sslRule(_ *Config, _ string, u *url.URL) (model.Check, int) {
	if u.Scheme == "https" {
		return model.Check{
			Name:        checkSSL,
			Status:      model.CheckPass,
			Description: "SSL/TLS transport present",
			Impact:      model.ImpactMedium,
		}, 0
	}
	return model.Check{
		Name:        checkSSL,
		Status:      model.CheckFail,
		Description: "No SSL/TLS transport",
		Impact:      model.ImpactMedium,
	}, 0
}

func headersRule(cfg *Config, _ string, u *url.URL) (model.Check, int) {
	if cfg.headersPass(u) {
		return model.Check{
			Name:        checkHeaders,
			Status:      model.CheckPass,
			Description: "Security headers assumed present",
			Impact:      model.ImpactMedium,
		}, 0
	}
	return model.Check{
		Name:        checkHeaders,
		Status:      model.CheckFail,
		Description: "Security headers assumed missing",
		Impact:      model.ImpactMedium,
	}, cfg.Weights.Headers
}
