package scorer

import "net/url"

// HeaderVerdict selects how the security-headers rule is decided when no
// HeaderCheck hook is installed. The original simulation flipped a coin
// here; that made results irreproducible, so the rule is now a pure
// function of configuration.
type HeaderVerdict string

const (
	// HeaderAssumePass treats the headers rule as passing (the default).
	HeaderAssumePass HeaderVerdict = "pass"

	// HeaderAssumeFail treats the headers rule as failing.
	HeaderAssumeFail HeaderVerdict = "fail"
)

// Weights holds the per-rule score deductions. Each rule only ever
// subtracts; the score starts at 100 and clamps at 0.
type Weights struct {
	Scheme    int
	Denylist  int
	Length    int
	Keyword   int
	Extension int
	Headers   int
}

// Config carries every tunable of the heuristic rule set. Use
// DefaultConfig for the canonical values.
type Config struct {
	Weights Weights

	// Denylist entries are matched as substrings of the host.
	Denylist []string

	// PrivatePrefixes are matched as prefixes of the host.
	PrivatePrefixes []string

	// Keywords are phishing indicators matched case-insensitively against
	// the whole input string.
	Keywords []string

	// Extensions are dangerous file suffixes matched case-insensitively
	// anywhere in the input string.
	Extensions []string

	// MaxLength is the input length above which the length rule warns.
	MaxLength int

	// HeaderVerdict decides the security-headers rule when HeaderCheck is
	// nil. Zero value means HeaderAssumePass.
	HeaderVerdict HeaderVerdict

	// HeaderCheck, when set, decides the security-headers rule per URL.
	// It must be pure for results to stay reproducible.
	HeaderCheck func(u *url.URL) bool
}

// DefaultConfig returns the canonical rule set.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Scheme:    30,
			Denylist:  20,
			Length:    10,
			Keyword:   25,
			Extension: 35,
			Headers:   15,
		},
		Denylist: []string{
			"bit.ly", "tinyurl.com", "t.co", "goo.gl",
			"localhost", "127.0.0.1",
		},
		PrivatePrefixes: []string{"192.168.", "10.", "172."},
		Keywords: []string{
			"secure-update", "verify-account", "suspended-account", "urgent-action",
		},
		Extensions:    []string{".exe", ".scr", ".bat", ".cmd", ".pif"},
		MaxLength:     200,
		HeaderVerdict: HeaderAssumePass,
	}
}

// headersPass resolves the security-headers rule for u.
func (c *Config) headersPass(u *url.URL) bool {
	if c.HeaderCheck != nil {
		return c.HeaderCheck(u)
	}
	return c.HeaderVerdict != HeaderAssumeFail
}
