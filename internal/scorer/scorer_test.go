package scorer_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/raysh454/linkscope/internal/model"
	"github.com/raysh454/linkscope/internal/scorer"
	"github.com/raysh454/linkscope/internal/testutil"
)

func newScorer(t *testing.T, cfg *scorer.Config) *scorer.HeuristicScorer {
	t.Helper()
	s, err := scorer.New(cfg, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()
	if _, err := scorer.New(nil, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}

func TestScan_UnparseableInput(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	for _, input := range []string{
		"not a url",
		"",
		"   ",
		"example.com/path",
		"https://",
		"mailto:someone@example.com",
	} {
		res := s.Scan(input)
		if res.Score != 0 {
			t.Errorf("Scan(%q): score = %d, want 0", input, res.Score)
		}
		if res.Status != model.StatusUnsafe {
			t.Errorf("Scan(%q): status = %s, want unsafe", input, res.Status)
		}
		if len(res.Checks) != 1 {
			t.Fatalf("Scan(%q): %d checks, want 1", input, len(res.Checks))
		}
		if res.Checks[0].Status != model.CheckFail {
			t.Errorf("Scan(%q): format check status = %s, want fail", input, res.Checks[0].Status)
		}
		if res.Metadata != nil {
			t.Errorf("Scan(%q): metadata populated for unparseable input", input)
		}
	}
}

func TestScan_ScoreTable(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	tests := []struct {
		name       string
		input      string
		wantScore  int
		wantStatus model.ScanStatus
	}{
		{"clean https", "https://example.com", 100, model.StatusSafe},
		{"clean http", "http://example.com", 70, model.StatusSuspicious},
		{"http shortener", "http://bit.ly/abc", 50, model.StatusSuspicious},
		{"https shortener", "https://tinyurl.com/abc", 80, model.StatusSafe},
		{"dangerous extension", "https://site.com/malware.exe", 65, model.StatusSuspicious},
		{"phishing keyword", "https://example.com/verify-account", 75, model.StatusSuspicious},
		{"localhost", "http://localhost:3000/app", 50, model.StatusSuspicious},
		{"private range", "http://192.168.1.5/admin", 50, model.StatusSuspicious},
		{"everything wrong", "http://10.0.0.1/secure-update/payload.exe", 0, model.StatusUnsafe},
		{"long url", "https://example.com/" + strings.Repeat("a", 200), 90, model.StatusSafe},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := s.Scan(tt.input)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", res.Score, tt.wantScore)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", res.Status, tt.wantStatus)
			}
			if len(res.Checks) != 8 {
				t.Errorf("%d checks, want 8", len(res.Checks))
			}
		})
	}
}

func TestScan_HeaderFailVerdict(t *testing.T) {
	t.Parallel()
	cfg := scorer.DefaultConfig()
	cfg.HeaderVerdict = scorer.HeaderAssumeFail
	s := newScorer(t, cfg)

	res := s.Scan("https://example.com")
	if res.Score != 85 {
		t.Errorf("score = %d, want 85", res.Score)
	}
	if res.Status != model.StatusSafe {
		t.Errorf("status = %s, want safe", res.Status)
	}

	last := res.Checks[len(res.Checks)-1]
	if last.Name != "Security Headers" || last.Status != model.CheckFail {
		t.Errorf("headers check = %+v, want failing Security Headers", last)
	}
}

func TestScan_HeaderCheckHook(t *testing.T) {
	t.Parallel()
	cfg := scorer.DefaultConfig()
	cfg.HeaderCheck = func(u *url.URL) bool { return u.Hostname() != "weak.example" }
	s := newScorer(t, cfg)

	if got := s.Scan("https://weak.example").Score; got != 85 {
		t.Errorf("hook-fail score = %d, want 85", got)
	}
	if got := s.Scan("https://strong.example").Score; got != 100 {
		t.Errorf("hook-pass score = %d, want 100", got)
	}
}

func TestScan_ExtensionMonotonicity(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	clean := s.Scan("https://example.com/files/report")
	dirty := s.Scan("https://example.com/files/report.exe")

	if clean.Score-dirty.Score != 35 {
		t.Errorf("extension deduction = %d, want exactly 35", clean.Score-dirty.Score)
	}
}

func TestScan_ChecksAreOrdered(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	want := []string{
		"URL Format", "HTTPS Protocol", "Domain Reputation", "URL Length",
		"Phishing Keywords", "Dangerous Extensions", "SSL Certificate", "Security Headers",
	}
	res := s.Scan("https://example.com")
	for i, name := range want {
		if res.Checks[i].Name != name {
			t.Errorf("checks[%d] = %q, want %q", i, res.Checks[i].Name, name)
		}
	}
}

func TestScan_Metadata(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	res := s.Scan("https://Example.COM:8443/login")
	md := res.Metadata
	if md == nil {
		t.Fatal("metadata missing")
	}
	if md.Domain != "example.com" {
		t.Errorf("domain = %q, want example.com", md.Domain)
	}
	if md.Protocol != "https" {
		t.Errorf("protocol = %q, want https", md.Protocol)
	}
	if md.Port == nil || *md.Port != 8443 {
		t.Errorf("port = %v, want 8443", md.Port)
	}

	// Default ports are stripped during normalization.
	if p := s.Scan("https://example.com:443/").Metadata.Port; p != nil {
		t.Errorf("default port survived normalization: %v", p)
	}
}

func TestScan_Deterministic(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	a := s.Scan("https://example.com/path?q=1")
	b := s.Scan("https://example.com/path?q=1")

	if a.Score != b.Score || a.Status != b.Status {
		t.Fatalf("repeated scans disagree: %d/%s vs %d/%s", a.Score, a.Status, b.Score, b.Status)
	}
	if a.Metadata.ResponseTimeMs != b.Metadata.ResponseTimeMs {
		t.Errorf("simulated response time differs between runs")
	}
	if a.Metadata.RedirectCount != b.Metadata.RedirectCount {
		t.Errorf("simulated redirect count differs between runs")
	}
}
