package analyzer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/raysh454/linkscope/internal/model"
)

// lookalike reports the first brand domain the host closely imitates.
// Exact matches and legitimate subdomains of a brand are never flagged.
func (a *Analyzer) lookalike(u *url.URL) *model.Insight {
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" {
		return nil
	}

	dmp := diffmatchpatch.New()
	for _, brand := range a.cfg.Brands {
		if host == brand || strings.HasSuffix(host, "."+brand) {
			return nil
		}
		ratio := similarity(dmp, host, brand)
		if ratio >= a.cfg.LookalikeThreshold {
			return &model.Insight{
				Type:     model.InsightLookalikeDomain,
				Severity: model.ImpactHigh,
				Detail:   fmt.Sprintf("host %q closely resembles %q (similarity %.2f)", host, brand, ratio),
			}
		}
	}
	return nil
}

// similarity derives a [0,1] ratio from the Levenshtein distance between
// two strings: 1 means identical, 0 means nothing shared.
func similarity(dmp *diffmatchpatch.DiffMatchPatch, a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	diffs := dmp.DiffMain(a, b, false)
	lev := dmp.DiffLevenshtein(diffs)
	return 1 - float64(lev)/float64(longest)
}
