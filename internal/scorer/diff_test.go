package scorer_test

import (
	"testing"

	"github.com/raysh454/linkscope/internal/model"
)

func TestCompare_ScoreDeltaAndTransitions(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	base := s.Scan("https://example.com/files/report")
	head := s.Scan("https://example.com/files/report.exe")
	base.ID = "base-1"
	head.ID = "head-1"

	diff := s.Compare(base, head)
	if diff.BaseID != "base-1" || diff.HeadID != "head-1" {
		t.Errorf("ids = %q/%q", diff.BaseID, diff.HeadID)
	}
	if diff.ScoreDelta != -35 {
		t.Errorf("delta = %d, want -35", diff.ScoreDelta)
	}
	if len(diff.Transitions) != 1 {
		t.Fatalf("%d transitions, want 1", len(diff.Transitions))
	}
	tr := diff.Transitions[0]
	if tr.Name != "Dangerous Extensions" || tr.From != model.CheckPass || tr.To != model.CheckFail {
		t.Errorf("transition = %+v", tr)
	}
}

func TestCompare_IdenticalResults(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	res := s.Scan("https://example.com")
	diff := s.Compare(res, res)
	if diff.ScoreDelta != 0 || len(diff.Transitions) != 0 {
		t.Errorf("diff of identical results = %+v", diff)
	}
}

func TestCompare_NilBase(t *testing.T) {
	t.Parallel()
	s := newScorer(t, nil)

	head := s.Scan("https://example.com")
	diff := s.Compare(nil, head)
	if diff.ScoreBase != 0 || diff.ScoreDelta != head.Score {
		t.Errorf("nil-base diff = %+v", diff)
	}
	// Every head check appears as a fresh transition.
	if len(diff.Transitions) != len(head.Checks) {
		t.Errorf("%d transitions, want %d", len(diff.Transitions), len(head.Checks))
	}
}
