package scorer

import "github.com/raysh454/linkscope/internal/model"

// Compare computes the delta between two scan results: score movement plus
// every check whose status changed. Nil arguments are treated as empty
// results so callers can diff against "no previous scan".
func (s *HeuristicScorer) Compare(base, head *model.ScanResult) *model.ScanDiff {
	diff := &model.ScanDiff{}

	baseChecks := map[string]model.CheckStatus{}
	headChecks := map[string]model.CheckStatus{}

	if base != nil {
		diff.BaseID = base.ID
		diff.ScoreBase = base.Score
		for _, c := range base.Checks {
			baseChecks[c.Name] = c.Status
		}
	}
	if head != nil {
		diff.HeadID = head.ID
		diff.ScoreHead = head.Score
		for _, c := range head.Checks {
			headChecks[c.Name] = c.Status
		}
	}
	diff.ScoreDelta = diff.ScoreHead - diff.ScoreBase

	// Walk head checks in display order, then pick up checks that only
	// exist in base.
	if head != nil {
		for _, c := range head.Checks {
			from, ok := baseChecks[c.Name]
			if !ok {
				diff.Transitions = append(diff.Transitions, model.CheckTransition{Name: c.Name, To: c.Status})
				continue
			}
			if from != c.Status {
				diff.Transitions = append(diff.Transitions, model.CheckTransition{Name: c.Name, From: from, To: c.Status})
			}
		}
	}
	if base != nil {
		for _, c := range base.Checks {
			if _, ok := headChecks[c.Name]; !ok {
				diff.Transitions = append(diff.Transitions, model.CheckTransition{Name: c.Name, From: c.Status})
			}
		}
	}

	return diff
}
