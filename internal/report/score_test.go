package report

import "testing"

func TestScoreEmpty(t *testing.T) {
	result := Score(nil)
	if result.Score != 100 {
		t.Fatalf("empty issue list scored %d, want 100", result.Score)
	}
	if result.Breakdown.Total != 0 {
		t.Fatalf("empty issue list total = %d, want 0", result.Breakdown.Total)
	}
}

func TestScorePenaltyMath(t *testing.T) {
	tests := []struct {
		name        string
		issues      []Issue
		wantScore   int
		wantBase    int
		wantCapped  int
	}{
		{
			name:       "one critical",
			issues:     []Issue{{ID: "missing-lang"}},
			wantScore:  80,
			wantBase:   20,
			wantCapped: 20,
		},
		{
			name:       "one of each tier",
			issues:     []Issue{{ID: "missing-lang"}, {ID: "missing-alt"}, {ID: "short-title"}, {ID: "missing-favicon"}},
			wantScore:  65,
			wantBase:   35,
			wantCapped: 35,
		},
		{
			name: "penalty capped at 100",
			issues: []Issue{
				{ID: "missing-lang"}, {ID: "missing-title"}, {ID: "missing-viewport"},
				{ID: "noindex-tag"}, {ID: "color-contrast-low"}, {ID: "keyboard-trap"},
			},
			wantScore:  0,
			wantBase:   120,
			wantCapped: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.issues)
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.Breakdown.BasePenalty != tt.wantBase {
				t.Errorf("basePenalty = %d, want %d", result.Breakdown.BasePenalty, tt.wantBase)
			}
			if result.Breakdown.CappedPenalty != tt.wantCapped {
				t.Errorf("cappedPenalty = %d, want %d", result.Breakdown.CappedPenalty, tt.wantCapped)
			}
		})
	}
}

func TestScoreBreakdownConsistency(t *testing.T) {
	issues := []Issue{
		{ID: "missing-lang"},
		{ID: "missing-alt"},
		{ID: "missing-alt"},
		{ID: "short-title"},
		{ID: "missing-favicon"},
		{ID: "something-unknown"},
	}
	b := Score(issues).Breakdown
	if sum := b.Critical + b.Major + b.Moderate + b.Minor; sum != b.Total {
		t.Fatalf("severity counts sum to %d, total says %d", sum, b.Total)
	}
	if b.Total != len(issues) {
		t.Fatalf("total = %d, want %d", b.Total, len(issues))
	}
}

func TestScoreBounds(t *testing.T) {
	// Pile on issues from every tier; score must stay in [0, 100].
	var issues []Issue
	ids := []string{"missing-lang", "missing-alt", "short-title", "missing-favicon"}
	for i := 0; i < 50; i++ {
		issues = append(issues, Issue{ID: ids[i%len(ids)]})
		result := Score(issues)
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score %d out of bounds with %d issues", result.Score, len(issues))
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	ids := []string{"missing-favicon", "short-title", "missing-alt", "missing-lang", "unknown-id"}
	var issues []Issue
	prev := Score(issues).Score
	for _, id := range ids {
		issues = append(issues, Issue{ID: id})
		next := Score(issues).Score
		if next > prev {
			t.Fatalf("adding issue %q raised score from %d to %d", id, prev, next)
		}
		prev = next
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	issues := []Issue{{ID: "missing-lang", Desc: "original"}}
	Score(issues)
	if issues[0].Desc != "original" {
		t.Fatal("scorer mutated its input")
	}
}
