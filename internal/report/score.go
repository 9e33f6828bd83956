package report

// Penalty weights per severity tier. Linear deduction, capped at 100,
// so a clean page scores 100 and a hopeless one bottoms out at 0.
const (
	penaltyCritical = 20
	penaltyMajor    = 10
	penaltyModerate = 4
	penaltyMinor    = 1
	penaltyCap      = 100
)

// Score classifies every issue, tallies the severity buckets, and converts
// the weighted penalty into a 0-100 category score. The input slice is not
// mutated; an empty slice scores 100.
func Score(issues []Issue) CategoryResult {
	var b Breakdown
	for _, issue := range issues {
		switch Classify(issue) {
		case SeverityCritical:
			b.Critical++
		case SeverityMajor:
			b.Major++
		case SeverityModerate:
			b.Moderate++
		default:
			b.Minor++
		}
	}
	b.Total = b.Critical + b.Major + b.Moderate + b.Minor

	b.BasePenalty = b.Critical*penaltyCritical +
		b.Major*penaltyMajor +
		b.Moderate*penaltyModerate +
		b.Minor*penaltyMinor

	b.CappedPenalty = b.BasePenalty
	if b.CappedPenalty > penaltyCap {
		b.CappedPenalty = penaltyCap
	}

	score := 100 - b.CappedPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return CategoryResult{
		Score:     score,
		Breakdown: b,
		Issues:    issues,
	}
}
