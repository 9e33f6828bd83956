// Package rank turns the two category scores into presentation data:
// letter grades, a performance tier, percentile labels, and a prioritized
// remediation list.
//
// The overall value used here is the unweighted average of the two scores.
// The top-level report separately carries a 70/30 weighted overall; the two
// serve different consumers and are intentionally distinct.
package rank

import (
	"fmt"
	"math"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

var gradeColors = map[string]string{
	"A": "#0cce6b",
	"B": "#ffc400",
	"C": "#ff8c00",
	"D": "#ff6b6b",
	"F": "#c41e3a",
}

func GradeColor(grade string) string {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return "#999"
}

var gradeDescriptions = map[string]string{
	"A": "Excellent - Page meets high accessibility and SEO standards",
	"B": "Good - Page is accessible but has minor improvements available",
	"C": "Acceptable - Page has moderate accessibility/SEO issues",
	"D": "Poor - Page has significant accessibility/SEO problems",
	"F": "Failing - Page has critical accessibility or SEO issues",
}

func GradeDescription(grade string) string {
	if d, ok := gradeDescriptions[grade]; ok {
		return d
	}
	return "Unknown"
}

// AssignTier buckets the page by its weakest category: one failing score is
// enough to drop the tier.
func AssignTier(wcagScore, seoScore int) report.PerformanceTier {
	switch {
	case wcagScore >= 85 && seoScore >= 85:
		return report.PerformanceTier{
			Tier:  1,
			Name:  "Best Practice",
			Label: "This page exemplifies accessibility and SEO best practices",
		}
	case wcagScore >= 75 && seoScore >= 75:
		return report.PerformanceTier{
			Tier:  2,
			Name:  "Good Performance",
			Label: "This page is accessible and SEO-friendly with room for optimization",
		}
	case wcagScore >= 60 && seoScore >= 60:
		return report.PerformanceTier{
			Tier:  3,
			Name:  "Fair Performance",
			Label: "This page has accessibility and SEO issues that should be addressed",
		}
	default:
		return report.PerformanceTier{
			Tier:  4,
			Name:  "Needs Improvement",
			Label: "This page has critical accessibility or SEO problems that need urgent attention",
		}
	}
}

// Percentile estimates where the page falls relative to the web at large.
// Step function: most pages score 40-70, good pages 70-85, excellent 85+.
func Percentile(score int) string {
	switch {
	case score >= 85:
		return "Top 10%"
	case score >= 75:
		return "Top 25%"
	case score >= 65:
		return "Top 50%"
	case score >= 50:
		return "Below Average"
	default:
		return "Bottom 20%"
	}
}

// Recommendations builds the prioritized remediation list. Empty severity
// buckets produce no entry, so the list length is data-dependent (0 to 6).
func Recommendations(wcag, seo report.Breakdown) []report.Recommendation {
	var recs []report.Recommendation

	if wcag.Critical > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 1,
			Category: "Critical Accessibility",
			Count:    wcag.Critical,
			Action:   fmt.Sprintf("Fix %d critical accessibility issues immediately", wcag.Critical),
			Impact:   "Users with disabilities cannot access your site",
		})
	}
	if seo.Critical > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 2,
			Category: "Critical SEO",
			Count:    seo.Critical,
			Action:   fmt.Sprintf("Fix %d critical SEO issues immediately", seo.Critical),
			Impact:   "Your page will not be indexed by search engines",
		})
	}
	if wcag.Major > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 3,
			Category: "Major Accessibility",
			Count:    wcag.Major,
			Action:   fmt.Sprintf("Address %d major accessibility issues", wcag.Major),
			Impact:   "Some users will have difficulty using your site",
		})
	}
	if seo.Major > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 4,
			Category: "Major SEO",
			Count:    seo.Major,
			Action:   fmt.Sprintf("Address %d major SEO issues", seo.Major),
			Impact:   "Your search engine visibility will be limited",
		})
	}
	if wcag.Moderate > 0 || seo.Moderate > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 5,
			Category: "Moderate Issues",
			Count:    wcag.Moderate + seo.Moderate,
			Action:   "Improve user experience by addressing moderate issues",
			Impact:   "Better usability and search ranking potential",
		})
	}
	if wcag.Minor > 0 || seo.Minor > 0 {
		recs = append(recs, report.Recommendation{
			Priority: 6,
			Category: "Optimization Opportunities",
			Count:    wcag.Minor + seo.Minor,
			Action:   "Consider minor improvements",
			Impact:   "Polish and optimization for maximum reach",
		})
	}
	return recs
}

// Rank assembles the full presentation block from the two category results.
func Rank(wcagScore, seoScore int, wcagBreakdown, seoBreakdown report.Breakdown) report.Ranking {
	overall := int(math.Round(float64(wcagScore+seoScore) / 2))
	wcagGrade := Grade(wcagScore)
	seoGrade := Grade(seoScore)
	overallGrade := Grade(overall)

	return report.Ranking{
		Grades: report.Grades{
			WCAG:    wcagGrade,
			SEO:     seoGrade,
			Overall: overallGrade,
		},
		Performance: AssignTier(wcagScore, seoScore),
		Metrics: report.Metrics{
			WCAG: report.Metric{
				Score:      wcagScore,
				Grade:      wcagGrade,
				Percentile: Percentile(wcagScore),
				Label:      fmt.Sprintf("WCAG Accessibility: %s", wcagGrade),
			},
			SEO: report.Metric{
				Score:      seoScore,
				Grade:      seoGrade,
				Percentile: Percentile(seoScore),
				Label:      fmt.Sprintf("SEO Optimization: %s", seoGrade),
			},
			Overall: report.OverallMetric{
				Score: overall,
				Grade: overallGrade,
				Label: fmt.Sprintf("Overall Score: %d", overall),
			},
		},
		Recommendations: Recommendations(wcagBreakdown, seoBreakdown),
		Summary: report.Summary{
			WCAGScore:    wcagScore,
			SEOScore:     seoScore,
			OverallScore: overall,
			WCAGGrade:    wcagGrade,
			SEOGrade:     seoGrade,
			OverallGrade: overallGrade,
			WCAGColor:    GradeColor(wcagGrade),
			SEOColor:     GradeColor(seoGrade),
			OverallColor: GradeColor(overallGrade),
			Message:      GradeDescription(overallGrade),
		},
	}
}
