package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/ui"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/messages"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

func severityColor(s report.Severity) string {
	switch s {
	case report.SeverityCritical:
		return ui.ColorCritical
	case report.SeverityMajor:
		return ui.ColorMajor
	case report.SeverityModerate:
		return ui.ColorModerate
	default:
		return ui.ColorMinor
	}
}

// PrintReport renders the full audit to the console.
func PrintReport(audit *report.AuditReport) {
	fmt.Println()
	fmt.Println(ui.Colorize(ui.ColorWhite, "=== Audit Report ==="))
	if audit.URL != "" {
		fmt.Printf("%s\n", ui.Colorize(ui.ColorGray, "Target: "+audit.URL))
	}

	s := audit.Ranking.Summary
	fmt.Printf("\n%s\n", ui.Colorize(ui.ColorWhite, "Scores"))
	fmt.Printf("  Accessibility: %3d (%s, %s)\n", s.WCAGScore, s.WCAGGrade, audit.Ranking.Metrics.WCAG.Percentile)
	fmt.Printf("  SEO:           %3d (%s, %s)\n", s.SEOScore, s.SEOGrade, audit.Ranking.Metrics.SEO.Percentile)
	fmt.Printf("  Overall:       %3d weighted (%d/%d), %d average (%s)\n",
		audit.Overall.Score, audit.Overall.WCAGWeight, audit.Overall.SEOWeight, s.OverallScore, s.OverallGrade)
	fmt.Printf("  Tier %d - %s: %s\n", audit.Ranking.Performance.Tier, audit.Ranking.Performance.Name, audit.Ranking.Performance.Label)
	fmt.Printf("  %s\n", ui.Colorize(ui.ColorGray, s.Message))

	printCategory("Accessibility Issues", audit.WCAG)
	printCategory("SEO Issues", audit.SEO)

	if len(audit.Ranking.Recommendations) > 0 {
		fmt.Printf("\n%s\n", ui.Colorize(ui.ColorWhite, "Recommendations"))
		for _, rec := range audit.Ranking.Recommendations {
			fmt.Printf("  %d. [%s] %s\n", rec.Priority, rec.Category, rec.Action)
			fmt.Printf("     %s\n", ui.Colorize(ui.ColorGray, rec.Impact))
		}
	}

	if len(audit.Suggestions) > 0 {
		fmt.Printf("\n%s\n", ui.Colorize(ui.ColorWhite, "Suggestions"))
		for _, sug := range audit.Suggestions {
			fmt.Printf("  - %s (%s)\n", sug.Title, sug.Source)
			if sug.Text != "" {
				fmt.Printf("    %s\n", ui.Colorize(ui.ColorGray, sug.Text))
			}
		}
	}
}

func printCategory(heading string, result report.CategoryResult) {
	fmt.Printf("\n%s\n", ui.Colorize(ui.ColorWhite, heading))
	if len(result.Issues) == 0 {
		fmt.Printf("  %s\n", ui.Colorize(ui.ColorGreen, "No issues found."))
		return
	}

	b := result.Breakdown
	fmt.Printf("  %s\n", ui.Colorize(ui.ColorGray, fmt.Sprintf(
		"%d total (critical %d, major %d, moderate %d, minor %d), penalty %d",
		b.Total, b.Critical, b.Major, b.Moderate, b.Minor, b.CappedPenalty)))

	for _, issue := range result.Issues {
		sev := report.Classify(issue)
		msg := messages.GetMessage(issue.ID)
		label := fmt.Sprintf("[%s] %s", strings.ToUpper(string(sev)), msg.Title)
		fmt.Printf("\n  %s\n", ui.Colorize(severityColor(sev), label))
		fmt.Printf("  %s\n", ui.Colorize(ui.ColorGray, "- "+issue.Desc))
		if issue.Location != "" {
			fmt.Printf("  %s\n", ui.Colorize(ui.ColorGray, "- Location: "+issue.Location))
		}
		fmt.Printf("  %s\n", ui.Colorize(ui.ColorGray, "- Fix: "+msg.Fix))
	}
}

// SaveJSONReport writes the report to a timestamped file and returns the
// file name.
func SaveJSONReport(audit *report.AuditReport) (string, error) {
	target := audit.URL
	if target == "" {
		target = "file"
	}
	sanitized := strings.NewReplacer("://", "_", "/", "_", ":", "_").Replace(target)
	filename := fmt.Sprintf("audit_%s_%s.json", sanitized, time.Now().Format("20060102_150405"))

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(audit); err != nil {
		return "", err
	}
	return filename, nil
}
