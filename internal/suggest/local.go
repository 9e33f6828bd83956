package suggest

import (
	"context"
	"strings"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

// LocalProvider is the deterministic fallback. It matches accessibility
// issue IDs against a small keyword set and echoes SEO issue descriptions.
// It never fails, so the composer always has something to return.
type LocalProvider struct{}

func (LocalProvider) Name() string { return "local" }

func (LocalProvider) Generate(_ context.Context, audit *report.AuditReport) ([]report.Suggestion, error) {
	suggestions := make([]report.Suggestion, 0, len(audit.WCAG.Issues)+len(audit.SEO.Issues))

	for _, issue := range audit.WCAG.Issues {
		id := strings.ToLower(issue.ID)
		switch {
		case strings.Contains(id, "alt"):
			suggestions = append(suggestions, report.Suggestion{
				Title:  "Add alt text",
				Text:   "Provide descriptive alt attributes for images.",
				Source: report.SuggestionSourceLocal,
			})
		case strings.Contains(id, "lang"):
			suggestions = append(suggestions, report.Suggestion{
				Title:  "Set HTML lang",
				Text:   "Add lang attribute to <html>.",
				Source: report.SuggestionSourceLocal,
			})
		case strings.Contains(id, "h1"):
			suggestions = append(suggestions, report.Suggestion{
				Title:  "Add or fix H1",
				Text:   "Ensure the page has a single H1 describing the page.",
				Source: report.SuggestionSourceLocal,
			})
		default:
			text := issue.Desc
			if text == "" {
				text = "Review and fix."
			}
			suggestions = append(suggestions, report.Suggestion{
				Title:  "Fix issue",
				Text:   text,
				Source: report.SuggestionSourceLocal,
			})
		}
	}

	for _, issue := range audit.SEO.Issues {
		suggestions = append(suggestions, report.Suggestion{
			Title:  "SEO",
			Text:   issue.Desc,
			Source: report.SuggestionSourceLocal,
		})
	}

	return suggestions, nil
}
