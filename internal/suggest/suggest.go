// Package suggest turns an audit's issue lists into human-readable
// remediation advice. Generative providers are tried in construction order;
// the deterministic local provider always runs last and cannot fail.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

// Provider is one suggestion strategy. Generate either returns at least one
// suggestion or an error; the composer then falls through to the next
// provider in order.
type Provider interface {
	Name() string
	Generate(ctx context.Context, audit *report.AuditReport) ([]report.Suggestion, error)
}

// Composer iterates providers in priority order. The local fallback is
// appended automatically and is always last.
type Composer struct {
	providers []Provider
}

func NewComposer(providers ...Provider) *Composer {
	return &Composer{providers: append(providers, LocalProvider{})}
}

// Suggest never fails past this point: provider errors are logged and the
// next strategy is tried, and any unexpected panic yields an empty list.
func (c *Composer) Suggest(ctx context.Context, audit *report.AuditReport) (out []report.Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "suggestion composer recovered: %v\n", r)
			out = []report.Suggestion{}
		}
	}()

	for _, p := range c.providers {
		suggestions, err := p.Generate(ctx, audit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "suggestion provider %s failed: %v\n", p.Name(), err)
			continue
		}
		if len(suggestions) > 0 {
			return suggestions
		}
	}
	return []report.Suggestion{}
}

// buildPrompt embeds truncated JSON of both issue lists. 2000 chars per list
// keeps the prompt inside small-model context windows.
func buildPrompt(audit *report.AuditReport) string {
	return fmt.Sprintf("You are an assistant that produces concise, actionable accessibility and SEO suggestions for developers. "+
		"Return an array of suggestions with title and text in JSON format (e.g. [{\"title\":\"...\",\"text\":\"...\"}, ...]).\n"+
		"Here is the audit result:\nWCAG/Accessibility issues: %s\nSEO issues: %s",
		truncatedJSON(audit.WCAG.Issues, 2000),
		truncatedJSON(audit.SEO.Issues, 2000))
}

func truncatedJSON(issues []report.Issue, max int) string {
	if issues == nil {
		issues = []report.Issue{}
	}
	b, err := json.Marshal(issues)
	if err != nil {
		return "[]"
	}
	s := string(b)
	if len(s) > max {
		return s[:max]
	}
	return s
}

// parseGenerated interprets provider output. A parseable JSON array of
// {title, text} entries maps one-to-one; anything else is wrapped whole as a
// single suggestion so the text is never lost.
func parseGenerated(text string) []report.Suggestion {
	var entries []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Text        string `json:"text"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(text), &entries); err == nil {
		suggestions := make([]report.Suggestion, 0, len(entries))
		for _, e := range entries {
			title := e.Title
			if title == "" {
				title = e.ID
			}
			if title == "" {
				title = "Suggestion"
			}
			body := e.Text
			if body == "" {
				body = e.Description
			}
			suggestions = append(suggestions, report.Suggestion{
				Title:  title,
				Text:   body,
				Source: report.SuggestionSourceAI,
			})
		}
		return suggestions
	}
	return []report.Suggestion{{
		Title:  "AI Suggestions",
		Text:   text,
		Source: report.SuggestionSourceAI,
	}}
}
