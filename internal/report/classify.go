package report

import "strings"

// Keyword groups checked in order against the lowercased issue ID.
// First match wins; anything unmatched is minor.
var (
	criticalKeywords = []string{
		"missing-lang",     // language not set
		"missing-title",    // no page title
		"missing-viewport", // not mobile-friendly
		"noindex",          // explicitly hidden from search
		"color-contrast",   // contrast failures
		"keyboard-trap",    // keyboard navigation blocked
	}
	majorKeywords = []string{
		"alt",               // images missing descriptions
		"aria-",             // missing ARIA attributes
		"label",             // form labels missing
		"missing-h1",        // page structure broken
		"multiple-h1",       // confusing hierarchy
		"missing-meta-desc", // no search snippet
		"missing-canonical", // duplicate content risk
		"missing-og-tags",   // social sharing broken
		"heading",           // heading structure issues
		"form-input",        // form accessibility
	}
	moderateKeywords = []string{
		"short-title",     // too brief for search results
		"long-title",      // truncated in search results
		"short-meta-desc", // too brief description
		"long-meta-desc",  // truncated description
		"small-text",      // mobile readability
		"link-purpose",    // link text unclear
		"focus-visible",   // keyboard visibility
	}
)

// Classify maps an issue to a severity tier by substring-matching its ID
// against the keyword groups above. It is deterministic and stateless:
// the same ID always yields the same severity.
func Classify(issue Issue) Severity {
	id := strings.ToLower(issue.ID)

	for _, kw := range criticalKeywords {
		if strings.Contains(id, kw) {
			return SeverityCritical
		}
	}
	for _, kw := range majorKeywords {
		if strings.Contains(id, kw) {
			return SeverityMajor
		}
	}
	for _, kw := range moderateKeywords {
		if strings.Contains(id, kw) {
			return SeverityModerate
		}
	}
	return SeverityMinor
}
