package checks

import (
	"github.com/AdityaBargujar/accessibility-analyzer/internal/dom"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

type Category string

const (
	CategoryAccessibility Category = "CAT_ACCESSIBILITY"
	CategorySEO           Category = "CAT_SEO"
)

// Check is one rule in a catalog. Run must be pure over the document, free
// of ordering dependencies on other rules, and must treat anything it cannot
// evaluate as "check passes" rather than failing.
type Check struct {
	ID       string
	Category Category
	Title    string
	Run      func(*dom.Document) []report.Issue
}
