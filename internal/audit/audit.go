// Package audit sequences the scan pipeline: fetch or accept markup, run
// both rule catalogs, score, rank, and compose suggestions into one report.
package audit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"runtime"
	"sync"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/checks"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/checks/registry"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/dom"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/engine"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/rank"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/suggest"
)

// Overall report weights. Accessibility carries more weight than SEO in the
// top-level blend.
const (
	wcagWeight = 70
	seoWeight  = 30
)

// ErrNoInput is returned when a scan request carries neither a URL nor
// markup. Callers map it to a client error.
var ErrNoInput = errors.New("no url or file content provided")

// Input is one scan request. Exactly one of URL or FileContent must be set;
// FileContent wins when both are present.
type Input struct {
	URL         string
	FileContent string
}

// Runner executes scans. Each Run call is independent; a Runner is safe for
// concurrent use.
type Runner struct {
	client      *http.Client
	composer    *suggest.Composer
	checkRobots bool
}

func NewRunner(client *http.Client, composer *suggest.Composer, checkRobots bool) *Runner {
	if client == nil {
		client = engine.NewHTTPClient()
	}
	if composer == nil {
		composer = suggest.NewComposer()
	}
	return &Runner{client: client, composer: composer, checkRobots: checkRobots}
}

// Run performs one full scan. All-or-nothing: a fetch failure aborts the
// scan with no partial report.
func (r *Runner) Run(ctx context.Context, in Input) (*report.AuditReport, error) {
	markup := in.FileContent
	scannedURL := in.URL

	var fetchedURL *url.URL
	switch {
	case in.FileContent != "":
	case in.URL != "":
		fetched, err := engine.Fetch(ctx, r.client, in.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", in.URL, err)
		}
		markup = fetched.Body
		scannedURL = fetched.URL.String()
		fetchedURL = fetched.URL
	default:
		return nil, ErrNoInput
	}

	doc, err := dom.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	wcagIssues := runCatalog(ctx, doc, registry.AccessibilityChecks())
	seoIssues := runCatalog(ctx, doc, registry.SEOChecks())

	if r.checkRobots && fetchedURL != nil {
		if engine.RobotsDisallowed(ctx, r.client, fetchedURL) {
			seoIssues = append(seoIssues, report.Issue{
				ID:   "robots-disallowed",
				Desc: "robots.txt disallows crawlers from this path - search engines may skip the page",
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wcagResult := report.Score(wcagIssues)
	seoResult := report.Score(seoIssues)

	overall := int(math.Round(float64(wcagResult.Score)*float64(wcagWeight)/100 +
		float64(seoResult.Score)*float64(seoWeight)/100))

	audit := &report.AuditReport{
		URL:  scannedURL,
		WCAG: wcagResult,
		SEO:  seoResult,
		Overall: report.Overall{
			Score:      overall,
			WCAGWeight: wcagWeight,
			SEOWeight:  seoWeight,
		},
		Ranking: rank.Rank(wcagResult.Score, seoResult.Score, wcagResult.Breakdown, seoResult.Breakdown),
	}

	// Suggestions run last: the prompt embeds both completed issue lists.
	audit.Suggestions = r.composer.Suggest(ctx, audit)

	return audit, nil
}

func catalogWorkerCount(total int) int {
	if total <= 1 {
		return 1
	}
	limit := runtime.GOMAXPROCS(0) * 2
	if limit > 12 {
		limit = 12
	}
	if limit < 4 {
		limit = 4
	}
	if total < limit {
		return total
	}
	return limit
}

// runCatalog executes every rule against the document with bounded
// parallelism. Output order follows catalog declaration order regardless of
// completion order. A rule that panics contributes no issues; it must not
// take the category down with it.
//
// Cancellation stops new rules from launching, but already-launched rules
// always finish before results are read: flatten must never observe a slot
// mid-write.
func runCatalog(ctx context.Context, doc *dom.Document, catalog []checks.Check) []report.Issue {
	results := make([][]report.Issue, len(catalog))

	var wg sync.WaitGroup
	sem := make(chan struct{}, catalogWorkerCount(len(catalog)))

	for i, check := range catalog {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int, c checks.Check) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			defer func() {
				// A panicking rule is a defect; swallow it so the rest of
				// the catalog still reports.
				recover()
			}()
			results[i] = c.Run(doc)
		}(i, check)
	}
	wg.Wait()

	return flatten(results)
}

func flatten(results [][]report.Issue) []report.Issue {
	issues := []report.Issue{}
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues
}
