package engine

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/version"
)

// RobotsDisallowed reports whether the site's robots.txt disallows crawlers
// from the audited path. Any failure to fetch or parse robots.txt is treated
// as "allowed": the signal is advisory, never a reason to abort a scan.
func RobotsDisallowed(ctx context.Context, client *http.Client, page *url.URL) bool {
	robotsURL := &url.URL{Scheme: page.Scheme, Host: page.Host, Path: "/robots.txt"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", version.AnalyzerUserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return false
	}

	robots, err := robotstxt.FromBytes(body)
	if err != nil {
		return false
	}

	path := page.Path
	if path == "" {
		path = "/"
	}
	return !robots.TestAgent(path, "Googlebot")
}
