package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/version"
)

// Pages bigger than this are truncated; markup past a few megabytes adds
// nothing the rule catalogs can use.
const maxBodyBytes = 5 << 20

type FetchResult struct {
	URL    *url.URL
	Status int
	Body   string
}

// Fetch retrieves the raw markup for a target URL. Redirects are followed by
// the client; non-2xx terminal responses fail the whole scan.
func Fetch(ctx context.Context, client *http.Client, target string) (*FetchResult, error) {
	parsed, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.BrowserUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch returned status %d for %s", resp.StatusCode, parsed)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &FetchResult{
		URL:    resp.Request.URL,
		Status: resp.StatusCode,
		Body:   string(body),
	}, nil
}

func normalizeTarget(target string) (*url.URL, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	if parsed.Scheme == "" {
		return url.Parse("https://" + target)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid target URL: %s", target)
	}

	return parsed, nil
}
