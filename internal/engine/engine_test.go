package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	result, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "<html><body>ok</body></html>", result.Body)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotAccept, "text/html")
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	result, err := Fetch(context.Background(), srv.Client(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, "/new", result.URL.Path)
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    string
		wantErr bool
	}{
		{"full url", "https://example.com/page", "https://example.com/page", false},
		{"schemeless", "example.com", "https://example.com", false},
		{"http kept", "http://example.com", "http://example.com", false},
		{"scheme only", "https://", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := normalizeTarget(tt.target)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed.String())
		})
	}
}

func robotsServer(t *testing.T, robotsBody string, robotsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(robotsStatus)
		w.Write([]byte(robotsBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRobotsDisallowed(t *testing.T) {
	tests := []struct {
		name   string
		robots string
		status int
		path   string
		want   bool
	}{
		{"disallow all", "User-agent: *\nDisallow: /\n", http.StatusOK, "/page", true},
		{"allow all", "User-agent: *\nDisallow:\n", http.StatusOK, "/page", false},
		{"disallow prefix", "User-agent: *\nDisallow: /private\n", http.StatusOK, "/private/doc", true},
		{"other prefix", "User-agent: *\nDisallow: /private\n", http.StatusOK, "/public/doc", false},
		{"missing robots", "", http.StatusNotFound, "/page", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := robotsServer(t, tt.robots, tt.status)
			page, err := url.Parse(srv.URL + tt.path)
			require.NoError(t, err)
			got := RobotsDisallowed(context.Background(), srv.Client(), page)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRobotsUnreachableHostAllowed(t *testing.T) {
	page := &url.URL{Scheme: "http", Host: "127.0.0.1:1", Path: "/"}
	client := &http.Client{}
	assert.False(t, RobotsDisallowed(context.Background(), client, page))
}
