package seo

import (
	"strings"
	"testing"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/dom"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

func mustParse(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func singleID(t *testing.T, issues []report.Issue) string {
	t.Helper()
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	return issues[0].ID
}

func TestCheckTitle(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		wantID string
	}{
		{"good", `<html><head><title>A Reasonable Page Title</title></head></html>`, ""},
		{"missing", `<html><head></head></html>`, "missing-title"},
		{"empty", `<html><head><title></title></head></html>`, "empty-title"},
		{"short", `<html><head><title>Hi</title></head></html>`, "short-title"},
		{"long", `<html><head><title>` + strings.Repeat("word ", 20) + `</title></head></html>`, "long-title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckTitle(mustParse(t, tt.markup))
			if tt.wantID == "" {
				if len(issues) != 0 {
					t.Fatalf("unexpected issues: %+v", issues)
				}
				return
			}
			if got := singleID(t, issues); got != tt.wantID {
				t.Fatalf("ID = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestCheckTitleCountsCharacters(t *testing.T) {
	// 30 Korean characters is 90 bytes; the limit is 60 characters, so this
	// title is fine.
	korean := strings.Repeat("한", 30)
	markup := `<html><head><title>` + korean + `</title></head></html>`
	if issues := CheckTitle(mustParse(t, markup)); len(issues) != 0 {
		t.Fatalf("30-char multibyte title flagged: %+v", issues)
	}

	// 70 characters is over the limit; the reported count is in characters,
	// not bytes.
	long := strings.Repeat("한", 70)
	issues := CheckTitle(mustParse(t, `<html><head><title>`+long+`</title></head></html>`))
	if got := singleID(t, issues); got != "long-title" {
		t.Fatalf("ID = %q", got)
	}
	if !strings.Contains(issues[0].Desc, "(70 chars)") {
		t.Fatalf("desc = %q, want character count of 70", issues[0].Desc)
	}
}

func TestCheckMetaDescription(t *testing.T) {
	good := strings.Repeat("A useful description sentence. ", 4)
	tests := []struct {
		name   string
		markup string
		wantID string
	}{
		{"good", `<html><head><meta name="description" content="` + good + `"></head></html>`, ""},
		{"missing", `<html><head></head></html>`, "missing-meta-desc"},
		{"empty", `<html><head><meta name="description" content=""></head></html>`, "empty-meta-desc"},
		{"short", `<html><head><meta name="description" content="Too short."></head></html>`, "short-meta-desc"},
		{"long", `<html><head><meta name="description" content="` + strings.Repeat("x", 200) + `"></head></html>`, "long-meta-desc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckMetaDescription(mustParse(t, tt.markup))
			if tt.wantID == "" {
				if len(issues) != 0 {
					t.Fatalf("unexpected issues: %+v", issues)
				}
				return
			}
			if got := singleID(t, issues); got != tt.wantID {
				t.Fatalf("ID = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestCheckMetaDescriptionCountsCharacters(t *testing.T) {
	// 100 characters, 300 bytes: inside the 50-160 character window.
	desc := strings.Repeat("확", 100)
	markup := `<html><head><meta name="description" content="` + desc + `"></head></html>`
	if issues := CheckMetaDescription(mustParse(t, markup)); len(issues) != 0 {
		t.Fatalf("100-char multibyte description flagged: %+v", issues)
	}
}

func TestCheckOpenGraph(t *testing.T) {
	full := `<html><head>
		<meta property="og:title" content="T">
		<meta property="og:description" content="D">
		<meta property="og:image" content="/i.png">
	</head></html>`
	if issues := CheckOpenGraph(mustParse(t, full)); len(issues) != 0 {
		t.Fatalf("complete og set flagged: %+v", issues)
	}

	partial := `<html><head><meta property="og:title" content="T"></head></html>`
	if got := singleID(t, CheckOpenGraph(mustParse(t, partial))); got != "missing-og-tags" {
		t.Fatalf("ID = %q", got)
	}
}

func TestCheckImageAltAggregate(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 0; i < 7; i++ {
		sb.WriteString(`<img src="/a.png">`)
	}
	sb.WriteString(`<img src="/b.png" alt="Described image">`)
	sb.WriteString(`</body></html>`)

	issues := CheckImageAlt(mustParse(t, sb.String()))
	if got := singleID(t, issues); got != "images-missing-alt" {
		t.Fatalf("ID = %q", got)
	}
	if !strings.HasPrefix(issues[0].Desc, "7 image(s)") {
		t.Fatalf("desc = %q, want count of 7", issues[0].Desc)
	}
}

func TestCheckBodyFontSize(t *testing.T) {
	small := `<html><body style="font-size: 10px"></body></html>`
	if got := singleID(t, CheckBodyFontSize(mustParse(t, small))); got != "small-text" {
		t.Fatalf("ID = %q", got)
	}
	fine := `<html><body style="font-size: 16px"></body></html>`
	if issues := CheckBodyFontSize(mustParse(t, fine)); len(issues) != 0 {
		t.Fatalf("16px flagged: %+v", issues)
	}
	unstyled := `<html><body></body></html>`
	if issues := CheckBodyFontSize(mustParse(t, unstyled)); len(issues) != 0 {
		t.Fatalf("unstyled body flagged: %+v", issues)
	}
}

func TestCheckRobotsMeta(t *testing.T) {
	noindex := `<html><head><meta name="robots" content="noindex, nofollow"></head></html>`
	if got := singleID(t, CheckRobotsMeta(mustParse(t, noindex))); got != "noindex-tag" {
		t.Fatalf("ID = %q", got)
	}
	indexable := `<html><head><meta name="robots" content="index, follow"></head></html>`
	if issues := CheckRobotsMeta(mustParse(t, indexable)); len(issues) != 0 {
		t.Fatalf("indexable page flagged: %+v", issues)
	}
	absent := `<html><head></head></html>`
	if issues := CheckRobotsMeta(mustParse(t, absent)); len(issues) != 0 {
		t.Fatalf("absent robots meta flagged: %+v", issues)
	}
}

func TestCheckStructuredData(t *testing.T) {
	with := `<html><head><script type="application/ld+json">{"@type":"WebPage"}</script></head></html>`
	if issues := CheckStructuredData(mustParse(t, with)); len(issues) != 0 {
		t.Fatalf("ld+json present but flagged: %+v", issues)
	}
	without := `<html><head><script src="/app.js"></script></head></html>`
	if got := singleID(t, CheckStructuredData(mustParse(t, without))); got != "missing-structured-data" {
		t.Fatalf("ID = %q", got)
	}
}

func TestCheckFavicon(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantHit bool
	}{
		{"icon rel", `<html><head><link rel="icon" href="/favicon.ico"></head></html>`, false},
		{"shortcut icon rel", `<html><head><link rel="shortcut icon" href="/favicon.ico"></head></html>`, false},
		{"absent", `<html><head><link rel="stylesheet" href="/s.css"></head></html>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckFavicon(mustParse(t, tt.markup))
			if got := len(issues) > 0; got != tt.wantHit {
				t.Fatalf("issues = %+v, wantHit = %v", issues, tt.wantHit)
			}
		})
	}
}

func TestCheckHreflang(t *testing.T) {
	with := `<html><head><link rel="alternate" hreflang="de" href="https://example.de/"></head></html>`
	if issues := CheckHreflang(mustParse(t, with)); len(issues) != 0 {
		t.Fatalf("hreflang present but flagged: %+v", issues)
	}
	without := `<html><head><link rel="alternate" type="application/rss+xml" href="/feed"></head></html>`
	if got := singleID(t, CheckHreflang(mustParse(t, without))); got != "missing-hreflang" {
		t.Fatalf("ID = %q", got)
	}
}

func TestCheckCharset(t *testing.T) {
	modern := `<html><head><meta charset="utf-8"></head></html>`
	if issues := CheckCharset(mustParse(t, modern)); len(issues) != 0 {
		t.Fatalf("charset meta flagged: %+v", issues)
	}
	legacy := `<html><head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"></head></html>`
	if issues := CheckCharset(mustParse(t, legacy)); len(issues) != 0 {
		t.Fatalf("http-equiv charset flagged: %+v", issues)
	}
	absent := `<html><head><meta name="description" content="x"></head></html>`
	if got := singleID(t, CheckCharset(mustParse(t, absent))); got != "missing-charset" {
		t.Fatalf("ID = %q", got)
	}
}

func TestCheckTextContent(t *testing.T) {
	thin := `<html><body><p>Hello.</p></body></html>`
	if got := singleID(t, CheckTextContent(mustParse(t, thin))); got != "insufficient-content" {
		t.Fatalf("ID = %q", got)
	}

	rich := `<html><body><article><h1>Planting a Kitchen Garden</h1>` +
		`<p>` + strings.Repeat("A kitchen garden rewards steady attention with fresh produce through the season. ", 6) + `</p>` +
		`<p>` + strings.Repeat("Start with soil preparation, choose hardy varieties, and water deeply but infrequently. ", 6) + `</p>` +
		`</article></body></html>`
	if issues := CheckTextContent(mustParse(t, rich)); len(issues) != 0 {
		t.Fatalf("substantial page flagged: %+v", issues)
	}
}

func TestCheckHeadingDepth(t *testing.T) {
	flat := `<html><body><h1>Only Heading</h1><p>text</p></body></html>`
	if got := singleID(t, CheckHeadingDepth(mustParse(t, flat))); got != "flat-heading-hierarchy" {
		t.Fatalf("ID = %q", got)
	}
	deep := `<html><body><h1>Top</h1><h2>Section</h2></body></html>`
	if issues := CheckHeadingDepth(mustParse(t, deep)); len(issues) != 0 {
		t.Fatalf("hierarchical page flagged: %+v", issues)
	}
	noH1 := `<html><body><h2>Stray</h2></body></html>`
	if issues := CheckHeadingDepth(mustParse(t, noH1)); len(issues) != 0 {
		t.Fatalf("no-h1 page flagged by depth rule: %+v", issues)
	}
}

func TestCheckLinkText(t *testing.T) {
	markup := `<html><body>
		<a href="/pricing">See pricing plans</a>
		<a href="/a">Click Here</a>
		<a href="/b">more</a>
		<a href="/c"></a>
	</body></html>`
	issues := CheckLinkText(mustParse(t, markup))
	if got := singleID(t, issues); got != "poor-link-text" {
		t.Fatalf("ID = %q", got)
	}
	if !strings.HasPrefix(issues[0].Desc, "3 link(s)") {
		t.Fatalf("desc = %q, want count of 3", issues[0].Desc)
	}
}

func TestCheckImageFilenames(t *testing.T) {
	markup := `<html><body>
		<img src="/assets/IMG.JPG" alt="a">
		<img src="/assets/photo.png" alt="b">
		<img src="/assets/12345.webp" alt="c">
		<img src="/assets/garden-tools-set.jpg" alt="d">
	</body></html>`
	issues := CheckImageFilenames(mustParse(t, markup))
	if got := singleID(t, issues); got != "generic-image-names" {
		t.Fatalf("ID = %q", got)
	}
	if !strings.HasPrefix(issues[0].Desc, "3 image(s)") {
		t.Fatalf("desc = %q, want count of 3", issues[0].Desc)
	}
}

func TestCheckCanonical(t *testing.T) {
	with := `<html><head><link rel="canonical" href="https://example.com/page"></head></html>`
	if issues := CheckCanonical(mustParse(t, with)); len(issues) != 0 {
		t.Fatalf("canonical present but flagged: %+v", issues)
	}
	without := `<html><head></head></html>`
	if got := singleID(t, CheckCanonical(mustParse(t, without))); got != "missing-canonical" {
		t.Fatalf("ID = %q", got)
	}
}
