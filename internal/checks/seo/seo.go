// Package seo holds the SEO rule catalog. Thresholds follow common search
// engine guidance: titles 10-60 chars, descriptions 50-160 chars.
package seo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/dom"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

const (
	titleMin    = 10
	titleMax    = 60
	metaDescMin = 50
	metaDescMax = 160
	minBodyText = 50
)

func metaByName(doc *dom.Document, name string) (dom.Element, bool) {
	for _, meta := range doc.Find("meta") {
		if meta.AttrOr("name", "") == name {
			return meta, true
		}
	}
	return dom.Element{}, false
}

func metaByProperty(doc *dom.Document, property string) bool {
	for _, meta := range doc.Find("meta") {
		if meta.AttrOr("property", "") == property {
			return true
		}
	}
	return false
}

func linksByRel(doc *dom.Document, rel string) []dom.Element {
	var out []dom.Element
	for _, link := range doc.Find("link") {
		if strings.EqualFold(link.AttrOr("rel", ""), rel) {
			out = append(out, link)
		}
	}
	return out
}

func CheckTitle(doc *dom.Document) []report.Issue {
	title, ok := doc.First("title")
	if !ok {
		return []report.Issue{{
			ID:       "missing-title",
			Desc:     "Missing <title> tag - critical for SEO and browser tabs",
			Location: "<head> section",
		}}
	}
	text := title.Text()
	length := utf8.RuneCountInString(text)
	snippet := title.Snippet(100)
	switch {
	case length == 0:
		return []report.Issue{{
			ID:       "empty-title",
			Desc:     "Title tag is empty",
			Location: "<head> section",
			Snippet:  snippet,
		}}
	case length < titleMin:
		return []report.Issue{{
			ID:       "short-title",
			Desc:     fmt.Sprintf("Title is too short (%d chars). Recommended: 30-60 chars", length),
			Location: "<head> section",
			Snippet:  snippet,
		}}
	case length > titleMax:
		return []report.Issue{{
			ID:       "long-title",
			Desc:     fmt.Sprintf("Title is too long (%d chars). Recommended: 30-60 chars", length),
			Location: "<head> section",
			Snippet:  snippet,
		}}
	}
	return nil
}

func CheckMetaDescription(doc *dom.Document) []report.Issue {
	meta, ok := metaByName(doc, "description")
	if !ok {
		return []report.Issue{{
			ID:       "missing-meta-desc",
			Desc:     "Missing meta description - important for search results",
			Location: "<head> section",
		}}
	}
	content := meta.AttrOr("content", "")
	length := utf8.RuneCountInString(content)
	snippet := meta.Snippet(150)
	switch {
	case length == 0:
		return []report.Issue{{
			ID:       "empty-meta-desc",
			Desc:     "Meta description is empty",
			Location: "<head> section",
			Snippet:  snippet,
		}}
	case length < metaDescMin:
		return []report.Issue{{
			ID:       "short-meta-desc",
			Desc:     fmt.Sprintf("Meta description is too short (%d chars). Recommended: 120-160 chars", length),
			Location: "<head> section",
			Snippet:  snippet,
		}}
	case length > metaDescMax:
		return []report.Issue{{
			ID:       "long-meta-desc",
			Desc:     fmt.Sprintf("Meta description is too long (%d chars). Recommended: 120-160 chars", length),
			Location: "<head> section",
			Snippet:  snippet,
		}}
	}
	return nil
}

func CheckViewport(doc *dom.Document) []report.Issue {
	if _, ok := metaByName(doc, "viewport"); ok {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-viewport",
		Desc: "Missing viewport meta tag - affects mobile SEO ranking",
	}}
}

func CheckH1(doc *dom.Document) []report.Issue {
	switch n := doc.Count("h1"); {
	case n == 0:
		return []report.Issue{{
			ID:   "missing-h1",
			Desc: "Missing H1 heading - important for page structure and SEO",
		}}
	case n > 1:
		return []report.Issue{{
			ID:   "multiple-h1",
			Desc: fmt.Sprintf("Multiple H1 tags (%d found). Should have only one H1", n),
		}}
	}
	return nil
}

func CheckCanonical(doc *dom.Document) []report.Issue {
	if len(linksByRel(doc, "canonical")) > 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-canonical",
		Desc: "Missing canonical tag - helps prevent duplicate content issues",
	}}
}

func CheckOpenGraph(doc *dom.Document) []report.Issue {
	if metaByProperty(doc, "og:title") && metaByProperty(doc, "og:description") && metaByProperty(doc, "og:image") {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-og-tags",
		Desc: "Missing Open Graph tags - affects social media sharing and preview",
	}}
}

func CheckThemeColor(doc *dom.Document) []report.Issue {
	if _, ok := metaByName(doc, "theme-color"); ok {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-theme-color",
		Desc: "Missing theme-color meta tag - improves mobile appearance",
	}}
}

func CheckImageAlt(doc *dom.Document) []report.Issue {
	missing := 0
	for _, img := range doc.Find("img") {
		alt, ok := img.Attr("alt")
		if !ok || strings.TrimSpace(alt) == "" {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "images-missing-alt",
		Desc: fmt.Sprintf("%d image(s) missing alt text - needed for image search SEO", missing),
	}}
}

func CheckBodyFontSize(doc *dom.Document) []report.Issue {
	body, ok := doc.First("body")
	if !ok {
		return nil
	}
	size := body.Style("font-size")
	if size == "" {
		return nil
	}
	digits := strings.TrimFunc(size, func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.Atoi(digits)
	if err != nil || n >= 12 {
		return nil
	}
	return []report.Issue{{
		ID:   "small-text",
		Desc: "Body text may be too small for mobile readability",
	}}
}

func CheckRobotsMeta(doc *dom.Document) []report.Issue {
	meta, ok := metaByName(doc, "robots")
	if !ok {
		return nil
	}
	if !strings.Contains(meta.AttrOr("content", ""), "noindex") {
		return nil
	}
	return []report.Issue{{
		ID:   "noindex-tag",
		Desc: "Page has noindex tag - will not appear in search results",
	}}
}

func CheckStructuredData(doc *dom.Document) []report.Issue {
	for _, script := range doc.Find("script") {
		if script.AttrOr("type", "") == "application/ld+json" {
			return nil
		}
	}
	return []report.Issue{{
		ID:   "missing-structured-data",
		Desc: "No JSON-LD structured data - improves search result appearance and rich snippets",
	}}
}

func CheckFavicon(doc *dom.Document) []report.Issue {
	if len(linksByRel(doc, "icon")) > 0 || len(linksByRel(doc, "shortcut icon")) > 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-favicon",
		Desc: "Missing favicon - improves brand visibility in browser tabs",
	}}
}

func CheckHreflang(doc *dom.Document) []report.Issue {
	for _, link := range linksByRel(doc, "alternate") {
		if link.HasAttr("hreflang") {
			return nil
		}
	}
	return []report.Issue{{
		ID:   "missing-hreflang",
		Desc: "No hreflang tags - can improve multi-language/regional SEO",
	}}
}

func CheckCharset(doc *dom.Document) []report.Issue {
	for _, meta := range doc.Find("meta") {
		if meta.HasAttr("charset") {
			return nil
		}
		if strings.EqualFold(meta.AttrOr("http-equiv", ""), "Content-Type") {
			return nil
		}
	}
	return []report.Issue{{
		ID:   "missing-charset",
		Desc: "Missing character encoding declaration - may cause text rendering issues",
	}}
}

// CheckTextContent measures how much real prose the page carries. Main
// content extraction keeps boilerplate (nav, footers) from inflating the
// measurement; full body text is the fallback when extraction finds nothing.
func CheckTextContent(doc *dom.Document) []report.Issue {
	text := ""
	if result, err := trafilatura.Extract(strings.NewReader(doc.Markup()), trafilatura.Options{}); err == nil && result != nil {
		text = strings.TrimSpace(result.ContentText)
	}
	if text == "" {
		text = doc.BodyText()
	}
	if utf8.RuneCountInString(text) >= minBodyText {
		return nil
	}
	return []report.Issue{{
		ID:   "insufficient-content",
		Desc: "Page has very little text content - may be too thin for search engines",
	}}
}

func CheckHeadingDepth(doc *dom.Document) []report.Issue {
	if doc.Count("h1") == 0 {
		return nil
	}
	if doc.Count("h2") > 0 || doc.Count("h3") > 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "flat-heading-hierarchy",
		Desc: "Page has H1 but no H2/H3 - consider a hierarchical structure for clarity",
	}}
}

func CheckLinkText(doc *dom.Document) []report.Issue {
	poor := 0
	for _, a := range doc.Find("a") {
		switch strings.ToLower(a.Text()) {
		case "click here", "learn more", "more", "":
			poor++
		}
	}
	if poor == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "poor-link-text",
		Desc: fmt.Sprintf("%d link(s) have generic text (\"click here\", \"more\") - use descriptive link text", poor),
	}}
}

var genericImageName = regexp.MustCompile(`(?i)^(image|img|photo|pic|picture|\d+)\.(jpg|png|gif|webp)`)

func CheckImageFilenames(doc *dom.Document) []report.Issue {
	generic := 0
	for _, img := range doc.Find("img") {
		src := img.AttrOr("src", "")
		parts := strings.Split(src, "/")
		filename := strings.ToLower(parts[len(parts)-1])
		if genericImageName.MatchString(filename) {
			generic++
		}
	}
	if generic == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "generic-image-names",
		Desc: fmt.Sprintf("%d image(s) have generic filenames - use descriptive names like \"product-photo.jpg\"", generic),
	}}
}
