// Package wcag holds the accessibility rule catalog. Each rule is a pure
// function over the parsed document; the catalog concatenates results in
// declaration order.
package wcag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/dom"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

// detailCap bounds per-element reporting for counting rules. Past the cap a
// single rollup issue carries the remaining count.
const detailCap = 5

func CheckLang(doc *dom.Document) []report.Issue {
	root, ok := doc.First("html")
	if !ok {
		return nil
	}
	if lang := root.AttrOr("lang", ""); strings.TrimSpace(lang) != "" {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-lang",
		Desc: "<html> missing lang attribute - required for screen readers to determine language",
	}}
}

func CheckImageAlt(doc *dom.Document) []report.Issue {
	var issues []report.Issue
	missing := 0
	for _, img := range doc.Find("img") {
		alt, ok := img.Attr("alt")
		if ok && strings.TrimSpace(alt) != "" {
			continue
		}
		missing++
		if missing <= detailCap {
			src := img.AttrOr("src", "")
			if utf8.RuneCountInString(src) > 50 {
				src = string([]rune(src)[:50])
			}
			issues = append(issues, report.Issue{
				ID:       "missing-alt",
				Desc:     fmt.Sprintf("Image missing alt text: %s...", src),
				Location: img.Location(),
				Snippet:  img.Snippet(200),
			})
		}
	}
	if missing > detailCap {
		issues = append(issues, report.Issue{
			ID:   "missing-alt-multiple",
			Desc: fmt.Sprintf("And %d more images missing alt text", missing-detailCap),
		})
	}
	return issues
}

func CheckH1(doc *dom.Document) []report.Issue {
	switch n := doc.Count("h1"); {
	case n == 0:
		return []report.Issue{{
			ID:   "missing-h1",
			Desc: "Page missing H1 heading - required for page structure and screen readers",
		}}
	case n > 1:
		return []report.Issue{{
			ID:   "multiple-h1",
			Desc: fmt.Sprintf("Page has %d H1 tags. Should have exactly one H1", n),
		}}
	}
	return nil
}

func CheckHeadingHierarchy(doc *dom.Document) []report.Issue {
	if doc.Count("h1") == 0 {
		return nil
	}
	lastLevel := 0
	for _, h := range doc.Find("h1", "h2", "h3", "h4", "h5", "h6") {
		level, err := strconv.Atoi(h.Tag()[1:])
		if err != nil {
			continue
		}
		if level > lastLevel+1 {
			return []report.Issue{{
				ID:   "heading-hierarchy",
				Desc: "Heading hierarchy is not sequential (skipped levels)",
			}}
		}
		lastLevel = level
	}
	return nil
}

func CheckFormLabels(doc *dom.Document) []report.Issue {
	labelFor := make(map[string]bool)
	for _, label := range doc.Find("label") {
		if forID, ok := label.Attr("for"); ok {
			labelFor[forID] = true
		}
	}

	var issues []report.Issue
	unlabeled := 0
	for _, control := range doc.Find("input", "textarea", "select") {
		id, ok := control.Attr("id")
		if !ok {
			continue
		}
		if labelFor[id] {
			continue
		}
		if control.AttrOr("aria-label", "") != "" || control.AttrOr("aria-labelledby", "") != "" {
			continue
		}
		unlabeled++
		if unlabeled <= detailCap {
			kind := control.AttrOr("type", control.Tag())
			issues = append(issues, report.Issue{
				ID:       "form-missing-label",
				Desc:     fmt.Sprintf("Form control (id=%q) has no label, aria-label, or aria-labelledby", id),
				Location: fmt.Sprintf("<%s id=%q class=%q>", kind, id, control.AttrOr("class", "no-class")),
				Snippet:  control.Snippet(150),
			})
		}
	}
	if unlabeled > detailCap {
		issues = append(issues, report.Issue{
			ID:   "form-missing-label-multiple",
			Desc: fmt.Sprintf("And %d more form controls without labels", unlabeled-detailCap),
		})
	}
	return issues
}

var genericLinkTexts = []string{"click here", "read more", "learn more", "link", "more", "here"}

func CheckLinkText(doc *dom.Document) []report.Issue {
	empty, generic := 0, 0
	for _, a := range doc.Find("a") {
		text := strings.ToLower(a.Text())
		ariaLabel := a.AttrOr("aria-label", "")
		if text == "" && ariaLabel == "" {
			empty++
			continue
		}
		for _, g := range genericLinkTexts {
			if text == g {
				generic++
				break
			}
		}
	}

	var issues []report.Issue
	if empty > 0 {
		issues = append(issues, report.Issue{
			ID:   "link-empty-text",
			Desc: fmt.Sprintf("%d link(s) have no text - provide meaningful link text", empty),
		})
	}
	if generic > 0 {
		issues = append(issues, report.Issue{
			ID:   "link-generic-text",
			Desc: fmt.Sprintf("%d link(s) have generic text (e.g., 'Click here') - use descriptive text", generic),
		})
	}
	return issues
}

func CheckTitle(doc *dom.Document) []report.Issue {
	title, ok := doc.First("title")
	if ok && title.Text() != "" {
		return nil
	}
	return []report.Issue{{
		ID:   "missing-title",
		Desc: "Page missing or empty title tag - required for document identification",
	}}
}

func CheckARIALabels(doc *dom.Document) []report.Issue {
	for _, el := range doc.WithAttr("role") {
		role := el.AttrOr("role", "")
		if role != "button" && role != "link" {
			continue
		}
		if el.AttrOr("aria-label", "") == "" && el.Text() == "" {
			// One issue is enough; the fix is the same across elements.
			return []report.Issue{{
				ID:   "aria-missing-label",
				Desc: fmt.Sprintf("Element with role=%q has no accessible name", role),
			}}
		}
	}
	return nil
}

func isWhite(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "white" || v == "#fff" || v == "#ffffff" || v == "rgb(255, 255, 255)" || v == "rgb(255,255,255)"
}

func CheckColorContrast(doc *dom.Document) []report.Issue {
	candidates := doc.Find("p", "span", "div", "a", "button", "li")
	if len(candidates) > 100 {
		candidates = candidates[:100]
	}
	low := 0
	for _, el := range candidates {
		if isWhite(el.Style("background-color")) && isWhite(el.Style("color")) {
			low++
		}
	}
	if low == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "color-contrast-low",
		Desc: fmt.Sprintf("Potential low color contrast detected (%d elements) - test with contrast checker tool", low),
	}}
}

func CheckFocusStyles(doc *dom.Document) []report.Issue {
	styles := doc.StyleText()
	if strings.Contains(styles, ":focus") || strings.Contains(styles, ":focus-visible") {
		return nil
	}
	return []report.Issue{{
		ID:   "focus-not-visible",
		Desc: "No :focus or :focus-visible CSS styles found - keyboard users may not see focus indicators",
	}}
}

func CheckSemanticHTML(doc *dom.Document) []report.Issue {
	if len(doc.Find("nav", "main", "article", "aside", "section", "header", "footer")) > 0 {
		return nil
	}
	genericContainers := 0
	for _, div := range doc.Find("div") {
		for _, class := range strings.Fields(div.AttrOr("class", "")) {
			if class == "container" || class == "wrapper" || class == "content" {
				genericContainers++
				break
			}
		}
	}
	if genericContainers <= 5 {
		return nil
	}
	return []report.Issue{{
		ID:   "semantic-html-missing",
		Desc: "Page lacks semantic HTML elements (nav, main, article, aside) - consider using them for better structure",
	}}
}

func CheckClickHandlers(doc *dom.Document) []report.Issue {
	improper := 0
	for _, el := range doc.Find("div", "span") {
		if el.HasAttr("onclick") {
			improper++
		}
	}
	if improper == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "improper-button-semantics",
		Desc: fmt.Sprintf("%d element(s) use onclick instead of <button> - use semantic button element", improper),
	}}
}

func CheckFormValidation(doc *dom.Document) []report.Issue {
	if doc.Count("form") == 0 {
		return nil
	}
	if len(doc.WithAttr("aria-invalid")) > 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "form-validation-missing",
		Desc: "Forms present but no aria-invalid attributes found - consider adding error validation",
	}}
}

func CheckSkipLink(doc *dom.Document) []report.Issue {
	for _, a := range doc.Find("a") {
		switch a.AttrOr("href", "") {
		case "#main", "#content", "#skip":
			return nil
		}
	}
	return []report.Issue{{
		ID:   "missing-skip-link",
		Desc: "No skip-to-main-content link found - consider adding one for better keyboard navigation",
	}}
}

func CheckViewport(doc *dom.Document) []report.Issue {
	for _, meta := range doc.Find("meta") {
		if meta.AttrOr("name", "") == "viewport" {
			return nil
		}
	}
	return []report.Issue{{
		ID:   "missing-viewport",
		Desc: "Missing viewport meta tag - page may not be responsive on mobile devices",
	}}
}

var decorativeHints = []string{"spacer", "blank", "pixel"}

func CheckDecorativeImageAlt(doc *dom.Document) []report.Issue {
	misused := 0
	for _, img := range doc.Find("img") {
		alt := strings.TrimSpace(img.AttrOr("alt", ""))
		if alt == "" {
			continue
		}
		src := strings.ToLower(img.AttrOr("src", ""))
		for _, hint := range decorativeHints {
			if strings.Contains(src, hint) {
				misused++
				break
			}
		}
	}
	if misused == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "decorative-image-alt",
		Desc: fmt.Sprintf("%d decorative image(s) have alt text - decorative images should use alt=\"\"", misused),
	}}
}

func CheckSVGTitles(doc *dom.Document) []report.Issue {
	untitled := 0
	for _, svg := range doc.Find("svg") {
		if len(svg.Descendants("title")) > 0 {
			continue
		}
		if svg.AttrOr("aria-label", "") != "" || svg.AttrOr("aria-labelledby", "") != "" {
			continue
		}
		untitled++
	}
	if untitled == 0 {
		return nil
	}
	return []report.Issue{{
		ID:   "svg-missing-title",
		Desc: fmt.Sprintf("%d SVG icon(s) lack accessible descriptions - add <title> or aria-label", untitled),
	}}
}
