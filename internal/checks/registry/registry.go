package registry

import (
	"github.com/AdityaBargujar/accessibility-analyzer/internal/checks"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/checks/seo"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/checks/wcag"
)

// AccessibilityChecks returns the accessibility catalog in declaration order.
func AccessibilityChecks() []checks.Check {
	return []checks.Check{
		{ID: "WCAG_LANG", Category: checks.CategoryAccessibility, Title: "Document Language", Run: wcag.CheckLang},
		{ID: "WCAG_IMAGE_ALT", Category: checks.CategoryAccessibility, Title: "Image Alternative Text", Run: wcag.CheckImageAlt},
		{ID: "WCAG_H1", Category: checks.CategoryAccessibility, Title: "Top-Level Heading", Run: wcag.CheckH1},
		{ID: "WCAG_HEADING_HIERARCHY", Category: checks.CategoryAccessibility, Title: "Heading Hierarchy", Run: wcag.CheckHeadingHierarchy},
		{ID: "WCAG_FORM_LABELS", Category: checks.CategoryAccessibility, Title: "Form Labels", Run: wcag.CheckFormLabels},
		{ID: "WCAG_LINK_TEXT", Category: checks.CategoryAccessibility, Title: "Link Text", Run: wcag.CheckLinkText},
		{ID: "WCAG_TITLE", Category: checks.CategoryAccessibility, Title: "Document Title", Run: wcag.CheckTitle},
		{ID: "WCAG_ARIA_LABELS", Category: checks.CategoryAccessibility, Title: "ARIA Accessible Names", Run: wcag.CheckARIALabels},
		{ID: "WCAG_COLOR_CONTRAST", Category: checks.CategoryAccessibility, Title: "Color Contrast", Run: wcag.CheckColorContrast},
		{ID: "WCAG_FOCUS_STYLES", Category: checks.CategoryAccessibility, Title: "Focus Visibility", Run: wcag.CheckFocusStyles},
		{ID: "WCAG_SEMANTIC_HTML", Category: checks.CategoryAccessibility, Title: "Semantic Sectioning", Run: wcag.CheckSemanticHTML},
		{ID: "WCAG_CLICK_HANDLERS", Category: checks.CategoryAccessibility, Title: "Button Semantics", Run: wcag.CheckClickHandlers},
		{ID: "WCAG_FORM_VALIDATION", Category: checks.CategoryAccessibility, Title: "Form Validation Hints", Run: wcag.CheckFormValidation},
		{ID: "WCAG_SKIP_LINK", Category: checks.CategoryAccessibility, Title: "Skip Navigation", Run: wcag.CheckSkipLink},
		{ID: "WCAG_VIEWPORT", Category: checks.CategoryAccessibility, Title: "Viewport Tag", Run: wcag.CheckViewport},
		{ID: "WCAG_DECORATIVE_ALT", Category: checks.CategoryAccessibility, Title: "Decorative Image Alt", Run: wcag.CheckDecorativeImageAlt},
		{ID: "WCAG_SVG_TITLES", Category: checks.CategoryAccessibility, Title: "SVG Accessible Names", Run: wcag.CheckSVGTitles},
	}
}

// SEOChecks returns the SEO catalog in declaration order.
func SEOChecks() []checks.Check {
	return []checks.Check{
		{ID: "SEO_TITLE", Category: checks.CategorySEO, Title: "Title Tag", Run: seo.CheckTitle},
		{ID: "SEO_META_DESCRIPTION", Category: checks.CategorySEO, Title: "Meta Description", Run: seo.CheckMetaDescription},
		{ID: "SEO_VIEWPORT", Category: checks.CategorySEO, Title: "Viewport Tag", Run: seo.CheckViewport},
		{ID: "SEO_H1", Category: checks.CategorySEO, Title: "H1 Structure", Run: seo.CheckH1},
		{ID: "SEO_CANONICAL", Category: checks.CategorySEO, Title: "Canonical Link", Run: seo.CheckCanonical},
		{ID: "SEO_OPEN_GRAPH", Category: checks.CategorySEO, Title: "Open Graph Tags", Run: seo.CheckOpenGraph},
		{ID: "SEO_THEME_COLOR", Category: checks.CategorySEO, Title: "Theme Color", Run: seo.CheckThemeColor},
		{ID: "SEO_IMAGE_ALT", Category: checks.CategorySEO, Title: "Image Alt Coverage", Run: seo.CheckImageAlt},
		{ID: "SEO_FONT_SIZE", Category: checks.CategorySEO, Title: "Body Font Size", Run: seo.CheckBodyFontSize},
		{ID: "SEO_ROBOTS_META", Category: checks.CategorySEO, Title: "Robots Meta", Run: seo.CheckRobotsMeta},
		{ID: "SEO_STRUCTURED_DATA", Category: checks.CategorySEO, Title: "Structured Data", Run: seo.CheckStructuredData},
		{ID: "SEO_FAVICON", Category: checks.CategorySEO, Title: "Favicon", Run: seo.CheckFavicon},
		{ID: "SEO_HREFLANG", Category: checks.CategorySEO, Title: "Hreflang", Run: seo.CheckHreflang},
		{ID: "SEO_CHARSET", Category: checks.CategorySEO, Title: "Character Encoding", Run: seo.CheckCharset},
		{ID: "SEO_TEXT_CONTENT", Category: checks.CategorySEO, Title: "Text Content Volume", Run: seo.CheckTextContent},
		{ID: "SEO_HEADING_DEPTH", Category: checks.CategorySEO, Title: "Heading Depth", Run: seo.CheckHeadingDepth},
		{ID: "SEO_LINK_TEXT", Category: checks.CategorySEO, Title: "Anchor Text", Run: seo.CheckLinkText},
		{ID: "SEO_IMAGE_FILENAMES", Category: checks.CategorySEO, Title: "Image Filenames", Run: seo.CheckImageFilenames},
	}
}
