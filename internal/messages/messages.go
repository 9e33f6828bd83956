// Package messages maps issue IDs to display titles and fix advice for the
// console report. Rule descriptions stay with the rules; this catalog only
// carries the presentation strings.
package messages

type MessageDetail struct {
	Title string
	Fix   string
}

var issueMessages = map[string]MessageDetail{
	// Accessibility
	"missing-lang": {
		Title: "Document Language Missing",
		Fix:   "Add a lang attribute to the <html> element, e.g. <html lang=\"en\">.",
	},
	"missing-alt": {
		Title: "Image Missing Alt Text",
		Fix:   "Provide a descriptive alt attribute for every meaningful image; use alt=\"\" for decorative ones.",
	},
	"missing-alt-multiple": {
		Title: "More Images Missing Alt Text",
		Fix:   "Audit all remaining images and add descriptive alt attributes.",
	},
	"missing-h1": {
		Title: "Missing H1 Heading",
		Fix:   "Add a single H1 heading that describes the page.",
	},
	"multiple-h1": {
		Title: "Multiple H1 Headings",
		Fix:   "Keep exactly one H1 and demote the others to H2/H3.",
	},
	"heading-hierarchy": {
		Title: "Heading Levels Skipped",
		Fix:   "Use heading levels sequentially (H1 then H2 then H3) without skipping.",
	},
	"form-missing-label": {
		Title: "Form Control Without Label",
		Fix:   "Associate every input with a <label for=...>, aria-label, or aria-labelledby.",
	},
	"form-missing-label-multiple": {
		Title: "More Form Controls Without Labels",
		Fix:   "Audit the remaining form controls and add labels.",
	},
	"link-empty-text": {
		Title: "Links Without Text",
		Fix:   "Give every link visible text or an aria-label describing its destination.",
	},
	"link-generic-text": {
		Title: "Generic Link Text",
		Fix:   "Replace generic phrases like 'click here' with text describing the destination.",
	},
	"missing-title": {
		Title: "Missing Page Title",
		Fix:   "Add a non-empty <title> element inside <head>.",
	},
	"aria-missing-label": {
		Title: "ARIA Role Without Accessible Name",
		Fix:   "Give role=\"button\" and role=\"link\" elements visible text or an aria-label.",
	},
	"color-contrast-low": {
		Title: "Potential Low Color Contrast",
		Fix:   "Verify foreground/background pairs with a contrast checker and meet WCAG AA ratios.",
	},
	"focus-not-visible": {
		Title: "No Visible Focus Styles",
		Fix:   "Add :focus or :focus-visible styles so keyboard users can see where they are.",
	},
	"semantic-html-missing": {
		Title: "No Semantic Sectioning Elements",
		Fix:   "Replace generic container divs with nav, main, article, aside, header, and footer.",
	},
	"improper-button-semantics": {
		Title: "Click Handlers on Non-Interactive Elements",
		Fix:   "Use <button> or <a> instead of onclick on div/span so keyboards and screen readers work.",
	},
	"form-validation-missing": {
		Title: "No Validation State Markup",
		Fix:   "Mark invalid fields with aria-invalid and associate error messages with the field.",
	},
	"missing-skip-link": {
		Title: "No Skip Navigation Link",
		Fix:   "Add an early <a href=\"#main\"> link so keyboard users can bypass repeated blocks.",
	},
	"missing-viewport": {
		Title: "Missing Viewport Tag",
		Fix:   "Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">.",
	},
	"decorative-image-alt": {
		Title: "Decorative Image With Alt Text",
		Fix:   "Use alt=\"\" on spacer and decorative images so screen readers skip them.",
	},
	"svg-missing-title": {
		Title: "SVG Without Accessible Name",
		Fix:   "Add a <title> child or aria-label to each meaningful inline SVG.",
	},

	// SEO
	"empty-title": {
		Title: "Empty Title Tag",
		Fix:   "Write a 30-60 character title describing the page.",
	},
	"short-title": {
		Title: "Title Too Short",
		Fix:   "Extend the title toward 30-60 characters with descriptive keywords.",
	},
	"long-title": {
		Title: "Title Too Long",
		Fix:   "Trim the title to 60 characters or less so it is not truncated in results.",
	},
	"missing-meta-desc": {
		Title: "Missing Meta Description",
		Fix:   "Add <meta name=\"description\"> with a 120-160 character summary.",
	},
	"empty-meta-desc": {
		Title: "Empty Meta Description",
		Fix:   "Fill the description content with a 120-160 character summary.",
	},
	"short-meta-desc": {
		Title: "Meta Description Too Short",
		Fix:   "Extend the description toward 120-160 characters.",
	},
	"long-meta-desc": {
		Title: "Meta Description Too Long",
		Fix:   "Trim the description to 160 characters or less.",
	},
	"missing-canonical": {
		Title: "Missing Canonical Link",
		Fix:   "Add <link rel=\"canonical\"> pointing at the preferred URL for this content.",
	},
	"missing-og-tags": {
		Title: "Incomplete Open Graph Tags",
		Fix:   "Provide og:title, og:description, and og:image meta properties.",
	},
	"missing-theme-color": {
		Title: "Missing Theme Color",
		Fix:   "Add <meta name=\"theme-color\"> to tint mobile browser chrome.",
	},
	"images-missing-alt": {
		Title: "Images Missing Alt Text",
		Fix:   "Add alt attributes; image search relies on them.",
	},
	"small-text": {
		Title: "Body Text Too Small",
		Fix:   "Use a base font size of at least 12px for mobile readability.",
	},
	"noindex-tag": {
		Title: "Page Marked noindex",
		Fix:   "Remove noindex from the robots meta tag if the page should be indexed.",
	},
	"missing-structured-data": {
		Title: "No Structured Data",
		Fix:   "Add a JSON-LD script describing the page with schema.org vocabulary.",
	},
	"missing-favicon": {
		Title: "Missing Favicon",
		Fix:   "Add <link rel=\"icon\"> pointing at a site icon.",
	},
	"missing-hreflang": {
		Title: "No Hreflang Tags",
		Fix:   "Add <link rel=\"alternate\" hreflang=...> for each language/region variant.",
	},
	"missing-charset": {
		Title: "Missing Charset Declaration",
		Fix:   "Add <meta charset=\"utf-8\"> as the first element of <head>.",
	},
	"insufficient-content": {
		Title: "Thin Text Content",
		Fix:   "Add substantive text content; pages with little prose rank poorly.",
	},
	"flat-heading-hierarchy": {
		Title: "Flat Heading Hierarchy",
		Fix:   "Break content into sections with H2/H3 subheadings under the H1.",
	},
	"poor-link-text": {
		Title: "Generic Anchor Text",
		Fix:   "Use descriptive anchor text instead of 'click here' or 'more'.",
	},
	"generic-image-names": {
		Title: "Generic Image Filenames",
		Fix:   "Rename images descriptively, e.g. product-photo.jpg instead of img1.jpg.",
	},
	"robots-disallowed": {
		Title: "Path Disallowed by robots.txt",
		Fix:   "Allow the path in robots.txt if search engines should crawl it.",
	},
}

// GetMessage returns the catalog entry for an issue ID. Unknown IDs get a
// neutral placeholder so callers never need a presence check.
func GetMessage(id string) MessageDetail {
	if msg, ok := issueMessages[id]; ok {
		return msg
	}
	return MessageDetail{Title: "Issue", Fix: "Review and fix."}
}
