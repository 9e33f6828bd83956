// Package dom wraps a parsed HTML tree behind a small read-only facade so
// rule functions can be tested against fixture documents without touching
// the network or a live parser session.
package dom

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Document is an immutable view over a parsed HTML tree. All accessors are
// read-only; rules never mutate the tree.
type Document struct {
	root   *html.Node
	markup string
}

// Element is one element node in a Document.
type Element struct {
	node *html.Node
}

// Parse builds a Document from raw markup. x/net/html tolerates malformed
// input, so this only fails on reader errors.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &Document{root: root, markup: markup}, nil
}

// Markup returns the raw source the document was parsed from.
func (d *Document) Markup() string {
	return d.markup
}

// walk visits every node under n in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// Find returns all elements matching any of the given tag names, in
// document order.
func (d *Document) Find(tags ...string) []Element {
	var out []Element
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, tag := range tags {
			if n.Data == tag {
				out = append(out, Element{node: n})
				return
			}
		}
	})
	return out
}

// WithAttr returns all elements carrying the given attribute, in document
// order, regardless of tag.
func (d *Document) WithAttr(name string) []Element {
	var out []Element
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, a := range n.Attr {
			if a.Key == name {
				out = append(out, Element{node: n})
				return
			}
		}
	})
	return out
}

// First returns the first element with the given tag name, if any.
func (d *Document) First(tag string) (Element, bool) {
	els := d.Find(tag)
	if len(els) == 0 {
		return Element{}, false
	}
	return els[0], true
}

// Count reports how many elements match the tag name.
func (d *Document) Count(tag string) int {
	return len(d.Find(tag))
}

// StyleText concatenates the contents of every <style> element.
func (d *Document) StyleText() string {
	var sb strings.Builder
	for _, el := range d.Find("style") {
		sb.WriteString(el.Text())
	}
	return sb.String()
}

// BodyText returns the visible text content of <body>, scripts and styles
// excluded, with runs of whitespace collapsed.
func (d *Document) BodyText() string {
	body, ok := d.First("body")
	if !ok {
		return ""
	}
	var sb strings.Builder
	walk(body.node, func(n *html.Node) {
		if n.Type != html.TextNode {
			return
		}
		if p := n.Parent; p != nil && (p.Data == "script" || p.Data == "style") {
			return
		}
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Tag returns the element's tag name.
func (e Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of an attribute and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or a default when absent.
func (e Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// HasAttr reports whether the attribute is present, even if empty.
func (e Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Text returns the element's text content, trimmed.
func (e Element) Text() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return strings.TrimSpace(sb.String())
}

// Style reads one property out of the element's inline style attribute.
// Computed styles are out of reach without a rendering engine; inline
// declarations are the best available signal.
func (e Element) Style(property string) string {
	style, ok := e.Attr("style")
	if !ok {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), property) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Descendants returns all descendant elements matching the tag name.
func (e Element) Descendants(tag string) []Element {
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == tag {
				out = append(out, Element{node: n})
			}
		})
	}
	return out
}

// Location renders a short DOM-path-like hint for an element, e.g.
// `<img id="logo" class="header">`.
func (e Element) Location() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.node.Data)
	if id := e.AttrOr("id", "no-id"); id != "" {
		sb.WriteString(` id="` + id + `"`)
	}
	if class := e.AttrOr("class", "no-class"); class != "" {
		sb.WriteString(` class="` + class + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}

// Snippet serializes the element's markup, truncated to at most max bytes
// without splitting a rune.
func (e Element) Snippet(max int) string {
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return ""
	}
	s := sb.String()
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
