// Package extract turns raw lecture input (plain transcript text or a lecture
// web page) into a Document ready for feature extraction.
package extract

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Document is one lecture: its title, the transcript text and an optional
// publication date in YYYY-MM-DD form.
type Document struct {
	Title     string
	Text      string
	Published string
}

// FromText wraps a plain transcript. The title is the first line of raw.
func FromText(raw string) Document {
	first, _, _ := strings.Cut(raw, "\n")
	return Document{Title: strings.TrimSpace(first), Text: raw}
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// publishedMetaKeys lists <meta> name/property values that carry a publication date.
var publishedMetaKeys = map[string]bool{
	"article:published_time":    true,
	"datepublished":             true,
	"date":                      true,
	"dc.date":                   true,
	"dcterms.created":           true,
	"citation_publication_date": true,
}

// FromHTML extracts the transcript from a lecture page, preferring <main> or
// <article> over <body>. Navigation, footers, scripts and cookie banners are
// skipped. The title comes from <title> or the first <h1>; the publication
// date from a known <meta> tag or the first <time datetime>.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	doc := Document{Title: strings.TrimSpace(findTitle(node)), Published: findPublished(node)}

	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	if content != nil {
		var b strings.Builder
		collectText(&b, content)
		doc.Text = normalizeWhitespace(b.String())
	}
	return doc
}

func findTitle(n *html.Node) string {
	if head := findFirst(n, "head"); head != nil {
		if t := findFirst(head, "title"); t != nil {
			if s := strings.TrimSpace(textOf(t)); s != "" {
				return s
			}
		}
	}
	if h := findFirst(n, "h1"); h != nil {
		return collapseSpaces(strings.TrimSpace(textOf(h)))
	}
	return ""
}

func findPublished(n *html.Node) string {
	var date string
	walk(n, func(cur *html.Node) bool {
		if cur.Type != html.ElementNode || !strings.EqualFold(cur.Data, "meta") {
			return false
		}
		key := strings.ToLower(attr(cur, "property"))
		if key == "" {
			key = strings.ToLower(attr(cur, "name"))
		}
		if key == "" {
			key = strings.ToLower(attr(cur, "itemprop"))
		}
		if publishedMetaKeys[key] {
			date = isoDateRe.FindString(strings.TrimSpace(attr(cur, "content")))
		}
		return date != ""
	})
	if date != "" {
		return date
	}
	if t := findFirst(n, "time"); t != nil {
		return isoDateRe.FindString(strings.TrimSpace(attr(t, "datetime")))
	}
	return ""
}

// walk visits n depth-first until visit returns true.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if visit(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walk(c, visit) {
			return true
		}
	}
	return false
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	walk(n, func(cur *html.Node) bool {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return true
		}
		return false
	})
	return res
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(cur *html.Node) bool {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		return false
	})
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		if isBoilerplateContainer(n) {
			return
		}
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "header":
			return
		case "br", "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "tr":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "li", "tr":
			b.WriteString("\n")
		}
	}
}

// isBoilerplateContainer reports elements that look like cookie or consent banners.
func isBoilerplateContainer(n *html.Node) bool {
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if key != "id" && key != "class" && key != "role" && key != "aria-label" && !strings.HasPrefix(key, "data-") {
			continue
		}
		val := strings.ToLower(a.Val)
		for _, marker := range []string{"cookie", "consent", "gdpr"} {
			if strings.Contains(val, marker) {
				return true
			}
		}
	}
	return false
}

// normalizeWhitespace collapses space runs inside lines and keeps at most
// one blank line between blocks.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
