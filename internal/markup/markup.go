package markup

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var tagPattern = regexp.MustCompile(`^</?([a-zA-Z][a-zA-Z0-9]*)(?:\s[^<>]*)?/?>`)

// PlainText strips HTML markup and collapses runs of whitespace into single spaces.
// Block-level elements are separated by a space so adjacent paragraphs do not fuse.
// A '<' that does not open a known HTML element is kept as text.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return Collapse(s)
	}

	escaped, hasTags := escapeStrayBrackets(s)
	if !hasTags {
		return Collapse(html.UnescapeString(s))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(escaped))
	if err != nil {
		return Collapse(s)
	}

	doc.Find("script, style").Remove()
	doc.Find("p, div, li, br, h1, h2, h3, h4, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return Collapse(doc.Text())
}

// escapeStrayBrackets rewrites every '<' that does not start a known element tag as &lt;
// and reports whether any real tag was seen.
func escapeStrayBrackets(s string) (string, bool) {
	var b strings.Builder
	found := false
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '<')
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+j])
		i += j

		if m := tagPattern.FindStringSubmatch(s[i:]); m != nil && atom.Lookup([]byte(strings.ToLower(m[1]))) != 0 {
			b.WriteString(m[0])
			i += len(m[0])
			found = true
			continue
		}
		b.WriteString("&lt;")
		i++
	}
	return b.String(), found
}

// Collapse trims s and replaces every whitespace run with a single space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
