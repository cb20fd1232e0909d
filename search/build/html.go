package build

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chrome that never carries document text
const skipSelectors = "header, nav, footer, meta, script, style, link, noscript, head"

// ExtractText pulls the visible text out of an HTML document so it can be
// tokenized like a plain-text file. Boilerplate regions (navigation,
// scripts, breadcrumbs) are removed first; block elements are joined with
// newlines so sentence boundaries survive.
func ExtractText(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	doc.Find(skipSelectors).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	breadcrumbSelectors := []string{
		"div.breadcrumb", "ul.breadcrumb", "ol.breadcrumb",
		"nav[aria-label=\"breadcrumb\"]", "[id*=\"breadcrumb\"]", "[class*=\"breadcrumb\"]",
	}
	for _, selector := range breadcrumbSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			s.Remove()
		})
	}

	var blocks []string
	seen := map[string]bool{}
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote, td, th").Each(func(i int, tag *goquery.Selection) {
		text := strings.TrimSpace(tag.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		blocks = append(blocks, text)
	})
	if len(blocks) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(blocks, "\n")
}
