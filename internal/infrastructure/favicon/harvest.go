package favicon

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// iconRels are the rel/content values that mark an element as an icon
// candidate. Matching is by substring, deliberately permissive: e.g.
// rel="shortcut icon" and rel="apple-touch-icon-precomposed" both match.
var iconRels = []string{
	"icon",
	"shortcut icon",
	"apple-touch-icon",
	"favicon",
	"mask-icon",
	"fluid-icon",
	"image",
}

// harvest scans the head fragment for icon-indicating <link> and <meta>
// elements and resolves each to an absolute URL against base. Link
// candidates come first, then meta candidates, both in document order.
// Duplicates are kept. When nothing matches, the single fallback
// /favicon.ico candidate is returned; harvest never fails.
func harvest(head *goquery.Document, base *url.URL) []*url.URL {
	var candidates []*url.URL

	head.Find("link").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if !matchesIconType(sel.AttrOr("rel", "")) {
			return
		}
		if u, err := base.Parse(href); err == nil {
			candidates = append(candidates, u)
		}
	})

	head.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		if !matchesIconType(content) {
			return
		}
		if u, err := base.Parse(content); err == nil {
			candidates = append(candidates, u)
		}
	})

	if len(candidates) == 0 {
		fallback := *base
		fallback.Path = "/favicon.ico"
		fallback.RawPath = ""
		fallback.RawQuery = ""
		fallback.Fragment = ""
		candidates = append(candidates, &fallback)
	}

	return candidates
}

func matchesIconType(value string) bool {
	for _, rel := range iconRels {
		if strings.Contains(value, rel) {
			return true
		}
	}
	return false
}
