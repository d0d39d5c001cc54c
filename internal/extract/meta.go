// internal/extract/meta.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const soundcloudMetaPrefix = "soundcloud:"

// ExtractMetaTags collects the page's site-specific and social meta tags
// into a flat map. soundcloud: properties are keyed with the prefix
// stripped; og: and twitter: tags keep their full property name. Used as
// a last-resort source for profile facts when hydration is absent.
func ExtractMetaTags(markup string) map[string]string {
	meta := make(map[string]string)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return meta
	}

	doc.Find(`meta[property^="soundcloud:"]`).Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		meta[strings.TrimPrefix(property, soundcloudMetaPrefix)] = content
	})

	doc.Find(`meta[property^="og:"], meta[property^="twitter:"], meta[name^="twitter:"]`).
		Each(func(_ int, s *goquery.Selection) {
			key, ok := s.Attr("property")
			if !ok {
				key, ok = s.Attr("name")
			}
			content, hasContent := s.Attr("content")
			if !ok || !hasContent {
				return
			}
			meta[key] = content
		})

	return meta
}
