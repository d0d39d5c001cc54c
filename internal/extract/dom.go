// internal/extract/dom.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// SelectorProfile selects the structural markers used to find repeating
// list containers in a page.
type SelectorProfile string

const (
	// ProfilePlaylists scans the /sets page: playlist articles tagged with
	// the schema.org MusicPlaylist microdata type.
	ProfilePlaylists SelectorProfile = "playlist"

	// ProfileLikes scans the /likes feed: any article container.
	ProfileLikes SelectorProfile = "like"
)

// Structural selectors for the site's server-rendered listing pages.
const (
	playlistContainerSelector = `article[itemtype="http://schema.org/MusicPlaylist"]`
	likeContainerSelector     = `article`
	nameLinkSelector          = `h2[itemprop="name"] a[itemprop="url"]`
	authorLinkSelector        = `h2 a[href^="/"][href*="/"]:not([itemprop="url"])`
	pubDateSelector           = `time[pubdate]`
	durationMetaSelector      = `meta[itemprop="duration"]`
)

// playlistPathMarker classifies an item link as a playlist. Brittle to
// upstream path scheme changes; accepted heuristic.
const playlistPathMarker = "/sets/"

// RawListItem is one entry recovered from a listing page by DOM scan.
// DurationSeconds is only populated for playlist pages, where the markup
// carries a duration meta value.
type RawListItem struct {
	Name            string
	URL             string
	Slug            string
	Author          string
	AuthorURL       string
	PublishedAt     string
	DurationSeconds int64
	Type            types.ItemType
}

// ExtractListItems parses markup and scans for repeating list containers
// per the selector profile, recovering one RawListItem per container that
// carries the mandatory name+link pair. Containers missing that pair are
// skipped; one bad container never fails the whole scan. Unparsable
// markup yields an empty slice.
func ExtractListItems(markup string, profile SelectorProfile, baseURL string) []RawListItem {
	items := []RawListItem{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return items
	}

	containerSelector := likeContainerSelector
	if profile == ProfilePlaylists {
		containerSelector = playlistContainerSelector
	}

	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		nameLink := container.Find(nameLinkSelector).First()
		href, hasHref := nameLink.Attr("href")
		if nameLink.Length() == 0 || !hasHref {
			return
		}

		item := RawListItem{
			Name: strings.TrimSpace(nameLink.Text()),
			URL:  absolutize(baseURL, href),
			Slug: slugFromPath(href),
			Type: classifyPath(href),
		}
		if profile == ProfilePlaylists {
			item.Type = types.ItemTypePlaylist
		}

		authorLink := container.Find(authorLinkSelector).First()
		if authorLink.Length() > 0 {
			item.Author = strings.TrimSpace(authorLink.Text())
			if authorHref, ok := authorLink.Attr("href"); ok {
				item.AuthorURL = absolutize(baseURL, authorHref)
			}
		}

		if datetime, ok := container.Find(pubDateSelector).First().Attr("datetime"); ok {
			item.PublishedAt = datetime
		}

		if profile == ProfilePlaylists {
			if content, ok := container.Find(durationMetaSelector).First().Attr("content"); ok {
				item.DurationSeconds = ParseDuration(content)
			}
		}

		items = append(items, item)
	})

	return items
}

// classifyPath decides playlist vs track by the presence of the playlists
// path marker in the link path.
func classifyPath(href string) types.ItemType {
	if strings.Contains(href, playlistPathMarker) {
		return types.ItemTypePlaylist
	}
	return types.ItemTypeTrack
}

// absolutize joins a page-relative href onto the site base URL.
func absolutize(baseURL, href string) string {
	if href == "" {
		return ""
	}
	if strings.Contains(href, "://") {
		return href
	}
	base := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(href, "/") {
		return base + "/" + href
	}
	return base + href
}

// slugFromPath returns the last path segment of an item link.
func slugFromPath(href string) string {
	trimmed := strings.TrimSuffix(href, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
