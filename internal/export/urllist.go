// internal/export/urllist.go
package export

import (
	"fmt"
	"strings"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// urlListHeader introduces the plain-text URL list. Each entry below it
// is a numbered comment line followed by the item URL.
var urlListHeader = []string{
	"# SoundCloud Tracks - Copy these URLs to your preferred downloader",
	"# Recommended Windows tools:",
	"# - yt-dlp (command line): pip install yt-dlp",
	"# - 4K Video Downloader (GUI): https://www.4kdownload.com/",
	"# - JDownloader (GUI): https://jdownloader.org/",
	"# - Online services: scdl.com, snapsave.app, y2meta.com",
	"",
}

// URLListGenerator produces a line-oriented UTF-8 document: one comment
// header block plus a numbered comment line and URL per item.
type URLListGenerator struct{}

// NewURLListGenerator creates a URL list generator.
func NewURLListGenerator() *URLListGenerator {
	return &URLListGenerator{}
}

// Generate renders the URL list for the given items.
func (g *URLListGenerator) Generate(items []types.ExportItem) ([]byte, error) {
	lines := make([]string, 0, len(urlListHeader)+len(items))
	lines = append(lines, urlListHeader...)

	for i, item := range items {
		lines = append(lines, fmt.Sprintf("# %d. %s by %s\n%s\n", i+1, item.Name, item.Author, item.URL))
	}

	return []byte(strings.Join(lines, "\n")), nil
}
