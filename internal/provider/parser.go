package provider

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"nonton/internal/extract"
	"nonton/internal/media"
)

// parseSearchResults extracts result cards from a search page.
func parseSearchResults(doc *goquery.Document, base *url.URL) []media.SearchResult {
	records := extract.All(doc, base, searchRules)
	results := make([]media.SearchResult, 0, len(records))
	for _, rec := range records {
		results = append(results, media.SearchResult{
			Title:    rec.String(fieldTitle),
			URL:      rec.String(fieldLink),
			Image:    rec.String(fieldImage),
			Episodes: rec.String(fieldEpisodes),
			Status:   rec.String(fieldStatus),
		})
	}
	return results
}

// parseEpisodes extracts the episode list from an anime detail page.
func parseEpisodes(doc *goquery.Document, base *url.URL) []media.Episode {
	records := extract.All(doc, base, episodeRules)
	episodes := make([]media.Episode, 0, len(records))
	for _, rec := range records {
		episodes = append(episodes, media.Episode{
			Title: rec.String(fieldTitle),
			URL:   rec.String(fieldLink),
		})
	}
	return episodes
}

// parseStreamURL returns the player frame source of an episode page.
func parseStreamURL(doc *goquery.Document, base *url.URL) (string, bool) {
	rec, ok := extract.First(doc, base, streamRules)
	if !ok {
		return "", false
	}
	return rec.Get(fieldSrc)
}

// FormatDisplayTitle creates the label shown when picking a search result,
// e.g. "One Piece (Episode 1100 - Ongoing)".
func FormatDisplayTitle(r media.SearchResult) string {
	var meta []string
	if r.Episodes != "" {
		meta = append(meta, r.Episodes)
	}
	if r.Status != "" {
		meta = append(meta, r.Status)
	}

	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	if len(meta) == 0 {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, strings.Join(meta, " - "))
}

// FormatEpisodeTitle creates the label shown when picking an episode.
func FormatEpisodeTitle(ep media.Episode, index int) string {
	if ep.Title != "" {
		return ep.Title
	}
	return fmt.Sprintf("Episode #%d", index+1)
}
