// Package media defines shared types for the nonton application.
package media

// SearchResult represents a single result card from the catalog search page.
// URL and Image are absolute URLs, or empty when the card does not carry them.
type SearchResult struct {
	Title    string // Display title
	URL      string // Detail page holding the episode list
	Image    string // Thumbnail URL
	Episodes string // Episode count label, e.g. "Episode 12"
	Status   string // Status label, e.g. "Ongoing"
}

// HasImage reports whether the card carried a usable thumbnail.
func (r SearchResult) HasImage() bool { return r.Image != "" }

// Episode represents one entry in an anime's episode list.
type Episode struct {
	Title string
	URL   string // Episode page holding the player
}
