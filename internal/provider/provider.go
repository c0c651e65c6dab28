// Package provider defines the interface for catalog sources and the
// implementation for the Animasu site.
package provider

import (
	"context"

	"nonton/internal/media"
)

// Provider is the interface that catalog sources must implement.
type Provider interface {
	// Search returns the result cards of the first search page for a query.
	// No matches is an empty slice, not an error.
	Search(ctx context.Context, query string) ([]media.SearchResult, error)

	// Episodes returns the episode list of a detail page in site order.
	Episodes(ctx context.Context, animeURL string) ([]media.Episode, error)

	// StreamURL returns the embeddable player URL of an episode page.
	StreamURL(ctx context.Context, episodeURL string) (string, error)
}
