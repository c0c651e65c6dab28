package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"nonton/internal/httputil"
	"nonton/internal/media"
)

// maxPageSize caps how much of a page body is read.
const maxPageSize = 10 * 1024 * 1024

// Animasu implements the Provider interface for the Animasu catalog.
type Animasu struct {
	base   string // e.g., "v5.animasu.cc"
	client *http.Client
}

// NewAnimasu creates a new Animasu provider.
func NewAnimasu(base string) *Animasu {
	return NewAnimasuWithClient(base, httputil.NewClient())
}

// NewAnimasuWithClient creates an Animasu provider that fetches through client.
func NewAnimasuWithClient(base string, client *http.Client) *Animasu {
	return &Animasu{
		base:   base,
		client: client,
	}
}

// Search returns the result cards of the first search page.
func (a *Animasu) Search(ctx context.Context, query string) ([]media.SearchResult, error) {
	doc, pageURL, err := a.fetchDocument(ctx, httputil.SearchURL(a.base, query))
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}
	return parseSearchResults(doc, pageURL), nil
}

// Episodes returns the episode list of an anime detail page.
func (a *Animasu) Episodes(ctx context.Context, animeURL string) ([]media.Episode, error) {
	doc, pageURL, err := a.fetchDocument(ctx, animeURL)
	if err != nil {
		return nil, fmt.Errorf("getting episodes: %w", err)
	}
	return parseEpisodes(doc, pageURL), nil
}

// StreamURL returns the player frame source of an episode page.
func (a *Animasu) StreamURL(ctx context.Context, episodeURL string) (string, error) {
	doc, pageURL, err := a.fetchDocument(ctx, episodeURL)
	if err != nil {
		return "", fmt.Errorf("getting stream: %w", err)
	}

	src, ok := parseStreamURL(doc, pageURL)
	if !ok {
		return "", fmt.Errorf("%w on %s", ErrNoStream, episodeURL)
	}
	return src, nil
}

// fetchDocument fetches a URL and parses it into a goquery Document. It also
// returns the final page URL for resolving relative links.
func (a *Animasu) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, *url.URL, error) {
	resp, err := httputil.Get(ctx, a.client, rawURL)
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxPageSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("decoding charset: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("parsing HTML: %w", err)}
	}

	return doc, resp.Request.URL, nil
}
