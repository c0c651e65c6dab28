package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixtureServer serves testdata fixtures over TLS: the search page for
// "/?s=...", other paths from the routes map, 404 otherwise.
func newFixtureServer(t *testing.T, searchFixture string, routes map[string]string) (*httptest.Server, *Animasu) {
	t.Helper()

	serve := func(w http.ResponseWriter, fixture string) {
		data, err := os.ReadFile("testdata/" + fixture)
		if err != nil {
			t.Errorf("reading fixture %s: %v", fixture, err)
			http.Error(w, "fixture missing", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	}

	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.URL.Query().Has("s") {
			serve(w, searchFixture)
			return
		}
		if fixture, ok := routes[r.URL.Path]; ok {
			serve(w, fixture)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(ts.Close)

	return ts, NewAnimasuWithClient(strings.TrimPrefix(ts.URL, "https://"), ts.Client())
}

func TestAnimasuSearch(t *testing.T) {
	ts, a := newFixtureServer(t, "search_results.html", nil)

	results, err := a.Search(context.Background(), "Example Title")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Example Title", results[0].Title)
	assert.Equal(t, ts.URL+"/anime/example-title/", results[0].URL)
	assert.False(t, results[1].HasImage())
}

func TestAnimasuSearchSendsQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("s")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	a := NewAnimasuWithClient(strings.TrimPrefix(ts.URL, "https://"), ts.Client())
	results, err := a.Search(context.Background(), "kimi no na wa & more")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, "kimi no na wa & more", gotQuery)
}

func TestAnimasuEpisodes(t *testing.T) {
	ts, a := newFixtureServer(t, "search_results.html", map[string]string{
		"/anime/example-title/": "anime_detail.html",
	})

	episodes, err := a.Episodes(context.Background(), ts.URL+"/anime/example-title/")
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, "Episode 3", episodes[0].Title)
	assert.Equal(t, ts.URL+"/nonton-example-title-episode-1/", episodes[2].URL)
}

func TestAnimasuStreamURL(t *testing.T) {
	ts, a := newFixtureServer(t, "search_results.html", map[string]string{
		"/ep-1/":        "episode.html",
		"/ep-no-video/": "episode_no_player.html",
	})

	src, err := a.StreamURL(context.Background(), ts.URL+"/ep-1/")
	require.NoError(t, err)
	assert.Equal(t, "https://player.example.com/embed/abc123", src)

	_, err = a.StreamURL(context.Background(), ts.URL+"/ep-no-video/")
	assert.ErrorIs(t, err, ErrNoStream)
}

func TestAnimasuFetchFailure(t *testing.T) {
	ts, a := newFixtureServer(t, "search_results.html", nil)

	_, err := a.Episodes(context.Background(), ts.URL+"/missing/")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr), "want FetchError, got %v", err)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
}

func TestAnimasuRejectsInsecureURL(t *testing.T) {
	a := NewAnimasu("v5.animasu.cc")

	_, err := a.StreamURL(context.Background(), "http://v5.animasu.cc/ep-1/")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.Status)
}
