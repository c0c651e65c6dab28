package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"nonton/internal/media"
	"nonton/internal/provider"
	"nonton/internal/relay"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidSelection is returned for an out of range choice.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrEmptyQuery is returned when the search query is blank.
	ErrEmptyQuery = errors.New("empty search query")
)

// User-facing messages for terminal states.
const (
	msgNoResults      = "No results found."
	msgNoEpisodes     = "No episodes found."
	msgSearchFailed   = "Search failed. Check your connection and try again."
	msgEpisodesFailed = "Could not load the episode list. Try again later."
	msgAbandoned      = "Selection cancelled."
	msgNoQuery        = "No search query provided."
)

// Session is the data collected by one run of the flow. It lives only as
// long as the Flow that owns it.
type Session struct {
	Query         string
	Results       []media.SearchResult
	Chosen        *media.SearchResult
	Episodes      []media.Episode
	ChosenEpisode *media.Episode
	RelayURL      string
}

// Flow drives one selection session. It is not safe for concurrent use.
type Flow struct {
	provider  provider.Provider
	relayBase string
	log       *log.Logger

	state   State
	session Session
	message string
}

// New creates a flow in the Idle state. relayBase is the origin of the local
// relay, e.g. "http://localhost:3000".
func New(p provider.Provider, relayBase string, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.Default()
	}
	return &Flow{
		provider:  p,
		relayBase: relayBase,
		log:       logger,
		state:     Idle,
	}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Session returns a copy of the collected session data.
func (f *Flow) Session() Session { return f.session }

// Message returns the user-facing message of a terminal state.
func (f *Flow) Message() string { return f.message }

func (f *Flow) expect(want State) error {
	if f.state != want {
		return fmt.Errorf("%w: in state %s, want %s", ErrInvalidTransition, f.state, want)
	}
	return nil
}

func (f *Flow) finish(s State, msg string) {
	f.state = s
	f.message = msg
}

// Search runs the search stage. It ends in ResultsPresented, NoResults or
// Failed. A fetch failure is reported through the state, not the error.
func (f *Flow) Search(ctx context.Context, query string) error {
	if err := f.expect(Idle); err != nil {
		return err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}

	f.session.Query = query
	f.state = Searching
	f.log.Debug("searching", "query", query)

	results, err := f.provider.Search(ctx, query)
	if err != nil {
		f.log.Debug("search failed", "err", err)
		f.finish(Failed, msgSearchFailed)
		return nil
	}
	if len(results) == 0 {
		f.finish(NoResults, msgNoResults)
		return nil
	}

	f.session.Results = results
	f.state = ResultsPresented
	f.log.Debug("results", "count", len(results))
	return nil
}

// SelectResult picks a search result and loads its episode list. It ends in
// EpisodesPresented, NoEpisodes or Failed.
func (f *Flow) SelectResult(ctx context.Context, index int) error {
	if err := f.expect(ResultsPresented); err != nil {
		return err
	}
	if index < 0 || index >= len(f.session.Results) {
		return fmt.Errorf("%w: result %d of %d", ErrInvalidSelection, index, len(f.session.Results))
	}

	chosen := f.session.Results[index]
	f.session.Chosen = &chosen
	f.state = AnimeSelected
	f.log.Debug("selected", "title", chosen.Title, "url", chosen.URL)

	if chosen.URL == "" {
		f.finish(NoEpisodes, msgNoEpisodes)
		return nil
	}

	episodes, err := f.provider.Episodes(ctx, chosen.URL)
	if err != nil {
		f.log.Debug("episode list failed", "err", err)
		f.finish(Failed, msgEpisodesFailed)
		return nil
	}
	if len(episodes) == 0 {
		f.finish(NoEpisodes, msgNoEpisodes)
		return nil
	}

	f.session.Episodes = episodes
	f.state = EpisodesPresented
	f.log.Debug("episodes", "count", len(episodes))
	return nil
}

// SelectEpisode picks an episode and returns the relay URL that plays it.
func (f *Flow) SelectEpisode(index int) (string, error) {
	if err := f.expect(EpisodesPresented); err != nil {
		return "", err
	}
	if index < 0 || index >= len(f.session.Episodes) {
		return "", fmt.Errorf("%w: episode %d of %d", ErrInvalidSelection, index, len(f.session.Episodes))
	}

	ep := f.session.Episodes[index]
	f.session.ChosenEpisode = &ep
	f.state = EpisodeSelected

	f.session.RelayURL = relay.WatchURL(f.relayBase, ep.URL)
	f.finish(Resolved, "Opening "+f.session.RelayURL)
	f.log.Debug("resolved", "episode", ep.Title, "relay", f.session.RelayURL)
	return f.session.RelayURL, nil
}

// Abandon ends the flow because the user cancelled.
func (f *Flow) Abandon() {
	if !f.state.Terminal() {
		f.finish(Abandoned, msgAbandoned)
	}
}
