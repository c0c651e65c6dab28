package session

import (
	"context"

	"github.com/samber/lo"

	"nonton/internal/media"
	"nonton/internal/provider"
)

// Prompter is the interaction surface. Both calls may block for as long as
// the user takes; an error means the user cancelled.
type Prompter interface {
	Input(ctx context.Context, prompt string) (string, error)
	Select(ctx context.Context, prompt string, items []string) (int, error)
}

// Outcome is the result of a complete run.
type Outcome struct {
	State    State
	RelayURL string
	Message  string
}

// Run drives the flow from Idle to a terminal state, prompting through p.
// An empty query is asked for first.
func (f *Flow) Run(ctx context.Context, p Prompter, query string) Outcome {
	if query == "" {
		q, err := p.Input(ctx, "Anime title")
		if err != nil {
			f.Abandon()
			return f.outcome()
		}
		query = q
	}

	if err := f.Search(ctx, query); err != nil {
		f.finish(Abandoned, msgNoQuery)
		return f.outcome()
	}
	if f.state != ResultsPresented {
		return f.outcome()
	}

	items := lo.Map(f.session.Results, func(r media.SearchResult, _ int) string {
		return provider.FormatDisplayTitle(r)
	})
	idx, err := p.Select(ctx, "Select anime", items)
	if err != nil {
		f.Abandon()
		return f.outcome()
	}

	if err := f.SelectResult(ctx, idx); err != nil {
		f.Abandon()
		return f.outcome()
	}
	if f.state != EpisodesPresented {
		return f.outcome()
	}

	items = lo.Map(f.session.Episodes, provider.FormatEpisodeTitle)
	idx, err = p.Select(ctx, "Select episode", items)
	if err != nil {
		f.Abandon()
		return f.outcome()
	}

	if _, err := f.SelectEpisode(idx); err != nil {
		f.Abandon()
	}
	return f.outcome()
}

func (f *Flow) outcome() Outcome {
	return Outcome{
		State:    f.state,
		RelayURL: f.session.RelayURL,
		Message:  f.message,
	}
}
