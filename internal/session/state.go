// Package session implements the interactive selection flow: query, search
// results, episode list, and finally the relay URL of the chosen episode.
//
// The flow is a linear state machine. Every stage either advances or ends in a
// terminal state with a plain-language message; nothing is retried.
package session

// State is a step of the selection flow.
type State int

const (
	Idle State = iota
	Searching
	ResultsPresented
	AnimeSelected
	EpisodesPresented
	EpisodeSelected

	// Terminal states.
	NoResults
	NoEpisodes
	Resolved
	Abandoned
	Failed
)

var stateNames = map[State]string{
	Idle:              "idle",
	Searching:         "searching",
	ResultsPresented:  "results-presented",
	AnimeSelected:     "anime-selected",
	EpisodesPresented: "episodes-presented",
	EpisodeSelected:   "episode-selected",
	NoResults:         "no-results",
	NoEpisodes:        "no-episodes",
	Resolved:          "resolved",
	Abandoned:         "abandoned",
	Failed:            "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the flow has ended.
func (s State) Terminal() bool {
	switch s {
	case NoResults, NoEpisodes, Resolved, Abandoned, Failed:
		return true
	}
	return false
}
