package provider

import (
	"errors"
	"fmt"
)

// ErrNoStream is returned when an episode page has no player frame.
var ErrNoStream = errors.New("no stream found")

// FetchError reports a page that could not be retrieved or parsed.
type FetchError struct {
	URL    string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
