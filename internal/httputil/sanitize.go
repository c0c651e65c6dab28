package httputil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned for URLs that must not be fetched.
var ErrInvalidURL = errors.New("invalid URL")

// ValidateURL checks that a URL is well-formed, absolute and uses HTTPS.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: malformed: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: only HTTPS URLs are allowed, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: no host", ErrInvalidURL)
	}
	return nil
}

// SearchURL builds the catalog search URL for a query: https://<base>/?s=<query>.
func SearchURL(base, query string) string {
	v := url.Values{}
	v.Set("s", strings.TrimSpace(query))
	return BaseURL(base) + "/?" + v.Encode()
}

// BaseURL returns the HTTPS origin for a configured host. A scheme already
// present in base is replaced.
func BaseURL(base string) string {
	host := strings.TrimSpace(base)
	if i := strings.Index(host, "://"); i != -1 {
		host = host[i+3:]
	}
	return "https://" + strings.TrimRight(host, "/")
}
