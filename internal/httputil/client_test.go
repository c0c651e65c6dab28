package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckRedirect(t *testing.T) {
	via := func(n int) []*http.Request {
		reqs := make([]*http.Request, n)
		for i := range reqs {
			reqs[i] = httptest.NewRequest(http.MethodGet, "https://site.example/", nil)
		}
		return reqs
	}

	tests := []struct {
		name    string
		target  string
		hops    int
		wantErr bool
	}{
		{"https hop", "https://site.example/anime/x/", 1, false},
		{"downgrade to http", "http://site.example/anime/x/", 1, true},
		{"non-web scheme", "ftp://site.example/file", 1, true},
		{"last allowed hop", "https://site.example/a", maxRedirects - 1, false},
		{"too many hops", "https://site.example/a", maxRedirects, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.target, nil)
			if err != nil {
				t.Fatal(err)
			}
			err = checkRedirect(req, via(tt.hops))
			if (err != nil) != tt.wantErr {
				t.Errorf("checkRedirect(%q, %d hops) error = %v, wantErr %v", tt.target, tt.hops, err, tt.wantErr)
			}
		})
	}
}

func TestClientRefusesDowngradeRedirect(t *testing.T) {
	plain := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("plain http server must not be reached")
	}))
	defer plain.Close()

	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, plain.URL+"/episode/", http.StatusFound)
	}))
	defer ts.Close()

	client := ts.Client()
	client.CheckRedirect = NewClient().CheckRedirect

	_, err := client.Get(ts.URL)
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL after downgrade redirect, got %v", err)
	}
}
