package relay

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerServesAndShutsDown(t *testing.T) {
	episode := "https://v5.animasu.cc/ep-1/"
	res := &stubResolver{streams: map[string]string{episode: "https://player.example.com/embed/1"}}
	srv := NewServer("127.0.0.1:0", NewHandler(res, quietLogger()), quietLogger())

	ln, err := srv.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	base := "http://" + ln.Addr().String()

	resp, err := http.Get(WatchURL(base, episode))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(WatchURL(base, episode), "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(base + "/other")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerListenError(t *testing.T) {
	srv := NewServer("127.0.0.1:-1", http.NotFoundHandler(), quietLogger())
	_, err := srv.Listen()
	assert.Error(t, err)
}
