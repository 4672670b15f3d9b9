package topgg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New("123", "token")
	client.baseURL = srv.URL
	return client
}

func TestVotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get("Authorization"))

		w.Write([]byte(`{"points": 1500, "monthlyPoints": 120}`))
	})

	votes := client.Votes(context.Background())
	assert.NotNil(t, votes)
	assert.Equal(t, int64(1500), votes.Points)
	assert.Equal(t, int64(120), votes.MonthlyPoints)
}

func TestVotesNoToken(t *testing.T) {
	client := New("123", "")
	assert.Nil(t, client.Votes(context.Background()))
}

func TestVotesServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.Nil(t, client.Votes(context.Background()))
}

func TestVotesMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	assert.Nil(t, client.Votes(context.Background()))
}

func TestVotesTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	})
	client.client.Timeout = 10 * time.Millisecond

	assert.Nil(t, client.Votes(context.Background()))
}

func TestVotesCached(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"points": 5}`))
	})

	first := client.Votes(context.Background())
	second := client.Votes(context.Background())

	assert.NotNil(t, first)
	assert.NotNil(t, second)
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, 1, calls, "the second lookup should come from cache")
}
