// Package topgg reads vote counts for the bot from the top.gg listing
// service. The lookup is best-effort: any failure is treated as "no data"
// and the next collection cycle simply tries again.
package topgg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache"
)

const endpoint = "https://top.gg/api/bots"

// Votes is the slice of a top.gg bot object the stats collectors care about.
type Votes struct {
	Points        int64 `json:"points"`
	MonthlyPoints int64 `json:"monthlyPoints"`
}

type Client struct {
	client  *http.Client
	cache   *ttlcache.Cache
	baseURL string
	token   string
	botID   string
}

// New creates a vote client for the given bot. An empty token produces a
// client that always reports no data.
func New(botID, token string) *Client {
	cache := ttlcache.NewCache()
	cache.SetTTL(5 * time.Minute)

	return &Client{
		client:  &http.Client{Timeout: 2 * time.Second},
		cache:   cache,
		baseURL: endpoint,
		token:   token,
		botID:   botID,
	}
}

// Votes returns the current vote counts, or nil when no credential is
// configured, the request fails, times out, or the service responds with
// anything but 200. Responses are cached for a few minutes; votes move
// slowly compared to the collection interval.
func (c *Client) Votes(ctx context.Context) *Votes {
	if c.token == "" {
		return nil
	}

	if cached, ok := c.cache.Get(c.botID); ok {
		votes := cached.(Votes)
		return &votes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%v/%v", c.baseURL, c.botID), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var votes Votes
	if err := json.NewDecoder(resp.Body).Decode(&votes); err != nil {
		return nil
	}

	c.cache.Set(c.botID, votes)
	return &votes
}
