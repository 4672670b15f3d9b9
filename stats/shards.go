package stats

import (
	"context"
	"strconv"
)

// collectShards publishes per-shard heartbeat latency in whole milliseconds,
// keyed by 1-based shard index.
func (c *Collectors) collectShards(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	counter := counters{}
	for index, latency := range c.Host.Latencies() {
		counter[strconv.Itoa(index+1)] = float64(latency.Milliseconds())
	}

	c.Store.Replace(CategoryShards, counter)
	return nil
}
