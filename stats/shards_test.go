package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShards(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{
		latencies: []time.Duration{100 * time.Millisecond, 250 * time.Millisecond},
	})

	assert.NoError(t, c.collectShards(context.Background()))
	assert.Equal(t, map[string]float64{
		"1": 100,
		"2": 250,
	}, c.Store.Category(CategoryShards))
}

func TestShardsCancelled(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{
		latencies: []time.Duration{100 * time.Millisecond},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, c.collectShards(ctx))
	assert.Empty(t, c.Store.Category(CategoryShards))
}
