package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdventure(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{})
	c.Adventure = stubAdventure{
		users: map[string]map[string]any{
			"u1": {
				"set_items": int32(2),
				"rebirths":  int64(3),
				"adventures": map[string]any{
					"wins":  float64(7),
					"loses": 3,
					"fight": 1,
				},
			},
			// an old save without the adventures sub-record
			"u2": {
				"set_items": 1,
			},
		},
	}

	assert.NoError(t, c.collectAdventure(context.Background()))

	adventure := c.Store.Category(CategoryAdventure)
	assert.Equal(t, float64(3), adventure["Set Items"])
	assert.Equal(t, float64(3), adventure["Rebirths"])
	assert.Equal(t, float64(7), adventure["Wins"])
	assert.Equal(t, float64(3), adventure["Losses"])
	assert.Equal(t, float64(10), adventure["Adventures"])
	assert.Equal(t, float64(70), adventure["Win Percentage"])
	assert.Equal(t, float64(30), adventure["Loss Percentage"])
	assert.Equal(t, float64(1), adventure["Physical Attacks"])
	assert.Equal(t, float64(0), adventure["Fumbles"])
}

func TestAdventureNoRecords(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{})
	c.Adventure = stubAdventure{users: map[string]map[string]any{}}

	assert.NoError(t, c.collectAdventure(context.Background()))

	adventure := c.Store.Category(CategoryAdventure)
	assert.Equal(t, float64(0), adventure["Wins"])
	assert.Equal(t, float64(0), adventure["Losses"])
	assert.Equal(t, float64(0), adventure["Adventures"])
	assert.Equal(t, float64(0), adventure["Win Percentage"])
	assert.Equal(t, float64(0), adventure["Loss Percentage"])
}

func TestAdventureDisabled(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{})

	assert.NoError(t, c.collectAdventure(context.Background()), "a bot without the plugin skips the pass")
	assert.Empty(t, c.Store.Category(CategoryAdventure))
}

func TestAdventureLightmode(t *testing.T) {
	c := newTestCollectors(stubSettings{lightmode: true}, stubHost{})
	c.Adventure = stubAdventure{
		users: map[string]map[string]any{"u1": {"set_items": 5}},
	}

	assert.NoError(t, c.collectAdventure(context.Background()))
	assert.Empty(t, c.Store.Category(CategoryAdventure))
}
