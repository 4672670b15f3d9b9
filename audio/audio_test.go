package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Zero(t, r.Total())

	r.Connect("g1", "c1")
	r.Connect("g2", "c2")
	r.SetPlaying("g1", true)

	assert.Equal(t, 2, r.Total())
	assert.Equal(t, 1, r.Active())

	player, ok := r.Player("g1")
	assert.True(t, ok)
	assert.Equal(t, "c1", player.ChannelID)
	assert.True(t, player.Playing)

	// reconnecting to another channel resets the playing state
	r.Connect("g1", "c3")
	player, _ = r.Player("g1")
	assert.Equal(t, "c3", player.ChannelID)
	assert.False(t, player.Playing)
	assert.Zero(t, r.Active())

	r.Disconnect("g2")
	_, ok = r.Player("g2")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Total())
}

func TestSetPlayingUnknownGuild(t *testing.T) {
	r := NewRegistry()
	r.SetPlaying("missing", true)

	assert.Zero(t, r.Active())
}
