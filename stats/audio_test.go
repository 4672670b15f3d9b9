package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioPlayers(t *testing.T) {
	c := newTestCollectors(stubSettings{}, stubHost{})
	c.Players.Connect("g1", "c1")
	c.Players.Connect("g2", "c2")
	c.Players.Connect("g3", "c3")
	c.Players.SetPlaying("g2", true)

	assert.NoError(t, c.audio(context.Background()))

	audio := c.Store.Category(CategoryAudio)
	assert.Equal(t, float64(1), audio["Active Music Players"])
	assert.Equal(t, float64(3), audio["Music Players"])
	assert.Equal(t, float64(2), audio["Inactive Music Players"])
	assert.NotContains(t, audio, "Tracks Played", "play counts are detailed-only")
}

func TestAudioLightmode(t *testing.T) {
	c := newTestCollectors(stubSettings{lightmode: true}, stubHost{})
	c.Players.Connect("g1", "c1")

	assert.NoError(t, c.audio(context.Background()))
	assert.Empty(t, c.Store.Category(CategoryAudio))
}

func TestAudioPlayCounters(t *testing.T) {
	c := newTestCollectors(stubSettings{detailed: true}, stubHost{})
	c.Counters = stubCounters{
		"tracks_played":  "1,234",
		"youtube_tracks": "56",
	}

	assert.NoError(t, c.audio(context.Background()))

	audio := c.Store.Category(CategoryAudio)
	assert.Equal(t, float64(1234), audio["Tracks Played"])
	assert.Equal(t, float64(56), audio["YouTube Videos Played"])
	assert.Equal(t, float64(0), audio["Streams Played"], "missing counters should publish zero")
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"1,234", 1234},
		{"1,234,567", 1234567},
		{"42", 42},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCounter(tt.value), tt.value)
	}
}
