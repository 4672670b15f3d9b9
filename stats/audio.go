package stats

import (
	"context"
	"regexp"
	"strconv"
)

// playCounters maps lifetime counter names to their published labels.
var playCounters = []struct {
	name  string
	label string
}{
	{"tracks_played", "Tracks Played"},
	{"streams_played", "Streams Played"},
	{"yt_streams_played", "YouTube Streams Played"},
	{"mixer_streams_played", "Mixer Streams Played"},
	{"ttv_streams_played", "Twitch Streams Played"},
	{"other_streams_played", "Other Streams Played"},
	{"youtube_tracks", "YouTube Videos Played"},
	{"soundcloud_tracks", "SoundCloud Tracks Played"},
	{"bandcamp_tracks", "Bandcamp Tracks Played"},
	{"vimeo_tracks", "Vimeo Tracks Played"},
	{"mixer_tracks", "Mixer Tracks Played"},
	{"twitch_tracks", "Twitch Videos Played"},
	{"other_tracks", "Other Tracks Played"},
}

var nonDigits = regexp.MustCompile(`\D`)

// collectAudio publishes music player counts, plus per-source lifetime play
// counts when detailed mode is on and a counter source is wired in.
func (c *Collectors) collectAudio(ctx context.Context) error {
	if err := c.audio(ctx); err != nil {
		c.Log.Errorf("audio stats pass failed: %v", err)
	}

	return nil
}

func (c *Collectors) audio(ctx context.Context) error {
	lightmode, err := c.Settings.Lightmode(ctx)
	if err != nil {
		return err
	}
	if lightmode {
		return nil
	}

	counter := counters{}

	active := c.Players.Active()
	total := c.Players.Total()
	counter["Active Music Players"] = float64(active)
	counter["Music Players"] = float64(total)
	counter["Inactive Music Players"] = float64(total - active)

	detailed, err := c.Settings.Detailed(ctx)
	if err != nil {
		return err
	}

	if detailed && c.Counters != nil {
		for _, pc := range playCounters {
			value, err := c.Counters.Counter(ctx, pc.name)
			if err != nil {
				return err
			}

			counter[pc.label] = float64(parseCounter(value))
		}
	}

	c.Store.Replace(CategoryAudio, counter)
	return nil
}

// parseCounter turns a possibly human-formatted counter ("1,234") into an
// integer by dropping everything that is not a digit.
func parseCounter(value string) int64 {
	digits := nonDigits.ReplaceAllString(value, "")
	if digits == "" {
		return 0
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}

	return n
}
