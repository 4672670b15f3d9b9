// Package lifetime keeps named event counters that survive restarts.
// Handlers increment them as gateway events arrive; the audio statistics
// collector and the usage command read them back.
package lifetime

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Counter names incremented by the event handlers and read by consumers.
const (
	EventMessagesRead     = "messages_read"
	EventMessagesSent     = "msg_sent"
	EventGuildJoin        = "guild_join"
	EventGuildRemove      = "guild_remove"
	EventUsersJoinedVC    = "users_joined_bot_music_room"
	EventTracksPlayed     = "tracks_played"
	EventStreamsPlayed    = "streams_played"
	EventYouTubeStreams   = "yt_streams_played"
	EventMixerStreams     = "mixer_streams_played"
	EventTwitchStreams    = "ttv_streams_played"
	EventOtherStreams     = "other_streams_played"
	EventYouTubeTracks    = "youtube_tracks"
	EventSoundCloudTracks = "soundcloud_tracks"
	EventBandcampTracks   = "bandcamp_tracks"
	EventVimeoTracks      = "vimeo_tracks"
	EventMixerTracks      = "mixer_tracks"
	EventTwitchTracks     = "twitch_tracks"
	EventOtherTracks      = "other_tracks"
)

type Tracker struct {
	client *redis.Client
	start  time.Time
}

func New(addr string) (*Tracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		MaxRetries: 5,
	})

	status := client.Ping(context.Background())
	if status.Err() != nil {
		return nil, status.Err()
	}

	return &Tracker{
		client: client,
		start:  time.Now(),
	}, nil
}

func key(event string) string {
	return fmt.Sprintf("lifetime:%v", event)
}

// Increment bumps an event counter by one.
func (t *Tracker) Increment(ctx context.Context, event string) error {
	return t.client.Incr(ctx, key(event)).Err()
}

// Value returns the raw count of an event. Unknown events count as zero.
func (t *Tracker) Value(ctx context.Context, event string) (int64, error) {
	value, err := t.client.Get(ctx, key(event)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(value, 10, 64)
}

// Counter returns the count of an event formatted for humans, e.g. "1,234".
func (t *Tracker) Counter(ctx context.Context, event string) (string, error) {
	value, err := t.Value(ctx, event)
	if err != nil {
		return "", err
	}

	return Humanize(value), nil
}

// Uptime reports how long this tracker instance has been running.
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.start)
}

func (t *Tracker) Close() error {
	return t.client.Close()
}

// Humanize renders an integer with comma thousands separators.
func Humanize(n int64) string {
	s := strconv.FormatInt(n, 10)

	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	return sign + s
}
