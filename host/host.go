// Package host holds a read-only snapshot of the Discord object graph the
// statistics collectors traverse. Collectors never touch gateway state
// directly; the bot builds a Snapshot per cycle and hands it over.
package host

import (
	"context"
	"time"
)

// Status mirrors Discord presence statuses. An empty Status means the
// platform never reported anything for that user.
type Status string

const (
	StatusOnline       Status = "online"
	StatusIdle         Status = "idle"
	StatusDoNotDisturb Status = "dnd"
	StatusOffline      Status = "offline"
)

// Known reports whether the status carries any information at all.
func (s Status) Known() bool {
	return s != ""
}

type ActivityType int

const (
	ActivityGaming ActivityType = iota
	ActivityStreaming
	ActivityListening
	ActivityWatching
	ActivityCustom
	ActivityCompeting
)

type ChannelKind int

const (
	ChannelText ChannelKind = iota
	ChannelVoice
	ChannelCategory
	ChannelNews
	ChannelStage
	ChannelThread
	ChannelOther
)

type Activity struct {
	Type ActivityType
}

// ClientStatus is the per-platform presence of a member.
type ClientStatus struct {
	Desktop Status
	Mobile  Status
	Web     Status
}

// OnMobile reports whether the member has an active mobile session.
func (cs ClientStatus) OnMobile() bool {
	return cs.Mobile.Known() && cs.Mobile != StatusOffline
}

type Member struct {
	ID           string
	Bot          bool
	Status       Status
	ClientStatus ClientStatus
	Activities   []Activity
}

type Channel struct {
	ID   string
	Kind ChannelKind
	NSFW bool

	// MemberIDs lists users connected to the channel. Voice and stage
	// channels only.
	MemberIDs []string
}

type Emoji struct {
	ID       string
	Animated bool
}

// Guild is a single server. An unavailable guild carries its ID and nothing
// else: Discord withholds the rest during an outage.
type Guild struct {
	ID                string
	Unavailable       bool
	Large             bool
	Chunked           bool
	MemberCount       int
	RoleCount         int
	PremiumTier       int
	VerificationLevel string
	Features          []string
	Channels          []*Channel
	Members           []*Member
	Emojis            []*Emoji
}

// Snapshot is one cycle's view of everything the collectors need.
type Snapshot struct {
	BotID      string
	ShardCount int
	Latency    time.Duration
	Guilds     []*Guild
}

// Provider supplies host state to the collectors. Implemented by the bot on
// top of its shard manager.
type Provider interface {
	// Snapshot captures the current guild graph.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Latencies returns the heartbeat round-trip of every shard, indexed
	// by shard ID.
	Latencies() []time.Duration
}
