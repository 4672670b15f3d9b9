package bot

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/predaa/martine/host"
)

var verificationLevels = map[discordgo.VerificationLevel]string{
	discordgo.VerificationLevelNone:     "none",
	discordgo.VerificationLevelLow:      "low",
	discordgo.VerificationLevelMedium:   "medium",
	discordgo.VerificationLevelHigh:     "high",
	discordgo.VerificationLevelVeryHigh: "extreme",
}

// Snapshot implements host.Provider on top of the shard manager's session
// state.
func (b *Bot) Snapshot(ctx context.Context) (*host.Snapshot, error) {
	snapshot := &host.Snapshot{
		ShardCount: len(b.Mgr.Shards),
	}

	var total time.Duration
	for _, shard := range b.Mgr.Shards {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		session := shard.Session
		total += session.HeartbeatLatency()

		session.State.RLock()
		if snapshot.BotID == "" && session.State.User != nil {
			snapshot.BotID = session.State.User.ID
		}

		for _, guild := range session.State.Guilds {
			snapshot.Guilds = append(snapshot.Guilds, b.convertGuild(guild))
		}
		session.State.RUnlock()
	}

	if snapshot.ShardCount > 0 {
		snapshot.Latency = total / time.Duration(snapshot.ShardCount)
	}

	return snapshot, nil
}

// Latencies implements host.Provider.
func (b *Bot) Latencies() []time.Duration {
	latencies := make([]time.Duration, 0, len(b.Mgr.Shards))
	for _, shard := range b.Mgr.Shards {
		latencies = append(latencies, shard.Session.HeartbeatLatency())
	}

	return latencies
}

func (b *Bot) convertGuild(guild *discordgo.Guild) *host.Guild {
	if guild.Unavailable {
		return &host.Guild{ID: guild.ID, Unavailable: true}
	}

	converted := &host.Guild{
		ID:                guild.ID,
		Large:             guild.Large,
		Chunked:           guild.MemberCount > 0 && len(guild.Members) >= guild.MemberCount,
		MemberCount:       guild.MemberCount,
		RoleCount:         len(guild.Roles),
		PremiumTier:       int(guild.PremiumTier),
		VerificationLevel: verificationLevels[guild.VerificationLevel],
		Features:          guild.Features,
	}

	connected := make(map[string][]string)
	for _, state := range guild.VoiceStates {
		connected[state.ChannelID] = append(connected[state.ChannelID], state.UserID)
	}

	for _, channel := range guild.Channels {
		converted.Channels = append(converted.Channels, &host.Channel{
			ID:        channel.ID,
			Kind:      convertChannelKind(channel.Type),
			NSFW:      channel.NSFW,
			MemberIDs: connected[channel.ID],
		})
	}

	presences := make(map[string]*discordgo.Presence, len(guild.Presences))
	for _, presence := range guild.Presences {
		if presence.User != nil {
			presences[presence.User.ID] = presence
		}
	}

	for _, member := range guild.Members {
		if member.User == nil {
			continue
		}

		converted.Members = append(converted.Members, b.convertMember(member, presences[member.User.ID]))
	}

	for _, emoji := range guild.Emojis {
		converted.Emojis = append(converted.Emojis, &host.Emoji{
			ID:       emoji.ID,
			Animated: emoji.Animated,
		})
	}

	return converted
}

func (b *Bot) convertMember(member *discordgo.Member, presence *discordgo.Presence) *host.Member {
	converted := &host.Member{
		ID:           member.User.ID,
		Bot:          member.User.Bot,
		ClientStatus: b.presences.get(member.User.ID),
	}

	if presence != nil {
		converted.Status = host.Status(presence.Status)
		for _, activity := range presence.Activities {
			converted.Activities = append(converted.Activities, host.Activity{
				Type: convertActivityType(activity.Type),
			})
		}
	}

	return converted
}

func convertChannelKind(channelType discordgo.ChannelType) host.ChannelKind {
	switch channelType {
	case discordgo.ChannelTypeGuildText:
		return host.ChannelText
	case discordgo.ChannelTypeGuildVoice:
		return host.ChannelVoice
	case discordgo.ChannelTypeGuildCategory:
		return host.ChannelCategory
	case discordgo.ChannelTypeGuildNews:
		return host.ChannelNews
	case discordgo.ChannelTypeGuildStageVoice:
		return host.ChannelStage
	case discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return host.ChannelThread
	default:
		return host.ChannelOther
	}
}

func convertActivityType(activityType discordgo.ActivityType) host.ActivityType {
	switch activityType {
	case discordgo.ActivityTypeStreaming:
		return host.ActivityStreaming
	case discordgo.ActivityTypeListening:
		return host.ActivityListening
	case discordgo.ActivityTypeWatching:
		return host.ActivityWatching
	case discordgo.ActivityTypeCustom:
		return host.ActivityCustom
	case discordgo.ActivityTypeCompeting:
		return host.ActivityCompeting
	default:
		return host.ActivityGaming
	}
}
