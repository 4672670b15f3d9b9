package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/VTGare/embeds"
	"github.com/VTGare/gumi"
	"github.com/bwmarrin/discordgo"

	"github.com/predaa/martine/bot"
	"github.com/predaa/martine/lifetime"
)

// PrefixResolver returns an array of configured prefixes and bot mentions.
func PrefixResolver(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) []string {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) []string {
		mention := fmt.Sprintf("<@%v> ", s.State.User.ID)
		mentionExcl := fmt.Sprintf("<@!%v> ", s.State.User.ID)

		return append([]string{mention, mentionExcl}, b.Config.Discord.Prefixes...)
	}
}

// All returns every gateway handler the bot registers on startup.
func All(b *bot.Bot) []interface{} {
	return []interface{}{
		OnMessageCreate(b), OnGuildCreate(b), OnGuildDelete(b), OnVoiceStateUpdate(b),
	}
}

func OnMessageCreate(b *bot.Bot) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		count(b, lifetime.EventMessagesRead)
	}
}

// OnGuildCreate logs newly joined servers and bumps the lifetime counter.
// GUILD_CREATE also fires for guilds becoming available again after an
// outage, which the unavailability flag filters out.
func OnGuildCreate(b *bot.Bot) func(*discordgo.Session, *discordgo.GuildCreate) {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if g.Unavailable {
			return
		}

		b.Log.Infof("Joined a guild. Name: %v. ID: %v", g.Name, g.ID)
		count(b, lifetime.EventGuildJoin)
	}
}

// OnGuildDelete logs guild outages and guilds that kicked the bot out.
func OnGuildDelete(b *bot.Bot) func(*discordgo.Session, *discordgo.GuildDelete) {
	return func(s *discordgo.Session, g *discordgo.GuildDelete) {
		if g.Unavailable {
			b.Log.Infof("Guild outage. ID: %v", g.ID)
			return
		}

		b.Log.Infof("Kicked/banned from guild: %v", g.ID)
		count(b, lifetime.EventGuildRemove)
	}
}

// OnVoiceStateUpdate counts users joining a voice channel the bot is
// playing audio in.
func OnVoiceStateUpdate(b *bot.Bot) func(*discordgo.Session, *discordgo.VoiceStateUpdate) {
	return func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		if v.UserID == s.State.User.ID || v.ChannelID == "" {
			return
		}

		if v.BeforeUpdate != nil && v.BeforeUpdate.ChannelID == v.ChannelID {
			return
		}

		player, ok := b.Players.Player(v.GuildID)
		if !ok || player.ChannelID != v.ChannelID {
			return
		}

		count(b, lifetime.EventUsersJoinedVC)
	}
}

// OnError renders command failures back to the channel and logs them.
func OnError(b *bot.Bot) func(*gumi.Ctx, error) {
	return func(ctx *gumi.Ctx, err error) {
		if ctx.Command != nil {
			b.Log.Errorf("An error occured. Command: %v. Arguments: [%v]. Error: %v", ctx.Command.Name, ctx.Args.Raw, err)
		} else {
			b.Log.Errorf("An error occured. Error: %v", err)
		}

		eb := embeds.NewBuilder()
		eb.ErrorTemplate(err.Error())
		ctx.ReplyEmbed(eb.Finalize())
	}
}

func OnRateLimit(b *bot.Bot) func(*gumi.Ctx) error {
	return func(ctx *gumi.Ctx) error {
		duration, err := ctx.Command.RateLimiter.Expires(ctx.Event.Author.ID)
		if err != nil {
			return err
		}

		eb := embeds.NewBuilder()
		eb.FailureTemplate(fmt.Sprintf("You're being rate limited. Try again in **%v**.", duration.Round(time.Second)))

		return ctx.ReplyEmbed(eb.Finalize())
	}
}

func OnPanic(b *bot.Bot) func(*gumi.Ctx, interface{}) {
	return func(ctx *gumi.Ctx, r interface{}) {
		b.Log.Errorf("%v", r)
	}
}

func count(b *bot.Bot, event string) {
	if b.Lifetime == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Lifetime.Increment(ctx, event); err != nil {
		b.Log.With("error", err, "event", event).Warn("failed to increment a lifetime counter")
	}
}
