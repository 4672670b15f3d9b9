package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/VTGare/embeds"
	"github.com/VTGare/gumi"

	"github.com/predaa/martine/bot"
	"github.com/predaa/martine/lifetime"
	"github.com/predaa/martine/stats"
)

func generalGroup(b *bot.Bot) {
	group := "general"

	b.Router.RegisterCmd(&gumi.Command{
		Name:        "ping",
		Group:       group,
		Description: "Checks bot's availability and response time.",
		Usage:       "m!ping",
		Example:     "m!ping",
		Exec:        ping(b),
	})

	b.Router.RegisterCmd(&gumi.Command{
		Name:        "stats",
		Group:       group,
		Aliases:     []string{"statistics"},
		Description: "Shows collected statistics, optionally a single category.",
		Usage:       "m!stats [category]",
		Example:     "m!stats guilds",
		RateLimiter: gumi.NewRateLimiter(5 * time.Second),
		Exec:        showStats(b),
	})

	b.Router.RegisterCmd(&gumi.Command{
		Name:        "usage",
		Group:       group,
		Description: "Shows lifetime usage counters.",
		Usage:       "m!usage",
		Example:     "m!usage",
		RateLimiter: gumi.NewRateLimiter(5 * time.Second),
		Exec:        usage(b),
	})
}

func ping(b *bot.Bot) func(ctx *gumi.Ctx) error {
	return func(ctx *gumi.Ctx) error {
		eb := embeds.NewBuilder()

		eb.Title("🏓 Pong!")
		for shard, latency := range b.Latencies() {
			eb.AddField(
				fmt.Sprintf("Shard %v", shard+1),
				latency.Round(time.Millisecond).String(),
				true,
			)
		}

		return ctx.ReplyEmbed(eb.Finalize())
	}
}

var statCategories = map[string]stats.Category{
	"bot":          stats.CategoryBot,
	"guilds":       stats.CategoryGuilds,
	"shards":       stats.CategoryShards,
	"audio":        stats.CategoryAudio,
	"currency":     stats.CategoryCurrency,
	"features":     stats.CategoryGuildFeatures,
	"verification": stats.CategoryGuildVerification,
	"adventure":    stats.CategoryAdventure,
}

func showStats(b *bot.Bot) func(ctx *gumi.Ctx) error {
	return func(ctx *gumi.Ctx) error {
		eb := embeds.NewBuilder()

		if ctx.Args.Len() > 0 {
			name := strings.ToLower(ctx.Args.Get(0).Raw)
			cat, ok := statCategories[name]
			if !ok {
				return ctx.ReplyEmbed(eb.FailureTemplate(
					fmt.Sprintf("Unknown category `%v`.", name),
				).Finalize())
			}

			eb.Title(fmt.Sprintf("Statistics: %v", name))
			eb.Description(formatCounters(b.Stats.Category(cat)))
			return ctx.ReplyEmbed(eb.Finalize())
		}

		eb.Title("Statistics")
		botStats := b.Stats.Category(stats.CategoryBot)
		eb.AddField("Shards", fmt.Sprintf("%.0f", botStats["Shards"]), true)
		eb.AddField("Latency", fmt.Sprintf("%.0fms", botStats["Discord Latency"]), true)
		if unique, ok := botStats["Unique Users"]; ok {
			eb.AddField("Unique Users", fmt.Sprintf("%.0f", unique), true)
		}

		guilds := b.Stats.Category(stats.CategoryGuilds)
		eb.AddField("Servers", fmt.Sprintf("%.0f", guilds["Total"]), true)
		for _, label := range []string{"Members", "Text Channels", "Voice Channels"} {
			if value, ok := guilds[label]; ok {
				eb.AddField(label, fmt.Sprintf("%.0f", value), true)
			}
		}

		if currency := b.Stats.Category(stats.CategoryCurrency); len(currency) > 0 {
			eb.AddField(
				"Currency In Circulation",
				lifetime.Humanize(int64(currency["Currency In Circulation"])),
				true,
			)
		}

		return ctx.ReplyEmbed(eb.Finalize())
	}
}

var usageEvents = []struct {
	label string
	event string
}{
	{"Messages Read", lifetime.EventMessagesRead},
	{"Messages Sent", lifetime.EventMessagesSent},
	{"Guilds Joined", lifetime.EventGuildJoin},
	{"Guilds Removed", lifetime.EventGuildRemove},
	{"Tracks Played", lifetime.EventTracksPlayed},
	{"Streams Played", lifetime.EventStreamsPlayed},
}

func usage(b *bot.Bot) func(ctx *gumi.Ctx) error {
	return func(ctx *gumi.Ctx) error {
		eb := embeds.NewBuilder()

		if b.Lifetime == nil {
			return ctx.ReplyEmbed(eb.FailureTemplate("Lifetime counters are disabled.").Finalize())
		}

		eb.Title("Lifetime usage")
		eb.AddField("Uptime", b.Lifetime.Uptime().Round(time.Second).String())

		for _, entry := range usageEvents {
			counter, err := b.Lifetime.Counter(context.Background(), entry.event)
			if err != nil {
				return err
			}

			eb.AddField(entry.label, counter, true)
		}

		return ctx.ReplyEmbed(eb.Finalize())
	}
}

func formatCounters(counters map[string]float64) string {
	if len(counters) == 0 {
		return "No data collected yet."
	}

	labels := make([]string, 0, len(counters))
	for label := range counters {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var sb strings.Builder
	for _, label := range labels {
		fmt.Fprintf(&sb, "**%v**: %v\n", label, lifetime.Humanize(int64(counters[label])))
	}

	return sb.String()
}
