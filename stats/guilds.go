package stats

import (
	"context"

	"github.com/predaa/martine/host"
)

// A member's first few activities are enough to classify them; nobody
// meaningfully runs more than this many at once.
const maxActivities = 5

var verificationNames = map[string]string{
	"none":    "None",
	"low":     "Low",
	"medium":  "Medium",
	"high":    "High",
	"extreme": "Extreme",
}

var featureNames = map[string]string{
	"VIP_REGIONS":                 "VIP Voice Servers",
	"VANITY_URL":                  "Vanity URL",
	"INVITE_SPLASH":               "Splash Invite",
	"VERIFIED":                    "Verified",
	"PARTNERED":                   "Partnered",
	"MORE_EMOJI":                  "More Emojis",
	"DISCOVERABLE":                "Server Discovery",
	"FEATURABLE":                  "Featurable",
	"COMMERCE":                    "Commerce",
	"PUBLIC":                      "Public",
	"NEWS":                        "News Channels",
	"BANNER":                      "Banner Image",
	"ANIMATED_ICON":               "Animated Icon",
	"PUBLIC_DISABLED":             "Public disabled",
	"MEMBER_LIST_DISABLED":        "Member list disabled",
	"ENABLED_DISCOVERABLE_BEFORE": "Was in Server Discovery",
	"WELCOME_SCREEN_ENABLED":      "Welcome Screen",
}

// collectGuilds runs the guild/bot statistics pass. Host API errors abandon
// the whole pass; the next cycle retries from scratch.
func (c *Collectors) collectGuilds(ctx context.Context) error {
	if err := c.guilds(ctx); err != nil {
		c.Log.Errorf("guild stats pass failed: %v", err)
	}

	return nil
}

func (c *Collectors) guilds(ctx context.Context) error {
	lightmode, err := c.Settings.Lightmode(ctx)
	if err != nil {
		return err
	}

	var detailed, wantVotes bool
	if !lightmode {
		if detailed, err = c.Settings.Detailed(ctx); err != nil {
			return err
		}

		if wantVotes, err = c.Settings.TopGG(ctx); err != nil {
			return err
		}
	}

	snap, err := c.Host.Snapshot(ctx)
	if err != nil {
		return err
	}

	var (
		counter       = counters{}
		serverCounter = counters{}
		featureCount  = counters{}
		verifyCount   = counters{}
		temp          = sets{}
		serverTemp    = sets{}
	)

	if wantVotes && c.Votes != nil {
		if votes := c.Votes.Votes(ctx); votes != nil {
			if votes.MonthlyPoints > 0 {
				counter["Monthly Votes"] = float64(votes.MonthlyPoints)
			}
			if votes.Points > 0 {
				counter["Votes"] = float64(votes.Points)
			}
		}
	}

	serverCounter["Total"] = float64(len(snap.Guilds))
	counter["Discord Latency"] = float64(snap.Latency.Milliseconds())
	counter["Shards"] = float64(snap.ShardCount)

	for _, guild := range snap.Guilds {
		if guild.Unavailable {
			serverTemp.add("Unavailable", guild.ID)
			continue
		}

		serverCounter["Members"] += float64(guild.MemberCount)

		if !lightmode {
			if detailed {
				for _, feature := range guild.Features {
					name, ok := featureNames[feature]
					if !ok {
						name = "Unknown"
					}
					featureCount[name]++
				}

				name, ok := verificationNames[guild.VerificationLevel]
				if !ok {
					name = "Unknown"
				}
				verifyCount[name]++
			}

			serverCounter["Roles"] += float64(guild.RoleCount)
			if guild.Large {
				serverTemp.add("Large", guild.ID)
			}
			if !guild.Chunked {
				serverTemp.add("Unchunked", guild.ID)
			}

			if guild.PremiumTier != 0 {
				serverTemp.add("Nitro Boosted", guild.ID)
			}
			switch guild.PremiumTier {
			case 1:
				serverTemp.add("Tier 1 Nitro", guild.ID)
			case 2:
				serverTemp.add("Tier 2 Nitro", guild.ID)
			case 3:
				serverTemp.add("Tier 3 Nitro", guild.ID)
			}

			members := make(map[string]*host.Member, len(guild.Members))
			for _, member := range guild.Members {
				members[member.ID] = member
			}

			for _, channel := range guild.Channels {
				serverCounter["Server Channels"]++

				switch channel.Kind {
				case host.ChannelText:
					serverCounter["Text Channels"]++
					if channel.NSFW {
						temp.add("NSFW Text Channels", channel.ID)
					}
				case host.ChannelNews:
					serverCounter["Text Channels"]++
					if channel.NSFW {
						temp.add("NSFW Text Channels", channel.ID)
					}
					temp.add("News Text Channels", channel.ID)
				case host.ChannelVoice, host.ChannelStage:
					serverCounter["Voice Channels"]++
					counter["Users in a VC"] += float64(len(channel.MemberIDs))

					// The with-me breakdown needs the bot's own member
					// object; in an unchunked guild the voice state may
					// name the bot without it being resolved yet.
					withMe := false
					for _, id := range channel.MemberIDs {
						if id == snap.BotID {
							_, withMe = members[id]
							break
						}
					}

					if withMe {
						counter["Users in a VC with me"] += float64(len(channel.MemberIDs) - 1)

						bots := 0
						for _, id := range channel.MemberIDs {
							member, ok := members[id]
							if !ok {
								continue
							}

							if member.Bot {
								bots++
							}
							if member.ClientStatus.OnMobile() {
								temp.add("Users in a VC on Mobile", id)
							}
						}

						// The bot itself is one of the bots in the channel.
						serverCounter["Bots in a VC with me"] += float64(bots - 1)
					}
				case host.ChannelCategory:
					serverCounter["Channel Categories"]++
				}
			}

			for _, emoji := range guild.Emojis {
				serverCounter["Emojis"]++
				if emoji.Animated {
					serverCounter["Animated Emojis"]++
				} else {
					serverCounter["Static Emojis"]++
				}
			}
		}

		for _, member := range guild.Members {
			temp.add("Unique Users", member.ID)
			if member.Bot {
				temp.add("Bots", member.ID)
			} else {
				temp.add("Humans", member.ID)
			}

			if !detailed {
				continue
			}

			c.classifyMember(temp, member)
		}
	}

	temp.flattenInto(counter)
	serverTemp.flattenInto(serverCounter)

	c.Store.Replace(CategoryBot, counter)
	c.Store.Replace(CategoryGuilds, serverCounter)
	if detailed {
		c.Store.Replace(CategoryGuildFeatures, featureCount)
		c.Store.Replace(CategoryGuildVerification, verifyCount)
	}

	return nil
}

// classifyMember runs the detailed-mode presence breakdown for one member.
func (c *Collectors) classifyMember(temp sets, member *host.Member) {
	if member.ClientStatus.OnMobile() {
		temp.add("Mobile Users", member.ID)
	}

	streaming := false
	activities := member.Activities
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}

	for _, activity := range activities {
		switch activity.Type {
		case host.ActivityStreaming:
			addSplit(temp, member, "Users Streaming", "Bots Streaming", "Humans Streaming")
			streaming = true
		case host.ActivityGaming:
			addSplit(temp, member, "Users Gaming", "Bots Gaming", "Humans Gaming")
		case host.ActivityListening:
			addSplit(temp, member, "Users Listening", "Bots Listening", "Humans Listening")
		case host.ActivityWatching:
			addSplit(temp, member, "Users Watching", "Bots Watching", "Humans Watching")
		case host.ActivityCustom:
			addSplit(temp, member, "Users with Custom Status", "Bots with Custom Status", "Humans with Custom Status")
		}
	}

	if !streaming {
		if member.Status.Known() && member.Status != host.StatusOffline {
			addSplit(temp, member, "Users Connected", "Bots Connected", "Humans Connected")
		}

		switch member.Status {
		case host.StatusOnline:
			addSplit(temp, member, "Users Online", "Bots Online", "Humans Online")
		case host.StatusIdle:
			addSplit(temp, member, "Idle Users", "Idle Bots", "Idle Humans")
		case host.StatusDoNotDisturb:
			addSplit(temp, member, "Users in Do Not Disturb", "Bots in Do Not Disturb", "Humans in Do Not Disturb")
		case host.StatusOffline:
			addSplit(temp, member, "Users Offline", "Bots Offline", "Humans Offline")
		}
	}

	platformStatus(temp, member.ID, member.ClientStatus.Mobile, "Mobile")
	platformStatus(temp, member.ID, member.ClientStatus.Desktop, "Desktop")
	platformStatus(temp, member.ID, member.ClientStatus.Web, "Browser")
}

func addSplit(temp sets, member *host.Member, users, bots, humans string) {
	temp.add(users, member.ID)
	if member.Bot {
		temp.add(bots, member.ID)
	} else {
		temp.add(humans, member.ID)
	}
}

// platformStatus buckets one platform's presence. An unreported status lands
// in no bucket, so per-platform offline totals only cover members whose
// client status has actually been seen.
func platformStatus(temp sets, id string, status host.Status, platform string) {
	switch status {
	case host.StatusOnline:
		temp.add("Users Online on "+platform, id)
	case host.StatusIdle:
		temp.add("Users Idle on "+platform, id)
	case host.StatusDoNotDisturb:
		temp.add("Users in Do Not Disturb on "+platform, id)
	case host.StatusOffline:
		temp.add("Users Offline on "+platform, id)
	}
}
