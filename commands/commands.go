package commands

import "github.com/predaa/martine/bot"

func RegisterCommands(b *bot.Bot) {
	generalGroup(b)
	ownerGroup(b)
}
