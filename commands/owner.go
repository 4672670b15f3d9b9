package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/VTGare/embeds"
	"github.com/VTGare/gumi"

	"github.com/predaa/martine/bot"
)

func ownerGroup(b *bot.Bot) {
	group := "owner"

	b.Router.RegisterCmd(&gumi.Command{
		Name:        "statsmode",
		Group:       group,
		Description: "Owner's command to toggle statistics collection flags.",
		Usage:       "m!statsmode <lightmode|detailed|topgg> <true|false>",
		Example:     "m!statsmode lightmode true",
		AuthorOnly:  true,
		Exec:        statsmode(b),
	})
}

func statsmode(b *bot.Bot) func(ctx *gumi.Ctx) error {
	return func(ctx *gumi.Ctx) error {
		eb := embeds.NewBuilder()

		reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if ctx.Args.Len() == 0 {
			lightmode, err := b.Settings.Lightmode(reqCtx)
			if err != nil {
				return err
			}

			detailed, err := b.Settings.Detailed(reqCtx)
			if err != nil {
				return err
			}

			topgg, err := b.Settings.TopGG(reqCtx)
			if err != nil {
				return err
			}

			eb.Title("Statistics flags")
			eb.AddField("Lightmode", strconv.FormatBool(lightmode), true)
			eb.AddField("Detailed", strconv.FormatBool(detailed), true)
			eb.AddField("Top.gg", strconv.FormatBool(topgg), true)

			return ctx.ReplyEmbed(eb.Finalize())
		}

		if ctx.Args.Len() < 2 {
			return ctx.ReplyEmbed(eb.FailureTemplate(
				fmt.Sprintf("Incorrect usage. Example: `%v`", ctx.Command.Example),
			).Finalize())
		}

		enabled, err := strconv.ParseBool(ctx.Args.Get(1).Raw)
		if err != nil {
			return ctx.ReplyEmbed(eb.FailureTemplate(
				fmt.Sprintf("`%v` is not a boolean.", ctx.Args.Get(1).Raw),
			).Finalize())
		}

		flag := ctx.Args.Get(0).Raw
		switch flag {
		case "lightmode":
			err = b.Settings.SetLightmode(reqCtx, enabled)
		case "detailed":
			err = b.Settings.SetDetailed(reqCtx, enabled)
		case "topgg":
			err = b.Settings.SetTopGG(reqCtx, enabled)
		default:
			return ctx.ReplyEmbed(eb.FailureTemplate(
				fmt.Sprintf("Unknown flag `%v`.", flag),
			).Finalize())
		}

		if err != nil {
			return err
		}

		return ctx.ReplyEmbed(eb.SuccessTemplate(
			fmt.Sprintf("Set `%v` to `%v`.", flag, enabled),
		).Finalize())
	}
}
