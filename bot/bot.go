package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/VTGare/gumi"
	"github.com/bwmarrin/discordgo"
	"github.com/servusdei2018/shards"
	"go.uber.org/zap"

	"github.com/predaa/martine/adventure"
	"github.com/predaa/martine/audio"
	"github.com/predaa/martine/bank"
	"github.com/predaa/martine/internal/config"
	"github.com/predaa/martine/internal/database/mongodb"
	"github.com/predaa/martine/lifetime"
	"github.com/predaa/martine/settings"
	"github.com/predaa/martine/stats"
	"github.com/predaa/martine/topgg"
)

type Bot struct {
	// models
	Settings  settings.Service
	Bank      bank.Service
	Adventure adventure.Service

	// misc.
	Log    *zap.SugaredLogger
	Config *config.Config
	Router *gumi.Router

	// services
	Players  *audio.Registry
	Lifetime *lifetime.Tracker
	Stats    *stats.Store

	Mgr *shards.Manager

	votes     *topgg.Client
	votesOnce sync.Once

	presences *presenceCache
	ready     chan struct{}
	readyOnce sync.Once
}

func New(cfg *config.Config, db *mongodb.Mongo, logger *zap.SugaredLogger) (*Bot, error) {
	mgr, err := shards.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create a shard manager: %w", err)
	}

	mgr.RegisterIntent(discordgo.IntentsAllWithoutPrivileged |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences)

	return &Bot{
		Settings:  settings.NewService(db, logger),
		Bank:      bank.NewService(db, logger),
		Log:       logger,
		Config:    cfg,
		Players:   audio.NewRegistry(),
		Stats:     stats.NewStore(),
		Mgr:       mgr,
		presences: newPresenceCache(),
		ready:     make(chan struct{}),
	}, nil
}

// WithAdventure wires in the optional adventure plugin's save records.
func (b *Bot) WithAdventure(service adventure.Service) {
	b.Adventure = service
}

// WithLifetime wires in the redis-backed lifetime counters.
func (b *Bot) WithLifetime(tracker *lifetime.Tracker) {
	b.Lifetime = tracker
}

func (b *Bot) AddRouter(router *gumi.Router) {
	b.Router = gumi.Create(router)
}

func (b *Bot) AddHandler(handler interface{}) {
	b.Mgr.AddHandler(handler)
}

// Ready is closed when the first shard reports ready.
func (b *Bot) Ready() <-chan struct{} {
	return b.ready
}

// Votes implements stats.VoteSource. It reports no data until the gateway
// handed us the bot's user ID and a top.gg token is configured.
func (b *Bot) Votes(ctx context.Context) *topgg.Votes {
	if b.votes == nil {
		return nil
	}

	return b.votes.Votes(ctx)
}

// Collectors assembles the statistics collectors over the bot's services.
func (b *Bot) Collectors() *stats.Collectors {
	collectors := &stats.Collectors{
		Store:     b.Stats,
		Host:      b,
		Settings:  b.Settings,
		Bank:      b.Bank,
		Adventure: b.Adventure,
		Players:   b.Players,
		Votes:     b,
		Log:       b.Log,
	}

	if b.Lifetime != nil {
		collectors.Counters = b.Lifetime
	}

	return collectors
}

func (b *Bot) Open() error {
	b.AddHandler(b.onReady)
	b.AddHandler(b.onRawEvent)

	if err := b.Mgr.Start(); err != nil {
		return fmt.Errorf("failed to start the shard manager: %w", err)
	}

	b.Log.Info("opened a connection to gateway")

	if b.Router != nil {
		for _, shard := range b.Mgr.Shards {
			b.Router.Initialize(shard.Session)
		}
	}

	return nil
}

func (b *Bot) Close() error {
	return b.Mgr.Shutdown()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.Log.Infof("%v is online. Session ID: %v. Guilds: %v", r.User.String(), r.SessionID, len(r.Guilds))

	if b.Config.TopGG != nil && b.Config.TopGG.Token != "" {
		b.votesOnce.Do(func() {
			b.votes = topgg.New(r.User.ID, b.Config.TopGG.Token)
		})
	}

	b.readyOnce.Do(func() {
		close(b.ready)
	})
}
