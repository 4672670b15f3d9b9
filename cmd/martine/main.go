package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VTGare/gumi"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/predaa/martine/adventure"
	"github.com/predaa/martine/bot"
	"github.com/predaa/martine/commands"
	"github.com/predaa/martine/handlers"
	"github.com/predaa/martine/internal/config"
	"github.com/predaa/martine/internal/database/mongodb"
	"github.com/predaa/martine/internal/logger"
	"github.com/predaa/martine/lifetime"
	"github.com/predaa/martine/stats"
)

func newLogger(sentryToken string) (*zap.SugaredLogger, error) {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	if sentryToken != "" {
		sentryOption, err := logger.Sentry(sentryToken)
		if err != nil {
			return nil, err
		}
		defer sentry.Flush(10 * time.Second)

		zapLogger = zapLogger.WithOptions(sentryOption)
	}

	return zapLogger.Sugar(), nil
}

func initDatabase(mongoURI, database string) (*mongodb.Mongo, error) {
	db, err := mongodb.New(mongoURI, database)
	if err != nil {
		return nil, err
	}

	if err := db.CreateCollections(); err != nil {
		return nil, err
	}

	return db, nil
}

func main() {
	cfg, err := config.FromFile("config.json")
	if err != nil {
		fmt.Println("config not found: ", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Sentry)
	if err != nil {
		fmt.Println("failed to initialise logger: ", err)
		os.Exit(1)
	}

	db, err := initDatabase(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("failed to initialise a database: %v", err)
	}

	b, err := bot.New(cfg, db, log)
	if err != nil {
		log.Fatalf("failed to create a new bot: %v", err)
	}

	b.WithAdventure(adventure.NewService(db, log))

	if cfg.Redis != nil && cfg.Redis.URI != "" {
		tracker, err := lifetime.New(cfg.Redis.URI)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer tracker.Close()

		b.WithLifetime(tracker)
	}

	b.AddRouter(&gumi.Router{
		AuthorID:            cfg.Discord.AuthorID,
		PrefixResolver:      handlers.PrefixResolver(b),
		OnErrorCallback:     handlers.OnError(b),
		OnRateLimitCallback: handlers.OnRateLimit(b),
		OnPanicCallBack:     handlers.OnPanic(b),
	})
	commands.RegisterCommands(b)

	for _, handler := range handlers.All(b) {
		b.AddHandler(handler)
	}

	if err := b.Open(); err != nil {
		log.Fatalf("failed to open a session: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := stats.NewScheduler(b.Collectors(), log)
	if cfg.Stats != nil {
		if cfg.Stats.Interval > 0 {
			scheduler.Interval = time.Duration(cfg.Stats.Interval) * time.Second
		}

		if cfg.Stats.RetryDelay > 0 {
			scheduler.RetryDelay = time.Duration(cfg.Stats.RetryDelay) * time.Second
		}
	}

	go func() {
		if err := scheduler.Run(ctx, b.Ready()); err != nil && err != context.Canceled {
			log.Errorf("statistics scheduler stopped: %v", err)
		}
	}()

	go func() {
		<-scheduler.Ready()
		log.Info("statistics collection is up")
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()
	b.Close()
	db.Close()
}
