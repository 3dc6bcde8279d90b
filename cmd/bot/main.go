package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/config"
	"github.com/renval/gangboard/internal/discord"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/gang"
	"github.com/renval/gangboard/internal/domain/stream"
	"github.com/renval/gangboard/internal/filestore"
	"github.com/renval/gangboard/internal/watcher"
)

const watchDebounce = 500 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store := filestore.New(cfg.Data.Dir, logger)
	if err := store.EnsureFiles(); err != nil {
		logger.Error("failed to prepare data files", "error", err)
		os.Exit(1)
	}

	activityRepo := filestore.NewActivityRepository(store)
	gangRepo := filestore.NewGangRepository(store)
	configRepo := filestore.NewConfigRepository(store)

	activitySvc := activity.NewService(activityRepo, logger)
	gangSvc := gang.NewService(gangRepo, logger)
	streamSvc := stream.NewService(logger)
	pager := board.NewPager()

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	publisher := discord.NewPublisher(session, activitySvc, configRepo, pager, logger)
	bot := discord.NewBot(discord.Services{
		Activities: activitySvc,
		Gangs:      gangSvc,
		Streams:    streamSvc,
		Config:     configRepo,
	}, pager, publisher, logger)
	bot.Register(session)

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("logged in", "user", r.User.Username)
	})

	if err := session.Open(); err != nil {
		logger.Error("failed to open gateway connection", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	appID := cfg.Discord.AppID
	if appID == "" {
		appID = session.State.User.ID
	}
	if err := discord.RegisterCommands(session, appID, cfg.Discord.GuildID); err != nil {
		logger.Error("failed to register commands", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Render the board on startup if a channel is already configured;
	// Refresh no-ops otherwise.
	if err := publisher.Refresh(ctx); err != nil {
		logger.Warn("initial board refresh failed", "error", err)
	}

	if cfg.Data.Watch {
		w, err := watcher.New(cfg.Data.Dir, filestore.DocumentFiles(), watchDebounce, func() {
			if err := publisher.Refresh(context.Background()); err != nil {
				logger.Error("board refresh after file change failed", "error", err)
			}
		}, logger)
		if err != nil {
			logger.Warn("file watcher unavailable", "error", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
