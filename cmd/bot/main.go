package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jpillora/backoff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"feedback_bot/internal/config"
	"feedback_bot/internal/handlers"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/keylock"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/middleware"
	"feedback_bot/internal/server"
	"feedback_bot/internal/storage"
	"feedback_bot/internal/storage/memory"
	"feedback_bot/internal/storage/mongodb"
	"feedback_bot/internal/util"
	"feedback_bot/pkg/tgbotclient"
)

const (
	connectAttempts = 5
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := util.SetupLogger(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("bot stopped with error")
		stop()
		os.Exit(1)
	}

	fmt.Println("Adios!")
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	store, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := store.Disconnect(disconnectCtx); err != nil {
			logger.Warn().Err(err).Msg("failed to disconnect storage")
		}
	}()

	tgBotClient, err := tgbotclient.NewTgBotClient(cfg.Telegram.Token, cfg.Telegram.FeedbackChatId, cfg.Telegram.Debug, logger)
	if err != nil {
		return fmt.Errorf("create telegram client: %w", err)
	}

	logger.Info().
		Str("account", tgBotClient.Self.UserName).
		Int64("chat_id", tgBotClient.ChatId()).
		Msg("authorized")

	texts := localization.Texts{Lang: cfg.Texts.Language, Start: cfg.Texts.Start, Help: cfg.Texts.Help}

	if err := registerCommands(ctx, tgBotClient, texts); err != nil {
		logger.Warn().Err(err).Msg("failed to register command menus")
	}

	updateHandler := handlers.NewUpdateHandler(handlers.Options{
		Storage:   store,
		Messenger: tgBotClient,
		Metrics:   m,
		Texts:     texts,
		ChatId:    tgBotClient.ChatId(),
		Logger:    logger,
	})

	serializeMiddleware := middleware.SerializeMiddleware(keylock.New[int64](), store, updateHandler.Handle)
	loggingMiddleware := middleware.LoggingMiddleware(logger, m, serializeMiddleware)
	recoverMiddleware := middleware.RecoverMiddleware(logger, loggingMiddleware)
	classifyMiddleware := middleware.ClassifyMiddleware(intent.Options{
		ChatId: tgBotClient.ChatId(),
		BotId:  tgBotClient.BotId(),
	}, recoverMiddleware)

	updateChan := tgBotClient.GetUpdatesChan(ctx, cfg.Telegram.PollTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx, cfg.Server.Addr, server.NewRouter(store, registry), logger)
	})

	for i := 0; i < cfg.Telegram.WorkerCount; i++ {
		g.Go(func() error {
			for {
				select {
				case update, ok := <-updateChan:
					if !ok {
						return nil
					}
					classifyMiddleware(gctx, &update)
				case <-gctx.Done():
					return nil
				}
			}
		})
	}

	logger.Info().Int("workers", cfg.Telegram.WorkerCount).Msg("bot started")

	return g.Wait()
}

func openStorage(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (storage.Storage, error) {
	if cfg.Kind == config.StorageMemory {
		logger.Warn().Msg("using in-memory storage, state is lost on restart")
		return memory.New(), nil
	}

	b := &backoff.Backoff{
		Min:    time.Second,
		Max:    15 * time.Second,
		Factor: 2,
	}

	var (
		db  *mongodb.Mongo
		err error
	)

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err == nil {
			break
		}

		if attempt == connectAttempts {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		delay := b.Duration()
		logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("failed to connect to mongodb")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := mongodb.Init(ctx, db); err != nil {
		_ = db.Disconnect(ctx)
		return nil, fmt.Errorf("init mongodb: %w", err)
	}

	return db, nil
}

func registerCommands(ctx context.Context, client *tgbotclient.TgBotClient, texts localization.Texts) error {
	command := func(name, textId string) tgbotapi.BotCommand {
		return tgbotapi.BotCommand{Command: name, Description: texts.Get(textId)}
	}

	userCommands := []tgbotapi.BotCommand{
		command("start", localization.CommandStart),
		command("help", localization.CommandHelp),
	}
	chatCommands := append(userCommands[:len(userCommands):len(userCommands)], command("delete", localization.CommandDelete))
	adminCommands := append(chatCommands[:len(chatCommands):len(chatCommands)],
		command("ban", localization.CommandBan),
		command("unban", localization.CommandUnban),
		command("open", localization.CommandOpen),
		command("close", localization.CommandClose),
		command("sync", localization.CommandSync),
	)

	if err := client.SetCommands(ctx, tgbotapi.NewBotCommandScopeAllPrivateChats(), userCommands...); err != nil {
		return fmt.Errorf("private chats: %w", err)
	}

	if err := client.SetCommands(ctx, tgbotapi.NewBotCommandScopeChat(client.ChatId()), chatCommands...); err != nil {
		return fmt.Errorf("feedback chat: %w", err)
	}

	if err := client.SetCommands(ctx, tgbotapi.NewBotCommandScopeChatAdministrators(client.ChatId()), adminCommands...); err != nil {
		return fmt.Errorf("feedback chat admins: %w", err)
	}

	return nil
}
