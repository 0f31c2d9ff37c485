// Package user handles what users send to the bot in private chats.
package user

import (
	"context"

	"github.com/rs/zerolog"

	"feedback_bot/internal/handlers/topics"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/storage"
)

const (
	StartCommand = "/start"
	HelpCommand  = "/help"
)

type Handler struct {
	storage   storage.Storage
	messenger messenger.Messenger
	topics    *topics.Manager
	metrics   *metrics.Metrics
	texts     localization.Texts
	logger    zerolog.Logger
}

func NewHandler(
	storage storage.Storage,
	messenger messenger.Messenger,
	topics *topics.Manager,
	metrics *metrics.Metrics,
	texts localization.Texts,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		storage:   storage,
		messenger: messenger,
		topics:    topics,
		metrics:   metrics,
		texts:     texts,
		logger:    logger.With().Str("handler", "user").Logger(),
	}
}

func (h *Handler) HandleCommand(ctx context.Context, command intent.CommandFromUser) error {
	switch command.Command() {
	case StartCommand:
		return h.handleStartCommand(ctx, command)
	case HelpCommand:
		return h.handleHelpCommand(ctx, command)
	default:
		h.logger.Debug().Int64("user_id", command.UserId).Str("command", command.Command()).Msg("unknown command")
		return nil
	}
}
