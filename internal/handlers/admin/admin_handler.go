// Package admin handles staff activity inside topics of the feedback chat.
package admin

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"feedback_bot/internal/handlers/topics"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/storage"
)

const (
	StartCommand  = "/start"
	HelpCommand   = "/help"
	BanCommand    = "/ban"
	UnbanCommand  = "/unban"
	DeleteCommand = "/delete"
	OpenCommand   = "/open"
	CloseCommand  = "/close"
	SyncCommand   = "/sync"
)

const (
	eyesReaction        = "👀"
	highVoltageReaction = "⚡"
)

type Handler struct {
	storage   storage.Storage
	messenger messenger.Messenger
	topics    *topics.Manager
	metrics   *metrics.Metrics
	texts     localization.Texts
	chatId    int64
	logger    zerolog.Logger
}

func NewHandler(
	storage storage.Storage,
	messenger messenger.Messenger,
	topics *topics.Manager,
	metrics *metrics.Metrics,
	texts localization.Texts,
	chatId int64,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		storage:   storage,
		messenger: messenger,
		topics:    topics,
		metrics:   metrics,
		texts:     texts,
		chatId:    chatId,
		logger:    logger.With().Str("handler", "admin").Logger(),
	}
}

type commandFunc func(ctx context.Context, command intent.CommandFromChat, admins []int64) error

func (h *Handler) HandleCommand(ctx context.Context, command intent.CommandFromChat) error {
	// Ownership of the replied message is the only gate for /delete.
	if command.Command() == DeleteCommand {
		return h.handleDeleteCommand(ctx, command)
	}

	handle := h.adminCommand(command.Command())

	if handle == nil {
		return h.handleUnknownCommand(command)
	}

	admins, err := h.messenger.GetChatAdmins(ctx)

	if err != nil {
		return fmt.Errorf("get chat admins: %w", err)
	}

	if !slices.Contains(admins, command.UserId) {
		h.logger.Debug().Int64("user_id", command.UserId).Str("command", command.Command()).Msg("not an admin")
		return nil
	}

	return handle(ctx, command, admins)
}

func (h *Handler) adminCommand(name string) commandFunc {
	switch name {
	case StartCommand:
		return h.handleStartCommand
	case HelpCommand:
		return h.handleHelpCommand
	case BanCommand:
		return h.handleBanCommand
	case UnbanCommand:
		return h.handleUnbanCommand
	case OpenCommand:
		return h.handleOpenCommand
	case CloseCommand:
		return h.handleCloseCommand
	case SyncCommand:
		return h.handleSyncCommand
	default:
		return nil
	}
}

func (h *Handler) sendToTopic(ctx context.Context, topicId int, textId string) error {
	_, err := h.messenger.SendToChat(ctx, topicId, h.texts.Get(textId))

	return err
}

// react marks a feedback chat message. A failed reaction is only logged.
func (h *Handler) react(ctx context.Context, messageId int, emoji string) {
	if messageId == 0 {
		return
	}

	if err := h.messenger.SetMessageReaction(ctx, h.chatId, messageId, emoji); err != nil {
		h.logger.Warn().Err(err).Int("message_id", messageId).Str("emoji", emoji).Msg("failed to set reaction")
	}
}
