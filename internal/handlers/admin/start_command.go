package admin

import (
	"context"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

func (h *Handler) handleStartCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	return h.sendToTopic(ctx, command.TopicId, localization.StartMessage)
}

func (h *Handler) handleHelpCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	return h.sendToTopic(ctx, command.TopicId, localization.HelpMessage)
}
