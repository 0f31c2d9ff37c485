package user

import (
	"context"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

func (h *Handler) handleStartCommand(ctx context.Context, command intent.CommandFromUser) error {
	return h.messenger.SendToUser(ctx, command.UserId, h.texts.Get(localization.StartMessage))
}

func (h *Handler) handleHelpCommand(ctx context.Context, command intent.CommandFromUser) error {
	return h.messenger.SendToUser(ctx, command.UserId, h.texts.Get(localization.HelpMessage))
}
