package user

import (
	"context"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

// HandleEdit tells the user that an edit did not reach the team.
func (h *Handler) HandleEdit(ctx context.Context, edit intent.EditFromUser) error {
	h.logger.Debug().Int64("user_id", edit.UserId).Int("message_id", edit.MessageId).Msg("edit is not relayed")

	return h.messenger.SendToUser(ctx, edit.UserId, h.texts.Get(localization.EditNotSupported))
}
