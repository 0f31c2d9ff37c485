package admin

import (
	"feedback_bot/internal/intent"
)

func (h *Handler) handleUnknownCommand(command intent.CommandFromChat) error {
	h.logger.Debug().
		Int64("user_id", command.UserId).
		Int("topic_id", command.TopicId).
		Str("command", command.Command()).
		Msg("unknown command")

	return nil
}
