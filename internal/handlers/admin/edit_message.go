package admin

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/storage"
)

// HandleEdit applies a staff edit to the copy the user received.
func (h *Handler) HandleEdit(ctx context.Context, edit intent.EditFromChat) error {
	reply, err := h.storage.GetReplyById(ctx, edit.MessageId)

	if errors.Is(err, storage.ErrNotFound) {
		h.logger.Debug().Int("message_id", edit.MessageId).Msg("edited message was not relayed")
		return nil
	}

	if err != nil {
		return fmt.Errorf("get reply %d: %w", edit.MessageId, err)
	}

	topic, err := h.storage.GetTopicById(ctx, reply.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", reply.TopicId, err)
	}

	err = h.messenger.EditUserMessage(ctx, topic.UserId, reply.BotMessageId, edit.Content)

	if errors.Is(err, messenger.ErrRecipientBlocked) {
		return h.sendToTopic(ctx, topic.Id, localization.UserBlockedTheBot)
	}

	if err != nil {
		return fmt.Errorf("edit message %d of user %d: %w", reply.BotMessageId, topic.UserId, err)
	}

	h.metrics.Edited.Inc()

	return nil
}
