package admin

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/storage"
)

// handleDeleteCommand removes a relayed reply from the user's chat and from
// the topic. Only the author of the reply may do that.
func (h *Handler) handleDeleteCommand(ctx context.Context, command intent.CommandFromChat) error {
	if command.ReplyToMessageId == nil || command.ReplyToUserId == nil {
		return nil
	}

	if *command.ReplyToUserId != command.UserId {
		return nil
	}

	reply, err := h.storage.GetReplyById(ctx, *command.ReplyToMessageId)

	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("get reply %d: %w", *command.ReplyToMessageId, err)
	}

	topic, err := h.storage.GetTopicById(ctx, reply.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", reply.TopicId, err)
	}

	if err := h.messenger.DeleteMessage(ctx, topic.UserId, reply.BotMessageId); err != nil {
		return fmt.Errorf("delete message %d of user %d: %w", reply.BotMessageId, topic.UserId, err)
	}

	if err := h.messenger.DeleteMessage(ctx, h.chatId, reply.Id); err != nil {
		return fmt.Errorf("delete chat message %d: %w", reply.Id, err)
	}

	if err := h.storage.DeleteReply(ctx, reply.Id); err != nil {
		return fmt.Errorf("delete reply %d: %w", reply.Id, err)
	}

	h.metrics.Deleted.Inc()

	return h.sendToTopic(ctx, command.TopicId, localization.MessageDeleted)
}
