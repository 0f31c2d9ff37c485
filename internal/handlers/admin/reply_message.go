package admin

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/models"
)

// HandleReply copies a staff reply to the topic's user and remembers the
// pair so the reply can be edited or deleted later. A delivered reply gets
// a ⚡ reaction.
func (h *Handler) HandleReply(ctx context.Context, message intent.MessageFromChat) error {
	topic, err := h.storage.GetTopicById(ctx, message.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", message.TopicId, err)
	}

	botMessageId, err := h.messenger.CopyToUser(ctx, topic.UserId, message.MessageId)

	if errors.Is(err, messenger.ErrRecipientBlocked) {
		h.logger.Info().Int64("user_id", topic.UserId).Msg("user blocked the bot")
		return h.sendToTopic(ctx, topic.Id, localization.UserBlockedTheBot)
	}

	if err != nil {
		return fmt.Errorf("copy message %d to user %d: %w", message.MessageId, topic.UserId, err)
	}

	h.metrics.Copied.Inc()

	err = h.storage.CreateReply(ctx, &models.Reply{
		Id:           message.MessageId,
		TopicId:      topic.Id,
		BotMessageId: botMessageId,
	})

	if err != nil {
		return fmt.Errorf("create reply %d: %w", message.MessageId, err)
	}

	h.react(ctx, message.MessageId, highVoltageReaction)

	return nil
}
