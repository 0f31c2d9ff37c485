package admin

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/handlers/topics"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

func (h *Handler) handleOpenCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	return h.setOpen(ctx, command, true)
}

func (h *Handler) handleCloseCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	return h.setOpen(ctx, command, false)
}

func (h *Handler) setOpen(ctx context.Context, command intent.CommandFromChat, open bool) error {
	topic, err := h.storage.GetTopicById(ctx, command.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", command.TopicId, err)
	}

	if topic.IsOpen == open {
		return nil
	}

	err = h.topics.SetOpen(ctx, &topic, open)

	if errors.Is(err, topics.ErrConflict) {
		h.logger.Warn().Err(err).Int("topic_id", topic.Id).Msg("failed to update topic")
		return h.sendToTopic(ctx, topic.Id, localization.SomethingWrong)
	}

	return err
}
