package admin

import (
	"context"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

func (h *Handler) handleUnbanCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	topic, err := h.storage.GetTopicById(ctx, command.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", command.TopicId, err)
	}

	user, err := h.storage.GetUserById(ctx, topic.UserId)

	if err != nil {
		return fmt.Errorf("get user %d: %w", topic.UserId, err)
	}

	if user.IsBanned() {
		user.Unban()

		ok, err := h.storage.TryUpdateUser(ctx, &user)

		if err != nil || !ok {
			h.updateFailed(topic.Id, user.Id, err)
			return h.sendToTopic(ctx, topic.Id, localization.SomethingWrong)
		}

		h.logger.Info().Int64("user_id", user.Id).Int64("by", command.UserId).Msg("user unbanned")
	}

	return h.sendToTopic(ctx, topic.Id, localization.UserUnbanned)
}
