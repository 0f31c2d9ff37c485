package admin

import (
	"context"
	"fmt"
	"slices"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
)

func (h *Handler) handleBanCommand(ctx context.Context, command intent.CommandFromChat, admins []int64) error {
	topic, err := h.storage.GetTopicById(ctx, command.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d: %w", command.TopicId, err)
	}

	if slices.Contains(admins, topic.UserId) {
		return h.sendToTopic(ctx, topic.Id, localization.UnableToBanAdmin)
	}

	user, err := h.storage.GetUserById(ctx, topic.UserId)

	if err != nil {
		return fmt.Errorf("get user %d: %w", topic.UserId, err)
	}

	if !user.IsBanned() {
		user.Ban()

		ok, err := h.storage.TryUpdateUser(ctx, &user)

		if err != nil || !ok {
			h.updateFailed(topic.Id, user.Id, err)
			return h.sendToTopic(ctx, topic.Id, localization.SomethingWrong)
		}

		h.logger.Info().Int64("user_id", user.Id).Int64("by", command.UserId).Msg("user banned")
	}

	return h.sendToTopic(ctx, topic.Id, localization.UserBanned)
}

func (h *Handler) updateFailed(topicId int, userId int64, err error) {
	if err == nil {
		h.metrics.Conflicts.Inc()
	}

	h.logger.Warn().Err(err).Int("topic_id", topicId).Int64("user_id", userId).Msg("failed to update user")
}
