package user

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
)

// HandleMessage forwards a user's message into the user's topic, creating or
// reopening the topic first when needed.
func (h *Handler) HandleMessage(ctx context.Context, message intent.MessageFromUser) error {
	return h.forwardToChat(ctx, message, false)
}

func (h *Handler) forwardToChat(ctx context.Context, message intent.MessageFromUser, recreated bool) error {
	user, err := h.storage.GetUserById(ctx, message.UserId)

	if errors.Is(err, storage.ErrNotFound) {
		user, err = h.register(ctx, message)
	}

	if err != nil {
		return fmt.Errorf("get user %d: %w", message.UserId, err)
	}

	if user.IsBanned() {
		return h.messenger.SendToUser(ctx, user.Id, h.texts.Get(localization.YouWereBanned))
	}

	topic, err := h.storage.GetTopicById(ctx, user.TopicId)

	if err != nil {
		return fmt.Errorf("get topic %d of user %d: %w", user.TopicId, user.Id, err)
	}

	if !topic.IsOpen {
		h.reopen(ctx, &topic)
	}

	err = h.messenger.ForwardToChat(ctx, topic.Id, user.Id, message.MessageId)

	if errors.Is(err, messenger.ErrThreadNotFound) {
		if recreated {
			return fmt.Errorf("forward message %d to recreated topic %d: %w", message.MessageId, topic.Id, err)
		}

		h.logger.Warn().Int64("user_id", user.Id).Int("topic_id", topic.Id).Msg("topic is gone, recreating")

		if _, err := h.topics.Recreate(ctx, &user, topic); err != nil {
			return err
		}

		return h.forwardToChat(ctx, message, true)
	}

	if err != nil {
		return fmt.Errorf("forward message %d to topic %d: %w", message.MessageId, topic.Id, err)
	}

	h.metrics.Forwarded.Inc()

	return nil
}

// register creates the forum topic first, since its thread id is the
// topic's key, then persists the user and the topic together.
func (h *Handler) register(ctx context.Context, message intent.MessageFromUser) (models.User, error) {
	user := models.User{
		Id:        message.UserId,
		FirstName: message.FirstName,
		LastName:  message.LastName,
		Username:  message.Username,
	}
	topic := models.NewPendingTopic(user.Id)

	if err := h.topics.Create(ctx, &topic, &user); err != nil {
		return models.User{}, err
	}

	user.TopicId = topic.Id

	if err := h.storage.CreateUserWithTopic(ctx, &user, &topic); err != nil {
		return models.User{}, fmt.Errorf("create user %d with topic %d: %w", user.Id, topic.Id, err)
	}

	h.metrics.TopicsCreated.Inc()
	h.logger.Info().Int64("user_id", user.Id).Int("topic_id", topic.Id).Msg("new user")

	return user, nil
}

// reopen never stops the forward; a failure only gets logged.
func (h *Handler) reopen(ctx context.Context, topic *models.Topic) {
	if err := h.topics.SetOpen(ctx, topic, true); err != nil {
		h.logger.Warn().Err(err).Int("topic_id", topic.Id).Msg("failed to reopen topic")
	}
}
