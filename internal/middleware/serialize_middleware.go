package middleware

import (
	"context"
	"errors"
	"fmt"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/keylock"
	"feedback_bot/internal/storage"
)

// SerializeMiddleware runs intents concerning the same user one at a time.
// Staff intents are keyed by the owner of their topic; intents for an
// unknown topic run without a lock.
func SerializeMiddleware(locks *keylock.KeyLock[int64], store storage.Storage, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, in intent.Intent) error {
		userId, ok, err := lockKey(ctx, store, in)

		if err != nil {
			return err
		}

		if !ok {
			return next(ctx, in)
		}

		unlock, err := locks.Lock(ctx, userId)

		if err != nil {
			return err
		}
		defer unlock()

		return next(ctx, in)
	}
}

func lockKey(ctx context.Context, store storage.Storage, in intent.Intent) (int64, bool, error) {
	var topicId int

	switch in := in.(type) {
	case intent.CommandFromUser:
		return in.UserId, true, nil
	case intent.MessageFromUser:
		return in.UserId, true, nil
	case intent.EditFromUser:
		return in.UserId, true, nil
	case intent.CommandFromChat:
		topicId = in.TopicId
	case intent.MessageFromChat:
		topicId = in.TopicId
	case intent.EditFromChat:
		topicId = in.TopicId
	default:
		return 0, false, nil
	}

	topic, err := store.GetTopicById(ctx, topicId)

	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("resolve owner of topic %d: %w", topicId, err)
	}

	return topic.UserId, true, nil
}
