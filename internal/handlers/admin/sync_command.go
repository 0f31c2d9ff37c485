package admin

import (
	"context"
	"fmt"

	"feedback_bot/internal/intent"
)

// handleSyncCommand pushes the stored state of every topic to the chat.
// A failing topic does not stop the rest. The command message is marked
// with 👀 while syncing and ⚡ when done.
func (h *Handler) handleSyncCommand(ctx context.Context, command intent.CommandFromChat, _ []int64) error {
	h.react(ctx, command.MessageId, eyesReaction)

	items, err := h.storage.ListTopics(ctx)

	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}

	failed := 0
	for _, topic := range items {
		if err := h.topics.Sync(ctx, topic); err != nil {
			failed++
			h.logger.Warn().Err(err).Int("topic_id", topic.Id).Msg("failed to sync topic")
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	h.logger.Info().
		Int64("by", command.UserId).
		Int("topics", len(items)).
		Int("failed", failed).
		Msg("topics synced")

	h.react(ctx, command.MessageId, highVoltageReaction)

	return nil
}
