package tgbotclient

import (
	"context"
	"encoding/json"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jpillora/backoff"
)

var allowedUpdates = []string{"message", "edited_message"}

// GetUpdatesChan long-polls getUpdates until ctx is done, then closes the
// channel. Failed polls are retried with exponential backoff.
func (h *TgBotClient) GetUpdatesChan(ctx context.Context, timeout int) <-chan Update {
	ch := make(chan Update, h.Buffer)

	go func() {
		defer close(ch)

		b := &backoff.Backoff{
			Min:    500 * time.Millisecond,
			Max:    30 * time.Second,
			Factor: 2,
			Jitter: true,
		}
		offset := 0

		for ctx.Err() == nil {
			updates, err := h.getUpdates(ctx, offset, timeout)

			if err != nil {
				if ctx.Err() != nil {
					return
				}

				delay := b.Duration()
				h.logger.Warn().Err(err).Dur("retry_in", delay).Msg("failed to get updates")

				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
				}

				continue
			}

			b.Reset()

			for _, update := range updates {
				if update.UpdateID < offset {
					continue
				}

				offset = update.UpdateID + 1

				select {
				case ch <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch
}

func (h *TgBotClient) getUpdates(ctx context.Context, offset int, timeout int) ([]Update, error) {
	params := tgbotapi.Params{}
	params.AddNonZero("offset", offset)
	params.AddNonZero("timeout", timeout)

	if err := params.AddInterface("allowed_updates", allowedUpdates); err != nil {
		return nil, err
	}

	resp, err := h.request(ctx, "getUpdates", params)

	if err != nil {
		return nil, err
	}

	var updates []Update
	err = json.Unmarshal(resp.Result, &updates)

	return updates, err
}
