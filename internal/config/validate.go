package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"feedback_bot/internal/localization"
)

// Validate checks cross-field constraints that cannot be expressed via struct tags.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	if c.Telegram.FeedbackChatId == 0 {
		return fmt.Errorf("telegram.feedback_chat_id must not be 0")
	}

	if c.Telegram.WorkerCount < 1 {
		return fmt.Errorf("telegram.worker_count must be >= 1 (got %d)", c.Telegram.WorkerCount)
	}

	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("telegram.poll_timeout must be >= 0 (got %d)", c.Telegram.PollTimeout)
	}

	switch c.Storage.Kind {
	case StorageMongo:
		if c.Storage.MongoURI == "" {
			return fmt.Errorf("storage.mongo_uri is required for %q storage", StorageMongo)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage must be %q or %q (got %q)", StorageMongo, StorageMemory, c.Storage.Kind)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if !localization.IsSupported(c.Texts.Language) {
		return fmt.Errorf("texts.language %q is not supported", c.Texts.Language)
	}

	return nil
}
