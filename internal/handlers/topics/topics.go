// Package topics keeps forum topics in the feedback chat in line with the
// stored Topic rows.
package topics

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
)

var ErrConflict = errors.New("version conflict")

type Manager struct {
	storage   storage.Storage
	messenger messenger.Messenger
	metrics   *metrics.Metrics
	texts     localization.Texts
	logger    zerolog.Logger
}

func NewManager(
	storage storage.Storage,
	messenger messenger.Messenger,
	metrics *metrics.Metrics,
	texts localization.Texts,
	logger zerolog.Logger,
) *Manager {
	return &Manager{
		storage:   storage,
		messenger: messenger,
		metrics:   metrics,
		texts:     texts,
		logger:    logger,
	}
}

// Create opens a forum topic for a pending topic and activates it. The
// first message of the new topic describes the user and gets pinned.
func (m *Manager) Create(ctx context.Context, topic *models.Topic, user *models.User) error {
	if topic.State() != models.TopicPending {
		return fmt.Errorf("%w: create remote for %s topic", models.ErrInvalidTopicTransition, topic.State())
	}

	topicId, err := m.messenger.CreateTopic(ctx, topic.Title(user))

	if err != nil {
		return fmt.Errorf("create topic for user %d: %w", user.Id, err)
	}

	if err := topic.Activate(topicId); err != nil {
		return err
	}

	m.postInfo(ctx, topicId, user)

	return nil
}

func (m *Manager) postInfo(ctx context.Context, topicId int, user *models.User) {
	noData := m.texts.Get(localization.NoData)
	lastName := user.LastName
	if lastName == "" {
		lastName = noData
	}
	username := noData
	if user.Username != "" {
		username = "@" + user.Username
	}

	text := m.texts.Get(localization.UserInfo, user.FirstName, lastName, username, user.Id)
	messageId, err := m.messenger.SendToChat(ctx, topicId, text)

	if err != nil {
		m.logger.Warn().Err(err).Int("topic_id", topicId).Msg("failed to send user info")
		return
	}

	if err := m.messenger.PinChatMessage(ctx, messageId); err != nil {
		m.logger.Warn().Err(err).Int("topic_id", topicId).Msg("failed to pin user info")
	}
}

// Recreate replaces a topic whose thread no longer exists. The user is
// pointed at the fresh topic; the stale row and its replies are removed.
func (m *Manager) Recreate(ctx context.Context, user *models.User, stale models.Topic) (models.Topic, error) {
	if err := stale.MarkStale(); err != nil {
		return models.Topic{}, err
	}

	fresh, err := stale.Successor()

	if err != nil {
		return models.Topic{}, err
	}

	if err := m.Create(ctx, &fresh, user); err != nil {
		return models.Topic{}, err
	}

	ok, err := m.storage.RecreateTopic(ctx, user, stale, &fresh)

	if err != nil {
		return models.Topic{}, fmt.Errorf("recreate topic %d: %w", stale.Id, err)
	}

	if !ok {
		m.metrics.Conflicts.Inc()
		return models.Topic{}, fmt.Errorf("recreate topic %d for user %d: %w", stale.Id, user.Id, ErrConflict)
	}

	m.metrics.TopicsRecreated.Inc()
	m.logger.Info().
		Int64("user_id", user.Id).
		Int("stale_topic_id", stale.Id).
		Int("topic_id", fresh.Id).
		Msg("topic recreated")

	return fresh, nil
}

// SetOpen pushes the open state to the chat and persists it. It reports
// ErrConflict when the stored topic changed meanwhile. The title is
// refreshed on a best effort basis.
func (m *Manager) SetOpen(ctx context.Context, topic *models.Topic, open bool) error {
	var err error
	if open {
		err = m.messenger.ReopenTopic(ctx, topic.Id)
	} else {
		err = m.messenger.CloseTopic(ctx, topic.Id)
	}

	if err != nil {
		return fmt.Errorf("set topic %d open=%t: %w", topic.Id, open, err)
	}

	if open {
		topic.Open()
	} else {
		topic.Close()
	}

	ok, err := m.storage.TryUpdateTopic(ctx, topic)

	if err != nil {
		return fmt.Errorf("update topic %d: %w", topic.Id, err)
	}

	if !ok {
		m.metrics.Conflicts.Inc()
		return fmt.Errorf("update topic %d: %w", topic.Id, ErrConflict)
	}

	m.PushTitle(ctx, *topic)

	return nil
}

// PushTitle renames the forum topic after its state and owner.
func (m *Manager) PushTitle(ctx context.Context, topic models.Topic) {
	var owner *models.User

	user, err := m.storage.GetUserById(ctx, topic.UserId)
	if err == nil {
		owner = &user
	} else if !errors.Is(err, storage.ErrNotFound) {
		m.logger.Warn().Err(err).Int64("user_id", topic.UserId).Msg("failed to load topic owner")
	}

	if err := m.messenger.EditTopic(ctx, topic.Id, topic.Title(owner)); err != nil {
		m.logger.Warn().Err(err).Int("topic_id", topic.Id).Msg("failed to update topic title")
	}
}

// Sync pushes the stored open state and title of one topic to the chat.
func (m *Manager) Sync(ctx context.Context, topic models.Topic) error {
	var err error
	if topic.IsOpen {
		err = m.messenger.ReopenTopic(ctx, topic.Id)
	} else {
		err = m.messenger.CloseTopic(ctx, topic.Id)
	}

	if err != nil {
		return fmt.Errorf("sync topic %d: %w", topic.Id, err)
	}

	m.PushTitle(ctx, topic)

	return nil
}
