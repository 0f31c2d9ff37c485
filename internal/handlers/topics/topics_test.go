package topics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/models"
	"feedback_bot/internal/storage/memory"
)

func newManager(t *testing.T, bot *messenger.MessengerMock) (*Manager, *memory.Memory, *metrics.Metrics) {
	t.Helper()

	store := memory.New()
	m := metrics.New(prometheus.NewRegistry())

	return NewManager(store, bot, m, localization.Texts{Lang: "en"}, zerolog.Nop()), store, m
}

func TestCreate(t *testing.T) {
	var titles, infos []string
	var pinned []int

	bot := &messenger.MessengerMock{
		CreateTopicFunc: func(ctx context.Context, title string) (int, error) {
			titles = append(titles, title)
			return 500, nil
		},
		SendToChatFunc: func(ctx context.Context, topicId int, text string) (int, error) {
			infos = append(infos, text)
			return 9, nil
		},
		PinChatMessageFunc: func(ctx context.Context, messageId int) error {
			pinned = append(pinned, messageId)
			return nil
		},
	}
	manager, _, _ := newManager(t, bot)

	user := models.User{Id: 42, FirstName: "Ann", Username: "ann"}
	topic := models.NewPendingTopic(user.Id)

	require.NoError(t, manager.Create(context.Background(), &topic, &user))

	assert.Equal(t, 500, topic.Id)
	assert.Equal(t, models.TopicActive, topic.State())
	assert.Equal(t, []string{"🟩\tAnn (@ann)"}, titles)
	require.Len(t, infos, 1)
	assert.Contains(t, infos[0], "@ann")
	assert.Contains(t, infos[0], "42")
	assert.Equal(t, []int{9}, pinned)
}

func TestCreateRejectsActiveTopic(t *testing.T) {
	manager, _, _ := newManager(t, &messenger.MessengerMock{})

	topic := models.Topic{Id: 1, UserId: 42, IsOpen: true}

	err := manager.Create(context.Background(), &topic, &models.User{Id: 42})

	assert.ErrorIs(t, err, models.ErrInvalidTopicTransition)
}

func TestCreateKeepsTopicWhenInfoFails(t *testing.T) {
	bot := &messenger.MessengerMock{
		CreateTopicFunc: func(ctx context.Context, title string) (int, error) { return 500, nil },
		SendToChatFunc: func(ctx context.Context, topicId int, text string) (int, error) {
			return 0, errors.New("bad request")
		},
	}
	manager, _, _ := newManager(t, bot)

	topic := models.NewPendingTopic(42)

	require.NoError(t, manager.Create(context.Background(), &topic, &models.User{Id: 42}))
	assert.Equal(t, 500, topic.Id)
	assert.Empty(t, bot.PinChatMessageCalls())
}

func TestRecreate(t *testing.T) {
	bot := &messenger.MessengerMock{
		CreateTopicFunc:    func(ctx context.Context, title string) (int, error) { return 600, nil },
		SendToChatFunc:     func(ctx context.Context, topicId int, text string) (int, error) { return 1, nil },
		PinChatMessageFunc: func(ctx context.Context, messageId int) error { return nil },
	}

	t.Run("points user at fresh topic", func(t *testing.T) {
		manager, store, m := newManager(t, bot)
		ctx := context.Background()

		user := models.User{Id: 42, TopicId: 500}
		stale := models.Topic{Id: 500, UserId: 42, IsOpen: false}
		require.NoError(t, store.CreateUserWithTopic(ctx, &user, &stale))
		require.NoError(t, store.CreateReply(ctx, &models.Reply{Id: 1, TopicId: 500, BotMessageId: 2}))

		fresh, err := manager.Recreate(ctx, &user, stale)
		require.NoError(t, err)

		assert.Equal(t, 600, fresh.Id)
		assert.True(t, fresh.IsOpen)

		stored, err := store.GetUserById(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 600, stored.TopicId)

		_, err = store.GetTopicById(ctx, 500)
		assert.Error(t, err)
		_, err = store.GetReplyById(ctx, 1)
		assert.Error(t, err)

		assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsRecreated))
	})

	t.Run("conflict", func(t *testing.T) {
		manager, store, m := newManager(t, bot)
		ctx := context.Background()

		user := models.User{Id: 42, TopicId: 500}
		stale := models.Topic{Id: 500, UserId: 42, IsOpen: true}
		require.NoError(t, store.CreateUserWithTopic(ctx, &user, &stale))

		outdated := user
		user.Ban()
		ok, err := store.TryUpdateUser(ctx, &user)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = manager.Recreate(ctx, &outdated, stale)

		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.Conflicts))
	})

	t.Run("pending topic cannot be recreated", func(t *testing.T) {
		manager, _, _ := newManager(t, bot)

		_, err := manager.Recreate(context.Background(), &models.User{Id: 42}, models.NewPendingTopic(42))

		assert.ErrorIs(t, err, models.ErrInvalidTopicTransition)
	})
}

func TestSetOpen(t *testing.T) {
	var titles []string

	bot := &messenger.MessengerMock{
		CloseTopicFunc: func(ctx context.Context, topicId int) error { return nil },
		EditTopicFunc: func(ctx context.Context, topicId int, title string) error {
			titles = append(titles, title)
			return nil
		},
	}
	manager, store, _ := newManager(t, bot)
	ctx := context.Background()

	user := models.User{Id: 42, TopicId: 500, FirstName: "Ann"}
	topic := models.Topic{Id: 500, UserId: 42, IsOpen: true}
	require.NoError(t, store.CreateUserWithTopic(ctx, &user, &topic))

	require.NoError(t, manager.SetOpen(ctx, &topic, false))

	stored, err := store.GetTopicById(ctx, 500)
	require.NoError(t, err)
	assert.False(t, stored.IsOpen)
	assert.Equal(t, []string{"🟥\tAnn"}, titles)

	outdated := stored
	outdated.Version--
	err = manager.SetOpen(ctx, &outdated, false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPushTitleWithoutOwner(t *testing.T) {
	var titles []string

	bot := &messenger.MessengerMock{
		EditTopicFunc: func(ctx context.Context, topicId int, title string) error {
			titles = append(titles, title)
			return nil
		},
	}
	manager, _, _ := newManager(t, bot)

	manager.PushTitle(context.Background(), models.Topic{Id: 500, UserId: 42, IsOpen: true})

	assert.Equal(t, []string{"🟩\t42"}, titles)
}

func TestSync(t *testing.T) {
	bot := &messenger.MessengerMock{
		ReopenTopicFunc: func(ctx context.Context, topicId int) error { return nil },
		CloseTopicFunc: func(ctx context.Context, topicId int) error {
			return errors.New("forbidden")
		},
		EditTopicFunc: func(ctx context.Context, topicId int, title string) error { return nil },
	}
	manager, _, _ := newManager(t, bot)
	ctx := context.Background()

	require.NoError(t, manager.Sync(ctx, models.Topic{Id: 1, UserId: 42, IsOpen: true}))
	require.Error(t, manager.Sync(ctx, models.Topic{Id: 2, UserId: 43, IsOpen: false}))

	assert.Len(t, bot.ReopenTopicCalls(), 1)
	assert.Len(t, bot.CloseTopicCalls(), 1)
	assert.Len(t, bot.EditTopicCalls(), 1)
}
