package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_bot/internal/handlers"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/keylock"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
	"feedback_bot/internal/storage/memory"
	"feedback_bot/pkg/tgbotclient"
)

func TestClassifyMiddlewareDropsNone(t *testing.T) {
	var got []intent.Intent
	entry := ClassifyMiddleware(intent.Options{ChatId: -100, BotId: 1}, func(ctx context.Context, in intent.Intent) error {
		got = append(got, in)
		return nil
	})

	entry(context.Background(), &tgbotclient.Update{})
	entry(context.Background(), &tgbotclient.Update{Message: &tgbotclient.Message{Message: tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 5},
		Chat:      &tgbotapi.Chat{ID: 5},
		Text:      "hello",
	}}})

	require.Len(t, got, 1)
	assert.Equal(t, intent.KindMessageFromUser, got[0].Kind())
}

func TestRecoverMiddleware(t *testing.T) {
	handler := RecoverMiddleware(zerolog.Nop(), func(ctx context.Context, in intent.Intent) error {
		panic("boom")
	})

	var err error
	assert.NotPanics(t, func() {
		err = handler(context.Background(), intent.CommandFromUser{UserId: 1, Content: "/start"})
	})
	assert.ErrorContains(t, err, "boom")
}

func TestLoggingMiddlewareCountsErrors(t *testing.T) {
	m := metrics.NewNop()
	failure := errors.New("failure")
	handler := LoggingMiddleware(zerolog.Nop(), m, func(ctx context.Context, in intent.Intent) error {
		if in.Kind() == intent.KindCommandFromUser {
			return failure
		}
		return nil
	})

	assert.ErrorIs(t, handler(context.Background(), intent.CommandFromUser{}), failure)
	assert.NoError(t, handler(context.Background(), intent.MessageFromUser{}))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Updates.WithLabelValues("command_from_user")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Updates.WithLabelValues("message_from_user")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpdateErrors.WithLabelValues("command_from_user")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.UpdateErrors.WithLabelValues("message_from_user")))
}

func TestSerializeMiddlewareKeysStaffIntentsByOwner(t *testing.T) {
	store := memory.New()
	user := models.User{Id: 44444, TopicId: 22222}
	topic := models.Topic{Id: 22222, UserId: 44444, IsOpen: true}
	require.NoError(t, store.CreateUserWithTopic(context.Background(), &user, &topic))

	locks := keylock.New[int64]()
	unlock, err := locks.Lock(context.Background(), 44444)
	require.NoError(t, err)

	done := make(chan struct{})
	handler := SerializeMiddleware(locks, store, func(ctx context.Context, in intent.Intent) error {
		close(done)
		return nil
	})

	go func() {
		_ = handler(context.Background(), intent.MessageFromChat{TopicId: 22222, UserId: 1})
	}()

	select {
	case <-done:
		t.Fatal("handler ran while the owner was locked")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not run after unlock")
	}
}

func TestSerializeMiddlewareRunsUnknownTopicUnlocked(t *testing.T) {
	called := false
	handler := SerializeMiddleware(keylock.New[int64](), memory.New(), func(ctx context.Context, in intent.Intent) error {
		called = true
		return nil
	})

	require.NoError(t, handler(context.Background(), intent.CommandFromChat{TopicId: 1, Content: "/ban"}))
	assert.True(t, called)
}

func TestConcurrentFirstMessagesCreateOneTopic(t *testing.T) {
	store := memory.New()
	var mu sync.Mutex
	created := 0

	bot := &messenger.MessengerMock{
		CreateTopicFunc: func(ctx context.Context, title string) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			created++
			// Leave room for a racing second message.
			time.Sleep(5 * time.Millisecond)
			return 22222 + created, nil
		},
		SendToChatFunc:     func(ctx context.Context, topicId int, text string) (int, error) { return 1, nil },
		PinChatMessageFunc: func(ctx context.Context, messageId int) error { return nil },
		ForwardToChatFunc: func(ctx context.Context, topicId int, fromChatId int64, messageId int) error {
			return nil
		},
	}

	m := metrics.NewNop()
	updates := handlers.NewUpdateHandler(handlers.Options{
		Storage:   store,
		Messenger: bot,
		Metrics:   m,
		Texts:     localization.Texts{Lang: "en"},
		ChatId:    -100,
		Logger:    zerolog.Nop(),
	})

	chain := RecoverMiddleware(zerolog.Nop(),
		LoggingMiddleware(zerolog.Nop(), m,
			SerializeMiddleware(keylock.New[int64](), store, updates.Handle)))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(messageId int) {
			defer wg.Done()
			err := chain(context.Background(), intent.MessageFromUser{UserId: 11111, MessageId: messageId, FirstName: "Ann"})
			assert.NoError(t, err)
		}(i + 1)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, bot.ForwardToChatCalls(), 5)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsCreated))
}

type recordingStore struct {
	storage.Storage

	mu    sync.Mutex
	calls []string
}

func (s *recordingStore) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, name)
}

func (s *recordingStore) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *recordingStore) CreateUserWithTopic(ctx context.Context, user *models.User, topic *models.Topic) error {
	s.record("CreateUserWithTopic")
	return s.Storage.CreateUserWithTopic(ctx, user, topic)
}

func (s *recordingStore) GetUserById(ctx context.Context, userId int64) (models.User, error) {
	s.record("GetUserById")
	return s.Storage.GetUserById(ctx, userId)
}

func (s *recordingStore) TryUpdateUser(ctx context.Context, user *models.User) (bool, error) {
	s.record("TryUpdateUser")
	return s.Storage.TryUpdateUser(ctx, user)
}

func (s *recordingStore) GetTopicById(ctx context.Context, topicId int) (models.Topic, error) {
	s.record("GetTopicById")
	return s.Storage.GetTopicById(ctx, topicId)
}

func (s *recordingStore) ListTopics(ctx context.Context) ([]models.Topic, error) {
	s.record("ListTopics")
	return s.Storage.ListTopics(ctx)
}

func (s *recordingStore) TryUpdateTopic(ctx context.Context, topic *models.Topic) (bool, error) {
	s.record("TryUpdateTopic")
	return s.Storage.TryUpdateTopic(ctx, topic)
}

func (s *recordingStore) RecreateTopic(ctx context.Context, user *models.User, stale models.Topic, fresh *models.Topic) (bool, error) {
	s.record("RecreateTopic")
	return s.Storage.RecreateTopic(ctx, user, stale, fresh)
}

func (s *recordingStore) DeleteTopic(ctx context.Context, topicId int) error {
	s.record("DeleteTopic")
	return s.Storage.DeleteTopic(ctx, topicId)
}

func (s *recordingStore) CreateReply(ctx context.Context, reply *models.Reply) error {
	s.record("CreateReply")
	return s.Storage.CreateReply(ctx, reply)
}

func (s *recordingStore) GetReplyById(ctx context.Context, replyId int) (models.Reply, error) {
	s.record("GetReplyById")
	return s.Storage.GetReplyById(ctx, replyId)
}

func (s *recordingStore) DeleteReply(ctx context.Context, replyId int) error {
	s.record("DeleteReply")
	return s.Storage.DeleteReply(ctx, replyId)
}

func TestNonAdminBanReadsOnlyTopicOwner(t *testing.T) {
	mem := memory.New()
	user := models.User{Id: 44444, TopicId: 22222}
	topic := models.Topic{Id: 22222, UserId: 44444, IsOpen: true}
	require.NoError(t, mem.CreateUserWithTopic(context.Background(), &user, &topic))

	store := &recordingStore{Storage: mem}
	bot := &messenger.MessengerMock{
		GetChatAdminsFunc: func(ctx context.Context) ([]int64, error) { return []int64{11111}, nil },
	}

	updates := handlers.NewUpdateHandler(handlers.Options{
		Storage:   store,
		Messenger: bot,
		Metrics:   metrics.NewNop(),
		Texts:     localization.Texts{Lang: "en"},
		ChatId:    -100,
		Logger:    zerolog.Nop(),
	})
	chain := SerializeMiddleware(keylock.New[int64](), store, updates.Handle)

	err := chain(context.Background(), intent.CommandFromChat{ChatId: -100, UserId: 55555, TopicId: 22222, Content: "/ban"})

	require.NoError(t, err)
	assert.Equal(t, []string{"GetTopicById"}, store.recorded())
	assert.Len(t, bot.GetChatAdminsCalls(), 1)

	stored, err := mem.GetUserById(context.Background(), 44444)
	require.NoError(t, err)
	assert.False(t, stored.Banned)
	assert.Equal(t, 0, stored.Version)
}

func TestSerializeMiddlewareKeysUserEditsBySender(t *testing.T) {
	locks := keylock.New[int64]()
	unlock, err := locks.Lock(context.Background(), 11111)
	require.NoError(t, err)

	done := make(chan struct{})
	handler := SerializeMiddleware(locks, memory.New(), func(ctx context.Context, in intent.Intent) error {
		close(done)
		return nil
	})

	go func() {
		_ = handler(context.Background(), intent.EditFromUser{UserId: 11111, MessageId: 1})
	}()

	select {
	case <-done:
		t.Fatal("handler ran while the sender was locked")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not run after unlock")
	}
}
