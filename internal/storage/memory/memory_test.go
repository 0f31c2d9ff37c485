package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
)

func seed(t *testing.T, m *Memory) (models.User, models.Topic) {
	t.Helper()

	user := models.User{Id: 11111, TopicId: 22222, FirstName: "John"}
	topic := models.Topic{Id: 22222, IsOpen: true, UserId: 11111}
	require.NoError(t, m.CreateUserWithTopic(context.Background(), &user, &topic))

	return user, topic
}

func TestCreateUserWithTopic(t *testing.T) {
	ctx := context.Background()
	m := New()
	user, topic := seed(t, m)

	gotUser, err := m.GetUserById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)

	gotTopic, err := m.GetTopicById(ctx, topic.Id)
	require.NoError(t, err)
	assert.Equal(t, topic, gotTopic)

	err = m.CreateUserWithTopic(ctx, &user, &models.Topic{Id: 33333, UserId: user.Id})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = m.GetTopicById(ctx, 33333)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTryUpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	m := New()
	user, topic := seed(t, m)

	stale := user
	user.Ban()
	ok, err := m.TryUpdateUser(ctx, &user)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, user.Version)

	stale.Ban()
	ok, err = m.TryUpdateUser(ctx, &stale)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, stale.Version)

	topic.Close()
	ok, err = m.TryUpdateTopic(ctx, &topic)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := m.GetTopicById(ctx, topic.Id)
	require.NoError(t, err)
	assert.False(t, stored.IsOpen)
	assert.Equal(t, 1, stored.Version)

	ok, err = m.TryUpdateTopic(ctx, &models.Topic{Id: 99999})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecreateTopic(t *testing.T) {
	ctx := context.Background()
	m := New()
	user, topic := seed(t, m)
	require.NoError(t, m.CreateReply(ctx, &models.Reply{Id: 1, TopicId: topic.Id, BotMessageId: 2}))

	fresh := models.Topic{Id: 33333, IsOpen: true, UserId: user.Id}
	ok, err := m.RecreateTopic(ctx, &user, topic, &fresh)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 33333, user.TopicId)
	assert.Equal(t, 1, user.Version)

	_, err = m.GetTopicById(ctx, topic.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.GetReplyById(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	outdated := user
	outdated.Version = 0
	ok, err = m.RecreateTopic(ctx, &outdated, fresh, &models.Topic{Id: 44444, UserId: user.Id})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.GetTopicById(ctx, 33333)
	assert.NoError(t, err)
}

func TestReplies(t *testing.T) {
	ctx := context.Background()
	m := New()

	reply := models.Reply{Id: 55555, TopicId: 22222, BotMessageId: 66666}
	require.NoError(t, m.CreateReply(ctx, &reply))
	assert.ErrorIs(t, m.CreateReply(ctx, &reply), storage.ErrDuplicateKey)

	got, err := m.GetReplyById(ctx, reply.Id)
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	require.NoError(t, m.DeleteReply(ctx, reply.Id))
	require.NoError(t, m.DeleteReply(ctx, reply.Id))

	_, err = m.GetReplyById(ctx, reply.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListTopicsIsSorted(t *testing.T) {
	ctx := context.Background()
	m := New()

	for _, id := range []int{3, 1, 2} {
		user := models.User{Id: int64(id * 10), TopicId: id}
		topic := models.Topic{Id: id, UserId: user.Id}
		require.NoError(t, m.CreateUserWithTopic(ctx, &user, &topic))
	}

	topics, err := m.ListTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{topics[0].Id, topics[1].Id, topics[2].Id})
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().GetUserById(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
