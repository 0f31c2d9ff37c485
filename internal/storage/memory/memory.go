package memory

import (
	"context"
	"sort"
	"sync"

	"feedback_bot/internal/models"
	"feedback_bot/internal/storage"
)

// Memory is a process-local Storage. It is used by tests and by STORAGE=memory.
type Memory struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	topics  map[int]models.Topic
	replies map[int]models.Reply
}

var _ storage.Storage = (*Memory)(nil)

func New() *Memory {
	return &Memory{
		users:   make(map[int64]models.User),
		topics:  make(map[int]models.Topic),
		replies: make(map[int]models.Reply),
	}
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *Memory) Disconnect(ctx context.Context) error {
	return nil
}

func (m *Memory) CreateUserWithTopic(ctx context.Context, user *models.User, topic *models.Topic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Id]; ok {
		return storage.ErrDuplicateKey
	}
	if _, ok := m.topics[topic.Id]; ok {
		return storage.ErrDuplicateKey
	}

	m.users[user.Id] = *user
	m.topics[topic.Id] = *topic

	return nil
}

func (m *Memory) GetUserById(ctx context.Context, userId int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userId]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}

	return user, nil
}

func (m *Memory) TryUpdateUser(ctx context.Context, user *models.User) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.Id]
	if !ok || stored.Version != user.Version {
		return false, nil
	}

	user.Version++
	m.users[user.Id] = *user

	return true, nil
}

func (m *Memory) GetTopicById(ctx context.Context, topicId int) (models.Topic, error) {
	if err := ctx.Err(); err != nil {
		return models.Topic{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	topic, ok := m.topics[topicId]
	if !ok {
		return models.Topic{}, storage.ErrNotFound
	}

	return topic, nil
}

func (m *Memory) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Topic, 0, len(m.topics))
	for _, topic := range m.topics {
		items = append(items, topic)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Id < items[j].Id
	})

	return items, nil
}

func (m *Memory) TryUpdateTopic(ctx context.Context, topic *models.Topic) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.topics[topic.Id]
	if !ok || stored.Version != topic.Version {
		return false, nil
	}

	topic.Version++
	m.topics[topic.Id] = *topic

	return true, nil
}

func (m *Memory) RecreateTopic(ctx context.Context, user *models.User, stale models.Topic, fresh *models.Topic) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.Id]
	if !ok || stored.Version != user.Version {
		return false, nil
	}
	if _, ok := m.topics[fresh.Id]; ok {
		return false, storage.ErrDuplicateKey
	}

	m.deleteTopicLocked(stale.Id)
	m.topics[fresh.Id] = *fresh

	user.TopicId = fresh.Id
	user.Version++
	m.users[user.Id] = *user

	return true, nil
}

func (m *Memory) DeleteTopic(ctx context.Context, topicId int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteTopicLocked(topicId)

	return nil
}

func (m *Memory) deleteTopicLocked(topicId int) {
	delete(m.topics, topicId)

	for id, reply := range m.replies {
		if reply.TopicId == topicId {
			delete(m.replies, id)
		}
	}
}

func (m *Memory) CreateReply(ctx context.Context, reply *models.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.replies[reply.Id]; ok {
		return storage.ErrDuplicateKey
	}

	m.replies[reply.Id] = *reply

	return nil
}

func (m *Memory) GetReplyById(ctx context.Context, replyId int) (models.Reply, error) {
	if err := ctx.Err(); err != nil {
		return models.Reply{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	reply, ok := m.replies[replyId]
	if !ok {
		return models.Reply{}, storage.ErrNotFound
	}

	return reply, nil
}

func (m *Memory) DeleteReply(ctx context.Context, replyId int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.replies, replyId)

	return nil
}
