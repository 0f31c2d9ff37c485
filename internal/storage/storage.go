package storage

import (
	"context"
	"errors"

	"feedback_bot/internal/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Storage keeps users, topics and replies. Every TryUpdate* call succeeds only
// when the stored version equals the passed one; on success the stored
// version and the passed entity's version are both incremented.
type Storage interface {
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error

	// CreateUserWithTopic persists both rows or none of them.
	CreateUserWithTopic(ctx context.Context, user *models.User, topic *models.Topic) error
	GetUserById(ctx context.Context, userId int64) (models.User, error)
	TryUpdateUser(ctx context.Context, user *models.User) (bool, error)

	GetTopicById(ctx context.Context, topicId int) (models.Topic, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	TryUpdateTopic(ctx context.Context, topic *models.Topic) (bool, error)
	// RecreateTopic drops the stale topic with its replies, inserts the fresh
	// one and points the user at it, all or nothing. It reports false when
	// the user's version changed meanwhile.
	RecreateTopic(ctx context.Context, user *models.User, stale models.Topic, fresh *models.Topic) (bool, error)
	DeleteTopic(ctx context.Context, topicId int) error

	CreateReply(ctx context.Context, reply *models.Reply) error
	GetReplyById(ctx context.Context, replyId int) (models.Reply, error)
	DeleteReply(ctx context.Context, replyId int) error
}
