package models

import (
	"errors"
	"fmt"
	"strconv"

	"feedback_bot/internal/util"
)

const (
	openTopicMark   = "🟩"
	closedTopicMark = "🟥"
	maxTitleLength  = 128
)

type TopicState int

const (
	// TopicPending has no forum thread yet, so its Id is not known.
	TopicPending TopicState = iota
	// TopicActive is bound to an existing forum thread.
	TopicActive
	// TopicStale points to a thread the chat reported as missing.
	TopicStale
)

func (s TopicState) String() string {
	switch s {
	case TopicPending:
		return "pending"
	case TopicActive:
		return "active"
	case TopicStale:
		return "stale"
	default:
		return fmt.Sprintf("TopicState(%d)", int(s))
	}
}

var ErrInvalidTopicTransition = errors.New("invalid topic state transition")

type Topic struct {
	// Id equals the message_thread_id of the forum topic in the feedback chat.
	Id      int   `bson:"_id"`
	IsOpen  bool  `bson:"is_open"`
	UserId  int64 `bson:"user_id"`
	Version int   `bson:"version"`

	stale bool
}

func NewPendingTopic(userId int64) Topic {
	return Topic{
		UserId: userId,
		IsOpen: true,
	}
}

func (t *Topic) State() TopicState {
	switch {
	case t.stale:
		return TopicStale
	case t.Id == 0:
		return TopicPending
	default:
		return TopicActive
	}
}

// Activate binds a pending topic to the thread created for it.
func (t *Topic) Activate(threadId int) error {
	if t.State() != TopicPending || threadId == 0 {
		return fmt.Errorf("%w: activate %s topic with thread %d", ErrInvalidTopicTransition, t.State(), threadId)
	}

	t.Id = threadId

	return nil
}

// MarkStale flags an active topic whose thread no longer exists.
func (t *Topic) MarkStale() error {
	if t.State() != TopicActive {
		return fmt.Errorf("%w: mark %s topic %d stale", ErrInvalidTopicTransition, t.State(), t.Id)
	}

	t.stale = true

	return nil
}

// Successor returns the pending topic that replaces a stale one.
func (t *Topic) Successor() (Topic, error) {
	if t.State() != TopicStale {
		return Topic{}, fmt.Errorf("%w: replace %s topic %d", ErrInvalidTopicTransition, t.State(), t.Id)
	}

	return NewPendingTopic(t.UserId), nil
}

func (t *Topic) Open() {
	t.IsOpen = true
}

func (t *Topic) Close() {
	t.IsOpen = false
}

// Title builds the forum topic name. The user may be nil when the owner row is missing.
func (t *Topic) Title(user *User) string {
	mark := closedTopicMark
	if t.IsOpen {
		mark = openTopicMark
	}

	name := ""
	if user != nil {
		name = user.DisplayName()
	}
	if name == "" {
		name = strconv.FormatInt(t.UserId, 10)
	}

	return util.Truncate(fmt.Sprintf("%s\t%s", mark, name), maxTitleLength, "…")
}
