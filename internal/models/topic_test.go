package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicLifecycle(t *testing.T) {
	topic := NewPendingTopic(11111)
	assert.Equal(t, TopicPending, topic.State())
	assert.True(t, topic.IsOpen)

	require.Error(t, topic.MarkStale())
	require.ErrorIs(t, topic.Activate(0), ErrInvalidTopicTransition)

	require.NoError(t, topic.Activate(22222))
	assert.Equal(t, TopicActive, topic.State())
	assert.Equal(t, 22222, topic.Id)
	require.ErrorIs(t, topic.Activate(33333), ErrInvalidTopicTransition)

	_, err := topic.Successor()
	require.ErrorIs(t, err, ErrInvalidTopicTransition)

	require.NoError(t, topic.MarkStale())
	assert.Equal(t, TopicStale, topic.State())

	next, err := topic.Successor()
	require.NoError(t, err)
	assert.Equal(t, TopicPending, next.State())
	assert.Equal(t, int64(11111), next.UserId)
	assert.True(t, next.IsOpen)
}

func TestTopicTitle(t *testing.T) {
	user := &User{Id: 11111, FirstName: "John", LastName: "Doe", Username: "jdoe"}
	topic := Topic{Id: 22222, IsOpen: true, UserId: 11111}

	assert.Equal(t, "🟩\tJohn Doe (@jdoe)", topic.Title(user))

	topic.Close()
	assert.Equal(t, "🟥\tJohn Doe (@jdoe)", topic.Title(user))
	assert.Equal(t, "🟥\t11111", topic.Title(nil))
}

func TestTopicTitleIsTruncated(t *testing.T) {
	user := &User{Id: 1, FirstName: strings.Repeat("я", 300)}
	topic := Topic{Id: 2, IsOpen: true, UserId: 1}

	title := topic.Title(user)

	assert.Equal(t, maxTitleLength, utf8.RuneCountInString(title))
	assert.True(t, strings.HasSuffix(title, "…"))
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		first, last, username string
		want                  string
	}{
		{"John", "", "", "John"},
		{"John", "Doe", "", "John Doe"},
		{"John", "", "jdoe", "John (@jdoe)"},
		{"", "", "jdoe", "(@jdoe)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, DisplayName(c.first, c.last, c.username))
	}
}

func TestUserBan(t *testing.T) {
	user := User{Id: 44444}

	user.Ban()
	assert.True(t, user.IsBanned())
	assert.Equal(t, 0, user.Version)

	user.Unban()
	assert.False(t, user.IsBanned())
}
