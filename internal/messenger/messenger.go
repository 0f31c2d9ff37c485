package messenger

import (
	"context"
	"errors"
)

var (
	// ErrThreadNotFound means the forum topic was deleted on the chat side.
	ErrThreadNotFound = errors.New("message thread not found")
	// ErrRecipientBlocked means the user blocked the bot.
	ErrRecipientBlocked = errors.New("recipient blocked the bot")
)

//go:generate moq -out messenger_mock.go . Messenger

// Messenger talks to the feedback chat and to users' private chats.
// Topic ids are forum message_thread_id values in the feedback chat.
type Messenger interface {
	CreateTopic(ctx context.Context, title string) (int, error)
	EditTopic(ctx context.Context, topicId int, title string) error
	// ReopenTopic and CloseTopic succeed when the topic is already in the requested state.
	ReopenTopic(ctx context.Context, topicId int) error
	CloseTopic(ctx context.Context, topicId int) error

	// ForwardToChat forwards a user's message into the topic. It returns
	// ErrThreadNotFound when the topic no longer exists.
	ForwardToChat(ctx context.Context, topicId int, fromChatId int64, messageId int) error
	// CopyToUser copies a feedback chat message to the user and returns the
	// id of the copy. It returns ErrRecipientBlocked when the user blocked the bot.
	CopyToUser(ctx context.Context, userId int64, messageId int) (int, error)
	EditUserMessage(ctx context.Context, userId int64, messageId int, text string) error
	DeleteMessage(ctx context.Context, chatId int64, messageId int) error
	// SetMessageReaction replaces the bot's reaction on a message with one emoji.
	SetMessageReaction(ctx context.Context, chatId int64, messageId int, emoji string) error

	// SendToUser swallows the error of a user who blocked the bot.
	SendToUser(ctx context.Context, userId int64, text string) error
	SendToChat(ctx context.Context, topicId int, text string) (int, error)
	PinChatMessage(ctx context.Context, messageId int) error
	GetChatAdmins(ctx context.Context) ([]int64, error)
}
