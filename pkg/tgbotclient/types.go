package tgbotclient

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Update carries the parts of a Bot API update the relay consumes. The
// upstream type predates forum topics, so the message is decoded into
// Message below.
type Update struct {
	UpdateID      int      `json:"update_id"`
	Message       *Message `json:"message,omitempty"`
	EditedMessage *Message `json:"edited_message,omitempty"`
}

// Message extends tgbotapi.Message with forum fields.
type Message struct {
	tgbotapi.Message

	MessageThreadID int            `json:"message_thread_id,omitempty"`
	IsTopicMessage  bool           `json:"is_topic_message,omitempty"`
	ReplyToMessage  *Message       `json:"reply_to_message,omitempty"`
	ForwardOrigin   *MessageOrigin `json:"forward_origin,omitempty"`
}

type MessageOrigin struct {
	Type           string         `json:"type"`
	Date           int            `json:"date"`
	SenderUser     *tgbotapi.User `json:"sender_user,omitempty"`
	SenderUserName string         `json:"sender_user_name,omitempty"`
}

// IsForwarded reports whether the message was forwarded, in either the
// current or the legacy Bot API shape.
func (m *Message) IsForwarded() bool {
	return m.ForwardOrigin != nil || m.ForwardDate != 0
}
