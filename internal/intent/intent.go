// Package intent turns Bot API updates into the typed inputs the relay handles.
package intent

import (
	"strings"

	"feedback_bot/internal/models"
)

type Kind string

const (
	KindNone            Kind = "none"
	KindCommandFromUser Kind = "command_from_user"
	KindMessageFromUser Kind = "message_from_user"
	KindCommandFromChat Kind = "command_from_chat"
	KindMessageFromChat Kind = "message_from_chat"
	KindEditFromChat    Kind = "edit_from_chat"
	KindEditFromUser    Kind = "edit_from_user"
)

// Intent is implemented only by the types of this package.
type Intent interface {
	Kind() Kind
	isIntent()
}

// CommandFromUser is a slash command sent to the bot in a private chat.
type CommandFromUser struct {
	UserId  int64
	Content string
}

// MessageFromUser is anything else a user sends that can be forwarded.
type MessageFromUser struct {
	UserId    int64
	MessageId int
	FirstName string
	LastName  string
	Username  string
	Content   string
}

// CommandFromChat is a slash command posted inside a topic of the feedback chat.
type CommandFromChat struct {
	ChatId           int64
	UserId           int64
	TopicId          int
	MessageId        int
	Content          string
	ReplyToMessageId *int
	ReplyToUserId    *int64
}

// MessageFromChat is a staff reply to a forwarded user message.
type MessageFromChat struct {
	ChatId    int64
	UserId    int64
	TopicId   int
	MessageId int
	Content   string
}

// EditFromChat is an edit of a staff message inside a topic.
type EditFromChat struct {
	ChatId    int64
	UserId    int64
	TopicId   int
	MessageId int
	Content   string
}

// EditFromUser is an edit of a message in a private chat. Edits are not
// relayed, the user only gets told so.
type EditFromUser struct {
	UserId    int64
	MessageId int
}

type None struct{}

func (CommandFromUser) Kind() Kind { return KindCommandFromUser }
func (MessageFromUser) Kind() Kind { return KindMessageFromUser }
func (CommandFromChat) Kind() Kind { return KindCommandFromChat }
func (MessageFromChat) Kind() Kind { return KindMessageFromChat }
func (EditFromChat) Kind() Kind    { return KindEditFromChat }
func (EditFromUser) Kind() Kind    { return KindEditFromUser }
func (None) Kind() Kind            { return KindNone }

func (CommandFromUser) isIntent() {}
func (MessageFromUser) isIntent() {}
func (CommandFromChat) isIntent() {}
func (MessageFromChat) isIntent() {}
func (EditFromChat) isIntent()    {}
func (EditFromUser) isIntent()    {}
func (None) isIntent()            {}

func (c CommandFromUser) Command() string {
	return Command(c.Content)
}

func (c CommandFromChat) Command() string {
	return Command(c.Content)
}

func (m MessageFromUser) DisplayName() string {
	return models.DisplayName(m.FirstName, m.LastName, m.Username)
}

// Command extracts the command token: leading whitespace is trimmed and the
// text is cut at the first '@' and then at the first space.
func Command(text string) string {
	text = strings.TrimLeft(text, " \t\n\r")

	if i := strings.IndexByte(text, '@'); i != -1 {
		text = text[:i]
	}

	if i := strings.IndexByte(text, ' '); i != -1 {
		text = text[:i]
	}

	return text
}
