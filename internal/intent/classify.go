package intent

import (
	"strings"

	"feedback_bot/pkg/tgbotclient"
)

const commandMarker = "/"

type Options struct {
	// ChatId is the feedback chat.
	ChatId int64
	// BotId identifies messages the bot forwarded into the feedback chat.
	BotId int64
}

func Classify(update *tgbotclient.Update, opts Options) Intent {
	if update == nil {
		return None{}
	}

	if m := update.Message; m != nil && m.From != nil && m.Chat != nil {
		if m.Chat.ID == m.From.ID {
			return fromUser(m)
		}

		if m.Chat.ID == opts.ChatId && m.MessageThreadID != 0 {
			return fromChat(m, opts)
		}
	}

	if m := update.EditedMessage; m != nil && m.From != nil && m.Chat != nil {
		if m.Chat.ID == m.From.ID {
			return EditFromUser{UserId: m.From.ID, MessageId: m.MessageID}
		}

		if m.Chat.ID == opts.ChatId && m.MessageThreadID != 0 && m.Text != "" && !isCommand(m.Text) {
			return EditFromChat{
				ChatId:    m.Chat.ID,
				UserId:    m.From.ID,
				TopicId:   m.MessageThreadID,
				MessageId: m.MessageID,
				Content:   m.Text,
			}
		}
	}

	return None{}
}

func fromUser(m *tgbotclient.Message) Intent {
	if m.Text != "" && isCommand(m.Text) {
		return CommandFromUser{UserId: m.From.ID, Content: m.Text}
	}

	if m.Text == "" && !hasContent(m) {
		return None{}
	}

	return MessageFromUser{
		UserId:    m.From.ID,
		MessageId: m.MessageID,
		FirstName: m.From.FirstName,
		LastName:  m.From.LastName,
		Username:  m.From.UserName,
		Content:   m.Text,
	}
}

func fromChat(m *tgbotclient.Message, opts Options) Intent {
	if m.Text != "" && isCommand(m.Text) {
		command := CommandFromChat{
			ChatId:    m.Chat.ID,
			UserId:    m.From.ID,
			TopicId:   m.MessageThreadID,
			MessageId: m.MessageID,
			Content:   m.Text,
		}

		if reply := m.ReplyToMessage; reply != nil && !isThreadRoot(m) {
			messageId := reply.MessageID
			command.ReplyToMessageId = &messageId

			if reply.From != nil {
				userId := reply.From.ID
				command.ReplyToUserId = &userId
			}
		}

		return command
	}

	if m.Text == "" && !hasContent(m) {
		return None{}
	}

	reply := m.ReplyToMessage
	if reply == nil || reply.From == nil || reply.From.ID != opts.BotId || !reply.IsForwarded() {
		return None{}
	}

	return MessageFromChat{
		ChatId:    m.Chat.ID,
		UserId:    m.From.ID,
		TopicId:   m.MessageThreadID,
		MessageId: m.MessageID,
		Content:   m.Text,
	}
}

// isThreadRoot reports whether the replied message is the service message
// that opened the topic. Every plain topic message replies to it.
func isThreadRoot(m *tgbotclient.Message) bool {
	return m.ReplyToMessage.MessageID == m.MessageThreadID
}

func isCommand(text string) bool {
	return strings.HasPrefix(text, commandMarker)
}

func hasContent(m *tgbotclient.Message) bool {
	return len(m.Photo) > 0 || m.Document != nil
}
