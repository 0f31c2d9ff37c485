package localization

import "fmt"

const DefaultLanguage = "ru"

const (
	YouWereBanned     = "youWereBanned"
	UnableToBanAdmin  = "unableToBanAdmin"
	UserBanned        = "userBanned"
	UserUnbanned      = "userUnbanned"
	MessageDeleted    = "messageDeleted"
	UserBlockedTheBot = "userBlockedTheBot"
	SomethingWrong    = "somethingWrong"
	UserInfo          = "userInfo"
	NoData            = "noData"
	EditNotSupported  = "editNotSupported"
	StartMessage      = "startMessage"
	HelpMessage       = "helpMessage"
	CommandStart      = "commandStart"
	CommandHelp       = "commandHelp"
	CommandDelete     = "commandDelete"
	CommandBan        = "commandBan"
	CommandUnban      = "commandUnban"
	CommandOpen       = "commandOpen"
	CommandClose      = "commandClose"
	CommandSync       = "commandSync"
)

var (
	messages = map[string]map[string]string{
		"en": {
			YouWereBanned:     "You can no longer send messages to this bot.",
			UnableToBanAdmin:  "Chat administrators cannot be banned",
			UserBanned:        "User banned",
			UserUnbanned:      "User unbanned",
			MessageDeleted:    "Message deleted",
			UserBlockedTheBot: "The user blocked the bot",
			SomethingWrong:    "🪲 Something went wrong...",
			UserInfo:          "First name: %s\nLast name: %s\nUsername: %s\nID: %d",
			NoData:            "n/a",
			EditNotSupported:  "Editing messages is not supported, please send a new one.",
			StartMessage:      "Hello! Write your message and we will answer here.",
			HelpMessage:       "Send a message, a photo or a document and the team will get it.",
			CommandStart:      "Start",
			CommandHelp:       "Help",
			CommandDelete:     "Delete the replied message for both sides",
			CommandBan:        "Ban the topic's user",
			CommandUnban:      "Unban the topic's user",
			CommandOpen:       "Open the topic",
			CommandClose:      "Close the topic",
			CommandSync:       "Push stored state to every topic",
		},
		"ru": {
			YouWereBanned:     "Вы больше не можете отправлять сообщения в бота.",
			UnableToBanAdmin:  "Нельзя забанить администратора чата",
			UserBanned:        "Пользователь забанен",
			UserUnbanned:      "Пользователь разбанен",
			MessageDeleted:    "Сообщение удалено",
			UserBlockedTheBot: "Пользователь заблокировал бота",
			SomethingWrong:    "🪲 Что-то пошло не так...",
			UserInfo:          "Имя: %s\nФамилия: %s\nUsername: %s\nID: %d",
			NoData:            "нет данных",
			EditNotSupported:  "Редактирование сообщений не поддерживается, отправьте новое сообщение.",
			StartMessage:      "Здравствуйте! Напишите сообщение, и мы ответим здесь.",
			HelpMessage:       "Отправьте сообщение, фото или документ, и команда его получит.",
			CommandStart:      "Начать",
			CommandHelp:       "Помощь",
			CommandDelete:     "Удалить сообщение у обеих сторон",
			CommandBan:        "Забанить пользователя",
			CommandUnban:      "Разбанить пользователя",
			CommandOpen:       "Открыть топик",
			CommandClose:      "Закрыть топик",
			CommandSync:       "Синхронизировать топики",
		},
	}
)

func IsSupported(lang string) bool {
	_, ok := messages[lang]

	return ok
}

func GetLocalizedText(lang string, textId string, args ...interface{}) string {
	if _, ok := messages[lang][textId]; !ok {
		lang = "en"
	}

	message, ok := messages[lang][textId]

	if !ok {
		return textId
	}

	if len(args) == 0 {
		return message
	}

	return fmt.Sprintf(message, args...)
}

// Texts resolves texts in one language. Start and Help, when set, replace
// the default greeting and help texts.
type Texts struct {
	Lang  string
	Start string
	Help  string
}

func (t Texts) Get(textId string, args ...interface{}) string {
	switch {
	case textId == StartMessage && t.Start != "":
		return t.Start
	case textId == HelpMessage && t.Help != "":
		return t.Help
	}

	return GetLocalizedText(t.Lang, textId, args...)
}
