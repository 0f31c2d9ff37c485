package tgbotclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"feedback_bot/internal/messenger"
	"feedback_bot/internal/util"
)

const maxMessageLength = 4096

// TgBotClient is the Bot API gateway bound to one feedback chat.
type TgBotClient struct {
	*tgbotapi.BotAPI
	chatId int64
	logger zerolog.Logger
}

var _ messenger.Messenger = (*TgBotClient)(nil)

func NewTgBotClient(botToken string, chatId int64, debug bool, logger zerolog.Logger) (*TgBotClient, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)

	if err != nil {
		return nil, err
	}

	bot.Debug = debug

	return FromBotAPI(bot, chatId, logger), nil
}

func FromBotAPI(bot *tgbotapi.BotAPI, chatId int64, logger zerolog.Logger) *TgBotClient {
	return &TgBotClient{
		BotAPI: bot,
		chatId: chatId,
		logger: logger.With().Str("component", "tgbotclient").Logger(),
	}
}

func (h *TgBotClient) ChatId() int64 {
	return h.chatId
}

func (h *TgBotClient) BotId() int64 {
	return h.Self.ID
}

func (h *TgBotClient) CreateTopic(ctx context.Context, title string) (int, error) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", h.chatId)
	params.AddNonEmpty("name", title)

	resp, err := h.request(ctx, "createForumTopic", params)

	if err != nil {
		return 0, fmt.Errorf("create topic: %w", err)
	}

	var topic struct {
		MessageThreadID int `json:"message_thread_id"`
	}

	if err := json.Unmarshal(resp.Result, &topic); err != nil {
		return 0, fmt.Errorf("decode topic: %w", err)
	}

	return topic.MessageThreadID, nil
}

func (h *TgBotClient) EditTopic(ctx context.Context, topicId int, title string) error {
	params := h.topicParams(topicId)
	params.AddNonEmpty("name", title)

	return h.topicRequest(ctx, "editForumTopic", params)
}

func (h *TgBotClient) ReopenTopic(ctx context.Context, topicId int) error {
	return h.topicRequest(ctx, "reopenForumTopic", h.topicParams(topicId))
}

func (h *TgBotClient) CloseTopic(ctx context.Context, topicId int) error {
	return h.topicRequest(ctx, "closeForumTopic", h.topicParams(topicId))
}

func (h *TgBotClient) ForwardToChat(ctx context.Context, topicId int, fromChatId int64, messageId int) error {
	params := h.topicParams(topicId)
	params.AddNonZero64("from_chat_id", fromChatId)
	params.AddNonZero("message_id", messageId)

	_, err := h.request(ctx, "forwardMessage", params)

	if isThreadNotFound(err) {
		return messenger.ErrThreadNotFound
	}

	return err
}

func (h *TgBotClient) CopyToUser(ctx context.Context, userId int64, messageId int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	res, err := h.CopyMessage(tgbotapi.NewCopyMessage(userId, h.chatId, messageId))

	if isForbidden(err) {
		return 0, messenger.ErrRecipientBlocked
	}

	if err != nil {
		return 0, err
	}

	return res.MessageID, nil
}

func (h *TgBotClient) EditUserMessage(ctx context.Context, userId int64, messageId int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := h.Request(tgbotapi.NewEditMessageText(userId, messageId, truncate(text)))

	switch {
	case isForbidden(err):
		return messenger.ErrRecipientBlocked
	case hasDescription(err, "message is not modified"):
		return nil
	}

	return err
}

func (h *TgBotClient) DeleteMessage(ctx context.Context, chatId int64, messageId int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := h.Request(tgbotapi.NewDeleteMessage(chatId, messageId))

	return err
}

type reactionType struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

func (h *TgBotClient) SetMessageReaction(ctx context.Context, chatId int64, messageId int, emoji string) error {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatId)
	params.AddNonZero("message_id", messageId)

	if err := params.AddInterface("reaction", []reactionType{{Type: "emoji", Emoji: emoji}}); err != nil {
		return err
	}

	_, err := h.request(ctx, "setMessageReaction", params)

	return err
}

func (h *TgBotClient) SendToUser(ctx context.Context, userId int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := h.Send(tgbotapi.NewMessage(userId, truncate(text)))

	if isForbidden(err) {
		h.logger.Info().Int64("user_id", userId).Msg("user blocked the bot")
		return nil
	}

	return err
}

func (h *TgBotClient) SendToChat(ctx context.Context, topicId int, text string) (int, error) {
	params := h.topicParams(topicId)
	params.AddNonEmpty("text", truncate(text))

	resp, err := h.request(ctx, "sendMessage", params)

	if isThreadNotFound(err) {
		return 0, messenger.ErrThreadNotFound
	}

	if err != nil {
		return 0, err
	}

	var msg tgbotapi.MessageID

	if err := json.Unmarshal(resp.Result, &msg); err != nil {
		return 0, fmt.Errorf("decode message: %w", err)
	}

	return msg.MessageID, nil
}

func (h *TgBotClient) PinChatMessage(ctx context.Context, messageId int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := h.Request(
		tgbotapi.PinChatMessageConfig{
			ChatID:              h.chatId,
			MessageID:           messageId,
			DisableNotification: true,
		},
	)

	return err
}

func (h *TgBotClient) GetChatAdmins(ctx context.Context) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	members, err := h.GetChatAdministrators(
		tgbotapi.ChatAdministratorsConfig{
			ChatConfig: tgbotapi.ChatConfig{ChatID: h.chatId},
		},
	)

	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		if member.User != nil {
			ids = append(ids, member.User.ID)
		}
	}

	return ids, nil
}

// SetCommands replaces the command menu shown in the given scope.
func (h *TgBotClient) SetCommands(ctx context.Context, scope tgbotapi.BotCommandScope, commands ...tgbotapi.BotCommand) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := h.Request(tgbotapi.NewSetMyCommandsWithScope(scope, commands...))

	return err
}

func (h *TgBotClient) topicParams(topicId int) tgbotapi.Params {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", h.chatId)
	params.AddNonZero("message_thread_id", topicId)

	return params
}

func (h *TgBotClient) topicRequest(ctx context.Context, endpoint string, params tgbotapi.Params) error {
	_, err := h.request(ctx, endpoint, params)

	if hasDescription(err, "TOPIC_NOT_MODIFIED") {
		return nil
	}

	return err
}

// request is MakeRequest for endpoints the library has no config type for.
// The library does not take a context, so only cancellation before the call is honoured.
func (h *TgBotClient) request(ctx context.Context, endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.MakeRequest(endpoint, params)
}

func asAPIError(err error) (*tgbotapi.Error, bool) {
	var apiErr *tgbotapi.Error

	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func isForbidden(err error) bool {
	apiErr, ok := asAPIError(err)

	return ok && apiErr.Code == 403
}

func isThreadNotFound(err error) bool {
	return hasDescription(err, "message thread not found")
}

func hasDescription(err error, substr string) bool {
	apiErr, ok := asAPIError(err)

	return ok && strings.Contains(strings.ToLower(apiErr.Message), strings.ToLower(substr))
}

func truncate(text string) string {
	return util.Truncate(text, maxMessageLength, "…")
}
