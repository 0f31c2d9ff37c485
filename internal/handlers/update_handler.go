package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"feedback_bot/internal/handlers/admin"
	"feedback_bot/internal/handlers/topics"
	"feedback_bot/internal/handlers/user"
	"feedback_bot/internal/intent"
	"feedback_bot/internal/localization"
	"feedback_bot/internal/messenger"
	"feedback_bot/internal/metrics"
	"feedback_bot/internal/storage"
)

type Options struct {
	Storage   storage.Storage
	Messenger messenger.Messenger
	Metrics   *metrics.Metrics
	Texts     localization.Texts
	// ChatId is the feedback chat.
	ChatId int64
	Logger zerolog.Logger
}

// UpdateHandler routes intents to the user or the admin side.
type UpdateHandler struct {
	user  *user.Handler
	admin *admin.Handler
}

func NewUpdateHandler(opts Options) *UpdateHandler {
	manager := topics.NewManager(opts.Storage, opts.Messenger, opts.Metrics, opts.Texts, opts.Logger)

	return &UpdateHandler{
		user:  user.NewHandler(opts.Storage, opts.Messenger, manager, opts.Metrics, opts.Texts, opts.Logger),
		admin: admin.NewHandler(opts.Storage, opts.Messenger, manager, opts.Metrics, opts.Texts, opts.ChatId, opts.Logger),
	}
}

func (h *UpdateHandler) Handle(ctx context.Context, in intent.Intent) error {
	switch in := in.(type) {
	case intent.CommandFromUser:
		return h.user.HandleCommand(ctx, in)
	case intent.MessageFromUser:
		return h.user.HandleMessage(ctx, in)
	case intent.EditFromUser:
		return h.user.HandleEdit(ctx, in)
	case intent.CommandFromChat:
		return h.admin.HandleCommand(ctx, in)
	case intent.MessageFromChat:
		return h.admin.HandleReply(ctx, in)
	case intent.EditFromChat:
		return h.admin.HandleEdit(ctx, in)
	default:
		return nil
	}
}
