// Package middleware wraps intent handling in a chain of closures:
// classify -> recover -> log -> per-user lock -> handler.
package middleware

import (
	"context"

	"feedback_bot/internal/intent"
	"feedback_bot/pkg/tgbotclient"
)

type HandlerFunc func(ctx context.Context, in intent.Intent) error

// ClassifyMiddleware is the entry point for raw updates. Updates that match
// no intent are dropped here.
func ClassifyMiddleware(opts intent.Options, next HandlerFunc) func(context.Context, *tgbotclient.Update) {
	return func(ctx context.Context, update *tgbotclient.Update) {
		in := intent.Classify(update, opts)

		if in.Kind() == intent.KindNone {
			return
		}

		_ = next(ctx, in)
	}
}
