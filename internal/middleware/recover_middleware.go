package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"

	"feedback_bot/internal/intent"
)

func RecoverMiddleware(logger zerolog.Logger, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, in intent.Intent) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("intent", string(in.Kind())).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				err = fmt.Errorf("panic: %v", r)
			}
		}()

		return next(ctx, in)
	}
}
