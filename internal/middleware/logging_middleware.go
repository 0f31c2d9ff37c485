package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"feedback_bot/internal/intent"
	"feedback_bot/internal/metrics"
)

// LoggingMiddleware logs the outcome of every intent and records it in metrics.
func LoggingMiddleware(logger zerolog.Logger, m *metrics.Metrics, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, in intent.Intent) error {
		kind := string(in.Kind())
		start := time.Now()

		err := next(ctx, in)

		elapsed := time.Since(start)
		m.Updates.WithLabelValues(kind).Inc()
		m.UpdateDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

		if err != nil {
			m.UpdateErrors.WithLabelValues(kind).Inc()
			logger.Error().Err(err).Str("intent", kind).Dur("elapsed", elapsed).Msg("failed to handle update")

			return err
		}

		logger.Debug().Str("intent", kind).Dur("elapsed", elapsed).Msg("update handled")

		return nil
	}
}
