package obs

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type ctxKey string

// RequestIDKey carries the per-request correlation ID through contexts.
const RequestIDKey ctxKey = "req_id"

// RequestID returns the correlation ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID returns a context carrying the correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration and outcome of an operation. Use as:
//
//	defer obs.Time(ctx, "legs.AssignTruck")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		entry := log.WithFields(log.Fields{
			"req_id": reqID,
			"op":     name,
			"dur_ms": time.Since(start).Milliseconds(),
		})

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Warn("operation failed")
			return
		}
		entry.Debug("operation completed")
	}
}
