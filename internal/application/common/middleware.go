package common

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/voyageplan-go/internal/infrastructure/logging"
)

// LoggingMiddleware logs every dispatched request with its handler outcome
// and duration.
func LoggingMiddleware(log logging.Logger) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		name := fmt.Sprintf("%T", request)
		start := time.Now()

		resp, err := next(ctx, request)

		fields := map[string]any{
			"request":     name,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			fields["error"] = err.Error()
			log.Infow("request failed", fields)
			return resp, err
		}
		log.Infow("request handled", fields)
		return resp, nil
	}
}
