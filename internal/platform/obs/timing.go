package obs

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Time logs an operation's duration (and error, if any) when the
// returned func runs. Use with defer and a named error return:
//
//	defer obs.Time(ctx, "planner.BuildPlan", logger)(&err)
func Time(ctx context.Context, name string, logger *slog.Logger) func(errp *error) {
	start := time.Now()
	reqID := middleware.GetReqID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		attrs := []any{
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()),
		}
		if reqID != "" {
			attrs = append(attrs, slog.String("req_id", reqID))
		}

		if errp != nil && *errp != nil {
			attrs = append(attrs, slog.String("error", (*errp).Error()))
			logger.Error("operation failed", attrs...)
			return
		}
		logger.Info("operation completed", attrs...)
	}
}
