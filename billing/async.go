package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is replaced in tests to run synchronously.
var runAsync = safeAsync

// safeAsync runs fn on a goroutine with a bounded context so a slow
// Temporal call never blocks the request path.
func safeAsync(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			rlog.Error("async task failed", "task", name, "error", err)
			return
		}
		rlog.Debug("async task completed", "task", name)
	}()
}
