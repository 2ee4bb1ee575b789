// Package goroutine launches background work that must not crash the process.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// SafeGo launches fn in a goroutine and logs a panic with its stack instead
// of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverPanic(log, name)
		fn()
	}()
}

// Every runs fn immediately and then on every tick until ctx is done. A panic
// in one run is logged and the loop continues with the next tick. The
// returned channel is closed once the loop has exited.
func Every(ctx context.Context, log logger.Interface, name string, interval time.Duration, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			runOnce(ctx, log, name, fn)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return done
}

func runOnce(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) {
	defer recoverPanic(log, name)
	fn(ctx)
}

func recoverPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
