// Package goroutine launches background work that must not take the
// process down when it panics.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/jaras-platform/jaras/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs a panic with its stack instead of
// crashing.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

// SafeGoCtx is SafeGo for functions that stop with ctx. The returned channel
// is closed when fn returns or panics.
func SafeGoCtx(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverAndLog(log, name)
		fn(ctx)
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
