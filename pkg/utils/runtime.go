package utils

import (
	"context"
	"log"
	"runtime/debug"

	"pe-portfolio-aggregator/pkg/logger"
)

// GoSafe runs fn in a new goroutine and recovers panics so one bad
// record cannot take down a whole pipeline run.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether the context is still live, logging once
// when cancellation is observed.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context canceled, stopping work", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
