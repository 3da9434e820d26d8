// Package goroutine launches background work that must not take the agent down
// when it panics.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs, rather than propagates, a panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Run(log, name, fn)
}

// Run is SafeGo without the goroutine; callers that manage their own
// goroutines or WaitGroups use it directly.
func Run(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
