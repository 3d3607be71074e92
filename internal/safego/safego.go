// Package safego launches goroutines that turn panics into logged errors.
package safego

import (
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// Run executes fn and converts panics into logged errors.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			label := name
			if label == "" {
				label = "goroutine"
			}
			stack := debug.Stack()
			logging.Error("Recovered panic",
				zap.String("goroutine", label),
				zap.String("value", fmt.Sprint(r)),
				zap.ByteString("stack", stack),
			)
			panicHandlerMu.RLock()
			handler := panicHandler
			panicHandlerMu.RUnlock()
			if handler != nil {
				func() {
					defer func() { _ = recover() }()
					handler(label, r, stack)
				}()
			}
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// Err runs fn like Run and returns its error. A panic is reported as an
// error instead of being swallowed.
func Err(name string, fn func() error) (err error) {
	panicked := true
	Run(name, func() {
		err = fn()
		panicked = false
	})
	if panicked {
		label := name
		if label == "" {
			label = "goroutine"
		}
		return fmt.Errorf("panic in %s", label)
	}
	return err
}
