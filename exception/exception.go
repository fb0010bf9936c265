package exception

import (
	"runtime/debug"

	"github.com/chalkcoin/chalkcoin/logx"
	"github.com/chalkcoin/chalkcoin/monitoring"
)

// SafeGo runs fn on its own goroutine and turns a panic into a logged,
// counted event instead of a process crash.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				monitoring.IncreasePanicCount()
				logx.Error("PANIC", name, ": ", r, "\n", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
