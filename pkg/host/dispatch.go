package host

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule event
// callbacks on the application's UI thread. This should be called once by
// the embedding application during initialization.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback through the registered dispatch function.
// When no dispatch function is registered the callback runs synchronously
// on the caller's goroutine. Nil callbacks are ignored.
func Dispatch(callback func()) {
	if callback == nil {
		return
	}
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil {
		callback()
		return
	}
	fn(callback)
}
