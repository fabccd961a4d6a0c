package avlog

import "sync"

// slot holds the one callback libavutil may call. The dispatcher is
// installed in libavutil exactly when cb is non-nil; both change together
// under the write lock.
var slot struct {
	mu  sync.RWMutex
	cb  Callback
	gen uint64
}

// Registration is the handle returned by Register. Close it to restore the
// native default output, typically with defer.
type Registration struct {
	gen  uint64
	once sync.Once
}

// Register installs cb as the sole receiver of libavutil log events,
// replacing any callback registered before. Once Register returns, no event
// reaches the previous callback. A nil cb clears the registration.
//
// Register is safe for concurrent use.
func Register(cb Callback) *Registration {
	slot.mu.Lock()
	defer slot.mu.Unlock()

	slot.gen++
	if cb == nil {
		clearLocked()
		return &Registration{gen: slot.gen}
	}
	slot.cb = cb
	lib.installDispatcher()
	return &Registration{gen: slot.gen}
}

// Close removes the registration and reinstalls av_log_default_callback.
// Closing a registration that has since been replaced by another Register
// call does nothing. Close is idempotent and always returns nil.
func (r *Registration) Close() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		slot.mu.Lock()
		defer slot.mu.Unlock()
		if slot.gen != r.gen {
			return
		}
		clearLocked()
	})
	return nil
}

// Active reports whether r is still the current registration.
func (r *Registration) Active() bool {
	if r == nil {
		return false
	}
	slot.mu.RLock()
	defer slot.mu.RUnlock()
	return slot.gen == r.gen && slot.cb != nil
}

// Unregister clears whatever callback is registered and restores the native
// default output. Outstanding Registration handles become inert.
func Unregister() {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.gen++
	clearLocked()
}

// Registered reports whether a callback is installed.
func Registered() bool {
	slot.mu.RLock()
	defer slot.mu.RUnlock()
	return slot.cb != nil
}

func clearLocked() {
	slot.cb = nil
	lib.installDefault()
}

// dispatch is the Go half of the native entry point. The read lock is held
// for the whole Log call so a Register or Close waits for in-flight events
// to the callback it replaces. It reports whether a callback took the event.
func dispatch(src Source, level int32, format string, args Args) bool {
	slot.mu.RLock()
	defer slot.mu.RUnlock()
	if slot.cb == nil {
		return false
	}
	slot.cb.Log(src, decodeNative(level), format, args)
	return true
}
