package utils

import "sync"

// AlertTracker remembers which alert keys have already been dispatched so
// that watch cycles do not re-notify the same ticket
type AlertTracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewAlertTracker creates a new tracker
func NewAlertTracker() *AlertTracker {
	return &AlertTracker{seen: make(map[string]struct{})}
}

// Add returns true if the key is new (not alerted before), false if duplicate
func (t *AlertTracker) Add(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.seen[key]; exists {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// Count returns the number of tracked keys
func (t *AlertTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
