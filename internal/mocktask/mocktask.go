// Package mocktask provides a Waker test double that records notifications
// instead of scheduling anything.
package mocktask

import "sync/atomic"

// Task stands in for a suspended task. Pass Task (or Task.Waker) wherever a
// Waker is required and check IsNotified afterwards.
type Task struct {
	notified atomic.Bool
	count    atomic.Int64
}

// New returns a Task that has not been notified.
func New() *Task {
	return &Task{}
}

// Wake records a notification.
func (t *Task) Wake() {
	t.count.Add(1)
	t.notified.Store(true)
}

// IsNotified reports whether Wake ran since the last call, and clears the
// flag.
func (t *Task) IsNotified() bool {
	return t.notified.Swap(false)
}

// Count returns the total number of Wake calls.
func (t *Task) Count() int64 {
	return t.count.Load()
}
