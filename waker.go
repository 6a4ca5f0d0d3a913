package mpsc

// Waker marks a suspended caller runnable again. The channel stores the
// Waker passed to a poll operation that returned [Pending] and calls Wake
// once the condition the caller waits for may have changed.
//
// Wake is always invoked without any channel lock held, so it may call
// back into the channel. It must not block.
type Waker interface {
	Wake()
}

// WakerFunc adapts an ordinary function to the [Waker] interface.
type WakerFunc func()

// Wake calls f().
func (f WakerFunc) Wake() { f() }

// NoopWaker is a [Waker] that does nothing. It is useful for callers that
// re-poll on their own schedule and do not need notifications.
var NoopWaker Waker = WakerFunc(func() {})

// Poll is the readiness half of a poll result.
type Poll int

const (
	// Pending means the operation could not complete yet. The Waker passed
	// to the call has been registered and will be woken when the caller
	// should poll again.
	Pending Poll = iota

	// Ready means the operation completed.
	Ready
)

// String returns "Pending" or "Ready".
func (p Poll) String() string {
	switch p {
	case Pending:
		return "Pending"
	case Ready:
		return "Ready"
	default:
		return "Poll(?)"
	}
}

// IsReady reports whether p is [Ready].
func (p Poll) IsReady() bool { return p == Ready }

// wakeAll calls Wake on every non-nil waker in ws.
func wakeAll(ws []Waker) {
	for _, w := range ws {
		if w != nil {
			w.Wake()
		}
	}
}
