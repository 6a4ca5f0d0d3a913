package await

// Signal is an [mpsc.Waker] backed by a one-slot channel. Wakes coalesce:
// any number of Wake calls between two receives from C deliver a single
// notification, and a Wake that happens before the receiver starts
// waiting is not lost.
//
// [mpsc.Waker]: https://pkg.go.dev/github.com/baxromumarov/mpsc#Waker
type Signal struct {
	ch chan struct{}
}

// NewSignal returns a Signal with no pending notification.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Wake records a notification without blocking.
func (s *Signal) Wake() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C returns the channel that receives a value after Wake.
func (s *Signal) C() <-chan struct{} {
	return s.ch
}
