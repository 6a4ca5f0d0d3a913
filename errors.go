package mpsc

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when a send finds no free capacity. It is
	// transient: the caller may retry after the Receiver consumes a value.
	ErrFull = errors.New("mpsc: channel is full")

	// ErrClosed is returned once the channel no longer accepts values.
	// It is permanent for the handle that observed it.
	ErrClosed = errors.New("mpsc: channel is closed")

	// ErrEmpty is returned by [Receiver.TryRecv] when no value is buffered
	// and the channel is still open.
	ErrEmpty = errors.New("mpsc: channel is empty")
)

// SendError is returned by [Sender.TrySend] and [Sender.StartSend] when the
// value was not admitted. It hands the value back to the caller.
// Err is [ErrFull] or [ErrClosed].
type SendError[T any] struct {
	Value T
	Err   error
}

// Error reports the underlying cause.
func (e *SendError[T]) Error() string {
	return fmt.Sprintf("send failed: %v", e.Err)
}

// Unwrap returns Err, so errors.Is matches [ErrFull] and [ErrClosed].
func (e *SendError[T]) Unwrap() error {
	return e.Err
}

// IsFull reports whether err (or any error in its chain) is [ErrFull].
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsClosed reports whether err (or any error in its chain) is [ErrClosed].
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// ValueOf extracts the rejected value from the first [*SendError] in err's
// chain. Returns false if err carries no value of type T.
func ValueOf[T any](err error) (T, bool) {
	var se *SendError[T]
	if errors.As(err, &se) {
		return se.Value, true
	}
	var zero T
	return zero, false
}
