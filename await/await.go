package await

import (
	"context"

	"github.com/baxromumarov/mpsc"
)

// Reserve blocks until tx holds a reservation or ctx is cancelled.
// It returns [mpsc.ErrClosed] if the channel closes first, or ctx.Err().
func Reserve[T any](ctx context.Context, tx *mpsc.Sender[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sig := NewSignal()
	for {
		p, err := tx.PollReady(sig)
		if err != nil {
			return err
		}
		if p == mpsc.Ready {
			return nil
		}

		select {
		case <-sig.C():
		case <-ctx.Done():
			tx.Unpark()
			return ctx.Err()
		}
	}
}

// Send blocks until v is queued on tx or ctx is cancelled.
// Returns nil on success, the send error, or ctx.Err().
func Send[T any](ctx context.Context, tx *mpsc.Sender[T], v T) error {
	if err := Reserve(ctx, tx); err != nil {
		return err
	}
	return tx.StartSend(v)
}

// Recv blocks until rx yields a value, the channel ends, or ctx is
// cancelled. It returns the value, a boolean reporting whether a value was
// received (false means end-of-stream), and any context error.
func Recv[T any](ctx context.Context, rx *mpsc.Receiver[T]) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}

	sig := NewSignal()
	for {
		v, ok, p := rx.Poll(sig)
		if p == mpsc.Ready {
			return v, ok, nil
		}

		select {
		case <-sig.C():
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// Pipe forwards every value from rx to the returned channel. The output
// channel is closed at end-of-stream or when ctx is cancelled. Pipe takes
// over rx: it must not be polled elsewhere while the pipe runs.
//
// A value already taken from rx but not yet delivered on the output channel
// when ctx is cancelled is dropped.
func Pipe[T any](ctx context.Context, rx *mpsc.Receiver[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		for {
			v, ok, err := Recv(ctx, rx)
			if err != nil || !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Feed sends every value from in through tx until in is closed, then
// closes tx. It stops early on ctx cancellation or a send error, which it
// returns. tx is closed on every return path.
//
// If in is nil, Feed closes tx and returns nil.
func Feed[T any](ctx context.Context, tx *mpsc.Sender[T], in <-chan T) error {
	defer tx.Close()

	if in == nil {
		return nil
	}

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return nil
			}
			if err := Send(ctx, tx, v); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
