package mpsc

import "runtime"

// Receiver is the single consumer handle of a channel. It is not
// clonable, and must not be used from several goroutines at once; it may
// run concurrently with any number of Senders.
type Receiver[T any] struct {
	s *chanState[T]
}

// Poll takes the oldest buffered value.
//
//   - (v, true, Ready): a value was taken and one permit was returned to
//     the channel, waking one parked Sender.
//   - (zero, false, Ready): the channel is closed and drained, and no
//     Sender still holds a reservation. This is terminal; every later Poll
//     returns the same.
//   - (zero, false, Pending): nothing is buffered yet. w is registered and
//     woken when a value arrives, the last Sender closes, or the last
//     reservation outstanding on a closed channel is given back.
//
// Panics if w is nil.
func (rx *Receiver[T]) Poll(w Waker) (T, bool, Poll) {
	if w == nil {
		panic("mpsc: Poll requires a non-nil Waker")
	}

	s := rx.s
	var zero T
	var p pending
	s.mu.Lock()

	if v, ok := s.buf.pop(); ok {
		s.received++
		p.wake(s.sem.release())
		s.unlock(&p)
		return v, true, Ready
	}

	if s.endedLocked() {
		s.mu.Unlock()
		return zero, false, Ready
	}

	s.rxWaker = w
	s.mu.Unlock()
	return zero, false, Pending
}

// TryRecv takes the oldest buffered value without registering a waker.
// It returns [ErrEmpty] if nothing is buffered and [ErrClosed] once Poll
// would report end-of-stream.
func (rx *Receiver[T]) TryRecv() (T, error) {
	s := rx.s
	var zero T
	var p pending
	s.mu.Lock()

	if v, ok := s.buf.pop(); ok {
		s.received++
		p.wake(s.sem.release())
		s.unlock(&p)
		return v, nil
	}

	ended := s.endedLocked()
	s.mu.Unlock()
	if ended {
		return zero, ErrClosed
	}
	return zero, ErrEmpty
}

// Close stops the channel from granting new reservations and wakes every
// parked Sender, which then observes [ErrClosed]. Values already buffered
// are kept and can still be drained with Poll, and reservations taken
// before Close may still be used to send. Close is idempotent.
func (rx *Receiver[T]) Close() {
	s := rx.s
	var p pending
	s.mu.Lock()
	if s.closeLocked(ClosedByReceiver, &p) {
		p.wakers = append(p.wakers, s.sem.closeAll()...)
	}
	s.unlock(&p)
}

// Discard drops the consumer side: the channel is closed, buffered values
// are dropped and their capacity returned, and Senders holding a
// reservation get [ErrClosed] on their next send. It returns the number of
// values dropped. After Discard, Poll reports end-of-stream.
//
// Discard runs from a finalizer when a Receiver becomes unreachable, so a
// forgotten Receiver does not leave Senders parked forever.
func (rx *Receiver[T]) Discard() int {
	s := rx.s
	var p pending
	s.mu.Lock()
	if s.rxGone {
		s.mu.Unlock()
		return 0
	}
	s.rxGone = true
	s.closeLocked(ReceiverGone, &p)
	p.wakers = append(p.wakers, s.sem.closeAll()...)

	n := s.buf.clear()
	for i := 0; i < n; i++ {
		p.wake(s.sem.release())
	}
	s.rxWaker = nil
	s.record(&p, Event{Kind: EventReceiverDiscarded, Dropped: n, Senders: s.senders})
	s.unlock(&p)

	runtime.SetFinalizer(rx, nil)
	return n
}

// Len returns the number of buffered values.
func (rx *Receiver[T]) Len() int {
	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.len()
}

// Capacity returns the channel's fixed capacity.
func (rx *Receiver[T]) Capacity() int {
	return rx.s.sem.capacity
}

// IsClosed reports whether the channel has stopped granting reservations.
// Buffered values may remain.
func (rx *Receiver[T]) IsClosed() bool {
	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Stats returns a snapshot of the channel.
func (rx *Receiver[T]) Stats() Stats {
	return rx.s.stats()
}
