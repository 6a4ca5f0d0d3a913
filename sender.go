package mpsc

import "runtime"

// Sender is a producer handle onto a channel. Create more producers with
// [Sender.Clone]; each clone has its own reservation slot and may be moved
// to another goroutine. A single Sender must not be used from several
// goroutines at once.
//
// Close every Sender when done with it, typically via defer. Closing
// returns an unused reservation to the channel and, for the last Sender,
// signals end-of-stream to the Receiver.
type Sender[T any] struct {
	s  *chanState[T]
	id uint64

	// guarded by s.mu
	reserved bool
	closed   bool
}

// ID returns the identifier reported for this handle in [Event] values.
func (tx *Sender[T]) ID() uint64 {
	return tx.id
}

// PollReady reserves capacity for one value.
//
// It returns Ready once this Sender holds a reservation; calling it again
// while the reservation is held is a no-op that also returns Ready. If no
// capacity is free, w is parked and Pending is returned; w is woken when a
// permit is released or the channel closes. If the channel is closed and
// no reservation is held, PollReady returns [ErrClosed] without consuming
// capacity.
//
// Panics if w is nil.
func (tx *Sender[T]) PollReady(w Waker) (Poll, error) {
	if w == nil {
		panic("mpsc: PollReady requires a non-nil Waker")
	}

	s := tx.s
	var p pending
	s.mu.Lock()

	switch {
	case tx.reserved:
		s.mu.Unlock()
		return Ready, nil
	case tx.closed || s.closed:
		s.mu.Unlock()
		return Ready, ErrClosed
	}

	if s.sem.acquire(tx.id, w) {
		tx.reserved = true
		s.reserved++
		s.mu.Unlock()
		return Ready, nil
	}

	s.record(&p, Event{Kind: EventParked, Sender: tx.id, Senders: s.senders})
	s.unlock(&p)
	return Pending, nil
}

// StartSend queues v using the reservation obtained from
// [Sender.PollReady]. The reservation is consumed: the value now occupies
// that slot until the Receiver takes it.
//
// A reservation acquired before [Receiver.Close] is still honored. If the
// Receiver has been discarded, the reservation is released and v is
// returned inside a [*SendError] wrapping [ErrClosed].
//
// Without a held reservation StartSend behaves like [Sender.TrySend].
func (tx *Sender[T]) StartSend(v T) error {
	return tx.TrySend(v)
}

// TrySend queues v without waiting. It uses a held reservation if there is
// one and otherwise tries to take a permit. It returns a [*SendError]
// wrapping [ErrFull] when no capacity is free, registering no waker, or
// wrapping [ErrClosed] when the channel is closed.
func (tx *Sender[T]) TrySend(v T) error {
	s := tx.s
	var p pending
	s.mu.Lock()
	err := tx.sendLocked(v, &p)
	s.unlock(&p)
	return err
}

func (tx *Sender[T]) sendLocked(v T, p *pending) error {
	s := tx.s

	if !tx.reserved {
		if tx.closed || s.closed {
			return &SendError[T]{Value: v, Err: ErrClosed}
		}
		if !s.sem.tryAcquire(tx.id) {
			s.rejected++
			return &SendError[T]{Value: v, Err: ErrFull}
		}
		tx.reserved = true
		s.reserved++
	}

	tx.reserved = false
	s.reserved--

	if s.rxGone {
		p.wake(s.sem.release())
		return &SendError[T]{Value: v, Err: ErrClosed}
	}

	s.buf.push(v)
	s.sent++
	s.wakeReceiverLocked(p)
	return nil
}

// Disarm gives back a reservation obtained by [Sender.PollReady] without
// sending. The permit returns to the channel and may wake another parked
// Sender. Reports whether a reservation was held.
func (tx *Sender[T]) Disarm() bool {
	s := tx.s
	var p pending
	s.mu.Lock()
	if !tx.reserved {
		s.mu.Unlock()
		return false
	}
	tx.reserved = false
	s.unreserveLocked(&p)
	s.unlock(&p)
	return true
}

// Unpark withdraws the Waker parked by a Pending [Sender.PollReady]. Call
// it when giving up on a wait. If this Sender had already been woken and
// has not polled since, the wake passes to another parked Sender.
func (tx *Sender[T]) Unpark() {
	s := tx.s
	var p pending
	s.mu.Lock()
	p.wake(s.sem.cancel(tx.id))
	s.unlock(&p)
}

// Clone returns a new Sender for the same channel. The clone starts
// without a reservation.
//
// Panics if tx has been closed.
func (tx *Sender[T]) Clone() *Sender[T] {
	s := tx.s
	var p pending
	s.mu.Lock()
	if tx.closed {
		s.mu.Unlock()
		panic("mpsc: Clone called on a closed Sender")
	}
	s.senders++
	clone := s.newSenderLocked()
	s.record(&p, Event{Kind: EventSenderCloned, Sender: clone.id, Senders: s.senders})
	s.unlock(&p)
	return clone
}

// Close drops the handle. An unused reservation is released, a parked
// waker is forgotten, and when the last Sender closes the channel is
// closed and the Receiver is woken so it sees end-of-stream after
// draining. Close is idempotent.
func (tx *Sender[T]) Close() {
	s := tx.s
	var p pending
	s.mu.Lock()
	if tx.closed {
		s.mu.Unlock()
		return
	}
	tx.closed = true

	if tx.reserved {
		tx.reserved = false
		s.unreserveLocked(&p)
	}
	p.wake(s.sem.cancel(tx.id))

	s.senders--
	s.record(&p, Event{Kind: EventSenderClosed, Sender: tx.id, Senders: s.senders})
	if s.senders == 0 {
		s.closeLocked(SendersGone, &p)
		s.wakeReceiverLocked(&p)
	}
	s.unlock(&p)

	runtime.SetFinalizer(tx, nil)
}

// IsClosed reports whether this handle can no longer start new sends,
// because it was closed or the channel was.
func (tx *Sender[T]) IsClosed() bool {
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return tx.closed || s.closed
}

// Capacity returns the channel's fixed capacity.
func (tx *Sender[T]) Capacity() int {
	return tx.s.sem.capacity
}

// Stats returns a snapshot of the channel.
func (tx *Sender[T]) Stats() Stats {
	return tx.s.stats()
}
