package mpsc

import (
	"runtime"
	"sync"
)

// chanState is shared by every Sender of a channel and its Receiver.
// A single mutex guards all of it; no method blocks while holding it.
type chanState[T any] struct {
	mu  sync.Mutex
	cfg config

	sem *semaphore
	buf *ring[T]

	closed      bool
	closeReason CloseReason
	rxGone      bool
	rxWaker     Waker

	senders  int
	reserved int
	nextID   uint64

	sent     uint64
	received uint64
	rejected uint64
}

// New creates a bounded channel with room for capacity values and returns
// its first [Sender] and its [Receiver].
//
// Panics if capacity <= 0.
func New[T any](capacity int, opts ...Option) (*Sender[T], *Receiver[T]) {
	if capacity <= 0 {
		panic("mpsc: New requires capacity > 0")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = cfg.logger.WithName("mpsc")
	if cfg.name != "" {
		cfg.logger = cfg.logger.WithValues("channel", cfg.name)
	}

	s := &chanState[T]{
		cfg:     cfg,
		sem:     newSemaphore(capacity),
		buf:     newRing[T](capacity),
		senders: 1,
		nextID:  1,
	}

	rx := &Receiver[T]{s: s}
	runtime.SetFinalizer(rx, (*Receiver[T]).Discard)

	s.mu.Lock()
	tx := s.newSenderLocked()
	s.mu.Unlock()
	return tx, rx
}

// newSenderLocked allocates a Sender handle under s.mu. The caller has
// already counted it in s.senders.
func (s *chanState[T]) newSenderLocked() *Sender[T] {
	id := s.nextID
	s.nextID++

	tx := &Sender[T]{s: s, id: id}
	runtime.SetFinalizer(tx, (*Sender[T]).Close)
	return tx
}

// closeLocked marks the channel closed. Reports whether this call did it.
func (s *chanState[T]) closeLocked(reason CloseReason, p *pending) bool {
	if s.closed {
		return false
	}
	s.closed = true
	s.closeReason = reason
	s.record(p, Event{Kind: EventClosed, Reason: reason, Senders: s.senders})
	return true
}

// endedLocked reports whether the Receiver has seen everything it will ever
// get: the channel is closed and no reservation can still turn into a value.
func (s *chanState[T]) endedLocked() bool {
	return s.closed && (s.reserved == 0 || s.rxGone)
}

// unreserveLocked returns a reservation that will not be used. If it was the
// last one outstanding on a closed channel, the Receiver is woken to see
// end-of-stream.
func (s *chanState[T]) unreserveLocked(p *pending) {
	s.reserved--
	p.wake(s.sem.release())
	if s.closed && s.reserved == 0 {
		s.wakeReceiverLocked(p)
	}
}

// wakeReceiverLocked takes the registered consumer waker, if any.
func (s *chanState[T]) wakeReceiverLocked(p *pending) {
	if s.rxWaker != nil {
		p.wake(s.rxWaker)
		s.rxWaker = nil
	}
}

func (s *chanState[T]) record(p *pending, e Event) {
	if s.cfg.observed() {
		e.Channel = s.cfg.name
		p.events = append(p.events, e)
	}
}

// unlock releases the mutex, then delivers what p collected.
func (s *chanState[T]) unlock(p *pending) {
	s.mu.Unlock()
	wakeAll(p.wakers)
	for _, e := range p.events {
		s.cfg.emit(e)
	}
}

func (s *chanState[T]) stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Capacity:  s.sem.capacity,
		Buffered:  s.buf.len(),
		Available: s.sem.available,
		Reserved:  s.reserved,
		Parked:    s.sem.waiting(),
		Senders:   s.senders,
		Closed:    s.closed,
		Reason:    s.closeReason,
		Sent:      s.sent,
		Received:  s.received,
		Rejected:  s.rejected,
	}
}

// pending collects the side effects of one locked section. They run after
// the mutex is released so a Waker or hook may call back into the channel.
type pending struct {
	wakers []Waker
	events []Event
}

func (p *pending) wake(w Waker) {
	if w != nil {
		p.wakers = append(p.wakers, w)
	}
}

// Stats is a point-in-time snapshot of a channel.
// Buffered + Available + Reserved always equals Capacity.
type Stats struct {
	Capacity  int         // fixed at creation
	Buffered  int         // values waiting for the Receiver
	Available int         // permits free to reserve
	Reserved  int         // permits held by Senders but not yet used
	Parked    int         // Senders waiting for a permit
	Senders   int         // live Sender handles
	Closed    bool        // no new reservations are granted
	Reason    CloseReason // why Closed is set

	Sent     uint64 // values admitted
	Received uint64 // values taken by the Receiver
	Rejected uint64 // TrySend calls refused with ErrFull
}
