package mpsc

import "container/list"

// semaphore is the permit pool of a channel. It counts the send capacity
// that is neither buffered nor reserved by a Sender and keeps the wakers of
// Senders parked while waiting for capacity.
//
// semaphore has no lock of its own; every method must be called with the
// owning channel's mutex held. Methods that hand back wakers never call
// them; the caller wakes them after unlocking.
type semaphore struct {
	capacity  int
	available int

	// parked is the wait list in park order, index finds a Sender's entry.
	parked *list.List
	index  map[uint64]*list.Element

	// woken holds Senders that were removed from parked by release and
	// have not polled since. If one of them goes away the wake is passed on.
	woken map[uint64]struct{}
}

type waiter struct {
	id    uint64
	waker Waker
}

func newSemaphore(n int) *semaphore {
	return &semaphore{
		capacity:  n,
		available: n,
		parked:    list.New(),
		index:     make(map[uint64]*list.Element),
		woken:     make(map[uint64]struct{}),
	}
}

// tryAcquire takes a permit for Sender id without parking.
func (s *semaphore) tryAcquire(id uint64) bool {
	if s.available == 0 {
		return false
	}
	s.available--
	s.forget(id)
	return true
}

// acquire takes a permit for Sender id, or parks w and returns false.
// Parking again under the same id replaces the earlier waker.
func (s *semaphore) acquire(id uint64, w Waker) bool {
	if s.tryAcquire(id) {
		return true
	}

	delete(s.woken, id)
	if e, ok := s.index[id]; ok {
		e.Value.(*waiter).waker = w
		return false
	}
	s.index[id] = s.parked.PushBack(&waiter{id: id, waker: w})
	return false
}

// release returns one permit and unparks one waiter, if any.
func (s *semaphore) release() Waker {
	if s.available >= s.capacity {
		panic("mpsc: permit released without matching acquire")
	}
	s.available++
	return s.unparkOne()
}

// cancel forgets Sender id. A wake that id received but never acted on is
// forwarded to the next parked waiter while permits remain.
func (s *semaphore) cancel(id uint64) Waker {
	if e, ok := s.index[id]; ok {
		s.parked.Remove(e)
		delete(s.index, id)
		return nil
	}
	if _, ok := s.woken[id]; ok {
		delete(s.woken, id)
		if s.available > 0 {
			return s.unparkOne()
		}
	}
	return nil
}

// closeAll unparks every waiter and returns their wakers.
func (s *semaphore) closeAll() []Waker {
	ws := make([]Waker, 0, s.parked.Len())
	for e := s.parked.Front(); e != nil; e = e.Next() {
		ws = append(ws, e.Value.(*waiter).waker)
	}
	s.parked.Init()
	clear(s.index)
	clear(s.woken)
	return ws
}

// waiting returns the number of parked Senders.
func (s *semaphore) waiting() int {
	return s.parked.Len()
}

func (s *semaphore) unparkOne() Waker {
	e := s.parked.Front()
	if e == nil {
		return nil
	}
	wt := s.parked.Remove(e).(*waiter)
	delete(s.index, wt.id)
	s.woken[wt.id] = struct{}{}
	return wt.waker
}

func (s *semaphore) forget(id uint64) {
	if e, ok := s.index[id]; ok {
		s.parked.Remove(e)
		delete(s.index, id)
	}
	delete(s.woken, id)
}
