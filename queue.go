package mpsc

// ring is the FIFO buffer behind a channel. Its backing slice grows on
// demand up to limit, so a channel with a large capacity does not pay for
// slots it never uses.
type ring[T any] struct {
	buf   []T
	head  int
	n     int
	limit int
}

const ringInitialSize = 16

func newRing[T any](limit int) *ring[T] {
	return &ring[T]{
		buf:   make([]T, min(limit, ringInitialSize)),
		limit: limit,
	}
}

// push appends v. The caller holds a permit, so the ring is never full.
func (r *ring[T]) push(v T) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
}

// pop removes and returns the oldest value.
func (r *ring[T]) pop() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v, true
}

// clear drops every buffered value and returns how many there were.
func (r *ring[T]) clear() int {
	n := r.n
	clear(r.buf)
	r.head, r.n = 0, 0
	return n
}

func (r *ring[T]) len() int { return r.n }

func (r *ring[T]) grow() {
	if len(r.buf) >= r.limit {
		panic("mpsc: buffer overflow")
	}
	next := make([]T, min(max(2*len(r.buf), 1), r.limit))
	for i := 0; i < r.n; i++ {
		next[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = next
	r.head = 0
}
