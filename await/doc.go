// Package await adapts the poll-based channel in
// [github.com/baxromumarov/mpsc] to ordinary blocking Go code.
//
// Every function parks on a [Signal] and re-polls when it fires, unblocking
// early if the context is cancelled:
//
//   - [Reserve] and [Send]: wait for capacity, then queue a value.
//   - [Recv]: wait for the next value or end-of-stream.
//   - [Pipe]: forward a Receiver into a native Go channel.
//   - [Feed]: drain a native Go channel into a Sender.
//
// A cancelled wait never keeps a parked Waker or an unused reservation
// behind, so capacity is not lost when callers give up.
package await
