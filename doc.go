// Package mpsc provides a bounded multi-producer, single-consumer channel
// with cooperative backpressure.
//
// Producers must reserve capacity before a value is admitted, and capacity
// returns to the pool only when the consumer removes a value. Nothing in
// this package blocks: operations that cannot complete return [Pending]
// after registering the caller's [Waker], and the caller polls again once
// the Waker fires. Blocking and context-aware adapters live in the
// [github.com/baxromumarov/mpsc/await] subpackage.
//
// # Creating a Channel
//
// [New] returns the first [Sender] and the only [Receiver]:
//
//	tx, rx := mpsc.New[int](16)
//	defer tx.Close()
//
// Use [Sender.Clone] to add producers. Each clone counts as a live producer
// until its [Sender.Close] runs; when the last one closes, the Receiver
// observes end-of-stream after draining the buffered values.
//
// # Sending
//
// Sending is a two-step protocol:
//
//   - [Sender.PollReady] reserves one unit of capacity. It returns Ready
//     when the reservation is held, or Pending after parking the Waker.
//   - [Sender.StartSend] queues a value using that reservation and wakes the
//     Receiver.
//
// A reservation that is never used must be given back, either with
// [Sender.Disarm] or by closing the Sender; otherwise the capacity is lost.
//
// [Sender.TrySend] fuses both steps without parking anything. It fails with
// [ErrFull] when the channel has no free capacity.
//
// # Receiving
//
// [Receiver.Poll] returns the oldest value, end-of-stream, or Pending.
// Every value taken frees one permit and wakes one parked Sender; which one
// is unspecified.
//
// # Closing
//
// The channel closes when [Receiver.Close] is called or when the last
// Sender closes. Closing never discards buffered values, and reservations
// taken before the close may still send. Parked Senders are woken and see
// [ErrClosed] on their next PollReady. The Receiver reports end-of-stream
// once the buffer is drained and no reservation is outstanding.
//
// A caller that stops waiting on a Pending PollReady should call
// [Sender.Unpark] so its Waker does not hold on to a wake-up another Sender
// could use.
//
// [Receiver.Discard] is the explicit drop of the consumer side: it closes
// the channel and throws away the buffered values. It also runs from a
// finalizer if the Receiver is garbage collected, so Senders are released
// even if the consumer is simply forgotten.
//
// # Errors
//
// [ErrFull] is transient; [ErrClosed] is permanent. Failed sends return a
// [*SendError] carrying the rejected value. Use [IsFull], [IsClosed], and
// [ValueOf] to inspect them.
//
// # Observability
//
// [WithLogger] routes lifecycle messages to a [logr.Logger], [WithOnEvent]
// delivers [Event] values, and [Sender.Stats] / [Receiver.Stats] return a
// [Stats] snapshot. The [github.com/baxromumarov/mpsc/metrics] subpackage
// exports those snapshots to Prometheus.
//
// [logr.Logger]: https://pkg.go.dev/github.com/go-logr/logr#Logger
package mpsc
