package mpsc

// EventKind identifies a channel lifecycle change.
type EventKind int

const (
	// EventParked fires when a Sender's PollReady found no capacity and its
	// Waker was parked.
	EventParked EventKind = iota

	// EventSenderCloned fires when [Sender.Clone] adds a producer.
	EventSenderCloned

	// EventSenderClosed fires when a Sender handle is closed.
	EventSenderClosed

	// EventClosed fires once, when the channel stops accepting new values.
	EventClosed

	// EventReceiverDiscarded fires when [Receiver.Discard] drops the
	// consumer side.
	EventReceiverDiscarded
)

func (k EventKind) String() string {
	switch k {
	case EventParked:
		return "parked"
	case EventSenderCloned:
		return "sender_cloned"
	case EventSenderClosed:
		return "sender_closed"
	case EventClosed:
		return "closed"
	case EventReceiverDiscarded:
		return "receiver_discarded"
	default:
		return "unknown"
	}
}

// CloseReason tells why a channel was closed.
type CloseReason int

const (
	// NotClosed is the reason reported while the channel is open.
	NotClosed CloseReason = iota

	// ClosedByReceiver means [Receiver.Close] was called.
	ClosedByReceiver

	// SendersGone means the last Sender handle was closed.
	SendersGone

	// ReceiverGone means [Receiver.Discard] ran, explicitly or from the
	// Receiver's finalizer.
	ReceiverGone
)

func (r CloseReason) String() string {
	switch r {
	case NotClosed:
		return "open"
	case ClosedByReceiver:
		return "receiver_closed"
	case SendersGone:
		return "senders_gone"
	case ReceiverGone:
		return "receiver_gone"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle change, delivered to the hook registered via
// [WithOnEvent].
type Event struct {
	Kind    EventKind
	Channel string      // name set via WithName
	Sender  uint64      // Sender ID, for sender events
	Senders int         // live Senders after the event
	Reason  CloseReason // for EventClosed
	Dropped int         // buffered values dropped, for EventReceiverDiscarded
}
