package mpsc

import "github.com/go-logr/logr"

type config struct {
	name    string
	logger  logr.Logger
	onEvent func(Event)
}

// Option configures a channel created by [New].
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: logr.Discard(),
	}
}

// WithName sets the channel name used in log lines and [Event] values.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger for channel lifecycle messages. Close
// transitions are logged at V(1), parking and cloning at V(2).
// The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOnEvent registers a hook invoked for every [Event]. The hook runs on
// the goroutine that caused the event, after the channel lock is released.
//
// Panics if fn is nil.
func WithOnEvent(fn func(Event)) Option {
	if fn == nil {
		panic("mpsc: WithOnEvent requires non-nil callback")
	}
	return func(c *config) {
		c.onEvent = fn
	}
}

// observed reports whether events need to be recorded at all.
func (c *config) observed() bool {
	return c.onEvent != nil || c.logger.V(1).Enabled()
}

func (c *config) emit(e Event) {
	if c.onEvent != nil {
		c.onEvent(e)
	}

	switch e.Kind {
	case EventClosed:
		c.logger.V(1).Info("channel closed", "reason", e.Reason.String())
	case EventReceiverDiscarded:
		c.logger.V(1).Info("receiver discarded", "dropped", e.Dropped)
	case EventSenderClosed:
		c.logger.V(1).Info("sender closed", "sender", e.Sender, "senders", e.Senders)
	case EventSenderCloned:
		c.logger.V(2).Info("sender cloned", "sender", e.Sender, "senders", e.Senders)
	case EventParked:
		c.logger.V(2).Info("sender parked", "sender", e.Sender)
	}
}
