package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// options holds the demo's command-line configuration.
type options struct {
	Capacity     int
	Producers    int
	Messages     int
	ConsumeDelay time.Duration
	LogLevel     int
	MetricsAddr  string
}

func newOptions() *options {
	return &options{
		Capacity:  8,
		Producers: 4,
		Messages:  100,
	}
}

// addFlags binds the options to fs.
func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Capacity, "capacity", o.Capacity, "Channel capacity.")
	fs.IntVar(&o.Producers, "producers", o.Producers, "Number of concurrent producers.")
	fs.IntVar(&o.Messages, "messages", o.Messages, "Messages sent by each producer.")
	fs.DurationVar(&o.ConsumeDelay, "consume-delay", o.ConsumeDelay,
		"Pause after each received message, to make producers park.")
	fs.IntVarP(&o.LogLevel, "log-level", "v", o.LogLevel,
		"Log verbosity: 0 info, 1 channel lifecycle, 2 every park and clone.")
	fs.StringVar(&o.MetricsAddr, "metrics-addr", o.MetricsAddr,
		"Serve Prometheus metrics on this address (e.g. :9090). Empty disables.")
}

func (o *options) validate() error {
	var errs []error
	if o.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("--capacity must be positive, got %d", o.Capacity))
	}
	if o.Producers <= 0 {
		errs = append(errs, fmt.Errorf("--producers must be positive, got %d", o.Producers))
	}
	if o.Messages < 0 {
		errs = append(errs, fmt.Errorf("--messages must not be negative, got %d", o.Messages))
	}
	if o.ConsumeDelay < 0 {
		errs = append(errs, errors.New("--consume-delay must not be negative"))
	}
	if o.LogLevel < 0 {
		errs = append(errs, errors.New("--log-level must not be negative"))
	}
	return errors.Join(errs...)
}
