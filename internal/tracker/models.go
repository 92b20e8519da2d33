package tracker

import "time"

const (
	DefaultPollInterval = 5 * time.Second
	DefaultTimeout      = 3 * time.Minute
)

// Options tune how often transactions are polled and how long one may stay
// unseen by the node before it is given up as lost.
type Options struct {
	PollInterval time.Duration
	Timeout      time.Duration
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
