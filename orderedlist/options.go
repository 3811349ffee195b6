package orderedlist

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option is a function that configures an instrumented list.
// Options follow the functional options pattern for flexible configuration.
type Option func(*options)

type options struct {
	name   string       // Value of the "list" metric label and log attribute
	logger *slog.Logger // Destination of the per-mutation debug logs
}

// WithName sets the name used to label the list's metrics and logs.
// Without it every instrumented list gets a random UUID, which adds a new
// set of series per list. Use a fixed name for long-lived or frequently
// created lists, or release the series with ForgetMetrics.
//
// Example:
//
//	l := orderedlist.NewInstrumented(orderedlist.New[int](), orderedlist.WithName("scores"))
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger receiving the debug log line of every mutation.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if o.name == "" {
		o.name = uuid.NewString()
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
