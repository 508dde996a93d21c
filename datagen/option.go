package datagen

import "github.com/ardnew/recipegen/log"

// Option configures [Expand] and [NewGenerator].
type Option func(*options)

type options struct {
	logger log.Logger
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the Logger that traces grammars, patches and recipes.
// The zero Logger, the default, logs nothing.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}
