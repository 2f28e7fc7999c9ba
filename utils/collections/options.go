package collections

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	logger *log.Entry
}

type Option func(*options)

// WithLogger replaces the default logger, which is derived from the logrus
// standard logger.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		logger: log.WithFields(log.Fields{"component": "associative_array"}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
