// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/katalvlaran/matperf/logging"
	"github.com/katalvlaran/matperf/multiply"
)

// Option configures Run and Compare.
type Option func(*options)

type options struct {
	logger   *logging.Logger
	observer multiply.Observer
}

// WithLogger sets the logger for run events. It is also passed to multiply.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver forwards obs to every multiplication.
func WithObserver(obs multiply.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		logger:   logging.NoopLogger(),
		observer: multiply.NoopObserver{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// forward returns the multiply options carried by o.
func (o options) forward() []multiply.Option {
	return []multiply.Option{
		multiply.WithLogger(o.logger),
		multiply.WithObserver(o.observer),
	}
}
