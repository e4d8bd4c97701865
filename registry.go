package timeup

import (
	"iter"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
)

// Registry is an insertion ordered collection of Callback's
// notified together with the same payload.
// It is not safe for concurrent use.
type Registry[P any] struct {
	callbacks  []Callback[P]
	decorators []Decorator[P]
	options    Options
	logger     logr.Logger
}

// NewRegistry creates an empty Registry configured by opts.
func NewRegistry[P any](opts ...Option) *Registry[P] {
	s := settings{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	MergeOptions(&defaultOptions, &s.options)
	return &Registry[P]{
		options: s.options,
		logger:  s.logger.WithValues("registry", s.options.Name),
	}
}

func (r *Registry[P]) Options() Options {
	return r.options
}

func (r *Registry[P]) Len() int {
	return len(r.callbacks)
}

// Add appends callbacks in order.
func (r *Registry[P]) Add(callbacks ...Callback[P]) *Registry[P] {
	for _, cb := range callbacks {
		if cb == nil {
			panic("callback cannot be nil")
		}
	}
	r.callbacks = append(r.callbacks, callbacks...)
	return r
}

// Use appends decorators applied to each Callback when notified.
// The first decorator is the outermost.
func (r *Registry[P]) Use(decorators ...Decorator[P]) *Registry[P] {
	for _, d := range decorators {
		if d == nil {
			panic("decorator cannot be nil")
		}
	}
	r.decorators = append(r.decorators, decorators...)
	return r
}

// Callbacks returns a copy of the registered callbacks.
func (r *Registry[P]) Callbacks() []Callback[P] {
	return append([]Callback[P](nil), r.callbacks...)
}

// All iterates the registered callbacks in insertion order.
func (r *Registry[P]) All() iter.Seq2[int, Callback[P]] {
	return func(yield func(int, Callback[P]) bool) {
		for i, cb := range r.callbacks {
			if !yield(i, cb) {
				return
			}
		}
	}
}

// Notify invokes every Callback with payload in insertion order
// and returns their results in the same order.
// Failures are reported as *InvokeError.  Unless StopOnError
// is set, all callbacks are invoked and the failures combined.
func (r *Registry[P]) Notify(payload P) ([]int, error) {
	stop := r.options.StopOnError.Bool()
	results := make([]int, 0, len(r.callbacks))
	r.logger.V(1).Info("notifying", "callbacks", len(r.callbacks))

	var errs error
	for i, cb := range r.callbacks {
		result, err := r.decorate(cb).Invoke(payload)
		if err != nil {
			r.logger.Error(err, "callback failed", "index", i, "callback", cb.String())
			invalid := &InvokeError{Index: i, Callback: cb, Reason: err}
			if stop {
				return results, invalid
			}
			errs = multierror.Append(errs, invalid)
		}
		results = append(results, result)
	}
	return results, errs
}

func (r *Registry[P]) decorate(cb Callback[P]) Callback[P] {
	for i := len(r.decorators) - 1; i >= 0; i-- {
		cb = r.decorators[i](cb)
	}
	return cb
}
