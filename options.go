package timeup

import (
	"github.com/go-logr/logr"
	"github.com/imdario/mergo"
)

// OptionBool is a tri-state bool for Options.  OptionNone marks
// a field not yet set so MergeOptions can fill it, which a plain
// false could not express.
type OptionBool byte

const (
	OptionNone OptionBool = iota
	OptionFalse
	OptionTrue
)

// Bool panics for OptionNone.
func (b OptionBool) Bool() bool {
	switch b {
	case OptionTrue:
		return true
	case OptionFalse:
		return false
	}
	panic("option not set")
}

type (
	// Options control how a Registry notifies its callbacks.
	Options struct {
		Name        string
		StopOnError OptionBool
	}

	// Option configures a Registry.
	Option func(*settings)

	settings struct {
		options Options
		logger  logr.Logger
	}
)

// MergeOptions merges the unset fields of into from.
func MergeOptions(from, into *Options) bool {
	return mergo.Merge(into, from) == nil
}

// WithOptions applies options not already set.
func WithOptions(options Options) Option {
	return func(s *settings) {
		MergeOptions(&options, &s.options)
	}
}

// Named names the Registry in logs.
func Named(name string) Option {
	return WithOptions(Options{Name: name})
}

// StopOnError stops a notification at the first failure.
func StopOnError() Option {
	return WithOptions(Options{StopOnError: OptionTrue})
}

// WithLogger logs notifications to logger.
func WithLogger(logger logr.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

var defaultOptions = Options{
	Name:        "timeup",
	StopOnError: OptionFalse,
}
