package log

import (
	"github.com/go-logr/logr"
	"github.com/wzugang/timeup"
)

// Installer configures callback logging.
type Installer struct {
	root      logr.Logger
	verbosity int
}

func (v *Installer) SetVerbosity(verbosity int) {
	v.verbosity = verbosity
}

// Verbosity sets the level successful invocations are logged at.
func Verbosity(verbosity int) func(installer *Installer) {
	return func(installer *Installer) {
		installer.SetVerbosity(verbosity)
	}
}

// Decorator creates a timeup.Decorator logging every invocation.
func Decorator[P any](
	rootLogger logr.Logger,
	config     ...func(installer *Installer),
) timeup.Decorator[P] {
	installer := &Installer{root: rootLogger}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	logger := installer.root.WithName("callback")
	return func(next timeup.Callback[P]) timeup.Callback[P] {
		return &filter[P]{next, logger, installer.verbosity}
	}
}

// Use installs logging on registry.
func Use[P any](
	registry   *timeup.Registry[P],
	rootLogger logr.Logger,
	config     ...func(installer *Installer),
) *timeup.Registry[P] {
	return registry.Use(Decorator[P](rootLogger, config...))
}
