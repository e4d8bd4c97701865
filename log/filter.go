package log

import (
	"github.com/go-logr/logr"
	"github.com/wzugang/timeup"
)

// filter logs basic callback execution details.
type filter[P any] struct {
	next      timeup.Callback[P]
	logger    logr.Logger
	verbosity int
}

func (f *filter[P]) Invoke(payload P) (int, error) {
	result, err := f.next.Invoke(payload)
	if err != nil {
		f.logger.Error(err, "invoke failed",
			"callback", f.next.String(), "payload", payload)
	} else {
		f.logger.V(f.verbosity).Info("invoked",
			"callback", f.next.String(), "payload", payload, "result", result)
	}
	return result, err
}

func (f *filter[P]) String() string {
	return f.next.String()
}
