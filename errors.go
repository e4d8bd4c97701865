package timeup

import (
	"errors"
	"fmt"
)

// ErrReceiverGone reports a weakly bound receiver was collected.
var ErrReceiverGone = errors.New("receiver no longer valid")

type (
	// ReceiverError reports a Callback whose receiver is unavailable.
	ReceiverError struct {
		Name   string
		Reason error
	}

	// InvokeError reports a failed Callback in a Registry.
	InvokeError struct {
		Index    int
		Callback fmt.Stringer
		Reason   error
	}
)

func (e *ReceiverError) Error() string {
	return fmt.Sprintf("callback %v: %v", e.Name, e.Reason)
}

func (e *ReceiverError) Unwrap() error {
	return e.Reason
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("callback %d (%v) failed: %v", e.Index, e.Callback, e.Reason)
}

func (e *InvokeError) Unwrap() error {
	return e.Reason
}
