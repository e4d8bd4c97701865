package timeup

import "weak"

// weakBinding models a Callback to a method on a receiver
// it does not keep alive.
type weakBinding[T, P any] struct {
	receiver weak.Pointer[T]
	method   func(*T, P) (int, error)
	name     string
}

func (b *weakBinding[T, P]) Invoke(payload P) (int, error) {
	if receiver := b.receiver.Value(); receiver != nil {
		return b.method(receiver, payload)
	}
	return 0, &ReceiverError{Name: b.name, Reason: ErrReceiverGone}
}

func (b *weakBinding[T, P]) String() string {
	return b.name
}

// BindWeak is like Bind, but holds only a weak reference to
// receiver.  Once the receiver has been collected, Invoke
// fails with ErrReceiverGone instead of calling method.
func BindWeak[T, P any](
	receiver *T,
	method   func(*T, P) int,
) Callback[P] {
	if receiver == nil {
		panic("receiver cannot be nil")
	}
	if method == nil {
		panic("method cannot be nil")
	}
	return &weakBinding[T, P]{weak.Make(receiver), fallible(method), funcName(method)}
}
