package timeup

import (
	"fmt"
	"reflect"
)

type (
	// memberBinding models a Callback to a method requiring
	// mutable access to the receiver.
	memberBinding[T, P any] struct {
		receiver *T
		method   func(*T, P) (int, error)
		name     string
	}

	// constBinding models a Callback to a value receiver method.
	// The receiver is a back-reference, but the method only
	// ever sees a copy of it.
	constBinding[T, P any] struct {
		receiver *T
		method   func(T, P) (int, error)
		name     string
	}
)

func (b *memberBinding[T, P]) Invoke(payload P) (int, error) {
	return b.method(b.receiver, payload)
}

func (b *memberBinding[T, P]) String() string {
	return b.name
}

func (b *constBinding[T, P]) Invoke(payload P) (int, error) {
	return b.method(*b.receiver, payload)
}

func (b *constBinding[T, P]) String() string {
	return b.name
}

// Bind creates a Callback to the pointer receiver method
// expression on receiver, e.g. Bind(t, (*Timer).Update).
// The receiver must outlive the Callback.  Changes the
// method makes to the receiver are visible to its owner.
func Bind[T, P any](
	receiver *T,
	method   func(*T, P) int,
) Callback[P] {
	if receiver == nil {
		panic("receiver cannot be nil")
	}
	if method == nil {
		panic("method cannot be nil")
	}
	return &memberBinding[T, P]{receiver, fallible(method), funcName(method)}
}

// BindE is like Bind for methods that can fail.
func BindE[T, P any](
	receiver *T,
	method   func(*T, P) (int, error),
) Callback[P] {
	if receiver == nil {
		panic("receiver cannot be nil")
	}
	if method == nil {
		panic("method cannot be nil")
	}
	return &memberBinding[T, P]{receiver, method, funcName(method)}
}

// BindConst creates a Callback to the value receiver method
// expression on receiver, e.g. BindConst(t, Timer.UpdateConst).
// Pointer receiver methods on a struct receiver are rejected by
// the compiler.  T must not be a reference type (pointer, map,
// chan, func, interface) or BindConst panics, since the method
// could otherwise mutate what the receiver refers to.
// The copy is shallow: slices, maps and pointers held in
// fields of T are shared with the receiver and remain writable.
func BindConst[T, P any](
	receiver *T,
	method   func(T, P) int,
) Callback[P] {
	if receiver == nil {
		panic("receiver cannot be nil")
	}
	mustBeValue[T]()
	if method == nil {
		panic("method cannot be nil")
	}
	return &constBinding[T, P]{receiver, fallible(method), funcName(method)}
}

// BindConstE is like BindConst for methods that can fail.
func BindConstE[T, P any](
	receiver *T,
	method   func(T, P) (int, error),
) Callback[P] {
	if receiver == nil {
		panic("receiver cannot be nil")
	}
	mustBeValue[T]()
	if method == nil {
		panic("method cannot be nil")
	}
	return &constBinding[T, P]{receiver, method, funcName(method)}
}

// mustBeValue panics if copying a T still shares what it refers to.
func mustBeValue[T any]() {
	switch typ := reflect.TypeFor[T](); typ.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		panic(fmt.Sprintf("const receiver cannot be a %v", typ))
	}
}

// fallible adapts a method that cannot fail.
func fallible[R, P any](method func(R, P) int) func(R, P) (int, error) {
	return func(receiver R, payload P) (int, error) {
		return method(receiver, payload), nil
	}
}
