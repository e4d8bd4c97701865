package timeup

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

type (
	// Notify is the payload delivered when time is up.
	Notify struct {
		CurTime int
	}

	// Callback is anything invocable with a payload P
	// producing an integer result.
	Callback[P any] interface {
		fmt.Stringer
		Invoke(payload P) (int, error)
	}

	// Decorator wraps a Callback with additional behavior.
	// Decorators must return the result and error of the
	// wrapped Callback unchanged.
	Decorator[P any] func(Callback[P]) Callback[P]
)

// funcName returns the qualified name of fun without the
// package path for diagnostics.
func funcName(fun any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fun).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
