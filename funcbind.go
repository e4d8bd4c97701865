package timeup

// funcBinding models a Callback to a free function.
type funcBinding[P any] struct {
	fun  func(P) (int, error)
	name string
}

func (b *funcBinding[P]) Invoke(payload P) (int, error) {
	return b.fun(payload)
}

func (b *funcBinding[P]) String() string {
	return b.name
}

// Func creates an unbound Callback to the function fun.
// Static methods are just functions and bind the same way.
func Func[P any](fun func(P) int) Callback[P] {
	if fun == nil {
		panic("fun cannot be nil")
	}
	return &funcBinding[P]{func(payload P) (int, error) {
		return fun(payload), nil
	}, funcName(fun)}
}

// FuncE is like Func for functions that can fail.
func FuncE[P any](fun func(P) (int, error)) Callback[P] {
	if fun == nil {
		panic("fun cannot be nil")
	}
	return &funcBinding[P]{fun, funcName(fun)}
}
