package church

import "church/interpreter-go/pkg/runtime"

var identity = runtime.Unary("identity", func(x runtime.Value) (runtime.Value, error) {
	return x, nil
})

// Identity is I: x -> x.
func Identity() runtime.Value { return identity }

// Constant is K: x -> (y -> x).
func Constant() runtime.Value {
	return runtime.Unary("const", func(x runtime.Value) (runtime.Value, error) {
		return constantOf(x), nil
	})
}

// Kite is KI: x -> (y -> y).
func Kite() runtime.Value {
	return runtime.Unary("kite", func(runtime.Value) (runtime.Value, error) {
		return identity, nil
	})
}

func constantOf(x runtime.Value) runtime.Value {
	return runtime.Unary("const", func(runtime.Value) (runtime.Value, error) {
		return x, nil
	})
}
