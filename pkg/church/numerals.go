package church

import "church/interpreter-go/pkg/runtime"

var (
	zero = runtime.Unary("zero", func(runtime.Value) (runtime.Value, error) {
		return identity, nil
	})

	increment = runtime.Unary("increment", func(acc runtime.Value) (runtime.Value, error) {
		n, ok := acc.(runtime.IntegerValue)
		if !ok {
			return nil, runtime.InvalidArgument("decode", "not a numeral: counter received %s", runtime.Describe(acc))
		}
		return runtime.Integer(n.Val + 1), nil
	})
)

// Zero returns f -> (x -> x).
func Zero() runtime.Value { return zero }

// Successor returns f -> (x -> f(n(f, x))). The result shares n; nothing is
// decoded.
func Successor(n runtime.Value) runtime.Value {
	return runtime.Unary("succ", func(f runtime.Value) (runtime.Value, error) {
		return runtime.Unary("succ-f", func(x runtime.Value) (runtime.Value, error) {
			inner, err := runtime.Apply(n, f, x)
			if err != nil {
				return nil, err
			}
			return runtime.Apply(f, inner)
		}), nil
	})
}

// Add returns f -> (x -> m(f, n(f, x))).
func Add(m, n runtime.Value) runtime.Value {
	return runtime.Unary("add", func(f runtime.Value) (runtime.Value, error) {
		return runtime.Unary("add-f", func(x runtime.Value) (runtime.Value, error) {
			inner, err := runtime.Apply(n, f, x)
			if err != nil {
				return nil, err
			}
			return runtime.Apply(m, f, inner)
		}), nil
	})
}

// Multiply returns f -> m(n(f)).
func Multiply(m, n runtime.Value) runtime.Value {
	return runtime.Unary("mul", func(f runtime.Value) (runtime.Value, error) {
		nf, err := runtime.Apply(n, f)
		if err != nil {
			return nil, err
		}
		return runtime.Apply(m, nf)
	})
}

// Predecessor is Kleene's predecessor:
// f -> x -> n(g -> h -> h(g(f)))(u -> x)(identity). Zero maps to zero.
func Predecessor(n runtime.Value) runtime.Value {
	return runtime.Unary("pred", func(f runtime.Value) (runtime.Value, error) {
		return runtime.Unary("pred-f", func(x runtime.Value) (runtime.Value, error) {
			shift := runtime.Unary("pred-shift", func(g runtime.Value) (runtime.Value, error) {
				return runtime.Unary("pred-wrap", func(h runtime.Value) (runtime.Value, error) {
					gf, err := runtime.Apply(g, f)
					if err != nil {
						return nil, err
					}
					return runtime.Apply(h, gf)
				}), nil
			})
			return runtime.Apply(n, shift, constantOf(x), identity)
		}), nil
	})
}

// Subtract returns n(pred)(m), truncated at zero.
func Subtract(m, n runtime.Value) runtime.Value {
	pred := runtime.Unary("pred", func(k runtime.Value) (runtime.Value, error) {
		return Predecessor(k), nil
	})
	return runtime.Unary("sub", func(f runtime.Value) (runtime.Value, error) {
		diff, err := runtime.Apply(n, pred, m)
		if err != nil {
			return nil, err
		}
		return runtime.Apply(diff, f)
	})
}

// Encode applies Successor k times to Zero.
func Encode(k uint64) runtime.Value {
	n := Zero()
	for ; k > 0; k-- {
		n = Successor(n)
	}
	return n
}

// Decode observes the number a numeral represents by applying it to an
// increment closure and an integer accumulator starting at zero. The
// accumulator is passed by value, so nothing outlives the call and n is
// left untouched.
func Decode(n runtime.Value) (int64, error) {
	out, err := runtime.Apply(n, increment, runtime.Integer(0))
	if err != nil {
		return 0, err
	}
	count, ok := out.(runtime.IntegerValue)
	if !ok {
		return 0, runtime.InvalidArgument("decode", "not a numeral: produced %s", runtime.Describe(out))
	}
	return count.Val, nil
}

// IsZero decodes n and compares natively.
func IsZero(n runtime.Value) (runtime.Value, error) {
	v, err := Decode(n)
	if err != nil {
		return nil, err
	}
	return Bool(v == 0), nil
}

// LessThan decodes both operands and reports m < n.
func LessThan(m, n runtime.Value) (runtime.Value, error) {
	a, b, err := decodePair(m, n)
	if err != nil {
		return nil, err
	}
	return Bool(a < b), nil
}

// Equal decodes both operands and reports m == n.
func Equal(m, n runtime.Value) (runtime.Value, error) {
	a, b, err := decodePair(m, n)
	if err != nil {
		return nil, err
	}
	return Bool(a == b), nil
}

func decodePair(m, n runtime.Value) (int64, int64, error) {
	a, err := Decode(m)
	if err != nil {
		return 0, 0, err
	}
	b, err := Decode(n)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
