package church

import (
	"math"

	"church/interpreter-go/pkg/runtime"
)

// FactorialStep is self -> (n -> n == 0 ? 1 : n * self(n - 1)) over native
// integers. It never names itself; Fix supplies self.
func FactorialStep() runtime.Value {
	return runtime.Unary("factorial-step", func(self runtime.Value) (runtime.Value, error) {
		return runtime.Unary("factorial", func(arg runtime.Value) (runtime.Value, error) {
			n, ok := arg.(runtime.IntegerValue)
			if !ok {
				return nil, runtime.InvalidArgument("factorial", "expected integer, got %s", runtime.Describe(arg))
			}
			if n.Val < 0 {
				return nil, runtime.InvalidArgument("factorial", "negative input %d", n.Val)
			}
			if n.Val == 0 {
				return runtime.Integer(1), nil
			}
			rest, err := runtime.Apply(self, runtime.Integer(n.Val-1))
			if err != nil {
				return nil, err
			}
			r, ok := rest.(runtime.IntegerValue)
			if !ok {
				return nil, runtime.InvalidArgument("factorial", "recursive call produced %s", runtime.Describe(rest))
			}
			if r.Val > math.MaxInt64/n.Val {
				return nil, runtime.InvalidArgument("factorial", "overflow at %d", n.Val)
			}
			return runtime.Integer(n.Val * r.Val), nil
		}), nil
	})
}

// Factorial is Fix(FactorialStep()).
func Factorial() runtime.Value {
	return Fix(FactorialStep())
}

// NumeralFactorial computes factorial over Church numerals. Both branches
// of the conditional are thunks so that the recursive one is only built
// once IsZero has picked it.
func NumeralFactorial() runtime.Value {
	step := runtime.Unary("numeral-factorial-step", func(self runtime.Value) (runtime.Value, error) {
		return runtime.Unary("numeral-factorial", func(n runtime.Value) (runtime.Value, error) {
			done := constantOf(Successor(Zero()))
			recurse := runtime.Unary("numeral-factorial-thunk", func(runtime.Value) (runtime.Value, error) {
				rest, err := runtime.Apply(self, Predecessor(n))
				if err != nil {
					return nil, err
				}
				return Multiply(n, rest), nil
			})
			cond, err := IsZero(n)
			if err != nil {
				return nil, err
			}
			thunk, err := IfThenElse(cond, done, recurse)
			if err != nil {
				return nil, err
			}
			return runtime.Apply(thunk, runtime.Nil)
		}), nil
	})
	return Fix(step)
}
