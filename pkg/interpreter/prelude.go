package interpreter

import (
	"church/interpreter-go/pkg/church"
	"church/interpreter-go/pkg/runtime"
)

type binaryFunc func(a, b runtime.Value) (runtime.Value, error)

// curried turns a two-argument operation into nested unary closures so it
// composes with numerals, Fold and partial application alike.
func curried(name string, fn binaryFunc) runtime.Value {
	return runtime.Unary(name, func(a runtime.Value) (runtime.Value, error) {
		return runtime.Unary(name, func(b runtime.Value) (runtime.Value, error) {
			return fn(a, b)
		}), nil
	})
}

func pure(fn func(runtime.Value) runtime.Value) func(runtime.Value) (runtime.Value, error) {
	return func(v runtime.Value) (runtime.Value, error) { return fn(v), nil }
}

func pure2(fn func(a, b runtime.Value) runtime.Value) binaryFunc {
	return func(a, b runtime.Value) (runtime.Value, error) { return fn(a, b), nil }
}

func registerPrelude(env *runtime.Environment) {
	// Booleans.
	env.Define("true", church.True())
	env.Define("false", church.False())
	env.Define("if", runtime.Unary("if", func(cond runtime.Value) (runtime.Value, error) {
		return runtime.Binary("if", func(thenClause, elseClause runtime.Value) (runtime.Value, error) {
			return church.IfThenElse(cond, thenClause, elseClause)
		}), nil
	}))
	env.Define("not", runtime.Unary("not", pure(church.Not)))
	env.Define("and", curried("and", pure2(church.And)))
	env.Define("or", curried("or", pure2(church.Or)))

	// Numerals.
	env.Define("zero", church.Zero())
	env.Define("succ", runtime.Unary("succ", pure(church.Successor)))
	env.Define("pred", runtime.Unary("pred", pure(church.Predecessor)))
	env.Define("add", curried("add", pure2(church.Add)))
	env.Define("mul", curried("mul", pure2(church.Multiply)))
	env.Define("sub", curried("sub", pure2(church.Subtract)))
	env.Define("zero?", runtime.Unary("zero?", church.IsZero))
	env.Define("lt", curried("lt", church.LessThan))
	env.Define("eq", curried("eq", church.Equal))

	// Pairs and lists.
	env.Define("pair", curried("pair", pure2(church.MakePair)))
	env.Define("first", runtime.Unary("first", church.First))
	env.Define("second", runtime.Unary("second", church.Second))
	env.Define("nil", church.Nil())
	env.Define("cons", curried("cons", pure2(church.Cons)))
	env.Define("head", runtime.Unary("head", church.Head))
	env.Define("tail", runtime.Unary("tail", church.Tail))
	env.Define("nil?", runtime.Unary("nil?", func(list runtime.Value) (runtime.Value, error) {
		return church.Bool(church.IsNil(list)), nil
	}))
	env.Define("map", curried("map", church.Map))
	env.Define("filter", curried("filter", church.Filter))
	env.Define("fold", runtime.Unary("fold", func(f runtime.Value) (runtime.Value, error) {
		return curried("fold", func(acc, list runtime.Value) (runtime.Value, error) {
			return church.Fold(f, acc, list)
		}), nil
	}))

	// Combinators and recursion.
	env.Define("identity", church.Identity())
	env.Define("const", church.Constant())
	env.Define("kite", church.Kite())
	env.Define("fix", runtime.Unary("fix", pure(church.Fix)))
	env.Define("factorial-step", church.FactorialStep())
	env.Define("factorial", church.Factorial())
	env.Define("numeral-factorial", church.NumeralFactorial())
}
