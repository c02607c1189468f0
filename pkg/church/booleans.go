package church

import "church/interpreter-go/pkg/runtime"

var (
	trueSelector = runtime.Binary("true", func(x, _ runtime.Value) (runtime.Value, error) {
		return x, nil
	})
	falseSelector = runtime.Binary("false", func(_, y runtime.Value) (runtime.Value, error) {
		return y, nil
	})

	// Markers used to observe which way a selector chooses.
	chosenFirst  = runtime.Text("#first")
	chosenSecond = runtime.Text("#second")
)

// True returns the selector (x, y) -> x.
func True() runtime.Value { return trueSelector }

// False returns the selector (x, y) -> y.
func False() runtime.Value { return falseSelector }

// Bool encodes a host boolean.
func Bool(b bool) runtime.Value {
	if b {
		return trueSelector
	}
	return falseSelector
}

// IfThenElse applies condition to both branches and returns whichever it
// selects. Both branches are already built: this selects, it does not
// short-circuit.
func IfThenElse(condition, thenClause, elseClause runtime.Value) (runtime.Value, error) {
	if !runtime.IsSelector(condition) {
		return nil, runtime.InvalidArgument("if", "condition must be a boolean selector, got %s", runtime.Describe(condition))
	}
	return runtime.Apply(condition, thenClause, elseClause)
}

// DecodeBool observes a boolean selector.
func DecodeBool(b runtime.Value) (bool, error) {
	out, err := IfThenElse(b, chosenFirst, chosenSecond)
	if err != nil {
		return false, err
	}
	switch out {
	case chosenFirst:
		return true, nil
	case chosenSecond:
		return false, nil
	}
	return false, runtime.InvalidArgument("bool", "%s is not a boolean", runtime.Describe(b))
}

// Not returns the selector (x, y) -> b(y, x).
func Not(b runtime.Value) runtime.Value {
	return runtime.Binary("not", func(x, y runtime.Value) (runtime.Value, error) {
		return IfThenElse(b, y, x)
	})
}

// And returns the selector (x, y) -> a(b(x, y), y).
func And(a, b runtime.Value) runtime.Value {
	return runtime.Binary("and", func(x, y runtime.Value) (runtime.Value, error) {
		inner, err := IfThenElse(b, x, y)
		if err != nil {
			return nil, err
		}
		return IfThenElse(a, inner, y)
	})
}

// Or returns the selector (x, y) -> a(x, b(x, y)).
func Or(a, b runtime.Value) runtime.Value {
	return runtime.Binary("or", func(x, y runtime.Value) (runtime.Value, error) {
		inner, err := IfThenElse(b, x, y)
		if err != nil {
			return nil, err
		}
		return IfThenElse(a, x, inner)
	})
}
