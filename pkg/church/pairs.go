package church

import "church/interpreter-go/pkg/runtime"

// MakePair returns selector -> selector(x, y).
func MakePair(x, y runtime.Value) runtime.Value {
	return runtime.Unary("pair", func(selector runtime.Value) (runtime.Value, error) {
		if !runtime.IsSelector(selector) {
			return nil, runtime.InvalidArgument("pair", "selector must take two arguments, got %s", runtime.Describe(selector))
		}
		return runtime.Apply(selector, x, y)
	})
}

// First applies p to (x, y) -> x.
func First(p runtime.Value) (runtime.Value, error) {
	return runtime.Apply(p, trueSelector)
}

// Second applies p to (x, y) -> y.
func Second(p runtime.Value) (runtime.Value, error) {
	return runtime.Apply(p, falseSelector)
}

// Nil returns the empty-list sentinel.
func Nil() runtime.Value { return runtime.Nil }

// Cons is MakePair. tail must be Nil or another list; that is not checked.
func Cons(head, tail runtime.Value) runtime.Value {
	return MakePair(head, tail)
}

// IsNil compares list against the sentinel.
func IsNil(list runtime.Value) bool {
	return runtime.IsNil(list)
}

// Head returns the first element of a non-empty list.
func Head(list runtime.Value) (runtime.Value, error) {
	if IsNil(list) {
		return nil, runtime.InvalidArgument("head", "empty list")
	}
	return First(list)
}

// Tail returns everything after the first element of a non-empty list.
func Tail(list runtime.Value) (runtime.Value, error) {
	if IsNil(list) {
		return nil, runtime.InvalidArgument("tail", "empty list")
	}
	return Second(list)
}

// List conses values onto Nil from right to left.
func List(values ...runtime.Value) runtime.Value {
	list := Nil()
	for i := len(values) - 1; i >= 0; i-- {
		list = Cons(values[i], list)
	}
	return list
}

// ToSlice walks the spine of list.
func ToSlice(list runtime.Value) ([]runtime.Value, error) {
	var out []runtime.Value
	for !IsNil(list) {
		head, err := Head(list)
		if err != nil {
			return nil, err
		}
		tail, err := Tail(list)
		if err != nil {
			return nil, err
		}
		out = append(out, head)
		list = tail
	}
	return out, nil
}

// Length counts the elements of list.
func Length(list runtime.Value) (int, error) {
	n := 0
	for !IsNil(list) {
		tail, err := Tail(list)
		if err != nil {
			return 0, err
		}
		n++
		list = tail
	}
	return n, nil
}
