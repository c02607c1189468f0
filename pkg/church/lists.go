package church

import "church/interpreter-go/pkg/runtime"

// Map returns a new list holding f applied to each element of list.
func Map(f, list runtime.Value) (runtime.Value, error) {
	if IsNil(list) {
		return Nil(), nil
	}
	head, tail, err := uncons(list)
	if err != nil {
		return nil, err
	}
	mapped, err := runtime.Apply(f, head)
	if err != nil {
		return nil, err
	}
	rest, err := Map(f, tail)
	if err != nil {
		return nil, err
	}
	return Cons(mapped, rest), nil
}

// Filter keeps the elements for which pred returns a true selector, in
// their original order. The tail is filtered before the head is tested.
func Filter(pred, list runtime.Value) (runtime.Value, error) {
	if IsNil(list) {
		return Nil(), nil
	}
	head, tail, err := uncons(list)
	if err != nil {
		return nil, err
	}
	rest, err := Filter(pred, tail)
	if err != nil {
		return nil, err
	}
	verdict, err := runtime.Apply(pred, head)
	if err != nil {
		return nil, err
	}
	keep, err := DecodeBool(verdict)
	if err != nil {
		return nil, err
	}
	if keep {
		return Cons(head, rest), nil
	}
	return rest, nil
}

// Fold is a left fold: f(...f(f(acc, x0), x1)..., xn). f may be a binary
// closure or a curried unary one.
func Fold(f, acc, list runtime.Value) (runtime.Value, error) {
	for !IsNil(list) {
		head, tail, err := uncons(list)
		if err != nil {
			return nil, err
		}
		acc, err = runtime.Apply(f, acc, head)
		if err != nil {
			return nil, err
		}
		list = tail
	}
	return acc, nil
}

func uncons(list runtime.Value) (runtime.Value, runtime.Value, error) {
	head, err := Head(list)
	if err != nil {
		return nil, nil, err
	}
	tail, err := Tail(list)
	if err != nil {
		return nil, nil, err
	}
	return head, tail, nil
}
