package runtime

// Apply calls fn with args. A closure consumes as many arguments as its
// arity; any remaining arguments are applied to the result, so a curried
// numeral can be driven as Apply(n, f, x) and a selector as Apply(b, x, y).
func Apply(fn Value, args ...Value) (Value, error) {
	if len(args) == 0 {
		return nil, InvalidArgument("apply", "no arguments supplied to %s", Describe(fn))
	}
	for {
		closure, ok := fn.(*ClosureValue)
		if !ok || closure == nil || closure.Impl == nil {
			return nil, InvalidArgument("apply", "%s is not callable", Describe(fn))
		}
		if closure.Arity < 1 {
			return nil, InvalidArgument("apply", "%s has arity %d", Describe(fn), closure.Arity)
		}
		if len(args) < closure.Arity {
			return nil, InvalidArgument("apply", "%s expects %d arguments, got %d", Describe(fn), closure.Arity, len(args))
		}
		out, err := closure.Impl(args[:closure.Arity])
		if err != nil {
			return nil, err
		}
		args = args[closure.Arity:]
		if len(args) == 0 {
			return out, nil
		}
		fn = out
	}
}

// IsSelector reports whether v is a two-argument closure, the shape shared by
// booleans and pair accessors.
func IsSelector(v Value) bool {
	closure, ok := v.(*ClosureValue)
	return ok && closure != nil && closure.Arity == 2
}
