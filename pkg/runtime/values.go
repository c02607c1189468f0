package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindClosure Kind = iota
	KindInteger
	KindText
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindClosure:
		return "closure"
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	case KindNil:
		return "nil"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The set of
// implementations is closed: closures, the two native boundary payloads and
// the nil sentinel.
type Value interface {
	Kind() Kind
	isValue()
}

//-----------------------------------------------------------------------------
// Closures
//-----------------------------------------------------------------------------

// ClosureFunc receives exactly Arity arguments.
type ClosureFunc func(args []Value) (Value, error)

// ClosureValue is a host function over Values. Arity is 1 for ordinary
// curried closures and 2 for binary selectors (booleans, pair accessors).
type ClosureValue struct {
	Name  string
	Arity int
	Impl  ClosureFunc
}

func (v *ClosureValue) Kind() Kind { return KindClosure }
func (*ClosureValue) isValue()     {}

// NewClosure wraps impl as a closure value.
func NewClosure(name string, arity int, impl ClosureFunc) *ClosureValue {
	return &ClosureValue{Name: name, Arity: arity, Impl: impl}
}

// Unary is a convenience for single-argument closures.
func Unary(name string, fn func(Value) (Value, error)) *ClosureValue {
	return NewClosure(name, 1, func(args []Value) (Value, error) {
		return fn(args[0])
	})
}

// Binary is a convenience for two-argument closures.
func Binary(name string, fn func(Value, Value) (Value, error)) *ClosureValue {
	return NewClosure(name, 2, func(args []Value) (Value, error) {
		return fn(args[0], args[1])
	})
}

//-----------------------------------------------------------------------------
// Native boundary payloads
//-----------------------------------------------------------------------------

// IntegerValue only appears at the boundary: decoded numerals and native
// arithmetic such as the factorial step.
type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }
func (IntegerValue) isValue()     {}

// Integer builds an IntegerValue.
func Integer(n int64) IntegerValue { return IntegerValue{Val: n} }

type TextValue struct {
	Val string
}

func (v TextValue) Kind() Kind { return KindText }
func (TextValue) isValue()     {}

// Text builds a TextValue.
func Text(s string) TextValue { return TextValue{Val: s} }

//-----------------------------------------------------------------------------
// Nil
//-----------------------------------------------------------------------------

// NilValue has exactly one value, so comparing against Nil is an identity test.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }
func (NilValue) isValue()   {}

// Nil is the empty-list and absence marker.
var Nil Value = NilValue{}

// IsNil reports whether v is the nil sentinel.
func IsNil(v Value) bool {
	_, ok := v.(NilValue)
	return ok
}

//-----------------------------------------------------------------------------
// Utility helpers
//-----------------------------------------------------------------------------

// Describe renders a value for diagnostics without inspecting closure bodies.
func Describe(v Value) string {
	switch val := v.(type) {
	case nil:
		return "<missing>"
	case *ClosureValue:
		if val == nil || val.Name == "" {
			return "<closure>"
		}
		return "<closure " + val.Name + ">"
	case IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case TextValue:
		return strconv.Quote(val.Val)
	case NilValue:
		return "nil"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
