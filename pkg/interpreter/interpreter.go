package interpreter

import (
	"fmt"

	"church/interpreter-go/pkg/ast"
	"church/interpreter-go/pkg/church"
	"church/interpreter-go/pkg/runtime"
)

// Interpreter evaluates terms against a global environment preloaded with
// the Church prelude.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter whose global environment holds the prelude.
func New() *Interpreter {
	i := &Interpreter{global: runtime.NewEnvironment(nil)}
	registerPrelude(i.global)
	return i
}

// GlobalEnvironment returns the interpreter’s global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Call looks up name and applies it to args.
func (i *Interpreter) Call(name string, args ...runtime.Value) (runtime.Value, error) {
	callee, err := i.global.Get(name)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return callee, nil
	}
	out, err := runtime.Apply(callee, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Evaluate builds the value a term denotes. Arguments are evaluated left to
// right before the callee is applied.
func (i *Interpreter) Evaluate(term ast.Term) (runtime.Value, error) {
	return i.evaluate(term, i.global)
}

func (i *Interpreter) evaluate(term ast.Term, env *runtime.Environment) (runtime.Value, error) {
	switch t := term.(type) {
	case nil:
		return nil, fmt.Errorf("evaluate: missing term")
	case *ast.Reference:
		return env.Get(t.Name)
	case *ast.FunctionCall:
		if t.Callee == nil {
			return nil, fmt.Errorf("evaluate: call without callee")
		}
		callee, err := env.Get(t.Callee.Name)
		if err != nil {
			return nil, err
		}
		if len(t.Args) == 0 {
			return callee, nil
		}
		args := make([]runtime.Value, 0, len(t.Args))
		for idx, arg := range t.Args {
			val, err := i.evaluate(arg, env)
			if err != nil {
				return nil, fmt.Errorf("%s argument %d: %w", t.Callee.Name, idx+1, err)
			}
			args = append(args, val)
		}
		out, err := runtime.Apply(callee, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Callee.Name, err)
		}
		return out, nil
	case *ast.NumeralLiteral:
		return church.Encode(t.Value), nil
	case *ast.IntegerLiteral:
		return runtime.Integer(t.Value), nil
	case *ast.TextLiteral:
		return runtime.Text(t.Value), nil
	case *ast.BooleanLiteral:
		return church.Bool(t.Value), nil
	case *ast.NilLiteral:
		return church.Nil(), nil
	case *ast.ListLiteral:
		elems := make([]runtime.Value, 0, len(t.Elements))
		for idx, elem := range t.Elements {
			val, err := i.evaluate(elem, env)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", idx+1, err)
			}
			elems = append(elems, val)
		}
		return church.List(elems...), nil
	default:
		return nil, fmt.Errorf("evaluate: unsupported term %s", term.NodeType())
	}
}
