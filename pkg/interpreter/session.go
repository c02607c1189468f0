package interpreter

import (
	"fmt"
	"strings"

	"church/interpreter-go/pkg/ast"
	"church/interpreter-go/pkg/runtime"
)

// Session evaluates terms in a child scope of the prelude. Names bound in a
// session are visible to later terms of the same session only.
type Session struct {
	interp *Interpreter
	scope  *runtime.Environment
}

// NewSession opens a scope nested under the global environment.
func (i *Interpreter) NewSession() *Session {
	return &Session{interp: i, scope: i.global.Extend()}
}

// Scope returns the session's own environment.
func (s *Session) Scope() *runtime.Environment {
	return s.scope
}

// Evaluate resolves names through the session scope, then the prelude.
func (s *Session) Evaluate(term ast.Term) (runtime.Value, error) {
	return s.interp.evaluate(term, s.scope)
}

// Bind records value under name for the rest of the session. Prelude names
// and names already bound in the session are rejected.
func (s *Session) Bind(name string, value runtime.Value) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("bind: empty name")
	}
	if _, err := s.scope.Parent().Get(name); err == nil {
		return fmt.Errorf("bind: %q is a prelude binding", name)
	}
	for _, existing := range s.scope.Keys() {
		if existing == name {
			return fmt.Errorf("bind: %q is already bound", name)
		}
	}
	s.scope.Define(name, value)
	return nil
}
