package church

import (
	"errors"
	"testing"

	"church/interpreter-go/pkg/runtime"
)

func mustBool(t *testing.T, v runtime.Value) bool {
	t.Helper()
	b, err := DecodeBool(v)
	if err != nil {
		t.Fatalf("DecodeBool error: %v", err)
	}
	return b
}

func TestIfThenElseSelects(t *testing.T) {
	a, b := runtime.Text("A"), runtime.Text("B")

	got, err := IfThenElse(True(), a, b)
	if err != nil {
		t.Fatalf("IfThenElse(true) error: %v", err)
	}
	if got != a {
		t.Fatalf("expected A, got %s", runtime.Describe(got))
	}

	got, err = IfThenElse(False(), a, b)
	if err != nil {
		t.Fatalf("IfThenElse(false) error: %v", err)
	}
	if got != b {
		t.Fatalf("expected B, got %s", runtime.Describe(got))
	}
}

func TestIfThenElseReturnsBranchUnevaluated(t *testing.T) {
	calls := 0
	branch := runtime.Unary("branch", func(x runtime.Value) (runtime.Value, error) {
		calls++
		return x, nil
	})
	got, err := IfThenElse(True(), branch, runtime.Nil)
	if err != nil {
		t.Fatalf("IfThenElse error: %v", err)
	}
	if got != runtime.Value(branch) {
		t.Fatalf("expected the branch closure itself")
	}
	if calls != 0 {
		t.Fatalf("selected branch must not be invoked, called %d times", calls)
	}
}

func TestIfThenElseRejectsNonSelectors(t *testing.T) {
	cases := []runtime.Value{
		runtime.Integer(1),
		runtime.Nil,
		Zero(),
		MakePair(runtime.Nil, runtime.Nil),
	}
	for idx, cond := range cases {
		_, err := IfThenElse(cond, runtime.Nil, runtime.Nil)
		if !errors.Is(err, runtime.ErrInvalidArgument) {
			t.Fatalf("case %d: expected invalid argument, got %v", idx, err)
		}
	}
}

func TestBoolRoundTrip(t *testing.T) {
	if !mustBool(t, Bool(true)) || mustBool(t, Bool(false)) {
		t.Fatalf("Bool/DecodeBool disagree")
	}
}

func TestDecodeBoolRejectsOddSelectors(t *testing.T) {
	constant := runtime.Binary("odd", func(_, _ runtime.Value) (runtime.Value, error) {
		return runtime.Integer(7), nil
	})
	if _, err := DecodeBool(constant); !errors.Is(err, runtime.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestLogicTruthTables(t *testing.T) {
	cases := []struct {
		a, b         bool
		and, or, not bool
	}{
		{a: false, b: false, and: false, or: false, not: true},
		{a: false, b: true, and: false, or: true, not: true},
		{a: true, b: false, and: false, or: true, not: false},
		{a: true, b: true, and: true, or: true, not: false},
	}
	for _, tc := range cases {
		a, b := Bool(tc.a), Bool(tc.b)
		if got := mustBool(t, And(a, b)); got != tc.and {
			t.Fatalf("And(%v, %v) = %v", tc.a, tc.b, got)
		}
		if got := mustBool(t, Or(a, b)); got != tc.or {
			t.Fatalf("Or(%v, %v) = %v", tc.a, tc.b, got)
		}
		if got := mustBool(t, Not(a)); got != tc.not {
			t.Fatalf("Not(%v) = %v", tc.a, got)
		}
	}
}

func TestCombinators(t *testing.T) {
	x, y := runtime.Text("x"), runtime.Text("y")
	if got, _ := runtime.Apply(Identity(), x); got != x {
		t.Fatalf("I x = %s", runtime.Describe(got))
	}
	if got, _ := runtime.Apply(Constant(), x, y); got != x {
		t.Fatalf("K x y = %s", runtime.Describe(got))
	}
	if got, _ := runtime.Apply(Kite(), x, y); got != y {
		t.Fatalf("KI x y = %s", runtime.Describe(got))
	}
}
