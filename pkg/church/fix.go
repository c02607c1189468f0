package church

import "church/interpreter-go/pkg/runtime"

// Fix returns r such that r(a) behaves as f(r)(a).
//
// The literal construction g = x -> f(x(x)); g(g) never terminates under
// eager evaluation because x(x) is forced before f runs. Here the
// self-application is eta-expanded, g = x -> f(y -> x(x)(y)), and the
// returned value is y -> g(g)(y) as well, so Fix itself does no work and
// every call unfolds f exactly once before delegating.
func Fix(f runtime.Value) runtime.Value {
	g := runtime.Unary("fix-g", func(x runtime.Value) (runtime.Value, error) {
		delayed := runtime.Unary("fix-self", func(y runtime.Value) (runtime.Value, error) {
			return runtime.Apply(x, x, y)
		})
		return runtime.Apply(f, delayed)
	})
	return runtime.Unary("fix", func(y runtime.Value) (runtime.Value, error) {
		return runtime.Apply(g, g, y)
	})
}
