// Package church builds booleans, natural numbers, pairs and lists out of
// runtime closures and nothing else. Conditionals are selectors, numerals
// are iterated application, lists are nested pairs ending in runtime.Nil,
// and recursion comes from Fix rather than from named self-reference.
//
// Evaluation is eager: every argument is a fully built Value before a
// closure runs. Fix is therefore the eta-expanded (Z) form, and any
// recursive branch handed to IfThenElse must be wrapped in a thunk.
//
// Map and Filter recurse once per list element and deep Fix recursion grows
// the goroutine stack the same way. Beyond the runtime's maximum stack size
// the process dies with a stack overflow; that is a construction bug in the
// caller, not something this package recovers from.
package church
