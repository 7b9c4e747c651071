// Package curry converts functions of two to six arguments into chains of
// single-argument functions and back.
//
// A CurryN wraps an N-ary callable. Call supplies every argument at once;
// ApplyJ supplies the first J and returns a ClosureK that remembers them and
// waits for the next one. Each step of a chain either yields the next closure
// or, once the last argument arrives, invokes the wrapped callable with the
// bound arguments in the order they were supplied.
//
// Example:
//
//	add := curry.Curry3Of(func(a, b, c int) int { return a + b + c })
//	add.Call(1, 2, 3)               // 6
//	add.Apply2(1, 2).Call(3)        // 6
//	add.Apply1(1).Call(2).Call(3)   // 6
//
// An UncurryN goes the other way: it presents a chain such as
// func(int) func(int) int as a single function of N arguments, applying them
// strictly left to right.
//
// Callables are anything with a Call method of the right shape (FuncN). The
// FnN types turn function literals into callables. A callable whose Call has
// a pointer receiver may keep state between calls; only its pointer
// satisfies FuncN, so the compiler rejects passing it by value. Callables and
// bound arguments that implement Cloner are duplicated whenever a partial
// application starts a new chain, so forked chains never observe each
// other's state. Curry and Closure values held as callables or bound
// arguments are duplicated the same way, down to their innermost callable.
//
// Arity mismatches are compile errors: a CurryN has no method accepting more
// than N arguments. Panics raised by a wrapped callable propagate unchanged.
package curry

//go:generate go run ../internal/gencurry -out . -pkg curry -max 6
