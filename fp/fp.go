// Package fp exposes currying as plain Go functions, for callers that want
// nested funcs rather than the adapter types of package curry.
//
// Example:
//
//	add := fp.Curry3(func(a, b, c int) int { return a + b + c })
//	value := fp.Pipe(1, add(10)(20))
package fp

import "github.com/charmingruby/curry/curry"

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return curry.Curry2Of(fn).Curried()
}

// Curry3 converts a function of three arguments into its curried form.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return curry.Curry3Of(fn).Curried()
}

// Curry4 converts a function of four arguments into its curried form.
func Curry4[A, B, C, D, E any](fn func(A, B, C, D) E) func(A) func(B) func(C) func(D) E {
	return curry.Curry4Of(fn).Curried()
}

// Curry5 converts a function of five arguments into its curried form.
func Curry5[A, B, C, D, E, F any](fn func(A, B, C, D, E) F) func(A) func(B) func(C) func(D) func(E) F {
	return curry.Curry5Of(fn).Curried()
}

// Curry6 converts a function of six arguments into its curried form.
//
// Example:
//
//	sum := Curry6(func(a, b, c, d, e, f int) int { return a + b + c + d + e + f })
//	total := sum(1)(2)(3)(4)(5)(6)
func Curry6[A, B, C, D, E, F, G any](fn func(A, B, C, D, E, F) G) func(A) func(B) func(C) func(D) func(E) func(F) G {
	return curry.Curry6Of(fn).Curried()
}

// Uncurry is the inverse of Curry: it turns a chain of two unary functions
// into one binary function.
//
// Example:
//
//	mul := Uncurry(func(a int) func(int) int {
//		return func(b int) int { return a * b }
//	})
//	result := mul(6, 7)
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return curry.NewUncurry2(fn).Call
}

// Uncurry3 turns a chain of three unary functions into one function.
func Uncurry3[A, B, C, D any](fn func(A) func(B) func(C) D) func(A, B, C) D {
	return curry.NewUncurry3(fn).Call
}

// Uncurry4 turns a chain of four unary functions into one function.
func Uncurry4[A, B, C, D, E any](fn func(A) func(B) func(C) func(D) E) func(A, B, C, D) E {
	return curry.NewUncurry4(fn).Call
}

// Uncurry5 turns a chain of five unary functions into one function.
func Uncurry5[A, B, C, D, E, F any](fn func(A) func(B) func(C) func(D) func(E) F) func(A, B, C, D, E) F {
	return curry.NewUncurry5(fn).Call
}

// Uncurry6 turns a chain of six unary functions into one function.
func Uncurry6[A, B, C, D, E, F, G any](fn func(A) func(B) func(C) func(D) func(E) func(F) G) func(A, B, C, D, E, F) G {
	return curry.NewUncurry6(fn).Call
}

// Pipe applies a sequence of functions to value. All functions must accept and
// return the same type, which is what the last stage of a curried function
// looks like once its other arguments are bound.
//
// Example:
//
//	add := Curry(func(a, b int) int { return a + b })
//	result := Pipe(2, add(1), add(10))
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	mul := Curry(func(a, b int) int { return a * b })
//	add := Curry(func(a, b int) int { return a + b })
//	fn := Compose(mul(2), add(3))
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}
