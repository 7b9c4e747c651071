package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// generator writes the declarations of one file for every arity in cfg.
type generator func(w *bytes.Buffer, cfg config)

type file struct {
	name string
	gen  generator
}

var files = []file{
	{name: "fn_gen.go", gen: genFuncs},
	{name: "closure_gen.go", gen: genClosures},
	{name: "curry_gen.go", gen: genCurries},
	{name: "uncurry_gen.go", gen: genUncurries},
}

// render produces the gofmt-ed source of one generated file.
func render(cfg config, gen generator) ([]byte, error) {
	var w bytes.Buffer
	fmt.Fprintf(&w, "// Code generated by gencurry. DO NOT EDIT.\n\npackage %s\n", cfg.pkg)
	gen(&w, cfg)
	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func genFuncs(w *bytes.Buffer, cfg config) {
	for n := 1; n <= cfg.max; n++ {
		noun := "arguments"
		if n == 1 {
			noun = "argument"
		}
		fmt.Fprintf(w, "\n// Func%d is a callable taking %s %s.\n", n, numberWords[n], noun)
		fmt.Fprintf(w, "type Func%d[%s, R any] interface {\n\tCall(%s) R\n}\n", n, types(1, n), params(1, n))
		fmt.Fprintf(w, "\n// Fn%d declares a Func%d from a function literal.\n", n, n)
		fmt.Fprintf(w, "type Fn%d[%s, R any] func(%s) R\n", n, types(1, n), params(1, n))
		fmt.Fprintf(w, "\n// Call invokes f.\n")
		fmt.Fprintf(w, "func (f Fn%d[%s, R]) Call(%s) R {\n\treturn f(%s)\n}\n", n, types(1, n), params(1, n), args(1, n))
	}
}

func genClosures(w *bytes.Buffer, cfg config) {
	for k := 2; k <= cfg.max; k++ {
		self := fmt.Sprintf("Closure%d[%s, R]", k, types(1, k))
		callable := fmt.Sprintf("Func%d[%s, R]", k, types(1, k))

		fmt.Fprintf(w, "\n// Closure%d is a function of %s arguments with the first %s already\n// bound. Call supplies the last one.\n", k, numberWords[k], numberWords[k-1])
		fmt.Fprintf(w, "type Closure%d[%s, R any] struct {\n", k, types(1, k))
		for i := 1; i < k; i++ {
			fmt.Fprintf(w, "\ta%d T%d\n", i, i)
		}
		fmt.Fprintf(w, "\tfn %s\n}\n", callable)

		fmt.Fprintf(w, "\n// NewClosure%d binds %s in front of fn.\n", k, joinArgs(1, k-1))
		fmt.Fprintf(w, "func NewClosure%d[%s, R any](%s, fn %s) %s {\n", k, types(1, k), params(1, k-1), callable, self)
		fmt.Fprintf(w, "\treturn %s{%s, fn: fn}\n}\n", self, fields(1, k-1, "%s"))

		bound := types(1, k-1)
		if k > 2 {
			bound = "(" + bound + ")"
		}
		fmt.Fprintf(w, "\n// Bound returns the bound arguments in the order they were supplied.\n")
		fmt.Fprintf(w, "func (c %s) Bound() %s {\n\treturn %s\n}\n", self, bound, list(1, k-1, "c.a%d"))

		fmt.Fprintf(w, "\n// Func returns the wrapped callable.\n")
		fmt.Fprintf(w, "func (c %s) Func() %s {\n\treturn c.fn\n}\n", self, callable)

		fmt.Fprintf(w, "\n// Clone returns a copy of c whose bound arguments and callable are\n// duplicated where they implement Cloner.\n")
		fmt.Fprintf(w, "func (c %s) Clone() %s {\n", self, self)
		fmt.Fprintf(w, "\treturn %s{%s, fn: duplicate(c.fn)}\n}\n", self, fields(1, k-1, "duplicate(c.%s)"))

		fmt.Fprintf(w, "\nfunc (c %s) cloneCallable() any {\n\treturn c.Clone()\n}\n", self)

		fmt.Fprintf(w, "\n// Call replays the bound arguments followed by a%d.\n", k)
		fmt.Fprintf(w, "func (c %s) Call(a%d T%d) R {\n", self, k, k)
		fmt.Fprintf(w, "\treturn c.fn.Call(%s, a%d)\n}\n", list(1, k-1, "duplicate(c.a%d)"), k)
	}
}

func genCurries(w *bytes.Buffer, cfg config) {
	for n := 2; n <= cfg.max; n++ {
		self := fmt.Sprintf("Curry%d[%s, R]", n, types(1, n))
		callable := fmt.Sprintf("Func%d[%s, R]", n, types(1, n))

		fmt.Fprintf(w, "\n// Curry%d is a curried function of %s arguments. Call takes all of them\n", n, numberWords[n])
		if n == 2 {
			fmt.Fprintf(w, "// at once; Apply1 binds the first and returns the closure waiting for the\n// second.\n")
		} else if n == 3 {
			fmt.Fprintf(w, "// at once; Apply1 and Apply2 bind a prefix and return the closure waiting\n// for the rest.\n")
		} else {
			fmt.Fprintf(w, "// at once; Apply1 through Apply%d bind a prefix and return the closure\n// waiting for the rest.\n", n-1)
		}
		fmt.Fprintf(w, "type Curry%d[%s, R any] struct {\n\tfn %s\n}\n", n, types(1, n), callable)

		fmt.Fprintf(w, "\n// NewCurry%d wraps fn.\n", n)
		fmt.Fprintf(w, "func NewCurry%d[%s, R any](fn %s) %s {\n\treturn %s{fn: fn}\n}\n", n, types(1, n), callable, self, self)

		fmt.Fprintf(w, "\n// Curry%dOf wraps a plain function.\n", n)
		fmt.Fprintf(w, "func Curry%dOf[%s, R any](fn func(%s) R) %s {\n", n, types(1, n), types(1, n), self)
		fmt.Fprintf(w, "\treturn %s{fn: Fn%d[%s, R](fn)}\n}\n", self, n, types(1, n))

		fmt.Fprintf(w, "\n// Func returns the wrapped callable.\n")
		fmt.Fprintf(w, "func (c %s) Func() %s {\n\treturn c.fn\n}\n", self, callable)

		fmt.Fprintf(w, "\n// Clone returns a Curry%d holding a duplicate of the wrapped callable.\n", n)
		fmt.Fprintf(w, "func (c %s) Clone() %s {\n\treturn %s{fn: duplicate(c.fn)}\n}\n", self, self, self)

		fmt.Fprintf(w, "\nfunc (c %s) cloneCallable() any {\n\treturn c.Clone()\n}\n", self)

		fmt.Fprintf(w, "\n// Call invokes the wrapped callable with every argument.\n")
		fmt.Fprintf(w, "func (c %s) Call(%s) R {\n\treturn c.fn.Call(%s)\n}\n", self, params(1, n), args(1, n))

		for j := 1; j < n; j++ {
			fmt.Fprintf(w, "\n// Apply%d binds %s and returns the closure waiting for a%d.\n", j, joinArgs(1, j), j+1)
			ret := partialType(j, n)
			fmt.Fprintf(w, "func (c %s) Apply%d(%s) %s {\n", self, j, params(1, j), ret)
			inner := "duplicate(c.fn)"
			if j < n-1 {
				inner = fmt.Sprintf("Fn%d[%s, %s](c.Clone().Apply%d)", j+1, types(1, j+1), partialType(j+1, n), j+1)
			}
			fmt.Fprintf(w, "\treturn %s{%s, fn: %s}\n}\n", ret, fields(1, j, "%s"), inner)
		}

		for j := 1; j < n-1; j++ {
			rest := fmt.Sprintf("Curry%d[%s, R]", n-j, types(j+1, n))
			fmt.Fprintf(w, "\n// Partial%d binds %s and returns a Curry%d over the remaining arguments,\n// which may then be supplied together or one at a time.\n", j, joinArgs(1, j), n-j)
			fmt.Fprintf(w, "func (c %s) Partial%d(%s) %s {\n", self, j, params(1, j), rest)
			fmt.Fprintf(w, "\treturn %s{fn: %s{%s, fn: duplicate(c.fn)}}\n}\n", rest, partialImpl(j, n), fields(1, j, "%s"))
		}

		fmt.Fprintf(w, "\n// Curried returns c as a chain of single-argument functions.\n")
		fmt.Fprintf(w, "func (c %s) Curried() %s {\n", self, chain(1, n))
		for i := 1; i < n; i++ {
			indent := strings.Repeat("\t", i)
			fmt.Fprintf(w, "%sreturn func(a%d T%d) %s {\n", indent, i, i, chain(i+1, n))
			step := "c.Apply1(a1)"
			if i > 1 {
				step = fmt.Sprintf("s%d.Call(a%d)", i, i)
			}
			if i == n-1 {
				fmt.Fprintf(w, "%s\treturn %s.Call\n", indent, step)
			} else {
				fmt.Fprintf(w, "%s\ts%d := %s\n", indent, i+1, step)
			}
		}
		for i := n - 1; i >= 1; i-- {
			fmt.Fprintf(w, "%s}\n", strings.Repeat("\t", i))
		}
		fmt.Fprintf(w, "}\n")

		for j := 1; j < n-1; j++ {
			impl := partialImpl(j, n)
			fmt.Fprintf(w, "\n// partial%dx%d is the callable behind Curry%d.Partial%d.\n", n, j, n, j)
			fmt.Fprintf(w, "type partial%dx%d[%s, R any] struct {\n", n, j, types(1, n))
			for i := 1; i <= j; i++ {
				fmt.Fprintf(w, "\ta%d T%d\n", i, i)
			}
			fmt.Fprintf(w, "\tfn %s\n}\n", callable)
			fmt.Fprintf(w, "\nfunc (p %s) Call(%s) R {\n", impl, params(j+1, n))
			fmt.Fprintf(w, "\treturn p.fn.Call(%s, %s)\n}\n", list(1, j, "duplicate(p.a%d)"), args(j+1, n))
			fmt.Fprintf(w, "\nfunc (p %s) Clone() Func%d[%s, R] {\n", impl, n-j, types(j+1, n))
			fmt.Fprintf(w, "\treturn %s{%s, fn: duplicate(p.fn)}\n}\n", impl, fields(1, j, "duplicate(p.%s)"))
		}
	}
}

func genUncurries(w *bytes.Buffer, cfg config) {
	for n := 2; n <= cfg.max; n++ {
		self := fmt.Sprintf("Uncurry%d[%s, R]", n, types(1, n))

		fmt.Fprintf(w, "\n// Uncurry%d presents a chain of %s single-argument functions as one\n// function of %s arguments. Arguments are applied left to right.\n", n, numberWords[n], numberWords[n])
		fmt.Fprintf(w, "type Uncurry%d[%s, R any] struct {\n\tfn %s\n}\n", n, types(1, n), chain(1, n))

		fmt.Fprintf(w, "\n// NewUncurry%d wraps fn.\n", n)
		fmt.Fprintf(w, "func NewUncurry%d[%s, R any](fn %s) %s {\n\treturn %s{fn: fn}\n}\n", n, types(1, n), chain(1, n), self, self)

		fmt.Fprintf(w, "\n// Func returns the wrapped chain.\n")
		fmt.Fprintf(w, "func (u %s) Func() %s {\n\treturn u.fn\n}\n", self, chain(1, n))

		fmt.Fprintf(w, "\n// Call applies every argument in turn and returns the final result.\n")
		fmt.Fprintf(w, "func (u %s) Call(%s) R {\n\treturn u.fn%s\n}\n", self, params(1, n), applied(1, n))

		for j := 1; j < n; j++ {
			fmt.Fprintf(w, "\n// Apply%d applies %s and returns the rest of the chain.\n", j, joinArgs(1, j))
			fmt.Fprintf(w, "func (u %s) Apply%d(%s) %s {\n\treturn u.fn%s\n}\n", self, j, params(1, j), chain(j+1, n), applied(1, j))
		}
	}
}

// partialType is the type Curry<n>.Apply<j> returns.
func partialType(j, n int) string {
	if j == n-1 {
		return fmt.Sprintf("Closure%d[%s, R]", n, types(1, n))
	}
	return fmt.Sprintf("Closure%d[%s, %s]", j+1, types(1, j+1), partialType(j+1, n))
}

// partialImpl is the callable type behind Curry<n>.Partial<j>.
func partialImpl(j, n int) string {
	return fmt.Sprintf("partial%dx%d[%s, R]", n, j, types(1, n))
}

// chain is the nested single-argument function type taking T<from> through T<to>.
func chain(from, to int) string {
	var b strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, "func(T%d) ", i)
	}
	b.WriteString("R")
	return b.String()
}

func applied(from, to int) string {
	var b strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, "(a%d)", i)
	}
	return b.String()
}

func list(from, to int, pattern string) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, fmt.Sprintf(pattern, i))
	}
	return strings.Join(parts, ", ")
}

func types(from, to int) string { return list(from, to, "T%d") }

func args(from, to int) string { return list(from, to, "a%d") }

func params(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, fmt.Sprintf("a%d T%d", i, i))
	}
	return strings.Join(parts, ", ")
}

// fields renders "a1: v1, a2: v2" where each value is pattern applied to the field name.
func fields(from, to int, pattern string) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		name := fmt.Sprintf("a%d", i)
		parts = append(parts, name+": "+fmt.Sprintf(pattern, name))
	}
	return strings.Join(parts, ", ")
}

// joinArgs names the arguments a<from> through a<to> in prose.
func joinArgs(from, to int) string {
	switch to - from {
	case 0:
		return fmt.Sprintf("a%d", from)
	case 1:
		return fmt.Sprintf("a%d and a%d", from, to)
	default:
		return fmt.Sprintf("a%d through a%d", from, to)
	}
}
