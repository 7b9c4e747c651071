package curry_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/charmingruby/curry/curry"
)

// identity declares a one-argument callable through a value receiver.
type identity struct{}

func (identity) Call(x int) int { return x }

// reorder declares a generic callable.
type reorder[A, B any] struct{}

type triple[A, B any] struct {
	First  A
	Second B
	Third  A
}

func (reorder[A, B]) Call(a1, a2 A, b B) triple[A, B] {
	return triple[A, B]{First: a1, Second: b, Third: a2}
}

func TestDeclaredCallables(t *testing.T) {
	var id curry.Func1[int, int] = identity{}
	qt.Assert(t, qt.Equals(id.Call(42), 42))

	var r curry.Func3[int, int, string, triple[int, string]] = reorder[int, string]{}
	qt.Assert(t, qt.Equals(r.Call(1, 2, "c"), triple[int, string]{First: 1, Second: "c", Third: 2}))

	c := curry.NewCurry3(r)
	qt.Assert(t, qt.Equals(c.Apply1(1).Call(2).Call("c").Third, 2))
}

func TestFnDeclarators(t *testing.T) {
	qt.Check(t, qt.Equals(curry.Fn1[int, int](func(a int) int { return -a }).Call(3), -3))
	qt.Check(t, qt.Equals(curry.Fn2[bool, int, bool](func(b bool, i int) bool { return b || i == 42 }).Call(false, 42), true))
	qt.Check(t, qt.Equals(curry.Fn3[int, int, int, int](sum3).Call(1, 2, 3), 6))
	qt.Check(t, qt.Equals(curry.Fn4[string, string, string, string, string](func(a, b, c, d string) string {
		return d + c + b + a
	}).Call("a", "b", "c", "d"), "dcba"))
	qt.Check(t, qt.Equals(curry.Fn5[int, int, int, int, int, int](func(a, b, c, d, e int) int {
		return a * b * c * d * e
	}).Call(1, 2, 3, 4, 5), 120))
	qt.Check(t, qt.Equals(curry.Fn6[int, int, int, int, int, int, int](sum6).Call(1, 2, 3, 4, 5, 6), 21))
}
