package curry_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/charmingruby/curry/curry"
)

var _ curry.Func6[int, int, int, int, int, int, int] = curry.Uncurry6[int, int, int, int, int, int, int]{}

func adder6(a int) func(int) func(int) func(int) func(int) func(int) int {
	return func(b int) func(int) func(int) func(int) func(int) int {
		return func(c int) func(int) func(int) func(int) int {
			return func(d int) func(int) func(int) int {
				return func(e int) func(int) int {
					return func(f int) int { return a + b + c + d + e + f }
				}
			}
		}
	}
}

func TestUncurry6(t *testing.T) {
	u := curry.NewUncurry6(adder6)
	qt.Check(t, qt.Equals(u.Call(1, 2, 3, 4, 5, 6), 21))
	qt.Check(t, qt.Equals(u.Apply5(1, 2, 3, 4, 5)(6), 21))
	qt.Check(t, qt.Equals(u.Apply4(1, 2, 3, 4)(5)(6), 21))
	qt.Check(t, qt.Equals(u.Apply3(1, 2, 3)(4)(5)(6), 21))
	qt.Check(t, qt.Equals(u.Apply2(1, 2)(3)(4)(5)(6), 21))
	qt.Check(t, qt.Equals(u.Apply1(1)(2)(3)(4)(5)(6), 21))
	qt.Check(t, qt.Equals(u.Func()(1)(2)(3)(4)(5)(6), 21))
}

func TestUncurry2(t *testing.T) {
	u := curry.NewUncurry2(func(a int) func(int) int {
		return func(b int) int { return a * b }
	})
	qt.Assert(t, qt.Equals(u.Call(6, 7), 42))
	qt.Assert(t, qt.Equals(u.Apply1(6)(7), 42))
}

func TestUncurryAppliesLeftToRight(t *testing.T) {
	var trace []string
	u := curry.NewUncurry3(func(a string) func(string) func(string) string {
		trace = append(trace, "a="+a)
		return func(b string) func(string) string {
			trace = append(trace, "b="+b)
			return func(c string) string {
				trace = append(trace, "c="+c)
				return a + b + c
			}
		}
	})
	qt.Assert(t, qt.Equals(u.Call("x", "y", "z"), "xyz"))
	qt.Assert(t, qt.DeepEquals(trace, []string{"a=x", "b=y", "c=z"}))

	trace = nil
	qt.Assert(t, qt.Equals(u.Call("1", "2", "3"), "123"))
	qt.Assert(t, qt.DeepEquals(trace, []string{"a=1", "b=2", "c=3"}))
}

func TestUncurryOfCurryIsIdentity(t *testing.T) {
	f := func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d }
	u := curry.NewUncurry4(curry.Curry4Of(f).Curried())
	qt.Assert(t, qt.Equals(u.Call(1, 2, 3, 4), f(1, 2, 3, 4)))
	qt.Assert(t, qt.Equals(u.Apply2(1, 2)(3)(4), 1234))
}

func TestCurryOfUncurry(t *testing.T) {
	u := curry.NewUncurry3(func(a int) func(int) func(int) int {
		return func(b int) func(int) int {
			return func(c int) int { return a - b - c }
		}
	})
	c := curry.NewCurry3[int, int, int, int](u)
	qt.Assert(t, qt.Equals(c.Apply1(10).Call(3).Call(2), 5))
	qt.Assert(t, qt.Equals(c.Apply2(10, 3).Call(2), 5))
}
