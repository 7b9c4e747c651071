package fp_test

import (
	"testing"

	"github.com/charmingruby/curry/fp"
)

func TestPipeComposeCurry(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	curried := fp.Curry(sum)
	if curried(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	pipeline := fp.Compose(
		func(i int) int { return i * 2 },
		curried(1),
	)
	if pipeline(3) != 8 {
		t.Fatalf("compose result mismatch")
	}
	final := fp.Pipe(1, curried(1), func(i int) int { return i * 5 })
	if final != 10 {
		t.Fatalf("pipe result mismatch")
	}
}

func TestCurryArities(t *testing.T) {
	if got := fp.Curry3(func(a, b, c string) string { return a + b + c })("a")("b")("c"); got != "abc" {
		t.Fatalf("curry3 got %q", got)
	}
	if got := fp.Curry4(func(a, b, c, d int) int { return a - b - c - d })(10)(1)(2)(3); got != 4 {
		t.Fatalf("curry4 got %d", got)
	}
	if got := fp.Curry5(func(a, b, c, d, e int) int { return a * b * c * d * e })(1)(2)(3)(4)(5); got != 120 {
		t.Fatalf("curry5 got %d", got)
	}
	sum := fp.Curry6(func(a, b, c, d, e, f int) int { return a + b + c + d + e + f })
	if got := sum(1)(2)(3)(4)(5)(6); got != 21 {
		t.Fatalf("curry6 got %d", got)
	}
}

func TestUncurryInvertsCurry(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	if got := fp.Uncurry(fp.Curry(sub))(9, 4); got != 5 {
		t.Fatalf("uncurry got %d", got)
	}
	join := func(a, b, c string) string { return a + "-" + b + "-" + c }
	if got := fp.Uncurry3(fp.Curry3(join))("x", "y", "z"); got != "x-y-z" {
		t.Fatalf("uncurry3 got %q", got)
	}
	poly := func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d }
	if got := fp.Uncurry4(fp.Curry4(poly))(1, 2, 3, 4); got != 1234 {
		t.Fatalf("uncurry4 got %d", got)
	}
	five := func(a, b, c, d, e int) int { return a + b*c - d*e }
	if got := fp.Uncurry5(fp.Curry5(five))(1, 2, 3, 4, 5); got != -13 {
		t.Fatalf("uncurry5 got %d", got)
	}
	six := func(a, b, c, d, e, f int) int { return a + b + c + d + e + f }
	if got := fp.Uncurry6(fp.Curry6(six))(1, 2, 3, 4, 5, 6); got != 21 {
		t.Fatalf("uncurry6 got %d", got)
	}
}
