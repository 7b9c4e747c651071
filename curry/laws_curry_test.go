package curry_test

import (
	"fmt"
	"testing"
	"testing/quick"

	"github.com/charmingruby/curry/curry"
)

func TestPartialApplicationLaws(t *testing.T) {
	f := func(a string, b int, c bool, d string) string {
		return fmt.Sprintf("%s|%d|%t|%s", a, b, c, d)
	}
	c := curry.Curry4Of(f)

	check := func(a string, b int, cc bool, d string) bool {
		want := f(a, b, cc, d)
		return c.Call(a, b, cc, d) == want &&
			c.Apply3(a, b, cc).Call(d) == want &&
			c.Apply2(a, b).Call(cc).Call(d) == want &&
			c.Apply1(a).Call(b).Call(cc).Call(d) == want &&
			c.Curried()(a)(b)(cc)(d) == want &&
			c.Partial1(a).Call(b, cc, d) == want &&
			c.Partial2(a, b).Call(cc, d) == want
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("partial application law failed: %v", err)
	}
}

func TestRoundTripLaw(t *testing.T) {
	f := func(a, b, c, d, e int) int { return a - b + c*d - e }
	round := curry.NewUncurry5(curry.Curry5Of(f).Curried())

	check := func(a, b, c, d, e int) bool {
		return round.Call(a, b, c, d, e) == f(a, b, c, d, e)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("round trip law failed: %v", err)
	}
}

func TestSharedCallsAreRepeatable(t *testing.T) {
	c := curry.Curry6Of(sum6)

	check := func(a, b, cc, d, e, f int) bool {
		p := c.Apply3(a, b, cc)
		return p.Call(d).Call(e).Call(f) == p.Call(d).Call(e).Call(f) &&
			c.Call(a, b, cc, d, e, f) == c.Call(a, b, cc, d, e, f)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("repeatability failed: %v", err)
	}
}
