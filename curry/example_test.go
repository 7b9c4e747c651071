package curry_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/curry/curry"
)

func ExampleCurry3Of() {
	add := curry.Curry3Of(func(a, b, c int) int { return a + b + c })
	fmt.Println(add.Call(1, 2, 3))
	fmt.Println(add.Apply2(1, 2).Call(3))
	fmt.Println(add.Apply1(1).Call(2).Call(3))
	// Output:
	// 6
	// 6
	// 6
}

func ExampleNewUncurry2() {
	greet := curry.NewUncurry2(func(greeting string) func(string) string {
		return func(name string) string { return greeting + ", " + name }
	})
	fmt.Println(greet.Call("hello", "gopher"))
	hi := greet.Apply1("hi")
	fmt.Println(hi("there"))
	// Output:
	// hello, gopher
	// hi, there
}

func ExampleFn2() {
	repeat := curry.Fn2[string, int, string](strings.Repeat)
	twice := curry.NewCurry2[string, int, string](repeat).Apply1("ab")
	fmt.Println(twice.Call(2))
	// Output:
	// abab
}
