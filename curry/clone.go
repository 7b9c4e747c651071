package curry

// Cloner is implemented by values that can produce an independent copy of
// themselves. T is the static type the value is held as, so a stateful
// callable stored as a Func2[int, int, int] implements
// Cloner[Func2[int, int, int]].
//
// Example:
//
//	type tally struct{ seen []int }
//
//	func (t *tally) Call(a, b int) int { t.seen = append(t.seen, a, b); return len(t.seen) }
//	func (t *tally) Clone() curry.Func2[int, int, int] {
//		return &tally{seen: slices.Clone(t.seen)}
//	}
type Cloner[T any] interface {
	Clone() T
}

// adapter is implemented by the Curry and Closure types. Their Clone returns
// the concrete adapter, which never matches Cloner of the callable
// interface they are stored as.
type adapter interface {
	cloneCallable() any
}

// duplicate returns v.Clone() when v implements Cloner[T], a clone of the
// adapter when v is one, or v itself.
func duplicate[T any](v T) T {
	switch c := any(v).(type) {
	case Cloner[T]:
		return c.Clone()
	case adapter:
		if d, ok := c.cloneCallable().(T); ok {
			return d
		}
	}
	return v
}
